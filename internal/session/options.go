package session

// Option configures a Session during creation.
type Option func(*Session)

// WithContent sets the initial document text.
func WithContent(text string) Option {
	return func(s *Session) {
		s.initContent = text
	}
}

// WithLineHeight sets the pixel height of one rendered line.
func WithLineHeight(px int) Option {
	return func(s *Session) {
		if px > 0 {
			s.lineHeightPx = px
		}
	}
}

// WithBufferLines sets the overscan margin in lines on each side of the
// visible window.
func WithBufferLines(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.bufferLines = n
		}
	}
}
