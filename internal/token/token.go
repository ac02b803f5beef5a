// Package token provides lexical tokenization of single document lines.
//
// Tokenization is line-oriented by design: a token never crosses a line
// boundary, so each line can be tokenized independently and re-tokenized
// in isolation after an edit. Tokenize is a pure function with no retained
// scanner state between calls.
package token

// Kind represents the lexical category of a token.
type Kind uint8

// Token kinds. KindPlain is the catch-all for any input that matches no
// other category, including whitespace.
const (
	KindPlain Kind = iota
	KindString
	KindKey
	KindNumber
	KindBoolean
	KindNull
	KindPunct

	// Sentinel for iteration
	kindCount
)

// kindNames maps kinds to their string names.
var kindNames = []string{
	KindPlain:   "plain",
	KindString:  "string",
	KindKey:     "key",
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindNull:    "null",
	KindPunct:   "punctuation",
}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsLiteral returns true for value-literal kinds (string, number, boolean, null).
func (k Kind) IsLiteral() bool {
	return k == KindString || k == KindNumber || k == KindBoolean || k == KindNull
}

// Token is a minimal classified lexical unit within one line.
// Text is a verbatim substring of the source line.
type Token struct {
	Kind Kind
	Text string
}

// Line is the ordered token sequence for a single document line.
// Concatenating the token texts in order reproduces the line exactly.
type Line []Token

// Text reassembles the source line from the token sequence.
func (l Line) Text() string {
	if len(l) == 0 {
		return ""
	}
	n := 0
	for _, t := range l {
		n += len(t.Text)
	}
	buf := make([]byte, 0, n)
	for _, t := range l {
		buf = append(buf, t.Text...)
	}
	return string(buf)
}

// Equal reports whether two token lines are identical in kinds and texts.
func (l Line) Equal(other Line) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}
