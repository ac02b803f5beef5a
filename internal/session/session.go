package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/codepane/codepane/internal/document"
	"github.com/codepane/codepane/internal/token"
	"github.com/codepane/codepane/internal/tokencache"
	"github.com/codepane/codepane/internal/viewport"
)

// Default geometry values.
const (
	DefaultLineHeightPx = 16
	DefaultBufferLines  = 5
)

// Session is the explicit context object for one editing session. It owns
// the document, the token cache and the viewport metrics, and runs each
// pipeline (edit or viewport recompute) synchronously to completion.
//
// A session is single-threaded by contract: notifications are delivered
// one at a time and no pipeline run suspends mid-way, so no locking is
// needed and none is done. The token cache is mutated only by ApplyEdit
// and the rebuild fallback; frame readers never touch it.
type Session struct {
	id    string
	doc   *document.Document
	cache *tokencache.Cache

	metrics      viewport.Metrics
	lineHeightPx int
	bufferLines  int

	dirty dirtyLines

	initContent string
}

// Frame is what the rendering collaborator receives per render request:
// the plan and, for each line in [Plan.FirstLine, Plan.LastLine], its
// tokenized form. Styling and positioning are the renderer's business.
type Frame struct {
	Plan  viewport.Plan
	Lines []token.Line
}

// New creates a session from the given options.
func New(opts ...Option) *Session {
	s := &Session{
		id:           uuid.New().String(),
		lineHeightPx: DefaultLineHeightPx,
		bufferLines:  DefaultBufferLines,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.doc = document.New(s.initContent)
	s.cache = tokencache.New(s.doc.Lines())
	s.dirty.markAll()
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// ApplyEdit runs the edit pipeline: the entire new document text and
// caret range come in, the line differ bounds the changed region, and the
// token cache is spliced so that only lines inside that region are
// re-tokenized. Cost is proportional to the changed region, not the
// document.
func (s *Session) ApplyEdit(newText string, caretStart, caretEnd int) {
	oldLines := s.doc.Lines()
	s.doc.Replace(newText, caretStart, caretEnd)
	newLines := s.doc.Lines()

	cr, changed := document.DiffLines(oldLines, newLines)
	s.cache.Update(newLines, cr, changed)
	if !changed {
		return
	}

	if len(oldLines) != len(newLines) {
		// Lines below the change shifted; everything from the change
		// on needs repainting.
		s.dirty.markRange(cr.Start, len(newLines)-1)
		return
	}
	end := cr.EndNew
	if cr.EndOld > end {
		end = cr.EndOld
	}
	s.dirty.markRange(cr.Start, end)
}

// Scroll records a new scroll position.
func (s *Session) Scroll(topPx, leftPx int) {
	if topPx < 0 {
		topPx = 0
	}
	if leftPx < 0 {
		leftPx = 0
	}
	if topPx == s.metrics.ScrollTopPx && leftPx == s.metrics.ScrollLeftPx {
		return
	}
	s.metrics.ScrollTopPx = topPx
	s.metrics.ScrollLeftPx = leftPx
	s.dirty.markAll()
}

// Resize records a new viewport extent.
func (s *Session) Resize(widthPx, heightPx int) {
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	s.metrics.WidthPx = widthPx
	s.metrics.HeightPx = heightPx
	s.dirty.markAll()
}

// Configure updates the render geometry, typically after a config reload.
func (s *Session) Configure(lineHeightPx, bufferLines int) {
	if lineHeightPx > 0 {
		s.lineHeightPx = lineHeightPx
	}
	if bufferLines >= 0 {
		s.bufferLines = bufferLines
	}
	s.dirty.markAll()
}

// Viewport returns the current viewport metrics.
func (s *Session) Viewport() viewport.Metrics {
	return s.metrics
}

// Text returns the current document text.
func (s *Session) Text() string {
	return s.doc.Text()
}

// LineCount returns the current document line count.
func (s *Session) LineCount() int {
	return s.doc.LineCount()
}

// Caret returns the current caret range.
func (s *Session) Caret() document.Caret {
	return s.doc.Caret()
}

// Revision returns the current document revision.
func (s *Session) Revision() document.RevisionID {
	return s.doc.Revision()
}

// CacheStats reports token cache activity counters.
func (s *Session) CacheStats() tokencache.Stats {
	return s.cache.Stats()
}

// RenderFrame materializes the currently visible window. The visible
// range is clamped against the line count read now, not the one the
// scroll position was computed against, so stale scroll positions from
// out-of-order notifications degrade to a shorter frame instead of a
// failed read.
func (s *Session) RenderFrame() (Frame, error) {
	lines := s.doc.Lines()
	s.cache.Sync(lines)

	total := len(lines)
	plan := viewport.ComputePlan(s.metrics, total, s.lineHeightPx, s.bufferLines)
	if plan.LastLine > total-1 {
		plan.LastLine = total - 1
	}
	if plan.IsEmpty() {
		return Frame{Plan: plan}, nil
	}

	materialized := make([]token.Line, 0, plan.LineCount())
	for i := plan.FirstLine; i <= plan.LastLine; i++ {
		tl, err := s.cache.Get(i)
		if err != nil {
			return Frame{}, fmt.Errorf("materializing line %d: %w", i, err)
		}
		materialized = append(materialized, tl)
	}
	return Frame{Plan: plan, Lines: materialized}, nil
}

// Dirty returns the coalesced range of document lines changed since the
// last ClearDirty, clamped to the current line count. ok is false when
// nothing changed.
func (s *Session) Dirty() (first, last int, ok bool) {
	return s.dirty.rangeWithin(s.doc.LineCount())
}

// ClearDirty resets dirty bookkeeping, typically after a repaint.
func (s *Session) ClearDirty() {
	s.dirty.clear()
}
