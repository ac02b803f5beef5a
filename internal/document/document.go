// Package document provides the authoritative text model for an editing
// session: the document as an ordered line sequence, and the line-level
// diff used to bound incremental re-tokenization.
//
// The document is replaced wholesale on every edit: the input-capture
// collaborator always supplies the entire new text plus a caret range,
// never a patch. The document carries no locking; it is exclusively owned
// by its editing session and mutated only between pipeline runs.
package document

import (
	"strings"
	"sync/atomic"
)

// RevisionID uniquely identifies a document revision.
// Each edit produces a new revision.
type RevisionID uint64

// revisionCounter is used to generate unique revision IDs.
var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}

// Caret is a selection range expressed as absolute byte offsets into the
// document text. Start == End for a plain caret.
type Caret struct {
	Start int
	End   int
}

// Document holds the full text, its line decomposition, and the caret.
type Document struct {
	text     string
	lines    []string
	caret    Caret
	revision RevisionID
}

// SplitLines splits text into newline-free lines. A trailing newline
// yields a trailing empty line, and the empty text is a single empty
// line, so every document has at least one line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// New creates a document from initial text with the caret at offset zero.
func New(text string) *Document {
	return &Document{
		text:     text,
		lines:    SplitLines(text),
		revision: NewRevisionID(),
	}
}

// Replace swaps in the entire new text and caret range, producing a new
// revision. Caret offsets are clamped into the new text and swapped if
// reversed, since scroll and input events can arrive out of order.
func (d *Document) Replace(text string, caretStart, caretEnd int) {
	if caretStart > caretEnd {
		caretStart, caretEnd = caretEnd, caretStart
	}
	caretStart = clamp(caretStart, 0, len(text))
	caretEnd = clamp(caretEnd, 0, len(text))

	d.text = text
	d.lines = SplitLines(text)
	d.caret = Caret{Start: caretStart, End: caretEnd}
	d.revision = NewRevisionID()
}

// Text returns the full document text.
func (d *Document) Text() string {
	return d.text
}

// Lines returns the document's line sequence. The slice is owned by the
// document; callers must not mutate it.
func (d *Document) Lines() []string {
	return d.lines
}

// LineCount returns the number of lines. Always at least 1.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the text of one line and whether the index is in range.
func (d *Document) Line(i int) (string, bool) {
	if i < 0 || i >= len(d.lines) {
		return "", false
	}
	return d.lines[i], true
}

// Caret returns the current caret range.
func (d *Document) Caret() Caret {
	return d.caret
}

// Revision returns the current revision ID.
func (d *Document) Revision() RevisionID {
	return d.revision
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
