// Package tokencache stores one tokenized-line result per document line
// and keeps it current by splicing freshly tokenized lines over the
// changed range reported by the line differ.
//
// The cache is exclusively owned by its editing session: the update
// pipeline is the only mutator, and readers never modify entries. The
// session is single-threaded and cooperative, so the cache carries no
// locking; only the diagnostic counters use atomics so they can be read
// from outside the pipeline.
package tokencache

import (
	"errors"
	"sync/atomic"

	"github.com/codepane/codepane/internal/document"
	"github.com/codepane/codepane/internal/token"
)

// ErrLineOutOfRange indicates a read of a line index outside the cache.
// Callers must clamp viewport-derived indices before reading.
var ErrLineOutOfRange = errors.New("line index out of range")

// Cache holds the tokenized form of every document line.
type Cache struct {
	lines []token.Line

	// Diagnostic counters.
	updates  atomic.Uint64
	rebuilds atomic.Uint64
}

// New creates a cache by tokenizing every line of the initial document.
func New(lines []string) *Cache {
	c := &Cache{}
	c.lines = tokenizeAll(lines)
	return c
}

// Len returns the number of cached lines.
func (c *Cache) Len() int {
	return len(c.lines)
}

// Get returns the tokenized form of one line. It fails with
// ErrLineOutOfRange for a negative index or one past the end.
func (c *Cache) Get(i int) (token.Line, error) {
	if i < 0 || i >= len(c.lines) {
		return nil, ErrLineOutOfRange
	}
	return c.lines[i], nil
}

// Update splices freshly tokenized entries for newLines[Start..EndNew]
// over the cached range [Start..EndOld], growing or shrinking the cache
// to track the new line count. A changed=false result from the differ is
// a no-op. The only cost proportional to the document is the splice copy;
// tokenization work is bounded by the changed range.
//
// A malformed range or a post-splice length mismatch is a programming
// error on the caller's side; the cache recovers by rebuilding wholesale
// rather than diverging from the document.
func (c *Cache) Update(newLines []string, cr document.ChangeRange, changed bool) {
	if !changed {
		if len(c.lines) != len(newLines) {
			c.rebuild(newLines)
		}
		return
	}
	c.updates.Add(1)

	if cr.Start < 0 || cr.Start > len(c.lines) ||
		cr.EndOld >= len(c.lines) || cr.EndOld < cr.Start-1 ||
		cr.EndNew >= len(newLines) || cr.EndNew < cr.Start-1 {
		c.rebuild(newLines)
		return
	}

	fresh := tokenizeAll(newLines[cr.Start : cr.EndNew+1])

	spliced := make([]token.Line, 0, len(newLines))
	spliced = append(spliced, c.lines[:cr.Start]...)
	spliced = append(spliced, fresh...)
	spliced = append(spliced, c.lines[cr.EndOld+1:]...)
	c.lines = spliced

	if len(c.lines) != len(newLines) {
		c.rebuild(newLines)
	}
}

// Sync verifies the length invariant against the current document lines
// and rebuilds wholesale on a mismatch. Called at read boundaries so a
// skipped update degrades to a full re-tokenization instead of serving
// stale entries.
func (c *Cache) Sync(lines []string) {
	if len(c.lines) != len(lines) {
		c.rebuild(lines)
	}
}

// Rebuild discards the cache and re-tokenizes every line.
func (c *Cache) Rebuild(lines []string) {
	c.rebuild(lines)
}

func (c *Cache) rebuild(lines []string) {
	c.rebuilds.Add(1)
	c.lines = tokenizeAll(lines)
}

// Stats reports cache activity counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Len:      len(c.lines),
		Updates:  c.updates.Load(),
		Rebuilds: c.rebuilds.Load(),
	}
}

// Stats holds cache activity counters. Rebuilds should stay at zero in a
// correctly ordered pipeline; a growing count points at a caller skipping
// updates.
type Stats struct {
	Len      int
	Updates  uint64
	Rebuilds uint64
}

func tokenizeAll(lines []string) []token.Line {
	out := make([]token.Line, len(lines))
	for i, l := range lines {
		out[i] = token.Tokenize(l)
	}
	return out
}
