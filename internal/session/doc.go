// Package session provides the editing core of a text-display component:
// a mutable document held as an ordered line sequence, incremental
// re-tokenization of only the lines an edit changed, and virtualization
// of the visible window so that display cost stays bounded as the
// document grows.
//
// # Pipeline
//
// An edit notification carries the entire new document text plus a caret
// range. The session diffs the previous line sequence against the new
// one, re-tokenizes exactly the changed sub-range, and splices the
// results into the token cache:
//
//	s := session.New(session.WithContent(initial))
//	s.Resize(800, 600)
//	s.ApplyEdit(newText, caretStart, caretEnd)
//
//	frame, err := s.RenderFrame()
//	// frame.Plan tells the renderer where the window sits;
//	// frame.Lines holds one token sequence per visible line.
//
// Scroll and resize notifications only move the viewport; they never
// touch the document or the token cache.
//
// # Concurrency
//
// The session is single-threaded, event-driven and cooperative: each
// notification runs its pipeline to completion before the next is
// processed. There is no background tokenization, no cancellation and no
// timeout; per-event latency is bounded by the size of the changed
// region, with a whole-document edit (reformatting) as the accepted
// worst case.
package session
