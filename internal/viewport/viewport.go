// Package viewport computes which document lines intersect the visible
// pixel window, so only a bounded slice of the document is ever
// materialized for display.
//
// All inputs are raw pixel metrics supplied by the scroll/resize
// collaborator; nothing flows back to it except the computed plan.
package viewport

// Metrics captures the transient pixel geometry of the display surface.
// It is mutated by scroll and resize events only and carries no identity
// across recomputation.
type Metrics struct {
	ScrollTopPx  int
	ScrollLeftPx int
	HeightPx     int
	WidthPx      int
}

// Plan describes the window of lines an external renderer must
// materialize: the inclusive line range, the pixel translation that lands
// line FirstLine at its true document position, and the total scrollable
// height. Plans are derived on demand and never persisted.
type Plan struct {
	FirstLine        int
	LastLine         int
	OffsetYPx        int
	TotalDocHeightPx int
}

// IsEmpty reports whether the plan covers no lines.
func (p Plan) IsEmpty() bool {
	return p.LastLine < p.FirstLine
}

// LineCount returns the number of lines covered by the plan.
func (p Plan) LineCount() int {
	if p.IsEmpty() {
		return 0
	}
	return p.LastLine - p.FirstLine + 1
}

// VisibleRange computes the inclusive range of line indices that covers
// the geometrically visible lines plus bufferLines of overscan on each
// side. The range degenerates to empty (first > last) only when
// totalLines is zero. Defensive clamping of the pixel inputs mirrors the
// layout the metrics describe: negative scroll reads as zero, and a
// non-positive line height reads as one pixel to keep the division
// meaningful.
func VisibleRange(scrollTopPx, viewportHeightPx, totalLines, lineHeightPx, bufferLines int) (first, last int) {
	if totalLines <= 0 {
		return 0, -1
	}
	if lineHeightPx < 1 {
		lineHeightPx = 1
	}
	if scrollTopPx < 0 {
		scrollTopPx = 0
	}
	if viewportHeightPx < 0 {
		viewportHeightPx = 0
	}
	if bufferLines < 0 {
		bufferLines = 0
	}

	first = scrollTopPx/lineHeightPx - bufferLines
	if first < 0 {
		first = 0
	}

	visible := ceilDiv(viewportHeightPx, lineHeightPx) + 2*bufferLines

	last = first + visible - 1
	if last > totalLines-1 {
		last = totalLines - 1
	}
	return first, last
}

// ComputePlan derives the render plan for the given metrics and document
// length. The caller still clamps LastLine against the line count it
// reads at materialization time, since scroll and document updates can
// arrive out of order.
func ComputePlan(m Metrics, totalLines, lineHeightPx, bufferLines int) Plan {
	if lineHeightPx < 1 {
		lineHeightPx = 1
	}
	first, last := VisibleRange(m.ScrollTopPx, m.HeightPx, totalLines, lineHeightPx, bufferLines)
	return Plan{
		FirstLine:        first,
		LastLine:         last,
		OffsetYPx:        first * lineHeightPx,
		TotalDocHeightPx: totalLines * lineHeightPx,
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
