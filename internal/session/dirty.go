package session

// dirtyLines tracks the coalesced range of document lines that changed
// since the last repaint, so an external renderer can limit redraws
// between frames. Scroll and resize invalidate everything, mirroring how
// a pixel-positioned surface has no stable rows to reuse after movement.
type dirtyLines struct {
	first int
	last  int
	has   bool
	all   bool
}

func (d *dirtyLines) markAll() {
	d.all = true
	d.has = true
}

func (d *dirtyLines) markRange(first, last int) {
	if last < first {
		first, last = last, first
	}
	if first < 0 {
		first = 0
	}
	if d.all {
		return
	}
	if !d.has {
		d.first, d.last = first, last
		d.has = true
		return
	}
	if first < d.first {
		d.first = first
	}
	if last > d.last {
		d.last = last
	}
}

func (d *dirtyLines) clear() {
	*d = dirtyLines{}
}

// rangeWithin reports the dirty range clamped to a document of total
// lines. ok is false when nothing is dirty or the range fell entirely
// outside the document.
func (d *dirtyLines) rangeWithin(total int) (first, last int, ok bool) {
	if !d.has || total <= 0 {
		return 0, 0, false
	}
	if d.all {
		return 0, total - 1, true
	}
	first, last = d.first, d.last
	if last > total-1 {
		last = total - 1
	}
	if first > last {
		return 0, 0, false
	}
	return first, last, true
}
