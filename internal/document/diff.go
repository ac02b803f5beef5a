package document

// ChangeRange identifies the minimal contiguous block of line indices that
// differs between two line sequences. Indices are inclusive: Start..EndOld
// in the old sequence, Start..EndNew in the new one. Lines outside those
// ranges are guaranteed identical between the sequences. A pure insertion
// or deletion is expressed with EndOld or EndNew equal to Start-1.
type ChangeRange struct {
	Start  int
	EndOld int
	EndNew int
}

// OldLen returns the number of old lines covered by the range.
func (cr ChangeRange) OldLen() int {
	return cr.EndOld - cr.Start + 1
}

// NewLen returns the number of new lines covered by the range.
func (cr ChangeRange) NewLen() int {
	return cr.EndNew - cr.Start + 1
}

// DiffLines compares two line sequences and returns the minimal changed
// sub-range. The second result is false when the sequences are identical.
//
// This is a common-prefix/common-suffix diff, not a line-level LCS: it
// finds the single unmatched interior block and does not recognize moved
// or reordered lines as unchanged. That is the right trade-off for the
// dominant case of localized edits (character insert or delete, line
// split or join); a whole-document reordering comes back as one large
// change, which is accepted.
func DiffLines(oldLines, newLines []string) (ChangeRange, bool) {
	n, m := len(oldLines), len(newLines)

	shorter := n
	if m < shorter {
		shorter = m
	}

	start := 0
	for start < shorter && oldLines[start] == newLines[start] {
		start++
	}
	if start == n && start == m {
		return ChangeRange{}, false
	}

	endOld, endNew := n-1, m-1
	for endOld >= start && endNew >= start && oldLines[endOld] == newLines[endNew] {
		endOld--
		endNew--
	}

	return ChangeRange{Start: start, EndOld: endOld, EndNew: endNew}, true
}
