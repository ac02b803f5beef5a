package token

import "strings"

// punctuation is the set of single-character punctuation marks.
const punctuation = "{}[]:,"

// Tokenize scans a single line (no embedded newline) into an ordered token
// sequence. It is total: any input produces some sequence, with unrecognized
// bytes collected into plain tokens rather than errors. Concatenating the
// token texts in order reproduces the input exactly.
func Tokenize(line string) Line {
	if line == "" {
		return nil
	}

	var toks Line
	plainStart := -1

	flushPlain := func(end int) {
		if plainStart >= 0 {
			toks = append(toks, Token{Kind: KindPlain, Text: line[plainStart:end]})
			plainStart = -1
		}
	}

	i := 0
	for i < len(line) {
		if end, ok := scanString(line, i); ok {
			flushPlain(i)
			toks = append(toks, Token{Kind: KindString, Text: line[i:end]})
			i = end
			continue
		}
		if end, ok := scanNumber(line, i); ok {
			flushPlain(i)
			toks = append(toks, Token{Kind: KindNumber, Text: line[i:end]})
			i = end
			continue
		}
		if end, kind, ok := scanWord(line, i); ok {
			flushPlain(i)
			toks = append(toks, Token{Kind: kind, Text: line[i:end]})
			i = end
			continue
		}
		if strings.IndexByte(punctuation, line[i]) >= 0 {
			flushPlain(i)
			toks = append(toks, Token{Kind: KindPunct, Text: line[i : i+1]})
			i++
			continue
		}
		if plainStart < 0 {
			plainStart = i
		}
		i++
	}
	flushPlain(len(line))

	classifyKeys(toks)
	return toks
}

// scanString matches a terminated quoted string starting at i: an opening
// quote, then escaped characters or non-quote non-backslash bytes, then a
// closing quote. An unterminated quote does not match; the quote and the
// rest of the line fall through as plain text, since strings never span
// lines.
func scanString(line string, i int) (end int, ok bool) {
	if line[i] != '"' {
		return 0, false
	}
	j := i + 1
	for j < len(line) {
		switch line[j] {
		case '\\':
			if j+1 >= len(line) {
				return 0, false
			}
			j += 2
		case '"':
			return j + 1, true
		default:
			j++
		}
	}
	return 0, false
}

// scanNumber matches a numeric literal starting at i: optional minus,
// digits, optional fractional part, optional exponent. Word boundaries are
// required on both sides so that digits embedded in identifiers stay plain.
func scanNumber(line string, i int) (end int, ok bool) {
	j := i
	if line[j] == '-' {
		j++
	} else if i > 0 && isWordByte(line[i-1]) {
		return 0, false
	}
	digits := j
	for j < len(line) && isDigit(line[j]) {
		j++
	}
	if j == digits {
		return 0, false
	}
	if j+1 < len(line) && line[j] == '.' && isDigit(line[j+1]) {
		j++
		for j < len(line) && isDigit(line[j]) {
			j++
		}
	}
	if j < len(line) && (line[j] == 'e' || line[j] == 'E') {
		k := j + 1
		if k < len(line) && (line[k] == '+' || line[k] == '-') {
			k++
		}
		if k < len(line) && isDigit(line[k]) {
			j = k
			for j < len(line) && isDigit(line[j]) {
				j++
			}
		}
	}
	if j < len(line) && isWordByte(line[j]) {
		return 0, false
	}
	return j, true
}

// scanWord matches the literal words true, false and null as whole words.
func scanWord(line string, i int) (end int, kind Kind, ok bool) {
	if i > 0 && isWordByte(line[i-1]) {
		return 0, 0, false
	}
	for _, w := range [...]struct {
		text string
		kind Kind
	}{
		{"true", KindBoolean},
		{"false", KindBoolean},
		{"null", KindNull},
	} {
		if !strings.HasPrefix(line[i:], w.text) {
			continue
		}
		end = i + len(w.text)
		if end < len(line) && isWordByte(line[end]) {
			continue
		}
		return end, w.kind, true
	}
	return 0, 0, false
}

// classifyKeys re-classifies a string token as a key when the next
// non-whitespace token on the same line is a colon. This is a look-ahead
// heuristic, not a parser: a string at end of line whose colon sits on the
// next line is never reclassified.
func classifyKeys(toks Line) {
	for i := range toks {
		if toks[i].Kind != KindString {
			continue
		}
		for j := i + 1; j < len(toks); j++ {
			if toks[j].Kind == KindPlain && strings.TrimSpace(toks[j].Text) == "" {
				continue
			}
			if toks[j].Kind == KindPunct && toks[j].Text == ":" {
				toks[i].Kind = KindKey
			}
			break
		}
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isWordByte reports whether b continues a word for boundary detection.
func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || isDigit(b) || b == '_'
}
