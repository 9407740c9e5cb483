package rawparser

import "unicode"

// scanQuotedSpan implements the quote-counting rule from §4.1.2: starting
// just past an opening quote character (quote) at position start in runes,
// it returns the index of the character immediately after the matching
// close, the resolved (escape-decoded) content in between, and whether a
// close was actually found before the input ran out.
//
// The critical rule, shared verbatim by the Fixing State Machine and the
// Multi-Object Scan's bracket-depth tracker so the two never disagree about
// where a string ends: an unescaped occurrence of quote only closes the
// string if the number of unescaped quote characters already folded into
// the content buffer is even AND the next non-space rune after it is a
// structural delimiter (',', '}', ']', ':') or end of input. This is what
// lets `"and then i said "hi", and also "bye""` parse as one string
// instead of terminating at the first inner quote.
func scanQuotedSpan(runes []rune, start int, quote rune) (content string, end int, closed bool) {
	var buf []rune
	unescapedCount := 0
	i := start

	for i < len(runes) {
		r := runes[i]

		if r == '\\' && i+1 < len(runes) {
			next := runes[i+1]
			buf = append(buf, decodeEscape(next))
			i += 2
			continue
		}

		if r == quote {
			if unescapedCount%2 == 0 && nextIsStructural(runes, i+1) {
				return string(buf), i + 1, true
			}
			buf = append(buf, r)
			unescapedCount++
			i++
			continue
		}

		buf = append(buf, r)
		i++
	}

	return string(buf), i, false
}

// nextIsStructural reports whether the next non-space rune at or after pos
// is a structural delimiter, or whether pos runs off the end of input
// (end-of-input counts as structural per §4.1.2).
func nextIsStructural(runes []rune, pos int) bool {
	for pos < len(runes) && unicode.IsSpace(runes[pos]) {
		pos++
	}
	if pos >= len(runes) {
		return true
	}
	switch runes[pos] {
	case ',', '}', ']', ':':
		return true
	default:
		return false
	}
}

// decodeEscape resolves a single-character JSON-style escape. Unrecognized
// escapes pass the escaped character through literally rather than
// erroring, since the fixer is meant to tolerate LLM output that escapes
// characters JSON doesn't require escaped (e.g. "\'").
func decodeEscape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	default:
		return r
	}
}
