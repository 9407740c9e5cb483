package rawparser

import "github.com/K-Mistele/jsonish-sub001/value"

// scanTopLevelChunks walks input looking for bracket-delimited spans
// ('{...}' or '[...]') that sit at nesting depth zero relative to each
// other, treating quoted spans as opaque via the same quote-counting rule
// the fixer uses (scanQuotedSpan) so `{ "desc": "contains { braces }" }` is
// recognized as one chunk, not split at the inner brace (§4.1.1 strategy 3
// shares quote-state logic with strategy 4 for exactly this reason).
func scanTopLevelChunks(runes []rune) []string {
	var chunks []string
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch r {
		case '"', '\'':
			_, end, _ := scanQuotedSpan(runes, i+1, r)
			i = end
		case '{', '[':
			end := scanBracketed(runes, i)
			if end > i {
				chunks = append(chunks, string(runes[i:end]))
				i = end
				continue
			}
			i++
		default:
			i++
		}
	}
	return chunks
}

// scanBracketed returns the index just past the bracket matching the
// opener at start, treating quoted spans as opaque. It returns start if no
// match is ever found (truncated input never closes the outermost
// bracket).
func scanBracketed(runes []rune, start int) int {
	open := runes[start]
	var close rune
	switch open {
	case '{':
		close = '}'
	case '[':
		close = ']'
	default:
		return start
	}

	depth := 0
	i := start
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == '"' || r == '\'':
			_, end, _ := scanQuotedSpan(runes, i+1, r)
			i = end
			continue
		case r == open:
			depth++
		case r == close:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return start
}

// multiObjectScan implements §4.1.1 strategy 3: pull every bracket-matched
// JSON-like chunk out of input, ignoring surrounding prose, and recover
// each chunk with the Fixing State Machine. A single chunk is returned
// directly (the common "here's your JSON: {...}, hope that helps!" case);
// more than one is wrapped in a Complete array, since that is what a
// caller asking for a list out of several adjacent objects wants.
func multiObjectScan(input string, depth int) (*value.Value, error) {
	runes := []rune(input)
	chunks := scanTopLevelChunks(runes)
	if len(chunks) == 0 {
		return nil, errNoMatch
	}

	values := make([]*value.Value, 0, len(chunks))
	for _, chunk := range chunks {
		if v, ok := parseChunkStrict(chunk); ok {
			values = append(values, v)
			continue
		}

		v, err := Fix(chunk, depth+1)
		if err != nil {
			var depthErr *DepthExceededError
			if asDepthExceeded(err, &depthErr) {
				return nil, err
			}
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, errNoMatch
	}
	if len(values) == 1 {
		return values[0], nil
	}
	return value.Array(values, value.Complete), nil
}

func asDepthExceeded(err error, target **DepthExceededError) bool {
	de, ok := err.(*DepthExceededError)
	if ok {
		*target = de
	}
	return ok
}
