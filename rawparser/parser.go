package rawparser

import "github.com/K-Mistele/jsonish-sub001/value"

// Parse runs the full strategy cascade from §4.1.1 over input: a strict
// JSON parse, then markdown fence extraction, then a multi-object scan,
// then the Fixing State Machine, and finally (if every structured strategy
// comes up empty) the whole input treated as one opaque string. The first
// strategy enabled in opts that produces a candidate wins; DepthExceeded is
// the only condition that aborts the cascade outright instead of falling
// through to the next strategy.
func Parse(input string, opts Options) (*value.Value, error) {
	return parseCascade(input, opts, 0)
}

func parseCascade(input string, opts Options, depth int) (*value.Value, error) {
	if depth > maxDepth {
		return nil, &DepthExceededError{Limit: maxDepth}
	}

	if v, ok := parseStrict(input); ok {
		return v, nil
	}

	if opts.AllowMarkdown {
		if v, err := extractMarkdown(input, depth); err == nil {
			return v, nil
		} else if isFatal(err) {
			return nil, err
		}
	}

	if opts.AllowMultiObject {
		if v, err := multiObjectScan(input, depth); err == nil {
			return v, nil
		} else if isFatal(err) {
			return nil, err
		}
	}

	if opts.AllowFixes {
		if v, err := Fix(input, depth); err == nil {
			return v, nil
		} else if isFatal(err) {
			return nil, err
		}
	}

	if opts.AllowAsString {
		if opts.IsDone {
			return value.String(input), nil
		}
		return value.IncompleteString(input), nil
	}

	return nil, errNoMatch
}

// isFatal reports whether err must abort the cascade rather than simply
// trying the next strategy: only a DepthExceededError qualifies (§4.1.4).
func isFatal(err error) bool {
	_, ok := err.(*DepthExceededError)
	return ok
}
