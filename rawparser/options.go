// Package rawparser implements the schema-agnostic half of the engine: it
// turns an arbitrary input string into one or more candidate value.Value
// trees, degrading from a strict JSON parse down through markdown
// extraction, multi-object scanning and a character-by-character error
// recovery pass, and finally to treating the whole input as a string.
package rawparser

// Options controls which strategies in the cascade (§4.1.1) are enabled.
type Options struct {
	// AllowMarkdown enables fenced-code-block extraction.
	AllowMarkdown bool
	// AllowMultiObject enables the bracket-depth multi-object scan.
	AllowMultiObject bool
	// AllowFixes enables the Fixing State Machine.
	AllowFixes bool
	// AllowAsString enables the final raw-string fallback.
	AllowAsString bool
	// IsDone marks whether the input is known-complete (true) or a
	// still-streaming prefix (false). Incomplete containers and strings
	// are flagged Incomplete either way; IsDone only changes whether the
	// unstructured string fallback itself is reported Complete.
	IsDone bool
}

// DefaultOptions returns the cascade defaults from §4.1.3: every strategy
// enabled, input treated as complete.
func DefaultOptions() Options {
	return Options{
		AllowMarkdown:    true,
		AllowMultiObject: true,
		AllowFixes:       true,
		AllowAsString:    true,
		IsDone:           true,
	}
}

// maxDepth bounds recursive-structure nesting across every strategy. It is
// the one condition under which the raw parser reports a fatal error
// instead of degrading to a best-effort Value.
const maxDepth = 100

// DepthExceededError is returned when a strategy would need to recurse past
// maxDepth. It is the raw parser's only failure mode; everything else
// degrades to a Value instead of erroring.
type DepthExceededError struct {
	Limit int
}

func (e *DepthExceededError) Error() string {
	return "rawparser: recursion depth exceeded"
}
