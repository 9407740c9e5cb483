package coerce

import "errors"

// Sentinel errors per §7's taxonomy. Individual union-option and
// object-field failures never escape as errors of their own (they fold
// into a NoMatch-flagged Result, per the propagation policy); these are
// surfaced only at a boundary that has exhausted every branch.
var (
	// ErrDepthExceeded is fatal: the raw parser's nesting cap (depth 100)
	// was reached. jsonish.Parse reports a rawparser.DepthExceededError
	// under this sentinel.
	ErrDepthExceeded = errors.New("coerce: recursion depth exceeded")

	// ErrNoUnionMatch means no option of a union coerced successfully in
	// either the try-cast or coerce phase.
	ErrNoUnionMatch = errors.New("coerce: no union option matched")

	// ErrRequiredFieldMissing means a required field was absent and no
	// implied-key or single-value rescue applied.
	ErrRequiredFieldMissing = errors.New("coerce: required field missing")

	// ErrAmbiguousBoolean means a prose value contained both "true" and
	// "false" as whole words.
	ErrAmbiguousBoolean = errors.New("coerce: ambiguous boolean")

	// ErrAmbiguousLiteral means a string value matched two or more
	// different enum values equally well at a layer above the whole-word
	// substring layer. Literal and enum values that are not strings are
	// compared exactly and never report it.
	ErrAmbiguousLiteral = errors.New("coerce: ambiguous literal match")

	// ErrRecursionDetected means the same (schema, value) frame was
	// re-entered during union or alias resolution, or that the stack of
	// such frames already held maxUnionDepth (25) entries. Either way only
	// the current branch fails.
	ErrRecursionDetected = errors.New("coerce: recursion detected")

	// ErrInvalidNumber means an integer target received a non-finite or
	// non-integral value with no FloatToInt allowance.
	ErrInvalidNumber = errors.New("coerce: invalid number")

	// ErrCoercionFailed is the generic catch-all for a schema kind that
	// cannot accept the given Value shape at all.
	ErrCoercionFailed = errors.New("coerce: value cannot satisfy schema")
)

// Error wraps one of the sentinels above with the schema kind and a
// human-readable description of the Value shape that failed to satisfy
// it, matching §7's "user-visible failure" requirement. Partial is the
// highest-scoring partial result considered before failure, attached for
// diagnostics; it may be nil.
type Error struct {
	Sentinel   error
	SchemaKind string
	ValueShape string
	Partial    any
}

func (e *Error) Error() string {
	if e.ValueShape == "" {
		return e.Sentinel.Error() + ": " + e.SchemaKind
	}
	return e.Sentinel.Error() + ": " + e.SchemaKind + " cannot accept " + e.ValueShape
}

func (e *Error) Unwrap() error { return e.Sentinel }
