package coerce

import i18n "github.com/kaptinlin/go-i18n"

// Report is the diagnostic counterpart to Result/error, adapted from the
// teacher's EvaluationResult: a caller that wants more than a bare Go
// value back — logging, an API response, a localized message for an
// end user — builds one from whatever Coerce returned.
type Report struct {
	Valid   bool
	Score   int
	Flags   []Flag
	Code    string
	Message string
	Params  map[string]any
}

// NewReport summarizes a successful Coerce call.
func NewReport(r Result) *Report {
	return &Report{Valid: true, Score: r.Score, Flags: r.Flags.List()}
}

// NewFailureReport summarizes the *Error Coerce returns once every
// avenue is exhausted. A non-*Error (should not happen in practice, but
// callers outside this package may wrap errors) still produces a usable,
// if uncoded, Report.
func NewFailureReport(err error) *Report {
	if err == nil {
		return &Report{Valid: true}
	}
	ce, ok := err.(*Error)
	if !ok {
		return &Report{Valid: false, Message: err.Error()}
	}
	return &Report{
		Valid:   false,
		Code:    sentinelCode(ce.Sentinel),
		Message: ce.Error(),
		Params: map[string]any{
			"schemaKind": ce.SchemaKind,
			"valueShape": ce.ValueShape,
		},
	}
}

func sentinelCode(err error) string {
	switch err {
	case ErrDepthExceeded:
		return "jsonish.depth_exceeded"
	case ErrNoUnionMatch:
		return "jsonish.no_union_match"
	case ErrRequiredFieldMissing:
		return "jsonish.required_field_missing"
	case ErrAmbiguousBoolean:
		return "jsonish.ambiguous_boolean"
	case ErrAmbiguousLiteral:
		return "jsonish.ambiguous_literal"
	case ErrRecursionDetected:
		return "jsonish.recursion_detected"
	case ErrInvalidNumber:
		return "jsonish.invalid_number"
	case ErrCoercionFailed:
		return "jsonish.coercion_failed"
	default:
		return "jsonish.unknown"
	}
}

// Localize renders the report's message through localizer when the report
// carries a message code; a valid report or one without a code returns
// its plain Message unchanged.
func (r *Report) Localize(localizer *i18n.Localizer) string {
	if r.Valid || localizer == nil || r.Code == "" {
		return r.Message
	}
	return localizer.Get(r.Code, i18n.Vars(r.Params))
}
