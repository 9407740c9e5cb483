package coerce

import (
	"github.com/K-Mistele/jsonish-sub001/schema"
	"github.com/K-Mistele/jsonish-sub001/value"
)

// coerceOptional implements §4.2.7's Optional wrapper: a Null value or a
// failed inner coercion both resolve to "no value" rather than an error,
// since an optional field's absence is not itself a failure.
func coerceOptional(ctx *Context, v *value.Value, node schema.Node) (Result, error) {
	inner, _, _, _ := value.Unwrap(v)
	if inner.Kind == value.KindNull {
		return leafResult(nil, NewFlagSet(OptionalDefaultFromNoValue)), nil
	}
	r, err := dispatch(ctx, v, node.Inner(), false)
	if err != nil {
		return leafResult(nil, NewFlagSet(OptionalDefaultFromNoValue)), nil
	}
	return r, nil
}

// coerceNullable implements §4.2.7's Nullable wrapper: Null maps straight
// to null; a bare "None"/"null" string is only treated as null when the
// caller opted into that relaxed behavior via ctx.AllowNoneAsNull (§9
// Open Question 2, default false).
func coerceNullable(ctx *Context, v *value.Value, node schema.Node) (Result, error) {
	inner, _, _, _ := value.Unwrap(v)
	if inner.Kind == value.KindNull {
		return leafResult(nil, NewFlagSet(ExactMatch)), nil
	}
	if ctx.AllowNoneAsNull && inner.Kind == value.KindString {
		switch inner.Str {
		case "None", "null", "Null", "NULL", "none":
			return leafResult(nil, NewFlagSet(StringToBool)), nil
		}
	}
	r, err := dispatch(ctx, v, node.Inner(), false)
	if err != nil {
		return leafResult(nil, NewFlagSet(OptionalDefaultFromNoValue)), nil
	}
	return r, nil
}

// coerceAlias implements §4.2.7's recursive-schema support: resolving the
// lazily-bound Inner node under the same recursion guard the union
// coercer uses, so a self-referential type fails cleanly past the depth
// cap instead of looping.
func coerceAlias(ctx *Context, v *value.Value, node schema.Node) (Result, error) {
	leave, ok := ctx.Enter(node.Identity(), v)
	if !ok {
		return failResult("recursive alias"), &Error{Sentinel: ErrRecursionDetected, SchemaKind: "alias"}
	}
	defer leave()
	return dispatch(ctx, v, node.Inner(), false)
}
