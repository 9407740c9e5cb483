package coerce

import (
	"github.com/K-Mistele/jsonish-sub001/schema"
	"github.com/K-Mistele/jsonish-sub001/value"
)

// coerceUnion implements §4.2.5's two-phase resolution: a discriminator
// short-circuit when the schema declares one, then a zero-penalty try-cast
// pass over every option, falling back to full coercion of every option
// and picking the best-scoring survivor.
func coerceUnion(ctx *Context, v *value.Value, node schema.Node) (Result, error) {
	leave, ok := ctx.Enter(node.Identity(), v)
	if !ok {
		return failResult("recursive union"), &Error{Sentinel: ErrRecursionDetected, SchemaKind: "union"}
	}
	defer leave()

	options := node.Options()
	if len(options) == 0 {
		return failResult("union has no options"), &Error{Sentinel: ErrNoUnionMatch, SchemaKind: "union"}
	}

	if disc := node.DiscriminatorSpec(); disc != nil {
		if r, ok := tryDiscriminator(ctx, v, options, disc); ok {
			return r, nil
		}
	}

	var tryCast []Result
	for _, opt := range options {
		if !exactTypeMatch(v, opt) {
			continue
		}
		r, err := dispatch(ctx, v, opt, false)
		if err == nil && r.Score == 0 {
			tryCast = append(tryCast, r)
		}
	}
	if len(tryCast) > 0 {
		best := selectBest(tryCast)
		best.Flags.Add(UnionMatch)
		return best, nil
	}

	var results []Result
	for _, opt := range options {
		r, err := dispatch(ctx, v, opt, false)
		if err != nil {
			continue
		}
		results = append(results, r)
	}
	if len(results) == 0 {
		return failResult("no union option matched"), &Error{Sentinel: ErrNoUnionMatch, SchemaKind: "union"}
	}

	best := selectBest(results)
	best.Flags.Add(UnionMatch)
	return best, nil
}

// tryDiscriminator consults disc.Mapping, when present, against the
// named property's string value to jump straight to a single option
// instead of running the full cascade.
func tryDiscriminator(ctx *Context, v *value.Value, options []schema.Node, disc *schema.Discriminator) (Result, bool) {
	if disc.Mapping == nil {
		return Result{}, false
	}
	inner, _, _, _ := value.Unwrap(v)
	if inner.Kind != value.KindObject {
		return Result{}, false
	}
	var tag string
	found := false
	for _, m := range inner.Members {
		if m.Key == disc.PropertyName {
			tagVal, _, _, _ := value.Unwrap(m.Value)
			if tagVal.Kind == value.KindString {
				tag, found = tagVal.Str, true
			}
			break
		}
	}
	if !found {
		return Result{}, false
	}
	idx, ok := disc.Mapping[tag]
	if !ok || idx < 0 || idx >= len(options) {
		return Result{}, false
	}
	r, err := dispatch(ctx, v, options[idx], false)
	if err != nil {
		return Result{}, false
	}
	r.Flags.Add(UnionMatch)
	return r, true
}

// exactTypeMatch reports whether v's native kind already matches opt's
// shape without any coercion, the qualifying condition for the try-cast
// phase (§4.2.5 phase 1).
func exactTypeMatch(v *value.Value, opt schema.Node) bool {
	inner, _, _, _ := value.Unwrap(v)
	switch opt.Kind() {
	case schema.KindString:
		return inner.Kind == value.KindString
	case schema.KindNumber, schema.KindInteger:
		return inner.Kind == value.KindNumber
	case schema.KindBoolean:
		return inner.Kind == value.KindBoolean
	case schema.KindNull:
		return inner.Kind == value.KindNull
	case schema.KindArray:
		return inner.Kind == value.KindArray
	case schema.KindObject, schema.KindMap:
		return inner.Kind == value.KindObject
	case schema.KindOptional, schema.KindNullable, schema.KindAlias:
		return exactTypeMatch(v, opt.Inner())
	default:
		return false
	}
}
