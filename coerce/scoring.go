package coerce

import (
	"github.com/K-Mistele/jsonish-sub001/schema"
	"github.com/K-Mistele/jsonish-sub001/value"
)

// coerceAnyOf implements §4.4's selection over the raw parser's ambiguous
// candidates. Note a string-typed target never reaches here: dispatch's
// string short-circuit intercepts AnyOf before dispatchKind is consulted,
// per §4.2.1 rule 1.
func coerceAnyOf(ctx *Context, v *value.Value, node schema.Node) (Result, error) {
	var results []Result
	for _, cand := range v.Candidates {
		r, err := dispatch(ctx, cand, node, false)
		if err != nil {
			continue
		}
		results = append(results, r)
	}
	if len(results) == 0 {
		return failResult("no candidate matched"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: node.Kind().String()}
	}
	return selectBestPreferring(results, true), nil
}

// selectBest picks the winning Result among several candidates that all
// coerced successfully against the same schema node (used by the union
// coercer's try-cast and full-coerce phases).
func selectBest(results []Result) Result {
	return selectBestPreferring(results, true)
}

// selectBestPreferring applies §4.4's ordering: ascending composite score,
// then the named tie-breakers. preferParsedJSON controls tie-breaker (c)'s
// direction — true for non-string targets, false for string targets (the
// latter never actually reaches this function today, but the parameter
// keeps the rule correctly stated for callers that may one day need it).
func selectBestPreferring(results []Result, preferParsedJSON bool) Result {
	best := results[0]
	for _, r := range results[1:] {
		if better(r, best, preferParsedJSON) {
			best = r
		}
	}
	return best
}

// better reports whether a should replace b as the current best, applying
// the score comparison and then, in order, tie-breakers (a)-(d) from §4.4.
func better(a, b Result, preferParsedJSON bool) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}

	// (a) a real array competitor beats one produced via SingleToArray.
	aArr, bArr := a.Flags.Has(SingleToArray), b.Flags.Has(SingleToArray)
	if aArr != bArr {
		return bArr
	}

	// (b) a composite result beats an ImpliedKey-derived bare primitive.
	aImplied := !a.IsComposite && a.Flags.Has(ImpliedKey)
	bImplied := !b.IsComposite && b.Flags.Has(ImpliedKey)
	if aImplied != bImplied {
		return bImplied
	}

	// (c) parsed-JSON origin beats a Markdown-extracted plain string for a
	// non-string target; the preference reverses for a string target.
	if a.FromParsedJSON != b.FromParsedJSON {
		if preferParsedJSON {
			return a.FromParsedJSON
		}
		return !a.FromParsedJSON
	}

	// (d) earlier declaration/candidate order wins ties; since callers only
	// replace best on a strict improvement, returning false here preserves
	// whichever of the two was seen first.
	return false
}
