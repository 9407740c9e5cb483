package coerce

import (
	"github.com/K-Mistele/jsonish-sub001/schema"
	"github.com/K-Mistele/jsonish-sub001/value"
)

// coerceArray implements §4.2.3.
func coerceArray(ctx *Context, v *value.Value, node schema.Node) (Result, error) {
	elem := node.Element()

	if v.Kind != value.KindArray {
		inner, err := dispatch(ctx, v, elem, false)
		if err != nil {
			return failResult("scalar element did not fit array's element schema"), err
		}
		flags := NewFlagSet(SingleToArray)
		flags.Merge(inner.Flags)
		return compositeResult([]any{inner.Value}, flags, []int{inner.Score}, inner.FromParsedJSON), nil
	}

	incomplete := v.Completion == value.Incomplete
	elemOptional := elem.Kind() == schema.KindOptional

	var items []any
	var childScores []int
	fromParsedJSON := true
	hardFail := false

	for _, item := range v.Items {
		r, err := dispatch(ctx, item, elem, false)
		if err != nil {
			if incomplete {
				if elemOptional {
					continue
				}
				break
			}
			if elemOptional {
				continue
			}
			hardFail = true
			break
		}
		items = append(items, r.Value)
		childScores = append(childScores, r.Score)
		if !r.FromParsedJSON {
			fromParsedJSON = false
		}
	}

	if hardFail {
		return failResult("array element failed to coerce"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "array"}
	}

	flags := NewFlagSet()
	if incomplete {
		flags.Add(Incomplete)
	}
	return compositeResult(items, flags, childScores, fromParsedJSON), nil
}
