package coerce

import (
	"strings"
	"unicode"

	"github.com/K-Mistele/jsonish-sub001/schema"
	"github.com/K-Mistele/jsonish-sub001/value"
)

// consolidateDuplicates implements §4.2.4 step 2: entries that share a key
// after case-insensitive, trim-insensitive normalization are folded into a
// single Array Value, so a malformed repeat of a key is absorbed as a list
// rather than silently keeping only the last occurrence.
func consolidateDuplicates(members []value.Member) []value.Member {
	order := make([]string, 0, len(members))
	groups := make(map[string][]value.Member)
	original := make(map[string]string)

	for _, m := range members {
		norm := normalizeKey(m.Key)
		if _, seen := groups[norm]; !seen {
			order = append(order, norm)
			original[norm] = m.Key
		}
		groups[norm] = append(groups[norm], m)
	}

	out := make([]value.Member, 0, len(order))
	for _, norm := range order {
		group := groups[norm]
		if len(group) == 1 {
			out = append(out, group[0])
			continue
		}
		items := make([]*value.Value, len(group))
		for i, m := range group {
			items[i] = m.Value
		}
		out = append(out, value.Member{Key: original[norm], Value: value.Array(items, value.Complete)})
	}
	return out
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// caseConventionKey strips separators used by snake_case/kebab-case/
// camelCase so "popularity_data", "popularityData" and "popularity-data"
// all normalize identically, matching §4.2.4 step 4's semantic aliasing.
func caseConventionKey(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			continue
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

const (
	qualityExact = iota
	qualityTrimmed
	qualityCaseInsensitive
	qualityAlias
	qualityNone = 1 << 30
)

func matchQuality(memberKey, fieldName string, aliases []string) int {
	if memberKey == fieldName {
		return qualityExact
	}
	if strings.TrimSpace(memberKey) == strings.TrimSpace(fieldName) {
		return qualityTrimmed
	}
	if strings.EqualFold(memberKey, fieldName) || caseConventionKey(memberKey) == caseConventionKey(fieldName) {
		return qualityCaseInsensitive
	}
	for _, a := range aliases {
		if memberKey == a || strings.EqualFold(memberKey, a) || caseConventionKey(memberKey) == caseConventionKey(a) {
			return qualityAlias
		}
	}
	return qualityNone
}

// coerceObject implements §4.2.4.
func coerceObject(ctx *Context, v *value.Value, node schema.Node) (Result, error) {
	if v.Kind != value.KindObject {
		return singleValueObjectRescue(ctx, v, node)
	}

	members := consolidateDuplicates(v.Members)
	used := make([]bool, len(members))
	fields := node.Fields()

	out := make(map[string]any, len(fields))
	var childScores []int
	flags := NewFlagSet()
	fromParsedJSON := true
	incomplete := v.Completion == value.Incomplete

	// Direct key matching runs to completion for every field before any
	// implied-key rescue is attempted. Interleaving the two lets an early
	// optional field rescue-steal the sole leftover member that a later
	// field would otherwise have reached through an alias.
	matched := make([]bool, len(fields))
	for fi, field := range fields {
		bestIdx, bestQuality := -1, qualityNone
		for i, m := range members {
			if used[i] {
				continue
			}
			q := matchQuality(m.Key, field.Name, field.Aliases)
			if q < bestQuality {
				bestQuality, bestIdx = q, i
			}
		}
		if bestIdx < 0 {
			continue
		}
		used[bestIdx] = true
		matched[fi] = true
		r, err := dispatch(ctx, members[bestIdx].Value, field.Node, false)
		if err != nil {
			flags.Add(DefaultFromNoValue)
			continue
		}
		if bestQuality >= qualityCaseInsensitive {
			r.Flags.Add(CaseCoerced)
			r = addPenalty(r, CaseCoerced.Penalty())
		}
		out[field.Name] = r.Value
		childScores = append(childScores, r.Score)
		if !r.FromParsedJSON {
			fromParsedJSON = false
		}
	}

	for fi, field := range fields {
		if matched[fi] {
			continue
		}

		if rescued, idx, ok := impliedKeyRescue(ctx, members, used, field.Node); ok {
			used[idx] = true
			out[field.Name] = rescued.Value
			rescued.Flags.Add(ImpliedKey)
			childScores = append(childScores, addPenalty(rescued, ImpliedKey.Penalty()).Score)
			continue
		}

		switch field.Node.Kind() {
		case schema.KindOptional:
			flags.Add(OptionalDefaultFromNoValue)
		case schema.KindNullable:
			out[field.Name] = nil
			flags.Add(OptionalDefaultFromNoValue)
		case schema.KindArray:
			out[field.Name] = []any{}
			flags.Add(DefaultFromNoValue)
		default:
			if field.Required {
				flags.Add(DefaultFromNoValue)
			} else {
				flags.Add(OptionalDefaultFromNoValue)
			}
		}
	}

	extra := 0
	for i, m := range members {
		if !used[i] {
			extra++
			_ = m
		}
	}
	if extra > 0 {
		flags.Add(ExtraKey)
	}
	if incomplete {
		flags.Add(Incomplete)
	}

	result := compositeResult(out, flags, childScores, fromParsedJSON)
	if extra > 0 && !node.OpenObject() {
		result = addPenalty(result, extra)
	}
	return result, nil
}

// impliedKeyRescue looks for exactly one unused member whose value can
// satisfy target, the rescue §4.2.4 step 3 calls for when a required field
// has no matching key at all.
func impliedKeyRescue(ctx *Context, members []value.Member, used []bool, target schema.Node) (Result, int, bool) {
	candidate := -1
	for i, u := range used {
		if !u {
			if candidate != -1 {
				return Result{}, -1, false
			}
			candidate = i
		}
	}
	if candidate == -1 {
		return Result{}, -1, false
	}
	r, err := dispatch(ctx, members[candidate].Value, target, false)
	if err != nil {
		return Result{}, -1, false
	}
	return r, candidate, true
}

// singleValueObjectRescue implements §4.2.4 step 5: a non-object Value can
// still satisfy an object schema with exactly one required field, by
// coercing the whole Value against that field directly.
func singleValueObjectRescue(ctx *Context, v *value.Value, node schema.Node) (Result, error) {
	var required []schema.Field
	for _, f := range node.Fields() {
		if f.Required {
			required = append(required, f)
		}
	}
	if len(required) != 1 {
		return failResult("non-object value"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "object"}
	}
	field := required[0]
	r, err := dispatch(ctx, v, field.Node, false)
	if err != nil {
		return failResult("non-object value did not fit sole required field"), &Error{Sentinel: ErrRequiredFieldMissing, SchemaKind: "object"}
	}
	flags := NewFlagSet(ImpliedKey)
	out := map[string]any{field.Name: r.Value}
	return compositeResult(out, flags, []int{r.Score}, r.FromParsedJSON), nil
}

// coerceMap implements §4.2.4's map/record coercer.
func coerceMap(ctx *Context, v *value.Value, node schema.Node) (Result, error) {
	if v.Kind != value.KindObject {
		return failResult("non-object value"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "map"}
	}

	valueSchema := node.MapValue()
	members := v.Members

	out := make(map[string]any, len(members))
	seen := make(map[string]bool, len(members))
	var childScores []int
	flags := NewFlagSet()
	fromParsedJSON := true

	for _, m := range members {
		key := m.Key
		r, err := dispatch(ctx, m.Value, valueSchema, false)
		if err != nil {
			continue
		}
		if seen[key] {
			flags.Add(DuplicateKey)
		}
		seen[key] = true
		out[key] = r.Value
		childScores = append(childScores, r.Score)
		if !r.FromParsedJSON {
			fromParsedJSON = false
		}
	}
	if v.Completion == value.Incomplete {
		flags.Add(Incomplete)
	}
	return compositeResult(out, flags, childScores, fromParsedJSON), nil
}
