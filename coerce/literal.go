package coerce

import (
	"math/big"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/K-Mistele/jsonish-sub001/schema"
	"github.com/K-Mistele/jsonish-sub001/value"
)

// coerceLiteral implements §4.2.6's Literal coercer.
func coerceLiteral(v *value.Value, literal any) (Result, error) {
	switch lit := literal.(type) {
	case string:
		return matchStringLiteral(v, lit)
	case bool:
		if v.Kind == value.KindBoolean && v.Bool == lit {
			return leafResult(lit, NewFlagSet(ExactMatch)), nil
		}
		if r, ok := objectSingleValue(v); ok {
			return coerceLiteral(r, literal)
		}
		return failResult("literal mismatch"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "literal"}
	case *big.Rat:
		if v.Kind == value.KindNumber && v.Num.Cmp(lit) == 0 {
			return leafResult(lit, NewFlagSet(ExactMatch)), nil
		}
		if r, ok := objectSingleValue(v); ok {
			return coerceLiteral(r, literal)
		}
		return failResult("literal mismatch"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "literal"}
	default:
		return failResult("unsupported literal type"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "literal"}
	}
}

// objectSingleValue implements the object-single-value-extraction rescue
// shared by literal and enum coercion: a single-key object whose sole
// value is a primitive unwraps to that primitive.
func objectSingleValue(v *value.Value) (*value.Value, bool) {
	if v.Kind != value.KindObject || len(v.Members) != 1 {
		return nil, false
	}
	only := v.Members[0].Value
	inner, _, _, _ := value.Unwrap(only)
	switch inner.Kind {
	case value.KindString, value.KindNumber, value.KindBoolean, value.KindNull:
		return inner, true
	default:
		return nil, false
	}
}

var punctuationCollapse = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// matchLayer is the rank of the multi-layer text match §4.2.6 describes;
// lower is better and maps onto the flags the caller attaches.
type matchLayer int

const (
	layerExact matchLayer = iota
	layerTrimmedQuotes
	layerCaseInsensitive
	layerPunctuationStripped
	layerDiacriticStripped
	layerSubstring
	layerNone
)

func matchStringLiteral(v *value.Value, literal string) (Result, error) {
	if v.Kind == value.KindObject {
		if inner, ok := objectSingleValue(v); ok {
			r, err := matchStringLiteral(inner, literal)
			if err == nil {
				r.Flags.Add(ObjectToPrimitive)
				r = addPenalty(r, ObjectToPrimitive.Penalty())
			}
			return r, err
		}
	}
	if v.Kind != value.KindString {
		return failResult("literal target requires string-shaped value"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "literal"}
	}

	layer, ok := classifyStringMatch(v.Str, literal)
	if !ok {
		return failResult("no literal match"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "literal", ValueShape: "string \"" + v.Str + "\""}
	}

	flags := NewFlagSet(ExactMatch)
	switch layer {
	case layerExact:
	case layerTrimmedQuotes:
	case layerCaseInsensitive:
		flags = NewFlagSet(CaseCoerced)
	case layerPunctuationStripped, layerDiacriticStripped:
		flags = NewFlagSet(CaseCoerced, PunctuationStripped)
	case layerSubstring:
		flags = NewFlagSet(SubstringMatch)
	}
	return leafResult(literal, flags), nil
}

// classifyStringMatch runs the five-layer comparison plus the whole-word
// substring fallback, returning the first layer that succeeds.
func classifyStringMatch(input, literal string) (matchLayer, bool) {
	if input == literal {
		return layerExact, true
	}
	if strings.Trim(input, `"'`) == literal {
		return layerTrimmedQuotes, true
	}
	if strings.EqualFold(input, literal) {
		return layerCaseInsensitive, true
	}
	if collapse(input) == collapse(literal) {
		return layerPunctuationStripped, true
	}
	if diacriticStrip(collapse(input)) == diacriticStrip(collapse(literal)) {
		return layerDiacriticStripped, true
	}
	if wholeWordContains(input, literal) {
		return layerSubstring, true
	}
	return layerNone, false
}

func collapse(s string) string {
	s = punctuationCollapse.ReplaceAllString(s, " ")
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func diacriticStrip(s string) string {
	t := norm.NFD.String(s)
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func wholeWordContains(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	pattern := `(?i)\b` + regexp.QuoteMeta(needle) + `\b`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(haystack)
}

// coerceEnum implements §4.2.6's Enum coercer: the same layered matching
// as Literal, tried against every permitted value (and its declared
// aliases), keeping the best-ranked hit.
func coerceEnum(v *value.Value, node schema.Node) (Result, error) {
	values := node.EnumValues()
	aliasSets := node.EnumAliases()

	if v.Kind == value.KindObject {
		if inner, ok := objectSingleValue(v); ok {
			r, err := coerceEnum(inner, node)
			if err == nil {
				r.Flags.Add(ObjectToPrimitive)
				r = addPenalty(r, ObjectToPrimitive.Penalty())
			}
			return r, err
		}
	}

	if v.Kind != value.KindString {
		for _, val := range values {
			r, err := coerceLiteral(v, val)
			if err == nil {
				return r, nil
			}
		}
		return failResult("no enum match"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "enum"}
	}

	bestLayer := layerNone
	bestIdx := -1
	ambiguous := false

	for i, val := range values {
		s, ok := val.(string)
		if !ok {
			continue
		}
		candidates := []string{s}
		if i < len(aliasSets) {
			candidates = append(candidates, aliasSets[i]...)
		}
		for _, c := range candidates {
			layer, ok := classifyStringMatch(v.Str, c)
			if !ok {
				continue
			}
			switch {
			case layer < bestLayer:
				bestLayer, bestIdx, ambiguous = layer, i, false
			case layer == bestLayer && bestIdx != i && layer != layerSubstring:
				ambiguous = true
			}
		}
	}

	if bestIdx == -1 {
		return failResult("no enum match"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "enum", ValueShape: "string \"" + v.Str + "\""}
	}
	if ambiguous {
		return failResult("ambiguous enum match"), &Error{Sentinel: ErrAmbiguousLiteral, SchemaKind: "enum", ValueShape: "string \"" + v.Str + "\""}
	}

	flags := NewFlagSet(ExactMatch)
	switch bestLayer {
	case layerCaseInsensitive:
		flags = NewFlagSet(CaseCoerced)
	case layerPunctuationStripped, layerDiacriticStripped:
		flags = NewFlagSet(CaseCoerced, PunctuationStripped)
	case layerSubstring:
		flags = NewFlagSet(SubstringMatch)
	}
	return leafResult(values[bestIdx], flags), nil
}
