package coerce

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/K-Mistele/jsonish-sub001/value"
)

// coerceString implements the body of §4.2.2's String coercer. The
// structured-input short-circuit (§4.2.1 rule 1) is handled one level up
// in dispatch/stringShortCircuit; by the time execution reaches here the
// Value is whatever scalar (or, worst case, unshort-circuited composite)
// actually needs turning into text.
func coerceString(v *value.Value) (Result, error) {
	switch v.Kind {
	case value.KindString:
		return leafResult(v.Str, NewFlagSet(ExactMatch)), nil
	case value.KindNumber:
		return leafResult(v.Num.RatString(), NewFlagSet(NumberToString)), nil
	case value.KindBoolean:
		s := "false"
		if v.Bool {
			s = "true"
		}
		return leafResult(s, NewFlagSet(BoolToString)), nil
	case value.KindNull:
		return leafResult("null", NewFlagSet()), nil
	default:
		return leafResult(render(v), NewFlagSet(ObjectToPrimitive)), nil
	}
}

var (
	leadingNumberPattern = regexp.MustCompile(`-?\d[\d,]*(\.\d+)?`)
	currencyPattern      = regexp.MustCompile(`[$€£¥]`)
)

// coerceNumber implements §4.2.2's Number/Integer coercer.
func coerceNumber(v *value.Value, integer bool) (Result, error) {
	switch v.Kind {
	case value.KindNumber:
		return finishNumber(v.Num, NewFlagSet(ExactMatch), integer)
	case value.KindString:
		r, ok := parseNumberFromString(v.Str)
		if !ok {
			return failResult("string not numeric"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "number", ValueShape: "string \"" + v.Str + "\""}
		}
		return finishNumber(r, NewFlagSet(StringToNumber), integer)
	default:
		return failResult("non-numeric value"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "number"}
	}
}

func finishNumber(r *big.Rat, flags FlagSet, integer bool) (Result, error) {
	if !integer {
		return leafResult(r, flags), nil
	}
	if r.IsInt() {
		return leafResult(r, flags), nil
	}
	f, _ := r.Float64()
	truncated := new(big.Rat).SetInt64(int64(f))
	flags.Add(FloatToInt)
	return leafResult(truncated, flags), nil
}

// parseNumberFromString implements the tolerant parsing rules from
// §4.2.2: currency markers and grouping commas are stripped, a single
// trailing period is dropped, "a/b" is read as exact division, and
// prose carrying a number ("1 cup butter") yields its leading token.
func parseNumberFromString(s string) (*big.Rat, bool) {
	trimmed := strings.TrimSpace(s)
	trimmed = currencyPattern.ReplaceAllString(trimmed, "")
	trimmed = strings.TrimSpace(trimmed)

	if strings.Contains(trimmed, "/") && !strings.ContainsAny(trimmed, " \t") {
		parts := strings.SplitN(trimmed, "/", 2)
		if len(parts) == 2 {
			num, ok1 := new(big.Rat).SetString(strings.ReplaceAll(parts[0], ",", ""))
			den, ok2 := new(big.Rat).SetString(strings.ReplaceAll(parts[1], ",", ""))
			if ok1 && ok2 && den.Sign() != 0 {
				return num.Quo(num, den), true
			}
		}
	}

	noGroup := strings.ReplaceAll(trimmed, ",", "")
	noGroup = strings.TrimSuffix(noGroup, ".")
	if r, ok := new(big.Rat).SetString(noGroup); ok {
		return r, true
	}

	match := leadingNumberPattern.FindString(trimmed)
	if match == "" {
		return nil, false
	}
	match = strings.ReplaceAll(match, ",", "")
	return new(big.Rat).SetString(match)
}

var (
	wholeWordTrue  = regexp.MustCompile(`(?i)\btrue\b`)
	wholeWordFalse = regexp.MustCompile(`(?i)\bfalse\b`)
)

// coerceBoolean implements §4.2.2's Boolean coercer.
func coerceBoolean(v *value.Value) (Result, error) {
	switch v.Kind {
	case value.KindBoolean:
		return leafResult(v.Bool, NewFlagSet(ExactMatch)), nil
	case value.KindString:
		s := strings.ToLower(strings.TrimSpace(v.Str))
		switch s {
		case "true", "yes", "1":
			return leafResult(true, NewFlagSet(StringToBool)), nil
		case "false", "no", "0":
			return leafResult(false, NewFlagSet(StringToBool)), nil
		}
		hasTrue := wholeWordTrue.MatchString(v.Str)
		hasFalse := wholeWordFalse.MatchString(v.Str)
		switch {
		case hasTrue && hasFalse:
			return failResult("ambiguous boolean prose"), &Error{Sentinel: ErrAmbiguousBoolean, SchemaKind: "boolean", ValueShape: "string \"" + v.Str + "\""}
		case hasTrue:
			return leafResult(true, NewFlagSet(StringToBool, SubstringMatch)), nil
		case hasFalse:
			return leafResult(false, NewFlagSet(StringToBool, SubstringMatch)), nil
		}
		return failResult("no boolean word found"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "boolean"}
	default:
		return failResult("non-boolean value"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "boolean"}
	}
}

// coerceNull implements §4.2.2's Null coercer: only a genuine Null Value
// matches. Bare "null"/"None"/"Null" strings are deliberately rejected
// here; that rescue is the Nullable wrapper's job (§4.2.7), not the
// primitive coercer's.
func coerceNull(v *value.Value) (Result, error) {
	if v.Kind == value.KindNull {
		return leafResult(nil, NewFlagSet(ExactMatch)), nil
	}
	return failResult("non-null value"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "null"}
}
