// Package value defines the intermediate representation produced by the raw
// parser and consumed by the coercer. A Value is a tagged union over the
// shapes a noisy, JSON-like text fragment can take once it has been parsed
// but before it has been matched against a target schema.
package value

import "math/big"

// Kind identifies which variant of Value is populated.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindNull
	KindObject
	KindArray
	KindMarkdown
	KindFixed
	KindAnyOf
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindMarkdown:
		return "markdown"
	case KindFixed:
		return "fixed"
	case KindAnyOf:
		return "anyOf"
	default:
		return "unknown"
	}
}

// Completion records whether a container or string was properly delimited
// in the source text, or whether the fixer had to close it itself.
type Completion int

const (
	// Complete means the value was fully delimited in the input.
	Complete Completion = iota
	// Incomplete means the fixer auto-closed the value, or the caller
	// marked the input as streaming-in-progress.
	Incomplete
)

// Fix names a single error-recovery action the Fixing State Machine applied.
type Fix int

const (
	FixTrailingComma Fix = iota
	FixUnquotedKey
	FixAutoClosedBracket
	FixAutoClosedQuote
	FixSingleQuote
	FixComment
)

func (f Fix) String() string {
	switch f {
	case FixTrailingComma:
		return "trailing_comma"
	case FixUnquotedKey:
		return "unquoted_key"
	case FixAutoClosedBracket:
		return "auto_closed_bracket"
	case FixAutoClosedQuote:
		return "auto_closed_quote"
	case FixSingleQuote:
		return "single_quote"
	case FixComment:
		return "comment"
	default:
		return "unknown_fix"
	}
}

// FixSet is a small, order-preserving set of applied fixes. Raw-parser
// inputs rarely trigger more than a couple of distinct fix kinds, so a slice
// with linear membership checks is cheaper than a map.
type FixSet struct {
	fixes []Fix
}

// Add records that fix was applied, ignoring duplicates.
func (s *FixSet) Add(fix Fix) {
	if s.Has(fix) {
		return
	}
	s.fixes = append(s.fixes, fix)
}

// Has reports whether fix was recorded.
func (s *FixSet) Has(fix Fix) bool {
	for _, f := range s.fixes {
		if f == fix {
			return true
		}
	}
	return false
}

// List returns the recorded fixes in application order.
func (s *FixSet) List() []Fix {
	return s.fixes
}

// Member is a single (key, value) pair of an Object, kept in input order.
// Keys are not guaranteed unique; duplicate-key consolidation is a coercer
// concern (see the object coercer).
type Member struct {
	Key   string
	Value *Value
}

// Value is the engine's tagged-union intermediate representation. Exactly
// one of the payload fields is meaningful, selected by Kind. Values are
// immutable after construction by the raw parser.
type Value struct {
	Kind       Kind
	Completion Completion

	Str     string
	Num     *big.Rat
	Bool    bool
	Members []Member // Object
	Items   []*Value // Array

	// Markdown
	Lang  string
	Inner *Value

	// Fixed
	FixedInner *Value
	Fixes      FixSet

	// AnyOf
	Candidates []*Value
	Original   string
}

// String builds a complete String value.
func String(s string) *Value {
	return &Value{Kind: KindString, Completion: Complete, Str: s}
}

// IncompleteString builds a String value that was cut off mid-stream.
func IncompleteString(s string) *Value {
	return &Value{Kind: KindString, Completion: Incomplete, Str: s}
}

// Number builds a Number value from an arbitrary-precision rational.
func Number(n *big.Rat) *Value {
	return &Value{Kind: KindNumber, Completion: Complete, Num: n}
}

// NumberFromInt64 is a convenience constructor for integer literals.
func NumberFromInt64(n int64) *Value {
	return &Value{Kind: KindNumber, Completion: Complete, Num: new(big.Rat).SetInt64(n)}
}

// Boolean builds a Boolean value.
func Boolean(b bool) *Value {
	return &Value{Kind: KindBoolean, Completion: Complete, Bool: b}
}

// Null builds the singleton-shaped Null value.
func Null() *Value {
	return &Value{Kind: KindNull, Completion: Complete}
}

// Object builds an Object value with the given completion state. The raw
// parser must never mark an auto-closed object Complete.
func Object(members []Member, completion Completion) *Value {
	return &Value{Kind: KindObject, Completion: completion, Members: members}
}

// Array builds an Array value with the given completion state.
func Array(items []*Value, completion Completion) *Value {
	return &Value{Kind: KindArray, Completion: completion, Items: items}
}

// Markdown wraps inner with its fenced-block language tag.
func Markdown(lang string, inner *Value) *Value {
	completion := Complete
	if inner != nil {
		completion = inner.Completion
	}
	return &Value{Kind: KindMarkdown, Completion: completion, Lang: lang, Inner: inner}
}

// Fixed wraps inner with the set of recovery fixes applied to produce it.
// A Fixed value is never nested directly inside another Fixed value; Fixed
// collapses the fix sets instead of nesting.
func Fixed(inner *Value, fixes FixSet) *Value {
	completion := Complete
	if inner != nil {
		completion = inner.Completion
	}
	if inner != nil && inner.Kind == KindFixed {
		merged := inner.Fixes
		for _, f := range fixes.List() {
			merged.Add(f)
		}
		return &Value{Kind: KindFixed, Completion: completion, FixedInner: inner.FixedInner, Fixes: merged}
	}
	return &Value{Kind: KindFixed, Completion: completion, FixedInner: inner, Fixes: fixes}
}

// AnyOf builds a multi-candidate value. A single-element candidate list
// collapses to that element, since AnyOf.candidates must stay non-empty and
// a singleton carries no ambiguity for the coercer to resolve.
func AnyOf(candidates []*Value, original string) *Value {
	if len(candidates) == 1 {
		return candidates[0]
	}
	return &Value{Kind: KindAnyOf, Completion: Complete, Candidates: candidates, Original: original}
}

// Unwrap strips Markdown and Fixed wrappers, returning the innermost value
// together with the accumulated fix set and the markdown language tag (if
// any layer was markdown-wrapped). The coercer uses this to apply the
// schema-kind dispatch to the real payload while still collecting flags for
// the wrappers it passed through.
func Unwrap(v *Value) (inner *Value, fixes FixSet, fromMarkdown bool, mdLang string) {
	for v != nil {
		switch v.Kind {
		case KindFixed:
			for _, f := range v.Fixes.List() {
				fixes.Add(f)
			}
			v = v.FixedInner
		case KindMarkdown:
			fromMarkdown = true
			mdLang = v.Lang
			v = v.Inner
		default:
			return v, fixes, fromMarkdown, mdLang
		}
	}
	return nil, fixes, fromMarkdown, mdLang
}

// IsComplete reports the value's own completion state without descending
// into children (containers already carry the state the parser computed for
// them, per the propagation rule in the data model).
func (v *Value) IsComplete() bool {
	if v == nil {
		return true
	}
	return v.Completion == Complete
}
