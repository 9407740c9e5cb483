package coerce

import (
	"strings"

	"github.com/K-Mistele/jsonish-sub001/schema"
	"github.com/K-Mistele/jsonish-sub001/value"
)

// Result is what every coercer returns: the produced Go value, the flags
// recording how it got there, and the composite score used by selection
// (§4.4). IsComposite and FromParsedJSON feed the tie-breakers.
type Result struct {
	Value          any
	Flags          FlagSet
	Score          int
	IsComposite    bool
	FromParsedJSON bool
}

func leafResult(val any, flags FlagSet) Result {
	return Result{Value: val, Flags: flags, Score: flags.Penalty(), FromParsedJSON: true}
}

func compositeResult(val any, flags FlagSet, childScores []int, fromParsedJSON bool) Result {
	score := flags.Penalty()
	if score < infPenalty {
		sum := 0
		for _, s := range childScores {
			sum += s
		}
		score += 10 * sum
	}
	return Result{Value: val, Flags: flags, Score: score, IsComposite: true, FromParsedJSON: fromParsedJSON}
}

func failResult(shape string) Result {
	fs := NewFlagSet(NoMatch)
	return Result{Flags: fs, Score: infPenalty, Value: shape}
}

// Coerce is the top-level entry point: given a raw-parser Value and a
// schema node, it produces a Result or a structured *Error when every
// avenue is exhausted (§4.2).
func Coerce(ctx *Context, v *value.Value, node schema.Node) (Result, error) {
	ctx.Original = reconstructOriginal(v)
	return dispatch(ctx, v, node, true)
}

// reconstructOriginal recovers the text the string short-circuit (§4.2.1.1)
// compares against. An AnyOf always carries the literal original input it
// was built from; anything else (a clean strict-JSON parse, a bare Fixed
// value) has no surrounding prose to recover, so its own rendered text
// doubles as "the input".
func reconstructOriginal(v *value.Value) string {
	if v.Kind == value.KindAnyOf {
		return v.Original
	}
	return render(v)
}

func dispatch(ctx *Context, v *value.Value, node schema.Node, atTop bool) (Result, error) {
	if node.Kind() == schema.KindString {
		if r, ok := stringShortCircuit(ctx, v, atTop); ok {
			return r, nil
		}
	}

	if v.Kind == value.KindAnyOf {
		return coerceAnyOf(ctx, v, node)
	}

	inner, fixes, fromMarkdown, _ := value.Unwrap(v)
	r, err := dispatchKind(ctx, inner, node)
	if err != nil {
		return r, err
	}
	if len(fixes.List()) > 0 {
		extra := fixFlags(fixes)
		r.Flags.Merge(extra)
		r = addPenalty(r, extra.Penalty())
	}
	if fromMarkdown {
		r.Flags.Add(ObjectFromMarkdown)
		r.FromParsedJSON = false
		r = addPenalty(r, ObjectFromMarkdown.Penalty())
	}
	return r, nil
}

// addPenalty adds a flat amount to a result's own score, the way a flag
// discovered after dispatch (a wrapper's Fix provenance, a Markdown
// origin) contributes: as a penalty on this node, never multiplied by the
// 10x child-score weighting that only applies to a container's own
// children.
func addPenalty(r Result, amount int) Result {
	if r.Score >= infPenalty || amount <= 0 {
		return r
	}
	r.Score += amount
	return r
}

// fixFlags maps raw-parser Fix tags onto their coercion-layer Flag
// equivalents, so a value recovered by the Fixing State Machine carries
// the same provenance through scoring that the spec's flag table expects.
func fixFlags(fixes value.FixSet) FlagSet {
	fs := NewFlagSet()
	for _, fx := range fixes.List() {
		switch fx {
		case value.FixTrailingComma:
			fs.Add(TrailingCommaFixed)
		case value.FixUnquotedKey:
			fs.Add(UnquotedKeyFixed)
		case value.FixAutoClosedBracket:
			fs.Add(AutoClosedBracket)
		case value.FixAutoClosedQuote:
			fs.Add(AutoClosedQuote)
		case value.FixSingleQuote:
			fs.Add(SingleQuoteFixed)
		}
	}
	return fs
}

func dispatchKind(ctx *Context, v *value.Value, node schema.Node) (Result, error) {
	switch node.Kind() {
	case schema.KindString:
		return coerceString(v)
	case schema.KindNumber:
		return coerceNumber(v, false)
	case schema.KindInteger:
		return coerceNumber(v, true)
	case schema.KindBoolean:
		return coerceBoolean(v)
	case schema.KindNull:
		return coerceNull(v)
	case schema.KindArray:
		return coerceArray(ctx, v, node)
	case schema.KindObject:
		return coerceObject(ctx, v, node)
	case schema.KindMap:
		return coerceMap(ctx, v, node)
	case schema.KindUnion:
		return coerceUnion(ctx, v, node)
	case schema.KindLiteral:
		return coerceLiteral(v, node.LiteralValue())
	case schema.KindEnum:
		return coerceEnum(v, node)
	case schema.KindOptional:
		return coerceOptional(ctx, v, node)
	case schema.KindNullable:
		return coerceNullable(ctx, v, node)
	case schema.KindAlias:
		return coerceAlias(ctx, v, node)
	case schema.KindAny:
		return Result{Value: toAny(v), Flags: NewFlagSet(ExactMatch), FromParsedJSON: true}, nil
	default:
		return failResult("unknown schema kind"), &Error{Sentinel: ErrCoercionFailed, SchemaKind: "unknown"}
	}
}

// stringShortCircuit implements §4.2.1 rule 1. atTop scopes the
// prefix-of-the-whole-input check to the outermost Coerce call: a nested
// string field inside an object that happens to sit underneath a
// big-brace top-level input must not be handed the entire document back,
// only a value-local AnyOf (which carries its own Original) can still
// trigger the short-circuit at any depth.
func stringShortCircuit(ctx *Context, v *value.Value, atTop bool) (Result, bool) {
	if v.Kind == value.KindAnyOf {
		return leafResult(v.Original, NewFlagSet()), true
	}
	if !atTop {
		return Result{}, false
	}
	trimmed := strings.TrimSpace(ctx.Original)
	if trimmed == "" {
		return Result{}, false
	}
	switch trimmed[0] {
	case '{', '[', '`', '"', '\'':
		return leafResult(ctx.Original, NewFlagSet()), true
	default:
		return Result{}, false
	}
}

func toAny(v *value.Value) any {
	switch v.Kind {
	case value.KindString:
		return v.Str
	case value.KindNumber:
		return v.Num
	case value.KindBoolean:
		return v.Bool
	case value.KindNull:
		return nil
	case value.KindObject:
		m := make(map[string]any, len(v.Members))
		for _, mem := range v.Members {
			m[mem.Key] = toAny(mem.Value)
		}
		return m
	case value.KindArray:
		items := make([]any, len(v.Items))
		for i, it := range v.Items {
			items[i] = toAny(it)
		}
		return items
	default:
		inner, _, _, _ := value.Unwrap(v)
		if inner != v {
			return toAny(inner)
		}
		return nil
	}
}

// render produces a deterministic textual rendering of v, used as a
// stand-in "original input" for values that never passed through an AnyOf
// (a clean strict parse has nothing else to fall back on).
func render(v *value.Value) string {
	var b strings.Builder
	renderInto(&b, v)
	return b.String()
}

func renderInto(b *strings.Builder, v *value.Value) {
	switch v.Kind {
	case value.KindString:
		b.WriteByte('"')
		b.WriteString(v.Str)
		b.WriteByte('"')
	case value.KindNumber:
		b.WriteString(v.Num.RatString())
	case value.KindBoolean:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.KindNull:
		b.WriteString("null")
	case value.KindObject:
		b.WriteByte('{')
		for i, m := range v.Members {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(m.Key)
			b.WriteString(`":`)
			renderInto(b, m.Value)
		}
		b.WriteByte('}')
	case value.KindArray:
		b.WriteByte('[')
		for i, it := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			renderInto(b, it)
		}
		b.WriteByte(']')
	default:
		inner, _, _, _ := value.Unwrap(v)
		if inner != v {
			renderInto(b, inner)
			return
		}
	}
}
