package jsonish

import (
	"encoding/json"
	"math/big"
	"reflect"

	"github.com/K-Mistele/jsonish-sub001/coerce"
	"github.com/K-Mistele/jsonish-sub001/rawparser"
	"github.com/K-Mistele/jsonish-sub001/schema"
)

// Parse recovers whatever value-shaped content input contains and coerces
// it against node, returning the produced Go value (a plain
// map[string]any/[]any/string/*big.Rat/bool/nil tree, or whatever a
// schema.KindLiteral/Enum option supplies) alongside a diagnostic Report.
//
// Parse never panics on malformed input: a document too broken to satisfy
// node comes back as a zero value, a failure Report, and a non-nil error
// you can inspect with errors.Is against the sentinels in errors.go.
func Parse(input string, node schema.Node, opts ...Option) (any, *coerce.Report, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	v, err := rawparser.Parse(input, cfg.Options)
	if err != nil {
		if _, ok := err.(*rawparser.DepthExceededError); ok {
			err = &coerce.Error{Sentinel: coerce.ErrDepthExceeded, SchemaKind: node.Kind().String()}
		}
		return nil, coerce.NewFailureReport(err), err
	}

	ctx := cfg.newContext()
	result, err := coerce.Coerce(ctx, v, node)
	if err != nil {
		return nil, coerce.NewFailureReport(err), err
	}
	return result.Value, coerce.NewReport(result), nil
}

// ParseInto is the reflect-driven convenience form: it builds a schema.Node
// from T via schema.FromType, coerces as usual, then round-trips the
// resulting generic value through encoding/json into a T. The round-trip
// is the deliberate boundary between the engine's generic output (plain
// maps, slices and scalars, scored and selected without knowledge of any
// particular Go type) and a caller's concrete struct; Parse itself never
// populates a struct directly. Callers with a hand-authored schema.Node
// (e.g. one compiled from a JSON Schema document via
// schema.CompileJSONSchema) should call Parse directly instead.
func ParseInto[T any](input string, opts ...Option) (T, *coerce.Report, error) {
	var zero T
	node := schema.FromType(reflect.TypeOf(zero))
	val, report, err := Parse(input, node, opts...)
	if err != nil {
		return zero, report, err
	}
	raw, marshalErr := json.Marshal(jsonSafe(val))
	if marshalErr != nil {
		return zero, report, marshalErr
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, report, err
	}
	return out, report, nil
}

// jsonSafe recursively replaces *big.Rat leaves (coerce's number
// representation, which encoding/json would otherwise write as a quoted
// text string such as "3" or "1/2") with a json.Number rounded through
// float64, the only place that conversion happens: everywhere else in the
// engine keeps full rational precision.
func jsonSafe(v any) any {
	switch t := v.(type) {
	case *big.Rat:
		f, _ := t.Float64()
		return json.Number(big.NewFloat(f).Text('f', -1))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = jsonSafe(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = jsonSafe(val)
		}
		return out
	default:
		return v
	}
}
