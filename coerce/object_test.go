package coerce

import (
	"math/big"
	"testing"

	"github.com/K-Mistele/jsonish-sub001/schema"
	"github.com/K-Mistele/jsonish-sub001/value"
)

func TestCoerceObjectAliasResolvesSnakeToCamel(t *testing.T) {
	ctx := NewContext(true)
	v := value.Object([]value.Member{
		{Key: "popularity_data", Value: value.Array([]*value.Value{value.NumberFromInt64(1), value.NumberFromInt64(2)}, value.Complete)},
	}, value.Complete)

	fields := []schema.Field{
		{Name: "popularityOverTime", Node: schema.Array(schema.Integer()), Required: true, Aliases: []string{"popularity_data"}},
	}
	r, err := coerceObject(ctx, v, schema.Object(fields))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := r.Value.(map[string]any)
	items, ok := out["popularityOverTime"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("out = %+v", out)
	}
}

func TestCoerceObjectConsolidatesDuplicateKeys(t *testing.T) {
	members := []value.Member{
		{Key: "tag", Value: value.String("a")},
		{Key: "Tag", Value: value.String("b")},
	}
	out := consolidateDuplicates(members)
	if len(out) != 1 {
		t.Fatalf("expected duplicate keys folded into one, got %d: %+v", len(out), out)
	}
	arr := out[0].Value
	if arr.Kind != value.KindArray || len(arr.Items) != 2 {
		t.Fatalf("expected folded value to be a two-item array, got %+v", arr)
	}
}

func TestCoerceObjectMissingRequiredFieldFlagsDefault(t *testing.T) {
	ctx := NewContext(true)
	v := value.Object(nil, value.Complete)
	fields := []schema.Field{{Name: "name", Node: schema.String(), Required: true}}
	r, err := coerceObject(ctx, v, schema.Object(fields))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Flags.Has(DefaultFromNoValue) {
		t.Fatalf("expected DefaultFromNoValue, got %v", r.Flags.List())
	}
}

func TestCoerceObjectStrictPenalizesExtraKeys(t *testing.T) {
	ctx := NewContext(true)
	v := value.Object([]value.Member{
		{Key: "name", Value: value.String("x")},
		{Key: "extra", Value: value.String("y")},
	}, value.Complete)
	fields := []schema.Field{{Name: "name", Node: schema.String(), Required: true}}

	open := coerceObjectScore(t, ctx, v, schema.Object(fields))
	strict := coerceObjectScore(t, ctx, v, schema.Object(fields, schema.Strict))
	if strict <= open {
		t.Fatalf("expected strict object to score worse than open: open=%d strict=%d", open, strict)
	}
}

func coerceObjectScore(t *testing.T, ctx *Context, v *value.Value, node schema.Node) int {
	t.Helper()
	r, err := coerceObject(ctx, v, node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r.Score
}

func TestCoerceMapDetectsDuplicateKey(t *testing.T) {
	ctx := NewContext(true)
	v := value.Object([]value.Member{
		{Key: "a", Value: value.NumberFromInt64(1)},
		{Key: "a", Value: value.NumberFromInt64(2)},
	}, value.Complete)
	r, err := coerceMap(ctx, v, schema.Map(schema.Integer()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Flags.Has(DuplicateKey) {
		t.Fatalf("expected DuplicateKey flag, got %v", r.Flags.List())
	}
	out := r.Value.(map[string]any)
	if out["a"].(*big.Rat).Cmp(big.NewRat(2, 1)) != 0 {
		t.Fatalf("expected last-write-wins, got %v", out["a"])
	}
}

func TestSingleValueObjectRescue(t *testing.T) {
	ctx := NewContext(true)
	fields := []schema.Field{{Name: "value", Node: schema.String(), Required: true}}
	r, err := coerceObject(ctx, value.String("hello"), schema.Object(fields))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := r.Value.(map[string]any)
	if out["value"] != "hello" || !r.Flags.Has(ImpliedKey) {
		t.Fatalf("r = %+v out=%+v", r, out)
	}
}
