package coerce

import (
	"testing"

	"github.com/K-Mistele/jsonish-sub001/schema"
	"github.com/K-Mistele/jsonish-sub001/value"
)

// TestStringPriorityOverEmbeddedJSON reproduces the spec's scenario where a
// string-typed target sees the whole original document, embedded JSON and
// all, rather than just the object the raw parser manages to recover.
func TestStringPriorityOverEmbeddedJSON(t *testing.T) {
	original := `The output is: {"hello": "world"}`
	candidates := []*value.Value{
		value.Object([]value.Member{{Key: "hello", Value: value.String("world")}}, value.Complete),
		value.String(original),
	}
	v := value.AnyOf(candidates, original)

	ctx := NewContext(true)
	r, err := Coerce(ctx, v, schema.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != original {
		t.Fatalf("expected the full original text, got %q", r.Value)
	}
}

// TestPartialObjectWithAliasResolution exercises scenario 6: a truncated
// object whose one present field only matches the schema via a declared
// alias, with the object reported Incomplete throughout.
func TestPartialObjectWithAliasResolution(t *testing.T) {
	v := value.Object([]value.Member{
		{Key: "popularityData", Value: value.Array([]*value.Value{value.NumberFromInt64(10), value.NumberFromInt64(20)}, value.Complete)},
	}, value.Incomplete)

	fields := []schema.Field{
		{Name: "title", Node: schema.Optional(schema.String())},
		{Name: "popularityOverTime", Node: schema.Array(schema.Integer()), Required: true, Aliases: []string{"popularity_data", "popularityData"}},
	}
	node := schema.Object(fields)

	ctx := NewContext(false)
	r, err := Coerce(ctx, v, node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := r.Value.(map[string]any)
	items, ok := out["popularityOverTime"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("out = %+v", out)
	}
	if !r.Flags.Has(Incomplete) {
		t.Fatalf("expected the object's own Incomplete flag to survive, got %v", r.Flags.List())
	}
	if _, present := out["title"]; present {
		t.Fatalf("expected the missing optional title field to be omitted, got %+v", out)
	}
}

func TestUnionDepthCapFailsCleanly(t *testing.T) {
	var loop schema.Node
	loop = schema.Alias("loop", func() schema.Node {
		return schema.Union(schema.Array(loop), schema.Integer())
	})

	var v *value.Value = value.NumberFromInt64(1)
	for i := 0; i < 30; i++ {
		v = value.Array([]*value.Value{v}, value.Complete)
	}

	ctx := NewContext(true)
	_, err := Coerce(ctx, v, loop)
	if err == nil {
		t.Fatal("expected deep self-referential recursion to fail cleanly instead of overflowing the stack")
	}
}
