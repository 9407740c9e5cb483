package coerce

import (
	"testing"

	"github.com/K-Mistele/jsonish-sub001/schema"
	"github.com/K-Mistele/jsonish-sub001/value"
)

func TestCoerceArraySingleToArray(t *testing.T) {
	ctx := NewContext(true)
	r, err := coerceArray(ctx, value.NumberFromInt64(5), schema.Array(schema.Integer()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := r.Value.([]any)
	if len(items) != 1 || !r.Flags.Has(SingleToArray) {
		t.Fatalf("r = %+v", r)
	}
}

func TestCoerceArraySkipsOptionalElementFailures(t *testing.T) {
	ctx := NewContext(true)
	items := []*value.Value{value.NumberFromInt64(1), value.String("not a number"), value.NumberFromInt64(3)}
	v := value.Array(items, value.Complete)
	elem := schema.Optional(schema.Integer())
	r, err := coerceArray(ctx, v, schema.Array(elem))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := r.Value.([]any)
	if len(out) != 3 {
		t.Fatalf("expected all three slots represented (middle as absent), got %d: %+v", len(out), out)
	}
}

func TestCoerceArrayHardFailsOnRequiredElementMismatch(t *testing.T) {
	ctx := NewContext(true)
	items := []*value.Value{value.NumberFromInt64(1), value.Boolean(true)}
	v := value.Array(items, value.Complete)
	_, err := coerceArray(ctx, v, schema.Array(schema.Integer()))
	if err == nil {
		t.Fatal("expected a hard failure: boolean element cannot become an integer")
	}
}

func TestCoerceArrayIncompleteToleratesTrailingFailure(t *testing.T) {
	ctx := NewContext(false)
	items := []*value.Value{value.NumberFromInt64(1), value.IncompleteString("tra")}
	v := value.Array(items, value.Incomplete)
	r, err := coerceArray(ctx, v, schema.Array(schema.Integer()))
	if err != nil {
		t.Fatalf("an incomplete array should tolerate a dangling partial element, got error: %v", err)
	}
	if !r.Flags.Has(Incomplete) {
		t.Fatalf("expected Incomplete flag, got %v", r.Flags.List())
	}
}
