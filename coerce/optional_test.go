package coerce

import (
	"testing"

	"github.com/K-Mistele/jsonish-sub001/schema"
	"github.com/K-Mistele/jsonish-sub001/value"
)

func TestCoerceOptionalNullBecomesNoValue(t *testing.T) {
	ctx := NewContext(true)
	r, err := coerceOptional(ctx, value.Null(), schema.Optional(schema.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != nil || !r.Flags.Has(OptionalDefaultFromNoValue) {
		t.Fatalf("r = %+v", r)
	}
}

func TestCoerceOptionalFailedInnerBecomesNoValueNotError(t *testing.T) {
	ctx := NewContext(true)
	r, err := coerceOptional(ctx, value.String("not a number"), schema.Optional(schema.Integer()))
	if err != nil {
		t.Fatalf("optional coercion must never surface an inner failure as an error, got %v", err)
	}
	if r.Value != nil {
		t.Fatalf("expected nil value for a field that could not coerce, got %v", r.Value)
	}
}

func TestCoerceNullableExplicitNull(t *testing.T) {
	ctx := NewContext(true)
	r, err := coerceNullable(ctx, value.Null(), schema.Nullable(schema.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != nil || !r.Flags.Has(ExactMatch) {
		t.Fatalf("r = %+v", r)
	}
}

func TestCoerceNullableNoneStringRequiresOptIn(t *testing.T) {
	node := schema.Nullable(schema.String())

	withoutOptIn := NewContext(true)
	r, err := coerceNullable(withoutOptIn, value.String("None"), node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != "None" {
		t.Fatalf("without AllowNoneAsNull, bare \"None\" should coerce as the literal string, got %v", r.Value)
	}

	withOptIn := NewContext(true)
	withOptIn.AllowNoneAsNull = true
	r, err = coerceNullable(withOptIn, value.String("None"), node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != nil {
		t.Fatalf("with AllowNoneAsNull, bare \"None\" should resolve to null, got %v", r.Value)
	}
}
