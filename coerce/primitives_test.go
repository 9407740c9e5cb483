package coerce

import (
	"math/big"
	"testing"

	"github.com/K-Mistele/jsonish-sub001/schema"
	"github.com/K-Mistele/jsonish-sub001/value"
)

func TestCoerceStringFromNumber(t *testing.T) {
	r, err := coerceString(value.NumberFromInt64(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != "42" || !r.Flags.Has(NumberToString) {
		t.Fatalf("r = %+v", r)
	}
}

func TestCoerceNumberFromProse(t *testing.T) {
	r, err := coerceNumber(value.String("1 cup butter"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rat := r.Value.(*big.Rat)
	if rat.Cmp(big.NewRat(1, 1)) != 0 {
		t.Fatalf("expected 1, got %v", rat)
	}
	if !r.Flags.Has(StringToNumber) {
		t.Fatalf("expected StringToNumber flag, got %v", r.Flags.List())
	}
}

func TestCoerceNumberCurrencyAndGrouping(t *testing.T) {
	r, err := coerceNumber(value.String("$1,234.50"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rat := r.Value.(*big.Rat)
	want := new(big.Rat)
	want.SetString("1234.5")
	if rat.Cmp(want) != 0 {
		t.Fatalf("got %v want %v", rat, want)
	}
}

func TestCoerceIntegerTruncatesFloat(t *testing.T) {
	n := new(big.Rat)
	n.SetString("3.9")
	r, err := coerceNumber(value.Number(n), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Flags.Has(FloatToInt) {
		t.Fatalf("expected FloatToInt flag, got %v", r.Flags.List())
	}
	if r.Value.(*big.Rat).Cmp(big.NewRat(3, 1)) != 0 {
		t.Fatalf("expected truncation to 3, got %v", r.Value)
	}
}

func TestCoerceBooleanAmbiguousProse(t *testing.T) {
	_, err := coerceBoolean(value.String("it could be true or false depending"))
	if err == nil {
		t.Fatal("expected ambiguous boolean error")
	}
	ce := err.(*Error)
	if ce.Sentinel != ErrAmbiguousBoolean {
		t.Fatalf("expected ErrAmbiguousBoolean, got %v", ce.Sentinel)
	}
}

func TestCoerceBooleanFromWholeWord(t *testing.T) {
	r, err := coerceBoolean(value.String("the answer is definitely true here"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != true || !r.Flags.Has(SubstringMatch) {
		t.Fatalf("r = %+v", r)
	}
}

func TestCoerceNullRejectsBareString(t *testing.T) {
	_, err := coerceNull(value.String("null"))
	if err == nil {
		t.Fatal("expected the primitive null coercer to reject a bare string")
	}
}

func TestDispatchStringShortCircuitsOnStructuredInput(t *testing.T) {
	ctx := NewContext(true)
	v := value.Object([]value.Member{{Key: "hello", Value: value.String("world")}}, value.Complete)
	r, err := Coerce(ctx, v, schema.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != `{"hello":"world"}` {
		t.Fatalf("expected the rendered original object text, got %q", r.Value)
	}
}
