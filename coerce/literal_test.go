package coerce

import (
	"testing"

	"github.com/K-Mistele/jsonish-sub001/schema"
	"github.com/K-Mistele/jsonish-sub001/value"
)

func TestCoerceLiteralExactMatch(t *testing.T) {
	r, err := coerceLiteral(value.String("cat"), "cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != "cat" || r.Flags.Penalty() != 0 {
		t.Fatalf("r = %+v", r)
	}
}

func TestCoerceLiteralPunctuationStripped(t *testing.T) {
	r, err := coerceLiteral(value.String("  Cat!! "), "cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != "cat" || !r.Flags.Has(CaseCoerced) {
		t.Fatalf("r = %+v", r)
	}
}

func TestCoerceLiteralSubstringFromProse(t *testing.T) {
	r, err := coerceLiteral(value.String("I think the answer is cat, definitely"), "cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Flags.Has(SubstringMatch) {
		t.Fatalf("expected SubstringMatch, got %v", r.Flags.List())
	}
}

func TestCoerceLiteralNoMatch(t *testing.T) {
	_, err := coerceLiteral(value.String("dog"), "cat")
	if err == nil {
		t.Fatal("expected no-match error")
	}
}

func TestCoerceEnumPrefersBestLayerAcrossAliases(t *testing.T) {
	node := schema.Enum([]any{"red", "green", "blue"}, [][]string{{"crimson"}, nil, nil})
	r, err := coerceEnum(value.String("crimson"), node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != "red" {
		t.Fatalf("expected alias to resolve to canonical enum value, got %v", r.Value)
	}
}

func TestCoerceEnumObjectSingleValueExtraction(t *testing.T) {
	node := schema.Enum([]any{"red", "green"})
	v := value.Object([]value.Member{{Key: "color", Value: value.String("green")}}, value.Complete)
	r, err := coerceEnum(v, node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != "green" || !r.Flags.Has(ObjectToPrimitive) {
		t.Fatalf("r = %+v", r)
	}
}
