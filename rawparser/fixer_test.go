package rawparser

import (
	"testing"

	"github.com/K-Mistele/jsonish-sub001/value"
)

func TestFixHandlesUnquotedKeysAndSingleQuotes(t *testing.T) {
	v, err := Fix(`{name: 'Ada', age: 31}`, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inner, fixes, _, _ := value.Unwrap(v)
	if inner.Kind != value.KindObject {
		t.Fatalf("kind = %v, want object", inner.Kind)
	}
	if !fixes.Has(value.FixUnquotedKey) {
		t.Fatalf("expected FixUnquotedKey to be recorded")
	}
	if !fixes.Has(value.FixSingleQuote) {
		t.Fatalf("expected FixSingleQuote to be recorded")
	}
	if len(inner.Members) != 2 || inner.Members[0].Key != "name" {
		t.Fatalf("members = %+v", inner.Members)
	}
}

func TestFixHandlesTrailingComma(t *testing.T) {
	v, err := Fix(`{"a": 1, "b": 2,}`, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inner, fixes, _, _ := value.Unwrap(v)
	if !fixes.Has(value.FixTrailingComma) {
		t.Fatalf("expected FixTrailingComma to be recorded")
	}
	if len(inner.Members) != 2 {
		t.Fatalf("members = %+v, want 2", inner.Members)
	}
}

func TestFixAutoClosesTruncatedObject(t *testing.T) {
	v, err := Fix(`{"a": 1, "b": {"c": 2`, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inner, fixes, _, _ := value.Unwrap(v)
	if !fixes.Has(value.FixAutoClosedBracket) {
		t.Fatalf("expected FixAutoClosedBracket to be recorded")
	}
	if inner.Completion != value.Incomplete {
		t.Fatalf("expected top-level object to be Incomplete")
	}
	b, _, _, _ := value.Unwrap(inner.Members[1].Value)
	if b.Completion != value.Incomplete {
		t.Fatalf("expected nested object to be Incomplete")
	}
}

func TestFixHandlesEmbeddedQuotesViaQuoteCounting(t *testing.T) {
	v, err := Fix(`{"quote": "and then i said "hi", and also "bye""}`, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inner, _, _, _ := value.Unwrap(v)
	got, _, _, _ := value.Unwrap(inner.Members[0].Value)
	want := `and then i said "hi", and also "bye"`
	if got.Str != want {
		t.Fatalf("got %q, want %q", got.Str, want)
	}
}

func TestFixHandlesComments(t *testing.T) {
	v, err := Fix("{\n// leading comment\n\"a\": 1 /* trailing */\n}", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inner, fixes, _, _ := value.Unwrap(v)
	if !fixes.Has(value.FixComment) {
		t.Fatalf("expected FixComment to be recorded")
	}
	if len(inner.Members) != 1 {
		t.Fatalf("members = %+v", inner.Members)
	}
}

func TestFixTripleQuotedStringDedents(t *testing.T) {
	input := "{\"body\": \"\"\"\n    line one\n    line two\n    \"\"\"}"
	v, err := Fix(input, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inner, _, _, _ := value.Unwrap(v)
	body, _, _, _ := value.Unwrap(inner.Members[0].Value)
	want := "line one\nline two"
	if body.Str != want {
		t.Fatalf("got %q, want %q", body.Str, want)
	}
}

func TestFixDepthExceeded(t *testing.T) {
	open := ""
	for i := 0; i < maxDepth+5; i++ {
		open += "["
	}
	_, err := Fix(open, 0)
	if err == nil {
		t.Fatalf("expected DepthExceededError")
	}
	if _, ok := err.(*DepthExceededError); !ok {
		t.Fatalf("err = %T, want *DepthExceededError", err)
	}
}
