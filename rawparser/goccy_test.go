package rawparser

import (
	"testing"

	"github.com/K-Mistele/jsonish-sub001/value"
)

func TestParseChunkStrictAcceptsCleanObject(t *testing.T) {
	v, ok := parseChunkStrict(`{"id": 1, "name": "a"}`)
	if !ok {
		t.Fatal("expected a clean object chunk to parse strictly")
	}
	if v.Kind != value.KindObject || len(v.Members) != 2 {
		t.Fatalf("v = %+v", v)
	}
}

func TestParseChunkStrictRejectsTrailingGarbage(t *testing.T) {
	if _, ok := parseChunkStrict(`{"id": 1} extra`); ok {
		t.Fatal("expected trailing garbage after the object to reject the strict chunk parse")
	}
}

func TestMultiObjectScanSkipsFixProvenanceForCleanChunks(t *testing.T) {
	input := `first: {"id": 1} second: {"id": 2}`
	v, err := multiObjectScan(input, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != value.KindArray {
		t.Fatalf("v.Kind = %v, want array", v.Kind)
	}
	for _, item := range v.Items {
		if len(item.Fixes.List()) != 0 {
			t.Fatalf("expected clean adjacent objects to carry no fix provenance, got %v", item.Fixes.List())
		}
	}
}
