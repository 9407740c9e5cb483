package rawparser

import (
	"testing"

	"github.com/K-Mistele/jsonish-sub001/value"
)

func TestMultiObjectScanWrapsSeveralChunksInArray(t *testing.T) {
	input := `Here are the two records: {"id": 1} and also {"id": 2} thanks!`
	v, err := multiObjectScan(input, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != value.KindArray || len(v.Items) != 2 {
		t.Fatalf("v = %+v, want a 2-element array", v)
	}
}

func TestMultiObjectScanReturnsSingleChunkUnwrapped(t *testing.T) {
	input := `sure, here you go: {"id": 1} hope that helps`
	v, err := multiObjectScan(input, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != value.KindObject {
		t.Fatalf("v.Kind = %v, want object", v.Kind)
	}
}

func TestScanTopLevelChunksIgnoresBracesInsideStrings(t *testing.T) {
	input := []rune(`{ "desc": "contains { braces }" } and { "id": 2 }`)
	chunks := scanTopLevelChunks(input)
	if len(chunks) != 2 {
		t.Fatalf("chunks = %v, want 2", chunks)
	}
}
