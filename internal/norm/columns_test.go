package norm

import (
	"testing"

	"mlpforge/internal/dataset"
)

func testDataset() *dataset.Dataset {
	return dataset.New([]dataset.LabeledVector{
		dataset.NewLabeledVector([]float64{0, 10}, "a"),
		dataset.NewLabeledVector([]float64{5, 20}, "b"),
		dataset.NewLabeledVector([]float64{10, 30}, "a"),
	})
}

func TestNormalizeDatasetColumnWise(t *testing.T) {
	ds := testDataset()
	normalized := NormalizeDataset(MinMax{}, ds)

	if got := normalized.At(0).Features(); got[0] != 0 || got[1] != 0 {
		t.Fatalf("first row must hold the column minima, got %v", got)
	}
	if got := normalized.At(2).Features(); got[0] != 1 || got[1] != 1 {
		t.Fatalf("last row must hold the column maxima, got %v", got)
	}
	if got := normalized.At(1).Features(); got[0] != 0.5 || got[1] != 0.5 {
		t.Fatalf("middle row must land at 0.5 per column, got %v", got)
	}
	if normalized.At(1).Label() != "b" {
		t.Fatal("labels must be reattached in order")
	}
	if normalized.Encoder() != ds.Encoder() {
		t.Fatal("normalized dataset must keep the source encoder")
	}
	// source dataset untouched
	if ds.At(2).Features()[0] != 10 {
		t.Fatal("input dataset was mutated")
	}
}

func TestNormalizeExternalUsesReferenceStatsOnly(t *testing.T) {
	ref := testDataset()
	test := [][]float64{{5, 40}}
	got := NormalizeExternal(MinMax{}, test, ref)
	if got[0][0] != 0.5 {
		t.Fatalf("expected 0.5 from reference min/max 0..10, got %f", got[0][0])
	}
	// outside the reference range maps outside [0,1], proving the test
	// vector's own statistics were never consulted
	if got[0][1] != 1.5 {
		t.Fatalf("expected 1.5 from reference min/max 10..30, got %f", got[0][1])
	}
	if test[0][0] != 5 || test[0][1] != 40 {
		t.Fatal("input vectors were mutated")
	}
}

func TestNormalizeExternalIgnoresOtherTestValues(t *testing.T) {
	ref := testDataset()
	a := NormalizeExternal(MinMax{}, [][]float64{{5, 20}, {0, 10}}, ref)
	b := NormalizeExternal(MinMax{}, [][]float64{{5, 20}, {999, -999}}, ref)
	if a[0][0] != b[0][0] || a[0][1] != b[0][1] {
		t.Fatalf("changing one held-out vector changed another's normalization: %v vs %v", a[0], b[0])
	}
}
