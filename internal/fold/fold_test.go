package fold

import (
	"testing"

	"mlpforge/internal/dataset"
	"mlpforge/internal/norm"
)

func labeledRows(rows [][]float64, labels []string) []dataset.LabeledVector {
	data := make([]dataset.LabeledVector, len(rows))
	for i := range rows {
		data[i] = dataset.NewLabeledVector(rows[i], labels[i])
	}
	return data
}

func TestForPercentageSplit(t *testing.T) {
	ds := dataset.New(labeledRows(
		[][]float64{{0}, {2}, {4}, {6}, {8}, {10}, {1}, {3}, {5}, {7}},
		[]string{"a", "b", "a", "b", "a", "b", "a", "b", "a", "b"},
	))
	f, err := ForPercentageSplit(ds, 70, norm.MinMax{})
	if err != nil {
		t.Fatalf("fold: %v", err)
	}
	if f.Train.Len() != 7 {
		t.Fatalf("expected 7 training rows, got %d", f.Train.Len())
	}
	if len(f.TestFeatures) != 3 || len(f.Expected) != 3 {
		t.Fatalf("expected 3 aligned test rows, got %d features / %d labels", len(f.TestFeatures), len(f.Expected))
	}
	// train part self-normalized: min 0, max 10 over the first 7 rows
	if got := f.Train.At(0).Features()[0]; got != 0 {
		t.Fatalf("train minimum must map to 0, got %f", got)
	}
	// held-out rows scaled with the train statistics: 3 -> 0.3
	if got := f.TestFeatures[0][0]; got != 0.3 {
		t.Fatalf("held-out value must use train min/max, got %f", got)
	}
	// labels b,a,b -> indices 1,0,1
	if f.Expected[0] != 1 || f.Expected[1] != 0 || f.Expected[2] != 1 {
		t.Fatalf("unexpected class indices %v", f.Expected)
	}
}

func TestForPercentageSplitTooSmall(t *testing.T) {
	ds := dataset.New(labeledRows([][]float64{{1}}, []string{"a"}))
	if _, err := ForPercentageSplit(ds, 50, norm.MinMax{}); err == nil {
		t.Fatal("expected configuration error for a split with an empty part")
	}
}

func TestForCrossValidation(t *testing.T) {
	full := dataset.New(labeledRows(
		[][]float64{{0}, {10}, {2}, {8}, {4}, {6}},
		[]string{"a", "b", "a", "b", "a", "b"},
	))
	splits, err := full.CrossSplit(3, nil)
	if err != nil {
		t.Fatalf("cross split: %v", err)
	}
	folds, err := ForCrossValidation(splits, norm.MinMax{})
	if err != nil {
		t.Fatalf("folds: %v", err)
	}
	if len(folds) != 3 {
		t.Fatalf("expected one fold per split, got %d", len(folds))
	}
	for i, f := range folds {
		if f.Train.Len() != 4 {
			t.Fatalf("fold %d: train set must hold the 4 complement rows, got %d", i, f.Train.Len())
		}
		if len(f.TestFeatures) != 2 || len(f.Expected) != 2 {
			t.Fatalf("fold %d: expected 2 held-out rows", i)
		}
	}
}

func TestForCrossValidationNeedsTwoSplits(t *testing.T) {
	ds := dataset.New(labeledRows([][]float64{{1}, {2}}, []string{"a", "b"}))
	if _, err := ForCrossValidation([]*dataset.Dataset{ds}, norm.MinMax{}); err == nil {
		t.Fatal("expected error for a single split")
	}
}

// Statistics normalizing a fold's held-out vectors must come from that
// fold's complement only: altering a held-out value must not change the
// scaling applied to any other held-out value.
func TestCrossValidationLeakageFree(t *testing.T) {
	build := func(heldOutSecond float64) *Fold {
		complement := dataset.New(labeledRows(
			[][]float64{{1}, {2}},
			[]string{"a", "b"},
		))
		heldOut := dataset.NewWithEncoder(labeledRows(
			[][]float64{{3}, {heldOutSecond}},
			[]string{"a", "b"},
		), complement.Encoder())
		folds, err := ForCrossValidation([]*dataset.Dataset{complement, heldOut}, norm.MinMax{})
		if err != nil {
			t.Fatalf("folds: %v", err)
		}
		return folds[1] // second split held out, trained on the complement
	}

	original := build(4)
	tampered := build(400)
	if original.TestFeatures[0][0] != tampered.TestFeatures[0][0] {
		t.Fatalf("held-out normalization leaked test statistics: %f vs %f",
			original.TestFeatures[0][0], tampered.TestFeatures[0][0])
	}
	// complement min/max is 1..2, so the unchanged held-out value 3 maps to 2
	if original.TestFeatures[0][0] != 2 {
		t.Fatalf("expected 2 from complement statistics, got %f", original.TestFeatures[0][0])
	}
}
