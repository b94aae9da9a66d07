package network

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"testing"
)

func TestSnapshotRoundTripPredictionsIdentical(t *testing.T) {
	n := New("roundtrip", 3, []int{5}, 2, rand.New(rand.NewSource(9)))
	n.SetLearningRate(0.05)

	var buf bytes.Buffer
	if err := n.Save(&buf); err != nil {
		t.Fatalf("save: %v", err)
	}
	restored, err := Load(&buf)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if restored.ID() != "roundtrip" {
		t.Fatalf("id not restored: %q", restored.ID())
	}
	if restored.LearningRate() != 0.05 {
		t.Fatalf("learning rate not restored: %f", restored.LearningRate())
	}

	inputs := [][]float64{
		{0, 0, 0},
		{1, -1, 0.5},
		{0.3, 0.7, -2},
	}
	for _, input := range inputs {
		want := n.Forward(input)
		got := restored.Forward(input)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("input %v output %d: %v != %v", input, i, got[i], want[i])
			}
		}
		if restored.Predict(input) != n.Predict(input) {
			t.Fatalf("input %v: predictions differ", input)
		}
	}
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	n := New("file", 2, []int{3}, 2, rand.New(rand.NewSource(4)))
	path := filepath.Join(t.TempDir(), "net.gob")
	if err := n.SaveFile(path); err != nil {
		t.Fatalf("save file: %v", err)
	}
	restored, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	input := []float64{0.25, 0.75}
	if restored.Predict(input) != n.Predict(input) {
		t.Fatal("prediction changed across file round trip")
	}
}

func TestSnapshotRejectsUnknownVersion(t *testing.T) {
	n := New("ver", 2, []int{2}, 2, rand.New(rand.NewSource(8)))
	snap := n.snapshot()
	snap.Version = 99
	if _, err := fromSnapshot(snap); err == nil {
		t.Fatal("expected error for unsupported snapshot version")
	}
}
