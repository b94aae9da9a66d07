package metrics

import "time"

// Accuracy returns the percentage of positions where predicted and expected
// agree. The two sequences are positionally aligned and of equal length.
func Accuracy(predicted, expected []int) float64 {
	if len(expected) == 0 {
		return 0
	}
	correct := 0
	for i := range expected {
		if predicted[i] == expected[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(expected)) * 100
}

// Window accumulates timing stats across training epochs.
type Window struct {
	samples int
	elapsed time.Duration
	epochs  int
}

// Record adds one finished epoch to the window.
func (w *Window) Record(samples int, elapsed time.Duration) {
	w.samples += samples
	w.elapsed += elapsed
	w.epochs++
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{}
	if w.elapsed > 0 {
		snap.SamplesPerSec = float64(w.samples) / w.elapsed.Seconds()
	}
	if w.epochs > 0 {
		snap.AvgEpochMS = (w.elapsed.Seconds() * 1000) / float64(w.epochs)
	}

	w.samples = 0
	w.elapsed = 0
	w.epochs = 0
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	SamplesPerSec float64
	AvgEpochMS    float64
}
