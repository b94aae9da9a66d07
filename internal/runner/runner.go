// Package runner orchestrates training and evaluation of one network on one
// dataset. A runner can train synchronously on the calling goroutine or as a
// scheduled task with a completion channel; separate runners share no
// mutable state and may run concurrently, but a single runner must not be
// started twice at the same time because its network's layer buffers are
// reused in place.
package runner

import (
	"fmt"
	"log"
	"time"

	"mlpforge/internal/dataset"
	"mlpforge/internal/metrics"
	"mlpforge/internal/network"
)

// Runner pairs a network with its training data and epoch count.
type Runner struct {
	network  *network.Network
	data     *dataset.Dataset
	epochs   int
	logEvery int
}

// New creates a runner. The output-layer width used during training is the
// number of distinct labels in the dataset's label space.
func New(net *network.Network, data *dataset.Dataset, epochs int) *Runner {
	return &Runner{network: net, data: data, epochs: epochs}
}

// SetLogEvery enables a progress log line every n epochs. Zero disables
// progress logging.
func (r *Runner) SetLogEvery(n int) {
	r.logEvery = n
}

// Train runs the configured number of epochs on the calling goroutine.
func (r *Runner) Train() error {
	numOutputs := r.data.Encoder().NumClasses()
	var window metrics.Window
	for epoch := 1; epoch <= r.epochs; epoch++ {
		start := time.Now()
		if err := r.network.TrainEpoch(r.data, numOutputs); err != nil {
			return fmt.Errorf("runner: epoch %d: %w", epoch, err)
		}
		window.Record(r.data.Len(), time.Since(start))

		if r.logEvery > 0 && epoch%r.logEvery == 0 {
			snap := window.Snapshot()
			log.Printf("network=%s epoch=%d samples_per_sec=%.1f epoch_ms=%.2f",
				r.network.ID(),
				epoch,
				snap.SamplesPerSec,
				snap.AvgEpochMS,
			)
		}
	}
	return nil
}

// Predict runs the trained network over every feature vector and returns the
// predicted class indices in input order.
func (r *Runner) Predict(features [][]float64) []int {
	predictions := make([]int, len(features))
	for i, vector := range features {
		predictions[i] = r.network.Predict(vector)
	}
	return predictions
}

// Result is delivered on the channel returned by Start once training has
// finished.
type Result struct {
	ID  string
	Err error
}

// Start schedules Train on its own goroutine and returns a channel that
// receives exactly one Result when training completes. A panic inside the
// task is recovered and surfaced as the result error. The channel is
// buffered, so the result is delivered even if the caller receives late.
func (r *Runner) Start() <-chan Result {
	done := make(chan Result, 1)
	go func() {
		result := Result{ID: r.network.ID()}
		defer func() {
			if p := recover(); p != nil {
				result.Err = fmt.Errorf("runner: training panicked: %v", p)
			}
			done <- result
		}()
		result.Err = r.Train()
	}()
	return done
}
