package network

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// snapshotVersion guards the structural encoding; bump it when the layout
// below changes.
const snapshotVersion = 1

// snapshot is the versioned structural encoding of a network: the ordered
// layer list, each an ordered list of neuron weight vectors plus the bias
// vector, the learning rate and the identifier. Restoring a snapshot yields
// bit-identical predictions without retraining.
type snapshot struct {
	Version      int
	ID           string
	LearningRate float64
	Layers       []layerSnapshot
}

type layerSnapshot struct {
	Weights [][]float64
	Bias    []float64
}

func (n *Network) snapshot() snapshot {
	snap := snapshot{
		Version:      snapshotVersion,
		ID:           n.id,
		LearningRate: n.learningRate,
		Layers:       make([]layerSnapshot, len(n.layers)),
	}
	for i, l := range n.layers {
		ls := layerSnapshot{
			Weights: make([][]float64, len(l.neurons)),
			Bias:    make([]float64, len(l.bias)),
		}
		for j, neuron := range l.neurons {
			weights := make([]float64, len(neuron.weights))
			copy(weights, neuron.weights)
			ls.Weights[j] = weights
		}
		copy(ls.Bias, l.bias)
		snap.Layers[i] = ls
	}
	return snap
}

func fromSnapshot(snap snapshot) (*Network, error) {
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("network: unsupported snapshot version %d", snap.Version)
	}
	n := &Network{id: snap.ID, learningRate: snap.LearningRate}
	for _, ls := range snap.Layers {
		if len(ls.Weights) != len(ls.Bias) {
			return nil, fmt.Errorf("network: snapshot layer has %d weight vectors but %d biases", len(ls.Weights), len(ls.Bias))
		}
		l := &Layer{
			neurons: make([]Neuron, len(ls.Weights)),
			output:  make([]float64, len(ls.Weights)),
			bias:    make([]float64, len(ls.Bias)),
			delta:   make([]float64, len(ls.Weights)),
		}
		for j, weights := range ls.Weights {
			w := make([]float64, len(weights))
			copy(w, weights)
			l.neurons[j] = Neuron{weights: w}
		}
		copy(l.bias, ls.Bias)
		n.layers = append(n.layers, l)
	}
	return n, nil
}

// Save writes the network's trainable state as a versioned snapshot.
func (n *Network) Save(w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(n.snapshot()); err != nil {
		return fmt.Errorf("network %s: encode snapshot: %w", n.id, err)
	}
	return nil
}

// Load restores a network from a snapshot written by Save.
func Load(r io.Reader) (*Network, error) {
	var snap snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("network: decode snapshot: %w", err)
	}
	return fromSnapshot(snap)
}

// SaveFile writes the snapshot to path, truncating any existing file.
func (n *Network) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("network %s: create %s: %w", n.id, path, err)
	}
	if err := n.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile restores a network from a snapshot file written by SaveFile.
func LoadFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("network: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
