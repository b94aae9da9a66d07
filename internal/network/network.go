// Package network implements a feed-forward multilayer perceptron trained by
// online stochastic gradient descent with backpropagation.
package network

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"mlpforge/internal/dataset"
)

// DefaultLearningRate is applied to freshly created networks.
const DefaultLearningRate = 0.3

// Neuron holds one weight per input of its layer.
type Neuron struct {
	weights []float64
}

// Layer is one stack of neurons plus the scratch vectors reused across
// forward and backward passes: output, bias and delta all have one entry per
// neuron. The buffers belong to exactly one in-flight training pass; a
// network must never be driven by two callers at once.
type Layer struct {
	neurons []Neuron
	output  []float64
	bias    []float64
	delta   []float64
}

// Network is an ordered stack of layers. Weight vectors of layer i have the
// length of layer i-1's neuron count, or the input dimension for i = 0.
type Network struct {
	id           string
	layers       []*Layer
	learningRate float64
}

// New creates a network with one layer per hidden width plus an output
// layer. Weights are drawn independently from a standard normal
// distribution using rng; biases start at zero. An empty id is replaced by a
// generated UUID, a nil rng by a fresh time-seeded source.
func New(id string, numInputs int, hidden []int, numOutputs int, rng *rand.Rand) *Network {
	if id == "" {
		id = uuid.New().String()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	n := &Network{id: id, learningRate: DefaultLearningRate}
	in := numInputs
	for _, width := range hidden {
		n.layers = append(n.layers, newLayer(in, width, rng))
		in = width
	}
	n.layers = append(n.layers, newLayer(in, numOutputs, rng))
	return n
}

func newLayer(numWeights, numNeurons int, rng *rand.Rand) *Layer {
	l := &Layer{
		neurons: make([]Neuron, numNeurons),
		output:  make([]float64, numNeurons),
		bias:    make([]float64, numNeurons),
		delta:   make([]float64, numNeurons),
	}
	for i := range l.neurons {
		weights := make([]float64, numWeights)
		for j := range weights {
			weights[j] = rng.NormFloat64()
		}
		l.neurons[i] = Neuron{weights: weights}
	}
	return l
}

// ID returns the network identifier.
func (n *Network) ID() string {
	return n.id
}

// LearningRate returns the current learning rate.
func (n *Network) LearningRate() float64 {
	return n.learningRate
}

// SetLearningRate sets the learning rate. No checks are made.
func (n *Network) SetLearningRate(rate float64) {
	n.learningRate = rate
}

// NumOutputs returns the output layer width.
func (n *Network) NumOutputs() int {
	return len(n.layers[len(n.layers)-1].neurons)
}

func sigmoid(activation float64) float64 {
	return 1 / (1 + math.Exp(-activation))
}

// sigmoidPrime is the sigmoid derivative expressed in terms of the neuron
// output rather than the raw activation.
func sigmoidPrime(output float64) float64 {
	return output * (1 - output)
}

// forward propagates input through every layer and returns the output
// layer's buffer. Each layer's output vector feeds the next layer.
func (n *Network) forward(input []float64) []float64 {
	for _, l := range n.layers {
		for i := range l.neurons {
			activation := l.bias[i] + floats.Dot(input, l.neurons[i].weights)
			l.output[i] = sigmoid(activation)
		}
		input = l.output
	}
	return input
}

// backpropagate walks the layers output-to-input and stores each neuron's
// delta. It only reads weights, so every delta is computed against the
// pre-update weights; updateWeights must not run until this returns.
func (n *Network) backpropagate(expected []float64) {
	last := len(n.layers) - 1
	for i := last; i >= 0; i-- {
		layer := n.layers[i]
		for j := range layer.neurons {
			var err float64
			if i == last {
				err = layer.output[j] - expected[j]
			} else {
				next := n.layers[i+1]
				for k := range next.neurons {
					err += next.neurons[k].weights[j] * next.delta[k]
				}
			}
			layer.delta[j] = err * sigmoidPrime(layer.output[j])
		}
	}
}

// updateWeights applies the deltas. Layer 0 reads the sample input, every
// later layer reads the previous layer's output buffer, which still holds
// the values of the forward pass.
func (n *Network) updateWeights(sampleInput []float64) {
	inputs := sampleInput
	for i, layer := range n.layers {
		if i > 0 {
			inputs = n.layers[i-1].output
		}
		for j := range layer.neurons {
			floats.AddScaled(layer.neurons[j].weights, -n.learningRate*layer.delta[j], inputs)
			layer.bias[j] -= n.learningRate * layer.delta[j]
		}
	}
}

// TrainEpoch runs one full pass over the dataset in its stored order: per
// sample a forward pass, a one-hot target of length numOutputs,
// backpropagation and a weight update. A sample whose class index falls
// outside [0, numOutputs) aborts the epoch.
func (n *Network) TrainEpoch(data *dataset.Dataset, numOutputs int) error {
	expected := make([]float64, numOutputs)
	for i := 0; i < data.Len(); i++ {
		sample := data.At(i)
		values := sample.Features()
		n.forward(values)

		class, err := data.Encoder().Index(sample.Label())
		if err != nil {
			return fmt.Errorf("network %s: %w", n.id, err)
		}
		if class < 0 || class >= numOutputs {
			return fmt.Errorf("network %s: class index %d out of range for %d outputs", n.id, class, numOutputs)
		}
		for j := range expected {
			expected[j] = 0
		}
		expected[class] = 1

		n.backpropagate(expected)
		n.updateWeights(values)
	}
	return nil
}

// Train runs the given number of epochs of online gradient descent. Samples
// are visited strictly in dataset order, without shuffling between epochs.
func (n *Network) Train(data *dataset.Dataset, numEpochs, numOutputs int) error {
	for epoch := 0; epoch < numEpochs; epoch++ {
		if err := n.TrainEpoch(data, numOutputs); err != nil {
			return err
		}
	}
	return nil
}

// Forward runs a forward pass and returns a copy of the output activations.
func (n *Network) Forward(features []float64) []float64 {
	output := n.forward(features)
	result := make([]float64, len(output))
	copy(result, output)
	return result
}

// Predict runs a forward pass and returns the index of the largest output.
// Ties go to the first occurrence.
func (n *Network) Predict(features []float64) int {
	return floats.MaxIdx(n.forward(features))
}
