package dataset

import (
	"math/rand"
	"time"
)

// LabeledVector is a single row of a dataset: an ordered feature vector plus
// its class label. Instances are immutable after construction.
type LabeledVector struct {
	features []float64
	label    string
}

// NewLabeledVector copies features so later mutation of the caller's slice
// cannot reach into the vector.
func NewLabeledVector(features []float64, label string) LabeledVector {
	f := make([]float64, len(features))
	copy(f, features)
	return LabeledVector{features: f, label: label}
}

// Features returns a copy of the feature values in column order.
func (v LabeledVector) Features() []float64 {
	f := make([]float64, len(v.features))
	copy(f, v.features)
	return f
}

// Dim returns the number of features.
func (v LabeledVector) Dim() int {
	return len(v.features)
}

// Label returns the class label.
func (v LabeledVector) Label() string {
	return v.label
}

// Dataset is an ordered collection of labeled vectors sharing one label
// encoder. All members are expected to share one dimensionality; a violation
// surfaces when the dataset is laid out as a matrix during normalization.
type Dataset struct {
	data    []LabeledVector
	encoder *LabelEncoder
}

// New builds a dataset and derives its label encoder from the full label set.
func New(data []LabeledVector) *Dataset {
	labels := make([]string, len(data))
	for i, v := range data {
		labels[i] = v.label
	}
	return &Dataset{data: data, encoder: NewLabelEncoder(labels)}
}

// NewWithEncoder builds a dataset that keeps a parent's label space. Derived
// datasets (splits, folds, normalized copies) must use this so that class
// indices stay consistent even when a subset does not contain every label.
func NewWithEncoder(data []LabeledVector, encoder *LabelEncoder) *Dataset {
	return &Dataset{data: data, encoder: encoder}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.data)
}

// At returns the row at index i.
func (d *Dataset) At(i int) LabeledVector {
	return d.data[i]
}

// Encoder returns the shared label encoder.
func (d *Dataset) Encoder() *LabelEncoder {
	return d.encoder
}

// Features returns copies of every row's feature vector, in row order.
func (d *Dataset) Features() [][]float64 {
	rows := make([][]float64, len(d.data))
	for i, v := range d.data {
		rows[i] = v.Features()
	}
	return rows
}

// ClassIndices returns the encoder index of every row's label, in row order.
func (d *Dataset) ClassIndices() ([]int, error) {
	indices := make([]int, len(d.data))
	for i, v := range d.data {
		idx, err := d.encoder.Index(v.label)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}
	return indices, nil
}

// Shuffled returns a copy of the dataset with rows in random order. A nil rng
// uses a fresh time-seeded source.
func (d *Dataset) Shuffled(rng *rand.Rand) *Dataset {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	shuffled := make([]LabeledVector, len(d.data))
	copy(shuffled, d.data)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return &Dataset{data: shuffled, encoder: d.encoder}
}

// Concat joins datasets in order. The result keeps the first set's encoder,
// so all inputs must stem from the same source dataset.
func Concat(sets ...*Dataset) *Dataset {
	total := 0
	for _, s := range sets {
		total += s.Len()
	}
	data := make([]LabeledVector, 0, total)
	for _, s := range sets {
		data = append(data, s.data...)
	}
	var encoder *LabelEncoder
	if len(sets) > 0 {
		encoder = sets[0].encoder
	}
	return &Dataset{data: data, encoder: encoder}
}
