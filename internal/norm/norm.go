// Package norm rescales feature columns. Two strategies are provided,
// min-max and z-score; both can normalize a vector against its own
// statistics or against externally supplied ones, so held-out data can be
// rescaled with training-set statistics only.
package norm

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Method is one normalization strategy. Implementations hold no state.
type Method interface {
	// Name returns the config spelling of the method.
	Name() string
	// Stats computes the statistic pair of a column: min/max for min-max,
	// mean/sd for z-score.
	Stats(column []float64) (float64, float64)
	// NormalizeWith rescales column in place using externally supplied
	// statistics.
	NormalizeWith(column []float64, a, b float64)
	// NormalizeInPlace rescales column in place using its own statistics.
	NormalizeInPlace(column []float64)
}

// ParseMethod maps a config spelling to a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minmax", "min-max":
		return MinMax{}, nil
	case "zscore", "z-score":
		return ZScore{}, nil
	default:
		return nil, fmt.Errorf("norm: unknown normalization method %q", name)
	}
}

// MinMax rescales x to (x-min)/(max-min). A column whose minimum equals its
// maximum is left untouched rather than divided by zero.
type MinMax struct{}

// Name implements Method.
func (MinMax) Name() string { return "minmax" }

// Stats returns the column minimum and maximum.
func (MinMax) Stats(column []float64) (float64, float64) {
	return floats.Min(column), floats.Max(column)
}

// NormalizeWith implements Method.
func (MinMax) NormalizeWith(column []float64, min, max float64) {
	span := max - min
	if span == 0 {
		return
	}
	for i, v := range column {
		column[i] = (v - min) / span
	}
}

// NormalizeInPlace implements Method.
func (m MinMax) NormalizeInPlace(column []float64) {
	min, max := m.Stats(column)
	m.NormalizeWith(column, min, max)
}

// ZScore rescales x to (x-mean)/sd using the sample standard deviation. A
// column whose mean is zero is left entirely untouched; an individual value
// that comes out not-a-number keeps its old value while the rest of the
// column is still updated.
type ZScore struct{}

// Name implements Method.
func (ZScore) Name() string { return "zscore" }

// Stats returns the column mean and sample standard deviation.
func (ZScore) Stats(column []float64) (float64, float64) {
	mean := stat.Mean(column, nil)
	return mean, stat.StdDev(column, nil)
}

// NormalizeWith implements Method.
func (ZScore) NormalizeWith(column []float64, mean, sd float64) {
	if mean == 0 {
		return
	}
	for i, v := range column {
		scaled := (v - mean) / sd
		if !math.IsNaN(scaled) {
			column[i] = scaled
		}
	}
}

// NormalizeInPlace implements Method.
func (z ZScore) NormalizeInPlace(column []float64) {
	mean, sd := z.Stats(column)
	z.NormalizeWith(column, mean, sd)
}
