// Package fold composes partitioning and normalization into ready-to-use
// train/evaluate folds. Held-out vectors are always rescaled with statistics
// taken from the training side only, so no test data leaks into the scaling.
package fold

import (
	"fmt"

	"mlpforge/internal/dataset"
	"mlpforge/internal/norm"
)

// Fold is one train/evaluate round: a normalized training set, the held-out
// feature vectors normalized with the training set's statistics, and the
// expected class index for each held-out vector, positionally aligned.
type Fold struct {
	Train        *dataset.Dataset
	TestFeatures [][]float64
	Expected     []int
}

// ForPercentageSplit splits the dataset sequentially at the given
// percentage, self-normalizes the training part, and normalizes the held-out
// part against the raw training part's statistics.
func ForPercentageSplit(ds *dataset.Dataset, pct int, method norm.Method) (*Fold, error) {
	train, test, err := ds.SplitByPercentage(pct)
	if err != nil {
		return nil, fmt.Errorf("fold: %w", err)
	}
	return build(train, test, method)
}

// ForCrossValidation builds one fold per split. Each split in turn becomes
// the held-out set, trained against the concatenation of every other split.
// The splits must stem from one dataset so they share a label encoder.
func ForCrossValidation(splits []*dataset.Dataset, method norm.Method) ([]*Fold, error) {
	if len(splits) < 2 {
		return nil, fmt.Errorf("fold: cross validation needs at least 2 splits, got %d", len(splits))
	}
	folds := make([]*Fold, 0, len(splits))
	for i, split := range splits {
		rest := make([]*dataset.Dataset, 0, len(splits)-1)
		for j, other := range splits {
			if j != i {
				rest = append(rest, other)
			}
		}
		f, err := build(dataset.Concat(rest...), split, method)
		if err != nil {
			return nil, fmt.Errorf("fold %d: %w", i, err)
		}
		folds = append(folds, f)
	}
	return folds, nil
}

func build(train, test *dataset.Dataset, method norm.Method) (*Fold, error) {
	expected, err := test.ClassIndices()
	if err != nil {
		return nil, err
	}
	return &Fold{
		Train:        norm.NormalizeDataset(method, train),
		TestFeatures: norm.NormalizeExternal(method, test.Features(), train),
		Expected:     expected,
	}, nil
}
