package dataset

import (
	"fmt"
	"math/rand"
	"time"
)

// SplitByPercentage splits the dataset sequentially at floor(len*pct/100):
// the first part holds the leading rows, the second the remainder. No
// shuffling happens here; callers wanting a randomized split must shuffle
// first. Splits leaving either part empty are rejected.
func (d *Dataset) SplitByPercentage(pct int) (*Dataset, *Dataset, error) {
	splitAt := len(d.data) * pct / 100
	if splitAt <= 0 || splitAt >= len(d.data) {
		return nil, nil, fmt.Errorf("dataset: %d%% split of %d rows leaves an empty part", pct, len(d.data))
	}
	first := &Dataset{data: d.data[:splitAt:splitAt], encoder: d.encoder}
	second := &Dataset{data: d.data[splitAt:], encoder: d.encoder}
	return first, second, nil
}

// CrossSplit partitions the dataset into k folds of floor(len/k) rows each,
// drawing rows uniformly without replacement from a mutable copy. The
// len mod k rows left over once every fold is full are discarded. A nil rng
// uses a fresh time-seeded source.
func (d *Dataset) CrossSplit(k int, rng *rand.Rand) ([]*Dataset, error) {
	if k < 1 {
		return nil, fmt.Errorf("dataset: fold count must be at least 1, got %d", k)
	}
	if k > len(d.data) {
		return nil, fmt.Errorf("dataset: fold count %d exceeds dataset size %d", k, len(d.data))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pool := make([]LabeledVector, len(d.data))
	copy(pool, d.data)
	foldSize := len(d.data) / k

	folds := make([]*Dataset, 0, k)
	for i := 0; i < k; i++ {
		fold := make([]LabeledVector, 0, foldSize)
		for len(fold) < foldSize {
			idx := rng.Intn(len(pool))
			fold = append(fold, pool[idx])
			pool = append(pool[:idx], pool[idx+1:]...)
		}
		folds = append(folds, &Dataset{data: fold, encoder: d.encoder})
	}
	return folds, nil
}
