package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// LabelEncoder maps class labels to dense integer indices. The mapping is
// built once from the full label set, sorted lexicographically, and never
// changes afterwards.
type LabelEncoder struct {
	labels []string
	index  map[string]int
}

// NewLabelEncoder builds an encoder over the unique labels in the input,
// assigning indices in sorted order.
func NewLabelEncoder(labels []string) *LabelEncoder {
	seen := make(map[string]struct{}, len(labels))
	unique := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		unique = append(unique, l)
	}
	sort.Strings(unique)
	index := make(map[string]int, len(unique))
	for i, l := range unique {
		index[l] = i
	}
	return &LabelEncoder{labels: unique, index: index}
}

// Index returns the class index of label.
func (e *LabelEncoder) Index(label string) (int, error) {
	idx, ok := e.index[label]
	if !ok {
		return 0, fmt.Errorf("dataset: unknown label %q", label)
	}
	return idx, nil
}

// NumClasses returns the number of distinct labels, which is also the
// required output-layer width of a network trained on this label space.
func (e *LabelEncoder) NumClasses() int {
	return len(e.labels)
}

// Labels returns the labels in index order.
func (e *LabelEncoder) Labels() []string {
	labels := make([]string, len(e.labels))
	copy(labels, e.labels)
	return labels
}

// NumericLabel parses the class identifier embedded in the label: only the
// characters 0-9 and '.' are kept, the '.' is dropped, and the remaining
// digit string is parsed as an integer ("Class-1" becomes 1). Labels without
// digits are rejected; trained models serialized under this scheme depend on
// its exact behavior, so prefer LabelEncoder for new label spaces.
func (v LabeledVector) NumericLabel() (int, error) {
	var sb strings.Builder
	for _, r := range v.label {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return 0, fmt.Errorf("dataset: label %q carries no numeric identifier", v.label)
	}
	n, err := strconv.Atoi(sb.String())
	if err != nil {
		return 0, fmt.Errorf("dataset: parse label %q: %w", v.label, err)
	}
	return n, nil
}
