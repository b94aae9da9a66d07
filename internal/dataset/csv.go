package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LabelPosition states which column of a record carries the class label.
type LabelPosition int

const (
	// LabelLast takes the final column as the label.
	LabelLast LabelPosition = iota
	// LabelFirst takes the first column as the label.
	LabelFirst
)

// ParseLabelPosition maps the config spelling to a LabelPosition.
func ParseLabelPosition(s string) (LabelPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "last", "":
		return LabelLast, nil
	case "first":
		return LabelFirst, nil
	default:
		return 0, fmt.Errorf("dataset: unknown label position %q", s)
	}
}

// ReadOptions configures delimited-row ingestion.
type ReadOptions struct {
	Delimiter  string
	SkipHeader bool
	LabelPos   LabelPosition
}

// ReadCSV reads delimited records into a dataset. Each line is split on the
// delimiter, the label column is extracted and trimmed, and every remaining
// column is trimmed and parsed as a float64 feature in original column
// order. Any non-numeric feature token fails the whole load; no partial
// dataset is returned.
func ReadCSV(r io.Reader, opts ReadOptions) (*Dataset, error) {
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}

	var data []LabeledVector
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 && opts.SkipHeader {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		columns := strings.Split(line, opts.Delimiter)
		if len(columns) < 2 {
			return nil, fmt.Errorf("dataset: line %d: need a label and at least one feature, got %d columns", lineNo, len(columns))
		}

		var label string
		switch opts.LabelPos {
		case LabelFirst:
			label = columns[0]
			columns = columns[1:]
		default:
			label = columns[len(columns)-1]
			columns = columns[:len(columns)-1]
		}
		label = strings.TrimSpace(label)

		features := make([]float64, len(columns))
		for i, col := range columns {
			v, err := strconv.ParseFloat(strings.TrimSpace(col), 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: line %d column %d: %w", lineNo, i+1, err)
			}
			features[i] = v
		}
		data = append(data, LabeledVector{features: features, label: label})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	return New(data), nil
}

// ReadCSVFile reads a delimited file from disk via ReadCSV.
func ReadCSVFile(path string, opts ReadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f, opts)
}
