package dataset

import (
	"strings"
	"testing"
)

func TestReadCSVLabelLast(t *testing.T) {
	in := "1.0, 2.0, Class-1\n3.0, 4.0, Class-2\n"
	ds, err := ReadCSV(strings.NewReader(in), ReadOptions{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", ds.Len())
	}
	row := ds.At(0)
	if row.Label() != "Class-1" {
		t.Fatalf("expected trimmed label Class-1, got %q", row.Label())
	}
	features := row.Features()
	if len(features) != 2 || features[0] != 1 || features[1] != 2 {
		t.Fatalf("unexpected features %v", features)
	}
}

func TestReadCSVLabelFirstWithHeader(t *testing.T) {
	in := "class;x;y\nA;0.5;0.25\nB;1.5;1.25\n"
	ds, err := ReadCSV(strings.NewReader(in), ReadOptions{
		Delimiter:  ";",
		SkipHeader: true,
		LabelPos:   LabelFirst,
	})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", ds.Len())
	}
	if ds.At(1).Label() != "B" {
		t.Fatalf("expected label B, got %q", ds.At(1).Label())
	}
	if got := ds.At(1).Features(); got[0] != 1.5 || got[1] != 1.25 {
		t.Fatalf("unexpected features %v", got)
	}
	if ds.Encoder().NumClasses() != 2 {
		t.Fatalf("expected 2 classes, got %d", ds.Encoder().NumClasses())
	}
}

func TestReadCSVNonNumericFeatureFailsWholeLoad(t *testing.T) {
	in := "1.0,2.0,A\noops,4.0,B\n"
	ds, err := ReadCSV(strings.NewReader(in), ReadOptions{})
	if err == nil {
		t.Fatal("expected parse failure")
	}
	if ds != nil {
		t.Fatal("no partial dataset may be returned")
	}
}

func TestReadCSVSkipsBlankLines(t *testing.T) {
	in := "1.0,A\n\n2.0,B\n"
	ds, err := ReadCSV(strings.NewReader(in), ReadOptions{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", ds.Len())
	}
}

func TestParseLabelPosition(t *testing.T) {
	if pos, err := ParseLabelPosition("first"); err != nil || pos != LabelFirst {
		t.Fatalf("first: pos=%v err=%v", pos, err)
	}
	if pos, err := ParseLabelPosition(""); err != nil || pos != LabelLast {
		t.Fatalf("default: pos=%v err=%v", pos, err)
	}
	if _, err := ParseLabelPosition("middle"); err == nil {
		t.Fatal("expected error for unknown position")
	}
}
