package norm

import (
	"gonum.org/v1/gonum/mat"

	"mlpforge/internal/dataset"
)

// NormalizeDataset rescales every feature column of the dataset against its
// own statistics and returns a new dataset with the original labels and
// label encoder reattached. The input dataset is not modified.
func NormalizeDataset(m Method, ds *dataset.Dataset) *dataset.Dataset {
	if ds.Len() == 0 {
		return ds
	}
	matrix := matrixFromRows(ds.Features())
	rows, cols := matrix.Dims()

	column := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(column, j, matrix)
		m.NormalizeInPlace(column)
		matrix.SetCol(j, column)
	}

	normalized := make([]dataset.LabeledVector, rows)
	for i := 0; i < rows; i++ {
		normalized[i] = dataset.NewLabeledVector(matrix.RawRowView(i), ds.At(i).Label())
	}
	return dataset.NewWithEncoder(normalized, ds.Encoder())
}

// NormalizeExternal rescales the test vectors column by column using
// statistics computed from the reference dataset only, so nothing about the
// test vectors themselves influences the scaling. Neither input is modified.
func NormalizeExternal(m Method, testVectors [][]float64, reference *dataset.Dataset) [][]float64 {
	if len(testVectors) == 0 {
		return nil
	}
	testMatrix := matrixFromRows(testVectors)
	refMatrix := matrixFromRows(reference.Features())

	testRows, cols := testMatrix.Dims()
	refRows, _ := refMatrix.Dims()

	testColumn := make([]float64, testRows)
	refColumn := make([]float64, refRows)
	for j := 0; j < cols; j++ {
		mat.Col(refColumn, j, refMatrix)
		a, b := m.Stats(refColumn)
		mat.Col(testColumn, j, testMatrix)
		m.NormalizeWith(testColumn, a, b)
		testMatrix.SetCol(j, testColumn)
	}

	normalized := make([][]float64, testRows)
	for i := 0; i < testRows; i++ {
		row := make([]float64, cols)
		copy(row, testMatrix.RawRowView(i))
		normalized[i] = row
	}
	return normalized
}

// matrixFromRows lays the row vectors out as a dense matrix. Rows of uneven
// length make SetRow panic, which is where a mixed-dimension dataset first
// surfaces.
func matrixFromRows(rows [][]float64) *mat.Dense {
	matrix := mat.NewDense(len(rows), len(rows[0]), nil)
	for i, row := range rows {
		matrix.SetRow(i, row)
	}
	return matrix
}
