package profile

import (
	"sheetlens/domain/table"
)

// ColumnKind represents the inferred data type of a column
type ColumnKind string

const (
	KindNumeric     ColumnKind = "numeric"
	KindCategorical ColumnKind = "categorical"
)

// Classifier decides whether a column holds numeric or categorical data.
// Implementations must be pure: same dataset and column in, same kind out.
type Classifier interface {
	Classify(ds *table.Dataset, column string) ColumnKind
}

// DefaultSampleSize is the number of leading rows the quick classifier reads
const DefaultSampleSize = 5

// QuickClassifier inspects only the first few rows of a column. Empty cells
// do not disqualify numeric status, so a column that is blank throughout the
// sample still classifies as numeric; a full scan avoids that weakness at the
// cost of reading every row.
type QuickClassifier struct {
	SampleSize int
}

// NewQuickClassifier creates a classifier sampling the first sampleSize rows.
// A non-positive sampleSize falls back to DefaultSampleSize.
func NewQuickClassifier(sampleSize int) *QuickClassifier {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return &QuickClassifier{SampleSize: sampleSize}
}

// Classify returns numeric iff every sampled value is empty or parses as a
// number. A single non-numeric, non-empty sample forces categorical.
func (c *QuickClassifier) Classify(ds *table.Dataset, column string) ColumnKind {
	limit := c.SampleSize
	if limit > ds.RowCount() {
		limit = ds.RowCount()
	}
	for i := 0; i < limit; i++ {
		if disqualifiesNumeric(ds.Rows[i].Get(column)) {
			return KindCategorical
		}
	}
	return KindNumeric
}

// FullScanClassifier applies the same rule as QuickClassifier but over every
// row, so sparse columns cannot be misread from an unlucky sample.
type FullScanClassifier struct{}

// NewFullScanClassifier creates a classifier that reads the whole column
func NewFullScanClassifier() *FullScanClassifier {
	return &FullScanClassifier{}
}

// Classify returns numeric iff every value in the column is empty or numeric
func (c *FullScanClassifier) Classify(ds *table.Dataset, column string) ColumnKind {
	for _, row := range ds.Rows {
		if disqualifiesNumeric(row.Get(column)) {
			return KindCategorical
		}
	}
	return KindNumeric
}

func disqualifiesNumeric(v table.Value) bool {
	if v.IsEmpty() {
		return false
	}
	_, ok := v.Float()
	return !ok
}
