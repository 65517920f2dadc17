package profile

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sheetlens/domain/table"
)

// ColumnProfile summarizes one column's inferred type and missing-value shape
type ColumnProfile struct {
	Name         string     `json:"name"`
	Kind         ColumnKind `json:"kind"`
	MissingCount int        `json:"missing_count"`
	MissingRate  float64    `json:"missing_rate"`
}

// ProfileDataset classifies every column of the dataset, in header order.
// Columns are independent, so classification fans out one goroutine per
// column; results land in header order regardless of completion order.
func ProfileDataset(ctx context.Context, ds *table.Dataset, classifier Classifier) ([]ColumnProfile, error) {
	profiles := make([]ColumnProfile, len(ds.Columns))

	g, _ := errgroup.WithContext(ctx)
	for i, column := range ds.Columns {
		g.Go(func() error {
			profiles[i] = profileColumn(ds, column, classifier)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profiles, nil
}

func profileColumn(ds *table.Dataset, column string, classifier Classifier) ColumnProfile {
	missing := 0
	for _, row := range ds.Rows {
		if row.Get(column).IsEmpty() {
			missing++
		}
	}
	rate := 0.0
	if ds.RowCount() > 0 {
		rate = float64(missing) / float64(ds.RowCount())
	}
	return ColumnProfile{
		Name:         column,
		Kind:         classifier.Classify(ds, column),
		MissingCount: missing,
		MissingRate:  rate,
	}
}
