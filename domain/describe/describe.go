package describe

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"sheetlens/domain/profile"
	"sheetlens/domain/table"
)

// NumericSummary holds descriptive statistics for a numeric column.
// EmptyCount includes both blank cells and values that failed the numeric
// parse; invalid values are excluded from every aggregate.
type NumericSummary struct {
	Count      int     `json:"count"`
	EmptyCount int     `json:"empty_count"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Range      float64 `json:"range"`
	Sum        float64 `json:"sum"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	StdDev     float64 `json:"std_dev"`
	Q1         float64 `json:"q1"`
	Q3         float64 `json:"q3"`
	Skewness   float64 `json:"skewness"`
	Kurtosis   float64 `json:"kurtosis"`
}

// ValueCount represents a categorical value and its frequency
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CategoricalSummary holds descriptive statistics for a categorical column
type CategoricalSummary struct {
	Count         int          `json:"count"`
	EmptyCount    int          `json:"empty_count"`
	UniqueCount   int          `json:"unique_count"`
	Mode          string       `json:"mode"`
	ModeFrequency int          `json:"mode_frequency"`
	Frequencies   []ValueCount `json:"frequencies"`
}

// ColumnSummary is the result of describing one column. Exactly one of
// Numeric and Categorical is populated, matching Kind.
type ColumnSummary struct {
	Column      string              `json:"column"`
	Kind        profile.ColumnKind  `json:"kind"`
	Numeric     *NumericSummary     `json:"numeric,omitempty"`
	Categorical *CategoricalSummary `json:"categorical,omitempty"`
}

// TopFrequencies caps the categorical frequency list
const TopFrequencies = 10

// Describe computes the full summary for a column whose kind is already
// known. Returns nil when the dataset is empty, no column is selected, or a
// numeric column has zero parseable values; callers treat nil as a
// displayable "no statistics" state, not a failure.
func Describe(ds *table.Dataset, column string, kind profile.ColumnKind) *ColumnSummary {
	if ds == nil || ds.IsEmpty() || column == "" {
		return nil
	}

	summary := &ColumnSummary{Column: column, Kind: kind}
	switch kind {
	case profile.KindNumeric:
		numeric := describeNumeric(ds, column)
		if numeric == nil {
			return nil
		}
		summary.Numeric = numeric
	default:
		summary.Categorical = describeCategorical(ds, column)
	}
	return summary
}

func describeNumeric(ds *table.Dataset, column string) *NumericSummary {
	values := make([]float64, 0, ds.RowCount())
	emptyCount := 0
	for _, row := range ds.Rows {
		n, ok := row.Get(column).Float()
		if !ok {
			emptyCount++
			continue
		}
		values = append(values, n)
	}
	if len(values) == 0 {
		return nil
	}

	data := stats.Float64Data(values)
	sum, err := data.Sum()
	if err != nil {
		return nil
	}
	mean, err := data.Mean()
	if err != nil {
		return nil
	}
	median, err := data.Median()
	if err != nil {
		return nil
	}
	min, err := data.Min()
	if err != nil {
		return nil
	}
	max, err := data.Max()
	if err != nil {
		return nil
	}
	stdDev, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return nil
	}

	// Positional quartiles on the ascending-sorted values: simple floor
	// indexing, not an interpolated percentile.
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	q1 := sorted[int(math.Floor(float64(len(sorted))*0.25))]
	q3 := sorted[int(math.Floor(float64(len(sorted))*0.75))]

	summary := &NumericSummary{
		Count:      len(values),
		EmptyCount: emptyCount,
		Min:        min,
		Max:        max,
		Range:      max - min,
		Sum:        sum,
		Mean:       mean,
		Median:     median,
		StdDev:     stdDev,
		Q1:         q1,
		Q3:         q3,
	}
	// Shape statistics are undefined for tiny or constant samples; report 0
	// rather than NaN so results stay JSON-encodable.
	if stdDev > 0 {
		if len(values) >= 3 {
			summary.Skewness = stat.Skew(sorted, nil)
		}
		if len(values) >= 4 {
			summary.Kurtosis = stat.ExKurtosis(sorted, nil)
		}
	}
	return summary
}

func describeCategorical(ds *table.Dataset, column string) *CategoricalSummary {
	// Frequencies keyed by the value's string form; key order records
	// first encounter so that ties resolve to the earliest value.
	counts := make(map[string]int)
	order := make([]string, 0)
	emptyCount := 0

	for _, row := range ds.Rows {
		v := row.Get(column)
		if v.IsEmpty() {
			emptyCount++
			continue
		}
		key := v.String()
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	mode := ""
	modeFrequency := 0
	frequencies := make([]ValueCount, 0, len(order))
	for _, key := range order {
		if counts[key] > modeFrequency {
			mode = key
			modeFrequency = counts[key]
		}
		frequencies = append(frequencies, ValueCount{Value: key, Count: counts[key]})
	}

	sort.SliceStable(frequencies, func(i, j int) bool {
		return frequencies[i].Count > frequencies[j].Count
	})
	if len(frequencies) > TopFrequencies {
		frequencies = frequencies[:TopFrequencies]
	}

	return &CategoricalSummary{
		Count:         ds.RowCount() - emptyCount,
		EmptyCount:    emptyCount,
		UniqueCount:   len(order),
		Mode:          mode,
		ModeFrequency: modeFrequency,
		Frequencies:   frequencies,
	}
}
