package describe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetlens/domain/profile"
	"sheetlens/domain/table"
)

func datasetFromCells(column string, cells ...string) *table.Dataset {
	rows := make([]table.Row, len(cells))
	for i, cell := range cells {
		rows[i] = table.Row{column: table.ParseCell(cell)}
	}
	return &table.Dataset{Columns: []string{column}, Rows: rows}
}

func TestDescribeNumericBasic(t *testing.T) {
	ds := datasetFromCells("a", "1", "2", "3")
	summary := Describe(ds, "a", profile.KindNumeric)
	require.NotNil(t, summary)
	require.NotNil(t, summary.Numeric)

	n := summary.Numeric
	assert.Equal(t, 3, n.Count)
	assert.Equal(t, 0, n.EmptyCount)
	assert.Equal(t, 1.0, n.Min)
	assert.Equal(t, 3.0, n.Max)
	assert.Equal(t, 2.0, n.Range)
	assert.Equal(t, 6.0, n.Sum)
	assert.Equal(t, 2.0, n.Mean)
	assert.Equal(t, 2.0, n.Median)
	assert.InDelta(t, math.Sqrt(2.0/3.0), n.StdDev, 1e-9)
	assert.Equal(t, 1.0, n.Q1)
	assert.Equal(t, 3.0, n.Q3)
}

func TestDescribeNumericExcludesInvalid(t *testing.T) {
	// Invalid and blank values are excluded from aggregates but counted, so
	// count + empty always covers every row.
	ds := datasetFromCells("a", "10", "oops", "", "30")
	summary := Describe(ds, "a", profile.KindNumeric)
	require.NotNil(t, summary)

	n := summary.Numeric
	assert.Equal(t, 2, n.Count)
	assert.Equal(t, 2, n.EmptyCount)
	assert.Equal(t, n.Count+n.EmptyCount, ds.RowCount())
	assert.Equal(t, 40.0, n.Sum)
	assert.Equal(t, 20.0, n.Mean)
}

func TestDescribeNumericEvenMedianAndFloorQuartiles(t *testing.T) {
	ds := datasetFromCells("a", "4", "1", "3", "2")
	summary := Describe(ds, "a", profile.KindNumeric)
	require.NotNil(t, summary)

	n := summary.Numeric
	assert.Equal(t, 2.5, n.Median)
	// floor(4*0.25)=1 and floor(4*0.75)=3 into the sorted values
	assert.Equal(t, 2.0, n.Q1)
	assert.Equal(t, 4.0, n.Q3)
}

func TestDescribeNumericOrderingInvariant(t *testing.T) {
	ds := datasetFromCells("a", "9", "4", "7", "1", "5", "5", "2", "8")
	summary := Describe(ds, "a", profile.KindNumeric)
	require.NotNil(t, summary)

	n := summary.Numeric
	assert.LessOrEqual(t, n.Min, n.Q1)
	assert.LessOrEqual(t, n.Q1, n.Median)
	assert.LessOrEqual(t, n.Median, n.Q3)
	assert.LessOrEqual(t, n.Q3, n.Max)
	assert.GreaterOrEqual(t, n.Mean, n.Min)
	assert.LessOrEqual(t, n.Mean, n.Max)
	assert.GreaterOrEqual(t, n.StdDev, 0.0)
}

func TestDescribeNumericConstantColumn(t *testing.T) {
	ds := datasetFromCells("a", "5", "5", "5")
	summary := Describe(ds, "a", profile.KindNumeric)
	require.NotNil(t, summary)
	assert.Equal(t, 0.0, summary.Numeric.StdDev)
	assert.Equal(t, 0.0, summary.Numeric.Range)
}

func TestDescribeNumericNoValidValues(t *testing.T) {
	ds := datasetFromCells("a", "x", "y", "")
	assert.Nil(t, Describe(ds, "a", profile.KindNumeric))
}

func TestDescribeCategoricalBasic(t *testing.T) {
	ds := datasetFromCells("b", "x", "y", "x")
	summary := Describe(ds, "b", profile.KindCategorical)
	require.NotNil(t, summary)
	require.NotNil(t, summary.Categorical)

	cat := summary.Categorical
	assert.Equal(t, 3, cat.Count)
	assert.Equal(t, 0, cat.EmptyCount)
	assert.Equal(t, 2, cat.UniqueCount)
	assert.Equal(t, "x", cat.Mode)
	assert.Equal(t, 2, cat.ModeFrequency)
	require.Len(t, cat.Frequencies, 2)
	assert.Equal(t, ValueCount{Value: "x", Count: 2}, cat.Frequencies[0])
	assert.Equal(t, ValueCount{Value: "y", Count: 1}, cat.Frequencies[1])
}

func TestDescribeCategoricalTiesFirstSeen(t *testing.T) {
	ds := datasetFromCells("b", "beta", "alpha", "beta", "alpha")
	summary := Describe(ds, "b", profile.KindCategorical)
	require.NotNil(t, summary)

	cat := summary.Categorical
	assert.Equal(t, "beta", cat.Mode, "first-seen value wins frequency ties")
	assert.Equal(t, "beta", cat.Frequencies[0].Value)
	assert.Equal(t, "alpha", cat.Frequencies[1].Value)
}

func TestDescribeCategoricalTopTen(t *testing.T) {
	cells := make([]string, 0, 26)
	for c := 'a'; c <= 'z'; c++ {
		cells = append(cells, string(c))
	}
	ds := datasetFromCells("b", cells...)
	summary := Describe(ds, "b", profile.KindCategorical)
	require.NotNil(t, summary)

	cat := summary.Categorical
	assert.Equal(t, 26, cat.UniqueCount)
	assert.Len(t, cat.Frequencies, TopFrequencies)

	total := 0
	for _, vc := range cat.Frequencies {
		total += vc.Count
	}
	assert.LessOrEqual(t, total, cat.Count)
}

func TestDescribeCategoricalCountsEmpties(t *testing.T) {
	ds := datasetFromCells("b", "x", "", "y", "")
	summary := Describe(ds, "b", profile.KindCategorical)
	require.NotNil(t, summary)

	cat := summary.Categorical
	assert.Equal(t, 2, cat.Count)
	assert.Equal(t, 2, cat.EmptyCount)
	assert.Equal(t, cat.Count+cat.EmptyCount, ds.RowCount())
}

func TestDescribeCategoricalNumbersUseStringForm(t *testing.T) {
	// Scenario: [5, "abc", 7] classified categorical; numeric cells count by
	// their display form.
	ds := datasetFromCells("b", "5", "abc", "7")
	summary := Describe(ds, "b", profile.KindCategorical)
	require.NotNil(t, summary)

	cat := summary.Categorical
	assert.Equal(t, 3, cat.UniqueCount)
	assert.Equal(t, "5", cat.Mode)
	assert.Equal(t, 1, cat.ModeFrequency)
}

func TestDescribeUnavailable(t *testing.T) {
	empty := &table.Dataset{Columns: []string{"a"}, Rows: []table.Row{}}
	assert.Nil(t, Describe(empty, "a", profile.KindNumeric))
	assert.Nil(t, Describe(empty, "a", profile.KindCategorical))
	assert.Nil(t, Describe(nil, "a", profile.KindNumeric))

	ds := datasetFromCells("a", "1")
	assert.Nil(t, Describe(ds, "", profile.KindNumeric), "no column selected")
}

func TestDescribeIdempotent(t *testing.T) {
	ds := datasetFromCells("a", "3", "1", "2", "bad", "")
	first := Describe(ds, "a", profile.KindNumeric)
	second := Describe(ds, "a", profile.KindNumeric)
	assert.Equal(t, first, second)
}
