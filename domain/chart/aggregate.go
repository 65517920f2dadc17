package chart

import (
	"sheetlens/domain/table"
)

// Kind selects the chart shape the series is aggregated for
type Kind string

const (
	KindBar  Kind = "bar"
	KindLine Kind = "line"
	KindPie  Kind = "pie"
)

// ParseKind validates a chart kind string
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindBar, KindLine, KindPie:
		return Kind(s), true
	}
	return "", false
}

// UndefinedBucket is the group label for rows missing an x-value
const UndefinedBucket = "undefined"

// SeriesRow is one aggregated output row: an x-axis label plus the summed
// value of each requested y-field across the label's group.
type SeriesRow struct {
	Label  string             `json:"label"`
	Values map[string]float64 `json:"values"`
}

// PiePoint is the reduced pie-chart shape: one slice per x-value
type PiePoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Series is the aggregation result. Rows is populated for bar and line
// charts, Points for pie charts; Notice carries a non-fatal message when a
// request was adjusted (pie charts with extra y-fields).
type Series struct {
	Kind   Kind        `json:"kind"`
	Rows   []SeriesRow `json:"rows,omitempty"`
	Points []PiePoint  `json:"points,omitempty"`
	Notice string      `json:"notice,omitempty"`
}

// Aggregate reshapes the dataset into chart-ready rows: group by the string
// form of the x-field, sum each y-field per group, one output row per
// distinct x-value in first-seen order. Values that fail the numeric parse
// contribute 0 to the sum rather than being excluded — a chart bar still
// needs a total even when some of its rows are dirty. Returns an empty
// series when the dataset is empty, the x-field is unset, or no y-fields
// were requested.
func Aggregate(ds *table.Dataset, xField string, yFields []string, kind Kind) Series {
	series := Series{Kind: kind}
	if ds == nil || ds.IsEmpty() || xField == "" || len(yFields) == 0 {
		return series
	}

	if kind == KindPie && len(yFields) > 1 {
		series.Notice = "pie charts plot a single value; using " + yFields[0]
		yFields = yFields[:1]
	}

	sums := make(map[string]map[string]float64)
	order := make([]string, 0)

	for _, row := range ds.Rows {
		label := groupLabel(row.Get(xField))
		group, seen := sums[label]
		if !seen {
			group = make(map[string]float64, len(yFields))
			sums[label] = group
			order = append(order, label)
		}
		for _, field := range yFields {
			n, ok := row.Get(field).Float()
			if !ok {
				n = 0
			}
			group[field] += n
		}
	}

	if kind == KindPie {
		series.Points = make([]PiePoint, 0, len(order))
		for _, label := range order {
			series.Points = append(series.Points, PiePoint{
				Name:  label,
				Value: sums[label][yFields[0]],
			})
		}
		return series
	}

	series.Rows = make([]SeriesRow, 0, len(order))
	for _, label := range order {
		series.Rows = append(series.Rows, SeriesRow{Label: label, Values: sums[label]})
	}
	return series
}

func groupLabel(v table.Value) string {
	if v.IsEmpty() {
		return UndefinedBucket
	}
	return v.String()
}
