package table

// Row maps column names to typed cell values. Rows are schema-less: a column
// absent from a row reads as Empty.
type Row map[string]Value

// Get returns the value for a column, treating absent keys as Empty
func (r Row) Get(column string) Value {
	if v, ok := r[column]; ok {
		return v
	}
	return NewEmptyValue()
}

// Dataset is an ordered sequence of rows plus the header order they were
// ingested with. Row order matters only for display; statistics are
// order-independent.
type Dataset struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// RowCount returns the number of data rows
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

// IsEmpty returns true when the dataset has no rows
func (d *Dataset) IsEmpty() bool {
	return len(d.Rows) == 0
}

// Slice returns rows [offset, offset+limit) clamped to the dataset bounds,
// preserving ingestion order. Used for table browsing.
func (d *Dataset) Slice(offset, limit int) []Row {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(d.Rows) || limit <= 0 {
		return []Row{}
	}
	end := offset + limit
	if end > len(d.Rows) {
		end = len(d.Rows)
	}
	return d.Rows[offset:end]
}
