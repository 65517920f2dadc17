package table

import (
	"testing"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind ValueKind
		wantNum  float64
		wantStr  string
	}{
		{name: "integer", raw: "42", wantKind: KindNumber, wantNum: 42},
		{name: "float", raw: "3.14", wantKind: KindNumber, wantNum: 3.14},
		{name: "negative", raw: "-7", wantKind: KindNumber, wantNum: -7},
		{name: "scientific", raw: "1e3", wantKind: KindNumber, wantNum: 1000},
		{name: "padded number", raw: "  12.5  ", wantKind: KindNumber, wantNum: 12.5},
		{name: "text", raw: "hello", wantKind: KindText, wantStr: "hello"},
		{name: "mixed", raw: "12abc", wantKind: KindText, wantStr: "12abc"},
		{name: "nan stays text", raw: "NaN", wantKind: KindText, wantStr: "NaN"},
		{name: "inf stays text", raw: "Inf", wantKind: KindText, wantStr: "Inf"},
		{name: "blank", raw: "", wantKind: KindEmpty},
		{name: "whitespace only", raw: "   ", wantKind: KindEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseCell(tt.raw)
			if v.Kind != tt.wantKind {
				t.Fatalf("ParseCell(%q) kind = %s, want %s", tt.raw, v.Kind, tt.wantKind)
			}
			switch tt.wantKind {
			case KindNumber:
				n, ok := v.Float()
				if !ok || n != tt.wantNum {
					t.Errorf("ParseCell(%q).Float() = %v, %v; want %v, true", tt.raw, n, ok, tt.wantNum)
				}
			case KindText:
				if v.String() != tt.wantStr {
					t.Errorf("ParseCell(%q).String() = %q, want %q", tt.raw, v.String(), tt.wantStr)
				}
			case KindEmpty:
				if !v.IsEmpty() {
					t.Errorf("ParseCell(%q) should be empty", tt.raw)
				}
			}
		})
	}
}

func TestValueStringRoundTrip(t *testing.T) {
	if got := NewNumberValue(4).String(); got != "4" {
		t.Errorf("NewNumberValue(4).String() = %q, want %q", got, "4")
	}
	if got := NewNumberValue(2.5).String(); got != "2.5" {
		t.Errorf("NewNumberValue(2.5).String() = %q, want %q", got, "2.5")
	}
	if got := NewEmptyValue().String(); got != "" {
		t.Errorf("empty value String() = %q, want empty", got)
	}
}

func TestNewTextValueBlankCollapses(t *testing.T) {
	if !NewTextValue("").IsEmpty() {
		t.Error("NewTextValue(\"\") should collapse to Empty")
	}
}

func TestRowGetAbsentColumn(t *testing.T) {
	row := Row{"a": NewNumberValue(1)}
	if !row.Get("missing").IsEmpty() {
		t.Error("absent column should read as Empty")
	}
}

func TestDatasetSlice(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"a"},
		Rows: []Row{
			{"a": NewNumberValue(1)},
			{"a": NewNumberValue(2)},
			{"a": NewNumberValue(3)},
		},
	}

	if got := len(ds.Slice(0, 2)); got != 2 {
		t.Errorf("Slice(0,2) returned %d rows, want 2", got)
	}
	if got := len(ds.Slice(2, 5)); got != 1 {
		t.Errorf("Slice(2,5) returned %d rows, want 1", got)
	}
	if got := len(ds.Slice(10, 5)); got != 0 {
		t.Errorf("Slice past end returned %d rows, want 0", got)
	}
	if got := len(ds.Slice(-1, 2)); got != 2 {
		t.Errorf("Slice with negative offset returned %d rows, want 2", got)
	}

	slice := ds.Slice(1, 2)
	if n, _ := slice[0].Get("a").Float(); n != 2 {
		t.Errorf("Slice(1,2) first row = %v, want 2", n)
	}
}
