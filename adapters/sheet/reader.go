package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"sheetlens/domain/table"
	"sheetlens/internal/errors"
)

// Reader decodes spreadsheet and CSV files into typed datasets
type Reader struct {
	fileType string // "xlsx" or "csv"
}

// NewReader creates a reader for the given filename; the extension selects
// the decoder. Returns an UNSUPPORTED_FILE error for unknown extensions.
func NewReader(filename string) (*Reader, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return &Reader{fileType: "xlsx"}, nil
	case ".csv":
		return &Reader{fileType: "csv"}, nil
	default:
		return nil, errors.New(errors.CodeUnsupportedFile,
			fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)))
	}
}

// DisplayName derives a dataset display name from the uploaded filename
func DisplayName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ReadFile decodes a file on disk into a dataset
func ReadFile(path string) (*table.Dataset, error) {
	reader, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()
	return reader.Read(f)
}

// Read decodes the stream into a dataset. The first row is the header; every
// later row becomes a Row keyed by the trimmed header names. Cells are parsed
// into the typed Value variant on the way in.
func (r *Reader) Read(stream io.Reader) (*table.Dataset, error) {
	start := time.Now()

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = readCSVRows(stream)
	default:
		rows, err = readExcelRows(stream)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.New(errors.CodeParseFailed, "file has no header row")
	}

	ds := buildDataset(rows)
	log.Printf("[SheetReader] %s decoded in %.2fms (%d columns, %d rows)",
		strings.ToUpper(r.fileType), float64(time.Since(start).Nanoseconds())/1e6,
		len(ds.Columns), ds.RowCount())
	return ds, nil
}

func readExcelRows(stream io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(stream)
	if err != nil {
		return nil, errors.WithCode(errors.CodeParseFailed,
			errors.Wrap(err, "failed to open workbook"))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New(errors.CodeParseFailed, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.WithCode(errors.CodeParseFailed,
			errors.Wrapf(err, "failed to read sheet %s", sheets[0]))
	}
	return rows, nil
}

func readCSVRows(stream io.Reader) ([][]string, error) {
	reader := csv.NewReader(stream)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WithCode(errors.CodeParseFailed,
			errors.Wrap(err, "failed to read CSV"))
	}
	return rows, nil
}

func buildDataset(rows [][]string) *table.Dataset {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]table.Row, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := make(table.Row, len(headers))
		for j, cell := range rows[i] {
			if j < len(headers) {
				row[headers[j]] = table.ParseCell(cell)
			}
		}
		dataRows = append(dataRows, row)
	}

	return &table.Dataset{Columns: headers, Rows: dataRows}
}
