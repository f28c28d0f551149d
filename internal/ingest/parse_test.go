package ingest

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParse_CSV(t *testing.T) {
	input := "Date,Revenue,Users\n2024-01-01,100,5\n2024-01-02,200,10\n"

	tbl, err := Parse("sales.csv", strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(tbl.Header) != 3 || tbl.Header[1] != "Revenue" {
		t.Errorf("header = %v", tbl.Header)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tbl.Rows))
	}
	if tbl.Rows[1][2] != "10" {
		t.Errorf("Rows[1][2] = %q, want 10", tbl.Rows[1][2])
	}
	if tbl.FileName != "sales.csv" {
		t.Errorf("FileName = %q", tbl.FileName)
	}
}

func TestParse_CSVWithBOM(t *testing.T) {
	input := "\xEF\xBB\xBFName,Value\na,1\n"

	tbl, err := Parse("bom.csv", strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tbl.Header[0] != "Name" {
		t.Errorf("header[0] = %q, BOM not skipped", tbl.Header[0])
	}
}

func TestParse_RaggedCSV(t *testing.T) {
	input := "A,B,C\n1,2\n3,4,5,6\n"

	tbl, err := Parse("ragged.csv", strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(tbl.Rows[0]) != 2 || len(tbl.Rows[1]) != 4 {
		t.Errorf("ragged rows not preserved: %v", tbl.Rows)
	}
}

func TestParse_EmptyCSV(t *testing.T) {
	_, err := Parse("empty.csv", strings.NewReader(""))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("error = %v, want wrapped ErrEmptyFile", err)
	}
}

func TestParse_UnsupportedExtension(t *testing.T) {
	_, err := Parse("data.pdf", strings.NewReader("x"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want wrapped ErrUnsupportedFormat", err)
	}
}

func TestParse_Workbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]string{
		{"Date", "Revenue", "Users"},
		{"2024-01-01", "100", "5"},
		{"2024-01-02", "200", "10"},
	}
	for r, row := range cells {
		for c, val := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				t.Fatalf("SetCellValue: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	tbl, err := Parse("sales.xlsx", &buf)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(tbl.Header) != 3 || len(tbl.Rows) != 2 {
		t.Errorf("workbook table = header %v, %d rows", tbl.Header, len(tbl.Rows))
	}
	if tbl.Rows[0][1] != "100" {
		t.Errorf("Rows[0][1] = %q, want 100", tbl.Rows[0][1])
	}
}

func TestParse_InvalidWorkbook(t *testing.T) {
	_, err := Parse("broken.xlsx", strings.NewReader("definitely not a zip"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("error = %v, want *ParseError", err)
	}
}
