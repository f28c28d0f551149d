// Package ingest turns uploaded spreadsheet files into dataset tables.
//
// The engine never reads file bytes itself: this package is the boundary
// that parses CSV and Excel uploads (row 0 is the header) and hands the
// core a fully built Table. Parse failures are reported as *ParseError so
// the web layer can map them to user-facing messages; the current table
// is left unchanged by the caller on error.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/protractor09/ai-dashboard/internal/dataset"
	"github.com/xuri/excelize/v2"
)

// ErrEmptyFile is wrapped by ParseError when the upload has no rows at all.
var ErrEmptyFile = errors.New("file contains no rows")

// ErrUnsupportedFormat is wrapped by ParseError for unknown extensions.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ParseError describes a malformed or unreadable upload.
type ParseError struct {
	FileName string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.FileName, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads an uploaded file into a Table. The format is chosen by file
// extension: .csv is read with encoding/csv, .xlsx/.xlsm with excelize
// (first sheet only). Row 0 becomes the header; remaining rows become
// data rows, ragged rows included.
func Parse(fileName string, r io.Reader) (*dataset.Table, error) {
	var (
		rows [][]string
		err  error
	)

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		rows, err = readCSV(r)
	case ".xlsx", ".xlsm":
		rows, err = readWorkbook(r)
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return nil, &ParseError{FileName: fileName, Err: err}
	}

	if len(rows) == 0 {
		return nil, &ParseError{FileName: fileName, Err: ErrEmptyFile}
	}

	return dataset.New(rows[0], rows[1:], fileName), nil
}

// readCSV parses comma-separated input. Field counts are not enforced so
// ragged files survive, and a UTF-8 BOM from Windows tooling is skipped.
func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(newBOMSkippingReader(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	return rows, nil
}

// readWorkbook parses the first sheet of an Excel workbook.
func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrEmptyFile
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// bomSkippingReader wraps an io.Reader and drops a leading UTF-8 BOM
// (0xEF 0xBB 0xBF), which Windows spreadsheet tools commonly prepend.
type bomSkippingReader struct {
	reader  io.Reader
	checked bool
}

func newBOMSkippingReader(r io.Reader) *bomSkippingReader {
	return &bomSkippingReader{reader: r}
}

func (b *bomSkippingReader) Read(p []byte) (int, error) {
	if b.checked {
		return b.reader.Read(p)
	}
	b.checked = true

	head := make([]byte, 3)
	n, err := io.ReadFull(b.reader, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return 0, err
	}
	head = head[:n]

	if len(head) == 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		head = head[:0]
	}

	if len(head) > 0 {
		b.reader = io.MultiReader(strings.NewReader(string(head)), b.reader)
	}
	return b.reader.Read(p)
}
