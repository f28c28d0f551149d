package dataset

import "time"

// Row is a single data row. Rows may be shorter than the header when the
// source file was ragged; consumers must bounds-check cell access.
type Row []string

// Cell returns the cell at index i, or the empty string when the row is
// short or i is negative.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Table is the canonical in-memory representation of one uploaded dataset:
// an ordered header plus data rows. Header names are not required to be
// unique. A Table is immutable after creation; uploading a new file
// replaces the whole value rather than mutating it in place.
type Table struct {
	Header []string
	Rows   []Row

	FileName   string
	UploadedAt time.Time
}

// New builds a Table from a raw parsed 2D slice where row 0 is the header.
// Data rows are copied as-is, including short or ragged rows.
func New(header []string, rows [][]string, fileName string) *Table {
	t := &Table{
		Header:     append([]string(nil), header...),
		Rows:       make([]Row, len(rows)),
		FileName:   fileName,
		UploadedAt: time.Now(),
	}
	for i, r := range rows {
		t.Rows[i] = Row(append([]string(nil), r...))
	}
	return t
}

// ColumnIndex returns the position of name in the header, or -1 when the
// column does not exist. Match is exact and case-sensitive; the first
// occurrence wins when names repeat. Headers are small, so a linear scan
// is fine.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether name is present in the header.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// RowCount returns the number of data rows (the header is not a row).
func (t *Table) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
