package dataset

// filter.go implements the row-filtering stage of the view pipeline:
// free-text match, date-range match, then column projection.

import (
	"strings"
	"time"
)

// DateRange bounds the date filter. A zero time means that bound is unset.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether neither bound is set.
func (d DateRange) IsZero() bool {
	return d.Start.IsZero() && d.End.IsZero()
}

// Criteria captures the interactive filter directives. It is read-only to
// the filter stage; handlers build a fresh value per request.
type Criteria struct {
	// Text keeps a row when any cell contains it case-insensitively.
	// Empty means keep all rows.
	Text string

	// Dates constrains the first date-like column, when one exists.
	Dates DateRange

	// SelectedColumns projects rows down to these columns, in selection
	// order. Empty (or full-width) selection leaves rows untouched.
	SelectedColumns []string
}

// Filter applies the three stages in fixed order. Projection must run
// last: it changes row shape, and the row-level predicates are defined
// against the original shape.
func Filter(rows []Row, header []string, c Criteria) []Row {
	rows = filterText(rows, c.Text)
	rows = filterDates(rows, header, c.Dates)
	return projectRows(rows, header, c.SelectedColumns)
}

// filterText keeps rows where any cell contains text case-insensitively.
// The text is matched literally, whitespace included; only the truly empty
// string is a no-op.
func filterText(rows []Row, text string) []Row {
	if text == "" {
		return rows
	}
	text = strings.ToLower(text)
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), text) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// dateColumnIndex returns the first column whose name contains "date" or
// "time" case-insensitively, or -1.
func dateColumnIndex(header []string) int {
	for i, name := range header {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "date") || strings.Contains(lower, "time") {
			return i
		}
	}
	return -1
}

// filterDates keeps rows whose date cell falls inside the range. Cells
// that fail to parse as dates pass the filter (fail-open): dropping rows
// silently on bad data is worse than showing them.
func filterDates(rows []Row, header []string, d DateRange) []Row {
	if d.IsZero() {
		return rows
	}
	col := dateColumnIndex(header)
	if col < 0 {
		return rows
	}

	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		v, ok := ParseDate(row.Cell(col))
		if !ok {
			out = append(out, row)
			continue
		}
		if !d.Start.IsZero() && v.Before(d.Start) {
			continue
		}
		if !d.End.IsZero() && v.After(d.End) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// projectRows re-maps rows to the selected columns, in the order they were
// selected. Selection order wins over header order. A no-op when the
// selection is empty or covers the full header. Selected names missing
// from the header are skipped.
func projectRows(rows []Row, header []string, selected []string) []Row {
	indices := projectionIndices(header, selected)
	if indices == nil {
		return rows
	}

	out := make([]Row, len(rows))
	for i, row := range rows {
		projected := make(Row, 0, len(indices))
		for _, idx := range indices {
			projected = append(projected, row.Cell(idx))
		}
		out[i] = projected
	}
	return out
}

// ProjectHeader returns the header after column projection, matching the
// row shape Filter produces for the same criteria.
func ProjectHeader(header []string, selected []string) []string {
	indices := projectionIndices(header, selected)
	if indices == nil {
		return header
	}
	out := make([]string, 0, len(indices))
	for _, idx := range indices {
		out = append(out, header[idx])
	}
	return out
}

// projectionIndices resolves the selection to header positions, or nil
// when projection should not apply.
func projectionIndices(header []string, selected []string) []int {
	if len(selected) == 0 || len(selected) >= len(header) {
		return nil
	}
	indices := make([]int, 0, len(selected))
	for _, name := range selected {
		for i, h := range header {
			if h == name {
				indices = append(indices, i)
				break
			}
		}
	}
	if len(indices) == 0 {
		return nil
	}
	return indices
}
