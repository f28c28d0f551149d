package dataset

// sort.go implements the ordering stage of the view pipeline.

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// NoSortColumn marks a SortSpec with no active sort key.
const NoSortColumn = -1

// SortSpec names the sort key (a column index into the current row shape)
// and direction. Column == NoSortColumn disables sorting.
type SortSpec struct {
	Column    int       `json:"column"`
	Direction Direction `json:"direction"`
}

// Unsorted returns a spec with no active sort key.
func Unsorted() SortSpec {
	return SortSpec{Column: NoSortColumn, Direction: Asc}
}

// Toggle returns the spec after a click on column: clicking the active
// column flips direction, clicking a new column resets to ascending.
func (s SortSpec) Toggle(column int) SortSpec {
	if s.Column == column {
		if s.Direction == Asc {
			s.Direction = Desc
		} else {
			s.Direction = Asc
		}
		return s
	}
	return SortSpec{Column: column, Direction: Asc}
}

// Sort orders rows by the spec and returns a new slice; the input is never
// mutated. When both cells at the key column parse fully as numbers they
// compare numerically, otherwise they compare as case-sensitive
// locale-aware strings. The sort is stable so repeated re-filtering does
// not visibly reorder equal-keyed rows between renders.
func Sort(rows []Row, spec SortSpec) []Row {
	if spec.Column < 0 {
		return rows
	}

	out := make([]Row, len(rows))
	copy(out, rows)

	col := collate.New(language.Und)
	desc := spec.Direction == Desc

	sort.SliceStable(out, func(i, j int) bool {
		c := compareCells(col, out[i].Cell(spec.Column), out[j].Cell(spec.Column))
		if desc {
			return c > 0
		}
		return c < 0
	})

	return out
}

// compareCells compares two cells numerically when both are numbers,
// falling back to collation order.
func compareCells(col *collate.Collator, a, b string) int {
	av, aok := numericValue(a)
	bv, bok := numericValue(b)
	if aok && bok {
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
	return col.CompareString(a, b)
}
