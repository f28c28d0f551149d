package dataset

import (
	"reflect"
	"testing"
)

func viewTable() *Table {
	return New(
		[]string{"Date", "Revenue", "Users"},
		[][]string{
			{"2024-01-01", "100", "5"},
			{"2024-01-02", "200", "10"},
		},
		"sales.csv",
	)
}

func TestBuildView_Defaults(t *testing.T) {
	v := BuildView(viewTable(), NewViewState())

	if v.TotalRows != 2 || v.TotalPages != 1 || len(v.Rows) != 2 {
		t.Errorf("view = %+v, want all rows on one page", v)
	}
	if !reflect.DeepEqual(v.Header, []string{"Date", "Revenue", "Users"}) {
		t.Errorf("header = %v", v.Header)
	}
}

func TestBuildView_SortDescThenFilter(t *testing.T) {
	state := NewViewState()
	state.Sort = SortSpec{Column: 1, Direction: Desc}

	v := BuildView(viewTable(), state)
	if v.Rows[0][0] != "2024-01-02" {
		t.Errorf("sorted by Revenue desc: first row = %v, want 2024-01-02", v.Rows[0])
	}

	state.Criteria.Text = "2024-01-02"
	v = BuildView(viewTable(), state)
	if v.TotalRows != 1 {
		t.Errorf("filtered TotalRows = %d, want 1", v.TotalRows)
	}
}

func TestBuildView_DateRangeScenario(t *testing.T) {
	start, _ := ParseDate("2024-01-02")
	state := NewViewState()
	state.Criteria.Dates = DateRange{Start: start}

	v := BuildView(viewTable(), state)
	if v.TotalRows != 1 || v.Rows[0][0] != "2024-01-02" {
		t.Errorf("date range view = %+v, want only the second row", v)
	}
}

func TestBuildView_ProjectionShapesSortAndHeader(t *testing.T) {
	state := NewViewState()
	state.Criteria.SelectedColumns = []string{"Users", "Date"}
	// Column 0 of the projected shape is Users.
	state.Sort = SortSpec{Column: 0, Direction: Desc}

	v := BuildView(viewTable(), state)
	if !reflect.DeepEqual(v.Header, []string{"Users", "Date"}) {
		t.Fatalf("header = %v", v.Header)
	}
	if v.Rows[0][0] != "10" {
		t.Errorf("rows = %v, want sorted by projected Users desc", v.Rows)
	}
}

func TestBuildView_StalePageRendersEmpty(t *testing.T) {
	// Filter shrinks the set while page stays at 2: the page renders
	// empty rather than being clamped back into range.
	state := NewViewState()
	state.Page = 2
	state.Criteria.Text = "2024-01-01"

	v := BuildView(viewTable(), state)
	if len(v.Rows) != 0 {
		t.Errorf("stale page rows = %v, want empty", v.Rows)
	}
	if v.TotalRows != 1 || v.TotalPages != 1 {
		t.Errorf("view = %+v", v)
	}
}

func TestBuildView_NilTable(t *testing.T) {
	v := BuildView(nil, NewViewState())
	if len(v.Rows) != 0 || v.TotalRows != 0 {
		t.Errorf("nil table view = %+v, want empty", v)
	}
}

func TestBuildRows_ForExport(t *testing.T) {
	state := NewViewState()
	state.Sort = SortSpec{Column: 1, Direction: Desc}

	header, rows := BuildRows(viewTable(), state)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (export ignores pagination)", len(rows))
	}
	if rows[0][1] != "200" {
		t.Errorf("rows not sorted for export: %v", rows)
	}
	if len(header) != 3 {
		t.Errorf("header = %v", header)
	}
}
