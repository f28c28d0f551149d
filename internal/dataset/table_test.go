package dataset

import "testing"

func TestNew_CopiesInput(t *testing.T) {
	header := []string{"A", "B"}
	rows := [][]string{{"1", "2"}}

	tbl := New(header, rows, "test.csv")

	header[0] = "mutated"
	rows[0][0] = "mutated"

	if tbl.Header[0] != "A" {
		t.Errorf("Header[0] = %q, want %q", tbl.Header[0], "A")
	}
	if tbl.Rows[0][0] != "1" {
		t.Errorf("Rows[0][0] = %q, want %q", tbl.Rows[0][0], "1")
	}
}

func TestColumnIndex(t *testing.T) {
	tbl := New([]string{"Date", "Revenue", "Users"}, nil, "")

	tests := []struct {
		name string
		want int
	}{
		{"Date", 0},
		{"Revenue", 1},
		{"Users", 2},
		{"revenue", -1}, // case-sensitive
		{"Missing", -1},
	}

	for _, tt := range tests {
		if got := tbl.ColumnIndex(tt.name); got != tt.want {
			t.Errorf("ColumnIndex(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestColumnIndex_FirstMatchWins(t *testing.T) {
	tbl := New([]string{"X", "Dup", "Dup"}, nil, "")
	if got := tbl.ColumnIndex("Dup"); got != 1 {
		t.Errorf("ColumnIndex(Dup) = %d, want 1", got)
	}
}

func TestRowCell_ShortRow(t *testing.T) {
	row := Row{"a"}

	if got := row.Cell(0); got != "a" {
		t.Errorf("Cell(0) = %q, want %q", got, "a")
	}
	if got := row.Cell(5); got != "" {
		t.Errorf("Cell(5) = %q, want empty", got)
	}
	if got := row.Cell(-1); got != "" {
		t.Errorf("Cell(-1) = %q, want empty", got)
	}
}
