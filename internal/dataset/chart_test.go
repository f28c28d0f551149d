package dataset

import (
	"encoding/json"
	"strings"
	"testing"
)

func chartTable() *Table {
	return New(
		[]string{"Date", "Revenue", "Users"},
		[][]string{
			{"2024-01-01", "100", "5"},
			{"2024-01-02", "n/a", "10"},
			{"2024-01-03", "150", "8"},
		},
		"",
	)
}

func TestProject_LabelsAndPoints(t *testing.T) {
	s := Project(chartTable(), Selection{Type: ChartLine, XColumn: "Date", YColumn: "Revenue"})

	if len(s.Labels) != 3 || s.Labels[0] != "2024-01-01" {
		t.Errorf("labels = %v", s.Labels)
	}
	if len(s.Points) != 3 {
		t.Fatalf("points = %v, want 3 values", s.Points)
	}
	if float64(s.Points[0]) != 100 {
		t.Errorf("points[0] = %v, want 100", s.Points[0])
	}
	if !s.Points[1].Gap() {
		t.Errorf("points[1] should be a gap for %q", "n/a")
	}
	if s.Name != "Revenue" {
		t.Errorf("name = %q, want Revenue", s.Name)
	}
}

func TestProject_MissingColumnsYieldEmptySeries(t *testing.T) {
	s := Project(chartTable(), Selection{Type: ChartBar, XColumn: "Nope", YColumn: "AlsoNope"})
	if len(s.Labels) != 0 || len(s.Points) != 0 {
		t.Errorf("missing columns: labels=%v points=%v, want empty", s.Labels, s.Points)
	}
}

func TestProject_NilTable(t *testing.T) {
	s := Project(nil, Selection{Type: ChartBar, XColumn: "X", YColumn: "Y"})
	if len(s.Labels) != 0 || len(s.Points) != 0 {
		t.Errorf("nil table should yield empty series")
	}
}

func TestSeries_GapEncodesAsNull(t *testing.T) {
	s := Project(chartTable(), Selection{Type: ChartLine, XColumn: "Date", YColumn: "Revenue"})

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), "[100,null,150]") {
		t.Errorf("points encoding = %s, want [100,null,150]", data)
	}

	var back Series
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Points[1].Gap() {
		t.Errorf("decoded points[1] should stay a gap")
	}
}

func TestParseChartType(t *testing.T) {
	for _, valid := range []string{"bar", "line", "pie", "donut", " Bar "} {
		if _, ok := ParseChartType(valid); !ok {
			t.Errorf("ParseChartType(%q) rejected", valid)
		}
	}
	for _, invalid := range []string{"", "scatter", "bars"} {
		if _, ok := ParseChartType(invalid); ok {
			t.Errorf("ParseChartType(%q) accepted", invalid)
		}
	}
}
