package dataset

// chart.go implements chart axis selection and series projection.

import (
	"encoding/json"
	"math"
	"strings"
)

// ChartType selects the rendering shape only; it never affects which data
// is extracted.
type ChartType string

const (
	ChartBar   ChartType = "bar"
	ChartLine  ChartType = "line"
	ChartPie   ChartType = "pie"
	ChartDonut ChartType = "donut"
)

// Valid reports whether ct is one of the four known chart types.
func (ct ChartType) Valid() bool {
	switch ct {
	case ChartBar, ChartLine, ChartPie, ChartDonut:
		return true
	}
	return false
}

// ParseChartType normalizes a raw chart type string.
func ParseChartType(s string) (ChartType, bool) {
	ct := ChartType(strings.ToLower(strings.TrimSpace(s)))
	return ct, ct.Valid()
}

// Selection is the resolved (type, x column, y column) tuple driving the
// chart view. It is produced either by direct user input or by the
// instruction resolver.
type Selection struct {
	Type    ChartType `json:"chartType"`
	XColumn string    `json:"xColumn"`
	YColumn string    `json:"yColumn"`
}

// Point is a single y-axis value. NaN marks a gap (a non-numeric cell) and
// marshals as JSON null so renderers skip it instead of crashing.
type Point float64

// MarshalJSON encodes NaN points as null.
func (p Point) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(p)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(p))
}

// UnmarshalJSON decodes null back into a NaN gap.
func (p *Point) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Point(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Point(v)
	return nil
}

// Gap reports whether the point is a non-numeric gap.
func (p Point) Gap() bool {
	return math.IsNaN(float64(p))
}

// Series is a chart-ready projection of one x/y column pair.
type Series struct {
	Type   ChartType `json:"chartType"`
	Name   string    `json:"name"`
	Labels []string  `json:"labels"`
	Points []Point   `json:"points"`
}

// Project maps the selection over the table. Labels are the x-column
// values across all data rows; points are the y-column cells coerced to
// numbers with NaN gaps. A column name missing from the header yields an
// empty (degenerate) series rather than an error; renderers show nothing.
func Project(t *Table, sel Selection) Series {
	s := Series{
		Type:   sel.Type,
		Name:   sel.YColumn,
		Labels: []string{},
		Points: []Point{},
	}
	if t == nil {
		return s
	}

	if xi := t.ColumnIndex(sel.XColumn); xi >= 0 {
		for _, row := range t.Rows {
			s.Labels = append(s.Labels, row.Cell(xi))
		}
	}
	if yi := t.ColumnIndex(sel.YColumn); yi >= 0 {
		for _, row := range t.Rows {
			if v, ok := parseFloat(row.Cell(yi)); ok {
				s.Points = append(s.Points, Point(v))
			} else {
				s.Points = append(s.Points, Point(math.NaN()))
			}
		}
	}
	return s
}
