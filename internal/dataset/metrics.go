package dataset

// Well-known metric columns, matched against the header case-sensitively.
const (
	revenueColumn     = "Revenue"
	usersColumn       = "Users"
	conversionsColumn = "Conversions"
	growthColumn      = "Growth"
)

// Metrics holds the summary statistics shown on the dashboard cards.
// They are derived entirely from the current Table and recomputed whenever
// it changes; they are never persisted.
type Metrics struct {
	Revenue     float64 `json:"revenue"`
	Users       int64   `json:"users"`
	Conversions int64   `json:"conversions"`
	Growth      float64 `json:"growth"`
}

// ComputeMetrics derives Metrics from the table by exact column-name
// lookup. A missing column contributes zero; an unparsable cell counts as
// zero. Growth is the arithmetic mean over its column, defined as 0 when
// there are no data rows so the UI never sees NaN.
//
// The function is pure and must never take the dashboard down: any panic
// from unexpected shapes degrades to zero-valued Metrics.
func ComputeMetrics(t *Table) (m Metrics) {
	defer func() {
		if r := recover(); r != nil {
			m = Metrics{}
		}
	}()

	if t == nil || len(t.Rows) == 0 {
		return Metrics{}
	}

	revenueIdx := t.ColumnIndex(revenueColumn)
	usersIdx := t.ColumnIndex(usersColumn)
	conversionsIdx := t.ColumnIndex(conversionsColumn)
	growthIdx := t.ColumnIndex(growthColumn)

	var growthSum float64
	for _, row := range t.Rows {
		if revenueIdx >= 0 {
			v, _ := parseFloat(row.Cell(revenueIdx))
			m.Revenue += v
		}
		if usersIdx >= 0 {
			v, _ := parseInt(row.Cell(usersIdx))
			m.Users += v
		}
		if conversionsIdx >= 0 {
			v, _ := parseInt(row.Cell(conversionsIdx))
			m.Conversions += v
		}
		if growthIdx >= 0 {
			v, _ := parseFloat(row.Cell(growthIdx))
			growthSum += v
		}
	}

	if growthIdx >= 0 {
		m.Growth = growthSum / float64(len(t.Rows))
	}

	return m
}
