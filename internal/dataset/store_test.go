package dataset

import "testing"

func TestStore_ReplaceComputesMetricsAndClearsSelection(t *testing.T) {
	s := NewStore()
	s.SetSelection(Selection{Type: ChartBar, XColumn: "Date", YColumn: "Revenue"})

	id := s.Replace(viewTable())
	if id == "" {
		t.Fatal("Replace returned empty dataset ID")
	}

	if m := s.Metrics(); m.Revenue != 300 {
		t.Errorf("Metrics().Revenue = %v, want 300", m.Revenue)
	}
	if _, ok := s.Selection(); ok {
		t.Error("selection should be cleared on dataset replacement")
	}

	info, ok := s.Info()
	if !ok || info.RowCount != 2 || info.FileName != "sales.csv" {
		t.Errorf("Info() = %+v, %v", info, ok)
	}
}

func TestStore_EmptyStore(t *testing.T) {
	s := NewStore()
	if _, ok := s.Table(); ok {
		t.Error("empty store should report no table")
	}
	if _, ok := s.Info(); ok {
		t.Error("empty store should report no info")
	}
	if m := s.Metrics(); m != (Metrics{}) {
		t.Errorf("empty store metrics = %+v, want zero", m)
	}
}

func TestStore_StaleResolutionDoesNotWin(t *testing.T) {
	s := NewStore()
	s.Replace(viewTable())

	older := s.NextToken()
	newer := s.NextToken()

	want := Selection{Type: ChartLine, XColumn: "Date", YColumn: "Revenue"}
	if !s.ApplySelection(want, newer) {
		t.Fatal("newer resolution should apply")
	}

	stale := Selection{Type: ChartPie, XColumn: "Date", YColumn: "Users"}
	if s.ApplySelection(stale, older) {
		t.Error("stale resolution should be rejected")
	}

	got, ok := s.Selection()
	if !ok || got != want {
		t.Errorf("Selection() = %+v, want %+v", got, want)
	}
}

func TestStore_DirectChoiceWinsOverInFlight(t *testing.T) {
	s := NewStore()
	s.Replace(viewTable())

	inflight := s.NextToken()

	direct := Selection{Type: ChartBar, XColumn: "Date", YColumn: "Users"}
	s.SetSelection(direct)

	late := Selection{Type: ChartDonut, XColumn: "Date", YColumn: "Revenue"}
	if s.ApplySelection(late, inflight) {
		t.Error("late resolution should lose against a newer direct choice")
	}
	if got, _ := s.Selection(); got != direct {
		t.Errorf("Selection() = %+v, want the direct choice", got)
	}
}

func TestStore_PulseNeverTouchesBaseline(t *testing.T) {
	s := NewStore()
	s.Replace(viewTable())
	baseline := s.Metrics()

	for i := 0; i < 50; i++ {
		s.pulseOnce(5)
	}

	if got := s.Metrics(); got != baseline {
		t.Errorf("baseline drifted: %+v vs %+v", got, baseline)
	}

	live := s.LiveMetrics()
	if live.Revenue < baseline.Revenue*0.9 || live.Revenue > baseline.Revenue*1.1 {
		t.Errorf("live revenue %v outside drift bounds of %v", live.Revenue, baseline.Revenue)
	}
}

func TestStore_PulseNoopWithoutData(t *testing.T) {
	s := NewStore()
	s.pulseOnce(5)
	if m := s.LiveMetrics(); m != (Metrics{}) {
		t.Errorf("pulse on empty store produced %+v", m)
	}
}
