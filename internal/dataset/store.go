package dataset

// store.go holds the current dataset snapshot and everything derived from
// it. The store is the only mutable state in the package: uploads replace
// the table, instruction resolutions replace the chart selection, and the
// metrics pulse drifts the displayed metrics copy.

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Info summarizes the current dataset for listing endpoints.
type Info struct {
	ID         string   `json:"id"`
	FileName   string   `json:"fileName"`
	UploadedAt string   `json:"uploadedAt"`
	Columns    []string `json:"columns"`
	RowCount   int      `json:"rowCount"`
}

// Store owns the current Table snapshot, the baseline and live Metrics,
// and the applied chart Selection. All access goes through the mutex so
// readers always see a consistent snapshot; the Table itself is immutable,
// so handing out the pointer is safe.
type Store struct {
	mu sync.RWMutex

	id       string
	table    *Table
	baseline Metrics
	live     Metrics

	selection    Selection
	hasSelection bool

	// Instruction resolutions carry a token issued at submission time.
	// A resolution older than the newest applied one is stale and must
	// not overwrite the selection, even if its response arrives last.
	issuedToken  uint64
	appliedToken uint64
}

// NewStore returns an empty store with no dataset loaded.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new table snapshot, recomputes baseline metrics, and
// clears the chart selection (its columns belong to the previous dataset).
// Returns the new dataset ID.
func (s *Store) Replace(t *Table) string {
	metrics := ComputeMetrics(t)
	id := uuid.NewString()

	s.mu.Lock()
	s.id = id
	s.table = t
	s.baseline = metrics
	s.live = metrics
	s.selection = Selection{}
	s.hasSelection = false
	s.mu.Unlock()

	slog.Info("dataset replaced",
		"dataset_id", id,
		"file", t.FileName,
		"columns", len(t.Header),
		"rows", len(t.Rows),
	)
	return id
}

// Table returns the current snapshot, or false when nothing is loaded.
func (s *Store) Table() (*Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table, s.table != nil
}

// Info returns dataset metadata, or false when nothing is loaded.
func (s *Store) Info() (Info, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.table == nil {
		return Info{}, false
	}
	return Info{
		ID:         s.id,
		FileName:   s.table.FileName,
		UploadedAt: s.table.UploadedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Columns:    s.table.Header,
		RowCount:   len(s.table.Rows),
	}, true
}

// Metrics returns the baseline metrics computed from the table. These are
// authoritative; the pulse never touches them.
func (s *Store) Metrics() Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseline
}

// LiveMetrics returns the displayed metrics copy, which the pulse may have
// drifted slightly from baseline for the cosmetic "live" effect.
func (s *Store) LiveMetrics() Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.live
}

// NextToken issues an instruction-ordering token. Callers grab one before
// sending an instruction to the resolver and pass it to ApplySelection
// with the outcome.
func (s *Store) NextToken() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issuedToken++
	return s.issuedToken
}

// ApplySelection installs a chart selection resolved under token. It
// reports false and leaves the current selection untouched when a newer
// resolution has already been applied (last submitted wins, not last
// arrived).
func (s *Store) ApplySelection(sel Selection, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token < s.appliedToken {
		slog.Debug("stale chart selection dropped",
			"token", token,
			"applied_token", s.appliedToken,
		)
		return false
	}
	s.appliedToken = token
	s.selection = sel
	s.hasSelection = true
	return true
}

// SetSelection installs a direct user chart selection. Direct choices
// always win over in-flight instruction resolutions.
func (s *Store) SetSelection(sel Selection) {
	s.ApplySelection(sel, s.NextToken())
}

// Selection returns the applied chart selection, or false when none has
// been chosen since the last upload.
func (s *Store) Selection() (Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection, s.hasSelection
}
