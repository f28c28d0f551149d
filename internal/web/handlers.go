package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/protractor09/ai-dashboard/internal/dataset"
	"github.com/protractor09/ai-dashboard/internal/export"
	"github.com/protractor09/ai-dashboard/internal/ingest"
	"github.com/protractor09/ai-dashboard/internal/logging"
	"github.com/protractor09/ai-dashboard/internal/resolver"
)

// handleUpload accepts a CSV or Excel file and replaces the current dataset.
// The whole table lives in memory, so admission is bounded two ways: the
// request body is capped at the configured size, and a semaphore limits how
// many uploads parse concurrently.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		s.respondBadRequest(w, r, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondBadRequest(w, r, "no file provided")
		return
	}
	defer file.Close()

	if err := s.limiter.Acquire(r.Context()); err != nil {
		s.respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	defer s.limiter.Release()

	table, err := ingest.Parse(header.Filename, file)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	id := s.store.Replace(table)

	logger := logging.FromContext(r.Context())
	logger.Info("dataset replaced",
		"dataset_id", id,
		"file", header.Filename,
		"rows", table.RowCount(),
		"columns", len(table.Header),
	)

	info, _ := s.store.Info()
	writeJSON(w, uploadResponse{
		Dataset: info,
		Metrics: s.store.Metrics(),
	})
}

type uploadResponse struct {
	Dataset dataset.Info    `json:"dataset"`
	Metrics dataset.Metrics `json:"metrics"`
}

// handleDatasetInfo returns a summary of the current dataset.
func (s *Server) handleDatasetInfo(w http.ResponseWriter, r *http.Request) {
	info, ok := s.store.Info()
	if !ok {
		s.respondError(w, r, errNoDataset, http.StatusNotFound)
		return
	}
	writeJSON(w, info)
}

// handleView returns one page of the dataset shaped by the filter, sort,
// and pagination parameters. Every call recomputes the view from the full
// table snapshot.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	table, ok := s.store.Table()
	if !ok {
		s.respondError(w, r, errNoDataset, http.StatusNotFound)
		return
	}

	state := parseViewState(r)
	writeJSON(w, dataset.BuildView(table, state))
}

// handleMetrics returns the aggregate metric cards. By default the live
// values (with the cosmetic pulse drift applied) are returned; live=false
// asks for the exact baseline computed at upload time.
//
// Without a dataset the metrics are all zero, which renders as empty cards
// rather than an error.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("live") == "false" {
		writeJSON(w, s.store.Metrics())
		return
	}
	writeJSON(w, s.store.LiveMetrics())
}

// handleChart returns the chart series for the current selection. When
// type, x, and y parameters are present they replace the selection first;
// a direct pick counts as the newest choice and invalidates any
// instruction resolution still in flight.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("type") != "" || q.Get("x") != "" || q.Get("y") != "" {
		chartType, ok := dataset.ParseChartType(q.Get("type"))
		if !ok {
			s.respondBadRequest(w, r, "unknown chart type: "+q.Get("type"))
			return
		}
		x, y := q.Get("x"), q.Get("y")
		if x == "" || y == "" {
			s.respondBadRequest(w, r, "chart selection needs both x and y columns")
			return
		}
		s.store.SetSelection(dataset.Selection{Type: chartType, XColumn: x, YColumn: y})
	}

	sel, ok := s.store.Selection()
	if !ok {
		writeJSON(w, chartResponse{Series: dataset.Series{}})
		return
	}

	table, _ := s.store.Table()
	writeJSON(w, chartResponse{
		Selection: &sel,
		Series:    dataset.Project(table, sel),
	})
}

type chartResponse struct {
	Selection *dataset.Selection `json:"selection,omitempty"`
	Series    dataset.Series     `json:"series"`
}

// instructRequest is the body of POST /api/instruct.
type instructRequest struct {
	Instruction string `json:"instruction"`
}

// instructResponse reports whether the resolved selection was applied.
// Applied is false when a newer choice landed while this resolution was in
// flight; the winning selection and its series are returned either way.
type instructResponse struct {
	Applied   bool               `json:"applied"`
	Selection *dataset.Selection `json:"selection,omitempty"`
	Series    dataset.Series     `json:"series"`
}

// handleInstruct turns a natural-language instruction into a chart
// selection via the external resolver. The sequence token taken before the
// call ensures a slow resolution cannot clobber a newer selection.
func (s *Server) handleInstruct(w http.ResponseWriter, r *http.Request) {
	table, ok := s.store.Table()
	if !ok {
		s.respondError(w, r, errNoDataset, http.StatusNotFound)
		return
	}

	var req instructRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondBadRequest(w, r, "invalid JSON body")
		return
	}

	token := s.store.NextToken()
	sel, err := s.resolver.Resolve(r.Context(), req.Instruction, table.Header)
	if err != nil {
		s.respondError(w, r, err, resolverStatus(err))
		return
	}

	applied := s.store.ApplySelection(sel, token)
	current, hasCurrent := s.store.Selection()

	resp := instructResponse{Applied: applied}
	if hasCurrent {
		resp.Selection = &current
		resp.Series = dataset.Project(table, current)
	}
	writeJSON(w, resp)
}

// resolverStatus maps a resolution failure to an HTTP status: client
// mistakes are 400s, a missing or unreachable service is a 502/503.
func resolverStatus(err error) int {
	var resErr *resolver.Error
	if !errors.As(err, &resErr) {
		return http.StatusInternalServerError
	}
	switch resErr.Reason {
	case "empty instruction", "incomplete response", "invalid response":
		return http.StatusBadRequest
	case "not configured":
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// handleExport streams the filtered and sorted rows (all pages) as CSV.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	table, ok := s.store.Table()
	if !ok {
		s.respondError(w, r, errNoDataset, http.StatusNotFound)
		return
	}

	state := parseViewState(r)
	header, rows := dataset.BuildRows(table, state)

	name := strings.TrimSuffix(table.FileName, filepath.Ext(table.FileName))
	if name == "" {
		name = "dataset"
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`-export.csv"`)

	if err := export.WriteCSV(w, header, rows); err != nil {
		// Headers are already sent; log and let the client detect truncation.
		logging.FromContext(r.Context()).Error("csv export failed", "error", err)
	}
}
