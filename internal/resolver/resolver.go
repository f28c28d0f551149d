// Package resolver is the boundary to the external instruction service
// that turns a free-text chart instruction into structured axis
// parameters. It is the only part of the application that performs
// network I/O.
//
// The resolver never sees raw data: it sends the instruction plus the
// current column names and expects back {chartType, xColumn, yColumn}.
// Every failure mode -- missing API key, unreachable service, non-2xx
// status, unparsable body, incomplete payload, unknown chart type, or a
// column that is not in the dataset -- yields an *Error so callers report
// it to the user and leave the prior chart selection untouched.
package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/protractor09/ai-dashboard/internal/dataset"
)

// maxResponseBytes caps how much of a response body is read. The expected
// payload is a three-field JSON object; anything bigger is garbage.
const maxResponseBytes = 1 << 20

// Config holds resolver settings.
type Config struct {
	URL     string        // instruction service endpoint
	APIKey  string        // bearer token; empty means the service is not configured
	Timeout time.Duration // per-request timeout (default: 30s)
}

// Resolver calls the instruction service over HTTP.
type Resolver struct {
	cfg    Config
	client *http.Client
}

// New creates a Resolver from cfg.
func New(cfg Config) *Resolver {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Resolver{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Error describes a failed instruction resolution. It is non-fatal and
// user-visible; the chart keeps its prior selection.
type Error struct {
	Reason string // short category: "not configured", "service error", ...
	Detail string // human-readable specifics
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return "instruction resolution failed: " + e.Reason
	}
	return fmt.Sprintf("instruction resolution failed: %s: %s", e.Reason, e.Detail)
}

// request is the wire format sent to the instruction service.
type request struct {
	Instruction string   `json:"instruction"`
	Columns     []string `json:"columns"`
}

// response is the wire format received back. Error fields are populated
// on service-reported failures.
type response struct {
	ChartType string `json:"chartType"`
	XColumn   string `json:"xColumn"`
	YColumn   string `json:"yColumn"`

	ErrorMsg string `json:"error"`
	Details  string `json:"details"`
}

// Resolve sends the instruction and column names to the service and
// validates the returned selection before handing it to the caller. A
// response missing any required field is rejected whole rather than
// partially applied.
func (r *Resolver) Resolve(ctx context.Context, instruction string, columns []string) (dataset.Selection, error) {
	if strings.TrimSpace(instruction) == "" {
		return dataset.Selection{}, &Error{Reason: "empty instruction"}
	}
	if r.cfg.URL == "" || r.cfg.APIKey == "" {
		return dataset.Selection{}, &Error{
			Reason: "not configured",
			Detail: "set RESOLVER_URL and RESOLVER_API_KEY to enable chart instructions",
		}
	}

	body, err := json.Marshal(request{Instruction: instruction, Columns: columns})
	if err != nil {
		return dataset.Selection{}, &Error{Reason: "encode request", Detail: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return dataset.Selection{}, &Error{Reason: "build request", Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return dataset.Selection{}, &Error{Reason: "service unreachable", Detail: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return dataset.Selection{}, &Error{Reason: "read response", Detail: err.Error()}
	}

	slog.Debug("instruction resolved",
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	var payload response
	parseErr := json.Unmarshal(raw, &payload)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := resp.Status
		if parseErr == nil && payload.ErrorMsg != "" {
			detail = payload.ErrorMsg
			if payload.Details != "" {
				detail += ": " + payload.Details
			}
		}
		return dataset.Selection{}, &Error{Reason: "service error", Detail: detail}
	}
	if parseErr != nil {
		return dataset.Selection{}, &Error{Reason: "invalid response", Detail: parseErr.Error()}
	}
	if payload.ErrorMsg != "" {
		return dataset.Selection{}, &Error{Reason: "service error", Detail: payload.ErrorMsg}
	}

	return validate(payload, columns)
}

// validate checks a successful payload against the known chart types and
// the available columns.
func validate(payload response, columns []string) (dataset.Selection, error) {
	if payload.ChartType == "" || payload.XColumn == "" || payload.YColumn == "" {
		return dataset.Selection{}, &Error{
			Reason: "incomplete response",
			Detail: "chartType, xColumn and yColumn are all required",
		}
	}

	chartType, ok := dataset.ParseChartType(payload.ChartType)
	if !ok {
		return dataset.Selection{}, &Error{
			Reason: "invalid response",
			Detail: fmt.Sprintf("unknown chart type %q", payload.ChartType),
		}
	}

	if !contains(columns, payload.XColumn) {
		return dataset.Selection{}, &Error{
			Reason: "invalid response",
			Detail: fmt.Sprintf("x column %q is not in the dataset", payload.XColumn),
		}
	}
	if !contains(columns, payload.YColumn) {
		return dataset.Selection{}, &Error{
			Reason: "invalid response",
			Detail: fmt.Sprintf("y column %q is not in the dataset", payload.YColumn),
		}
	}

	return dataset.Selection{
		Type:    chartType,
		XColumn: payload.XColumn,
		YColumn: payload.YColumn,
	}, nil
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
