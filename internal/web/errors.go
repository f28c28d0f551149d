package web

// errors.go provides unified error response handling for the web layer.
//
// Every handler error is logged with full technical detail server-side,
// then returned to the client as a user-friendly message with an error
// code and, where it helps, a suggested action. Clients and support staff
// correlate the two via the request ID and the code.
//
// Code ranges:
//   - FILE00x  upload parsing problems (bad format, empty file)
//   - UPL00x   upload admission problems (too large, too many at once)
//   - RES00x   chart instruction resolution problems
//   - REQ00x   malformed requests and missing dataset
//   - ERR000   anything unexpected

import (
	"encoding/json"
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/protractor09/ai-dashboard/internal/ingest"
	"github.com/protractor09/ai-dashboard/internal/logging"
	"github.com/protractor09/ai-dashboard/internal/resolver"
)

// ErrorResponse is the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// userMessage pairs a user-facing explanation with a support code.
type userMessage struct {
	Message string
	Action  string
	Code    string
}

// errNoDataset is returned by handlers that need a dataset before one has
// been uploaded.
var errNoDataset = errors.New("no dataset uploaded")

// mapError converts a technical error into a user-facing message. Unlike
// string pattern matching, the handlers here surface a small set of typed
// errors, so the mapping inspects the error chain directly.
func mapError(err error) userMessage {
	var parseErr *ingest.ParseError
	if errors.As(err, &parseErr) {
		switch {
		case errors.Is(parseErr.Err, ingest.ErrEmptyFile):
			return userMessage{
				Message: "The uploaded file contains no data rows",
				Action:  "Check that the file has a header row and at least one data row",
				Code:    "FILE001",
			}
		case errors.Is(parseErr.Err, ingest.ErrUnsupportedFormat):
			return userMessage{
				Message: "This file format is not supported",
				Action:  "Upload a .csv or .xlsx file",
				Code:    "FILE002",
			}
		default:
			return userMessage{
				Message: "The uploaded file could not be read",
				Action:  "Re-export the file and try again",
				Code:    "FILE003",
			}
		}
	}

	if errors.Is(err, ingest.ErrTooManyUploads) {
		return userMessage{
			Message: "Too many uploads are being processed right now",
			Action:  "Wait a moment and try again",
			Code:    "UPL001",
		}
	}

	var resErr *resolver.Error
	if errors.As(err, &resErr) {
		switch resErr.Reason {
		case "not configured":
			return userMessage{
				Message: "Chart instructions are not configured on this server",
				Action:  "Set RESOLVER_URL and RESOLVER_API_KEY to enable them",
				Code:    "RES001",
			}
		case "empty instruction":
			return userMessage{
				Message: "The instruction is empty",
				Action:  "Describe the chart you want, e.g. \"bar chart of revenue by month\"",
				Code:    "RES002",
			}
		case "incomplete response", "invalid response":
			return userMessage{
				Message: "The instruction did not produce a usable chart",
				Action:  "Try naming columns that exist in the dataset",
				Code:    "RES003",
			}
		default:
			return userMessage{
				Message: "The instruction service did not return a usable answer",
				Action:  "Try again in a few moments",
				Code:    "RES004",
			}
		}
	}

	if errors.Is(err, errNoDataset) {
		return userMessage{
			Message: "No dataset has been uploaded yet",
			Action:  "Upload a CSV or Excel file first",
			Code:    "REQ001",
		}
	}

	return userMessage{
		Message: "An unexpected error occurred",
		Action:  "Please try again or contact support",
		Code:    "ERR000",
	}
}

// respondError logs the technical error with request context and writes
// the mapped user-facing JSON response.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	msg := mapError(err)

	logger := logging.FromContext(r.Context())
	logger.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", msg.Code,
		"request_id", chimw.GetReqID(r.Context()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	})
}

// respondBadRequest reports a malformed request parameter without going
// through error mapping; the message is already user-facing.
func (s *Server) respondBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	logger := logging.FromContext(r.Context())
	logger.Warn("bad request",
		"path", r.URL.Path,
		"message", message,
		"request_id", chimw.GetReqID(r.Context()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   message,
		Message: message,
		Code:    "REQ002",
	})
}
