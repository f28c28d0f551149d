// Package middleware provides HTTP middleware for the dashboard server.
package middleware

import (
	"net/http"
	"time"

	"github.com/protractor09/ai-dashboard/internal/logging"
)

// Logger emits one structured log line per request. The logger comes from
// the request context so every line carries the chi request ID, and the
// response writer is wrapped to capture the status code and body size.
// Upload requests additionally log the request body size, since multipart
// dataset uploads are the only large bodies this server accepts.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		logger := logging.FromContext(r.Context())

		ip := r.RemoteAddr
		if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
			ip = realIP
		}

		fields := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"bytes", ww.bytes,
			"duration_ms", time.Since(start).Milliseconds(),
			"ip", ip,
			"user_agent", r.UserAgent(),
		}
		if r.Method == http.MethodPost && r.ContentLength > 0 {
			fields = append(fields, "request_bytes", r.ContentLength)
		}

		logger.Info("request", fields...)
	})
}

// statusWriter records the status code and bytes written for the log line.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.status = status
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// Unwrap exposes the underlying writer for middleware that type-asserts
// it (chi's Compress checks for http.Flusher).
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
