package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
)

func remoteAddrSeen(mw func(http.Handler) http.Handler, remoteAddr string, headers map[string]string) string {
	var seen string
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.RemoteAddr
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return seen
}

func TestTrustedRealIP_TrustedProxy(t *testing.T) {
	mw := TrustedRealIP([]string{"10.0.0.0/8"})

	got := remoteAddrSeen(mw, "10.1.2.3:5000", map[string]string{"X-Real-IP": "203.0.113.9"})
	if got != "203.0.113.9" {
		t.Errorf("RemoteAddr = %q, want header IP 203.0.113.9", got)
	}
}

func TestTrustedRealIP_UntrustedProxyIgnoresHeaders(t *testing.T) {
	mw := TrustedRealIP([]string{"10.0.0.0/8"})

	got := remoteAddrSeen(mw, "192.0.2.7:5000", map[string]string{"X-Real-IP": "203.0.113.9"})
	if got != "192.0.2.7:5000" {
		t.Errorf("RemoteAddr = %q, want original address kept", got)
	}
}

func TestTrustedRealIP_ForwardedForFirstHop(t *testing.T) {
	mw := TrustedRealIP([]string{"10.0.0.1"})

	got := remoteAddrSeen(mw, "10.0.0.1:5000", map[string]string{
		"X-Forwarded-For": "203.0.113.9, 10.0.0.1",
	})
	if got != "203.0.113.9" {
		t.Errorf("RemoteAddr = %q, want first hop of the chain", got)
	}
}

func TestTrustedRealIP_InvalidHeaderKeptOut(t *testing.T) {
	mw := TrustedRealIP([]string{"10.0.0.0/8"})

	got := remoteAddrSeen(mw, "10.1.2.3:5000", map[string]string{"X-Real-IP": "not-an-ip"})
	if got != "10.1.2.3:5000" {
		t.Errorf("RemoteAddr = %q, want original address for invalid header", got)
	}
}

func TestTrustedRealIP_NoProxiesConfigured(t *testing.T) {
	mw := TrustedRealIP(nil)

	got := remoteAddrSeen(mw, "10.1.2.3:5000", map[string]string{"X-Real-IP": "203.0.113.9"})
	if got != "10.1.2.3:5000" {
		t.Errorf("RemoteAddr = %q, want headers ignored with no trusted proxies", got)
	}
}

func TestParseTrustedNets_SkipsInvalidEntries(t *testing.T) {
	nets := parseTrustedNets([]string{"10.0.0.0/8", "garbage", "", "192.0.2.1"})
	if len(nets) != 2 {
		t.Fatalf("parsed %d networks, want 2", len(nets))
	}
	if !nets[1].Contains(net.ParseIP("192.0.2.1")) {
		t.Error("bare IP entry should contain itself")
	}
	if nets[1].Contains(net.ParseIP("192.0.2.2")) {
		t.Error("bare IP entry should be a single-host network")
	}
}

func TestStatusWriter_CapturesStatusAndBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	ww := &statusWriter{ResponseWriter: rec, status: http.StatusOK}

	ww.WriteHeader(http.StatusTeapot)
	ww.WriteHeader(http.StatusOK) // second call must not overwrite
	ww.Write([]byte("hello"))

	if ww.status != http.StatusTeapot {
		t.Errorf("status = %d, want %d", ww.status, http.StatusTeapot)
	}
	if ww.bytes != 5 {
		t.Errorf("bytes = %d, want 5", ww.bytes)
	}
}
