package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yos-x/weardict/internal/config"
)

func testCORSConfig(origins string) config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: "GET,POST,OPTIONS",
		AllowedHeaders: "Content-Type,X-Request-Id",
		MaxAge:         86400,
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for preflight")
	})

	wrapped := CORS(testCORSConfig("https://watch.example.com"))(handler)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/translate", nil)
	req.Header.Set("Origin", "https://watch.example.com")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	checks := map[string]string{
		"Access-Control-Allow-Origin":  "https://watch.example.com",
		"Access-Control-Allow-Methods": "GET,POST,OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type,X-Request-Id",
		"Access-Control-Max-Age":       "86400",
	}
	for header, want := range checks {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	wrapped := CORS(testCORSConfig("https://a.example.com, https://b.example.com"))(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dictionary?q=hello", nil)
	req.Header.Set("Origin", "https://b.example.com")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if !called {
		t.Error("expected handler to be called")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://b.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Expose-Headers"); got != RequestIDHeader {
		t.Errorf("Access-Control-Expose-Headers = %q, want %q", got, RequestIDHeader)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	wrapped := CORS(testCORSConfig("https://a.example.com"))(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no Access-Control-Allow-Origin, got %q", got)
	}
}

func TestCORS_Wildcard(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	wrapped := CORS(testCORSConfig("*"))(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anything.example.com")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://anything.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
