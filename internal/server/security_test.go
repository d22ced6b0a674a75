package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	detector := NewSuspiciousActivityDetector(RateLimitWindow, DefaultMaxRequestsPerWindow)
	middleware := AuthMiddleware(apiKey, nil, detector)

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, "/api/v1/quests", http.StatusOK},
		{"Invalid API Key", "wrong-key", "/api/v1/quests", http.StatusUnauthorized},
		{"Missing API Key", "", "/api/v1/hunt", http.StatusUnauthorized},
		{"Public Path - Healthz", "", "/healthz", http.StatusOK},
		{"Public Path - Metrics", "", "/metrics", http.StatusOK},
		{"Public Path - Version", "", "/version", http.StatusOK},
		{"Public Path - Swagger", "", "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 2, detector.failedAuthByIP["192.0.2.1"], "httptest requests come from 192.0.2.1")
}

func TestAuthMiddleware_EmptyKeyDisablesAuth(t *testing.T) {
	middleware := AuthMiddleware("", nil, NewSuspiciousActivityDetector(0, 0))
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/quests/rank", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct", "203.0.113.5:4000", "", nil, "203.0.113.5"},
		{"untrusted forwarder ignored", "203.0.113.5:4000", "198.51.100.1", nil, "203.0.113.5"},
		{"trusted proxy uses rightmost hop", "10.0.0.2:4000", "198.51.100.1, 198.51.100.2", []string{"10.0.0.2"}, "198.51.100.2"},
		{"no port", "203.0.113.5", "", nil, "203.0.113.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}
