package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/fridgekeeper/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	down := errors.New("conn refused")

	tests := []struct {
		name       string
		checks     httpx.HealthChecks
		wantCode   int
		wantStatus string
		wantBus    string
		wantRedis  string
	}{
		{
			name:       "all healthy",
			checks:     httpx.HealthChecks{EventBus: &stubChecker{}, Redis: &stubChecker{}},
			wantCode:   http.StatusOK,
			wantStatus: "ok", wantBus: "ok", wantRedis: "ok",
		},
		{
			name:       "redis disabled",
			checks:     httpx.HealthChecks{EventBus: &stubChecker{}},
			wantCode:   http.StatusOK,
			wantStatus: "ok", wantBus: "ok", wantRedis: "disabled",
		},
		{
			name:       "event bus down",
			checks:     httpx.HealthChecks{EventBus: &stubChecker{err: down}, Redis: &stubChecker{}},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded", wantBus: "unreachable", wantRedis: "ok",
		},
		{
			name:       "redis down",
			checks:     httpx.HealthChecks{EventBus: &stubChecker{}, Redis: &stubChecker{err: down}},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded", wantBus: "ok", wantRedis: "unreachable",
		},
		{
			name:       "all down",
			checks:     httpx.HealthChecks{EventBus: &stubChecker{err: down}, Redis: &stubChecker{err: down}},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded", wantBus: "unreachable", wantRedis: "unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			httpx.HealthHandler(tt.checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

			if rr.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rr.Code)
			}
			var resp map[string]string
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp["status"] != tt.wantStatus || resp["event_bus"] != tt.wantBus || resp["redis"] != tt.wantRedis {
				t.Errorf("unexpected response: %+v", resp)
			}
		})
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	h := httpx.HealthHandler(httpx.HealthChecks{EventBus: &stubChecker{}})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	ct := rr.Header().Get("Content-Type")
	if ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json; charset=utf-8")
	}
}
