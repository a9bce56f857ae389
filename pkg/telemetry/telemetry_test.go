package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"

	"github.com/ghuser/fridgekeeper/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:    "fridgekeeper-test",
		ServiceVersion: "test",
		Environment:    config.EnvTesting,
	}
}

func TestSetup_NoOtelEndpoint(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handler == nil {
		t.Fatal("expected non-nil metrics handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_MetricsHandlerExposesFridgeMetrics(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	m, err := NewFridgeMetrics(otel.GetMeterProvider())
	if err != nil {
		t.Fatalf("NewFridgeMetrics: %v", err)
	}
	m.ItemAdded(context.Background(), 4, false)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "text/plain") {
		t.Errorf("expected text/plain content-type, got %q", ct)
	}
	body, _ := io.ReadAll(rr.Body)
	if !strings.Contains(string(body), "fridge") || !strings.Contains(string(body), "added") {
		t.Errorf("expected the fridge items added counter in exposition")
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Errorf("expected Go runtime collector output")
	}
}

func TestEndpointOptions(t *testing.T) {
	if got := len(traceEndpoint("collector:4318")); got != 2 {
		t.Errorf("host:port should add insecure option, got %d options", got)
	}
	if got := len(traceEndpoint("https://collector.example.com:4318")); got != 1 {
		t.Errorf("url should use a single endpoint option, got %d options", got)
	}
	if got := len(metricEndpoint("collector:4318")); got != 2 {
		t.Errorf("host:port should add insecure option, got %d options", got)
	}
}

func TestSetupSentry_EmptyDSN(t *testing.T) {
	if err := SetupSentry(baseConfig()); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}

func TestReleaseName(t *testing.T) {
	if got := releaseName(baseConfig()); got != "fridgekeeper-test@test" {
		t.Fatalf("unexpected release %q", got)
	}
}

func TestCaptureError_WithoutSentry(t *testing.T) {
	// Must not panic when Sentry was never initialized.
	CaptureError(nil, nil)
	CaptureError(io.ErrUnexpectedEOF, map[string]string{"topic": "fridge.events"})
}
