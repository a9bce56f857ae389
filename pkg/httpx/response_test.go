package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/fridgekeeper/pkg/httpx"
)

func TestJSON_setsHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if xct := w.Header().Get("X-Content-Type-Options"); xct != "nosniff" {
		t.Errorf("expected nosniff, got %q", xct)
	}
}

func TestJSON_encodesBody(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusCreated, map[string]any{"item_type": 3, "fill_factor": 0.5})

	var body map[string]float64
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["item_type"] != 3 || body["fill_factor"] != 0.5 {
		t.Errorf("unexpected body: %v", body)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONError(w, http.StatusBadRequest, "invalid item type")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["error"] != "invalid item type" {
		t.Errorf("unexpected error message: %q", body["error"])
	}
}

func TestText(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.Text(w, http.StatusOK, "Manager{}")

	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if w.Body.String() != "Manager{}" {
		t.Errorf("unexpected body: %q", w.Body.String())
	}
}

func TestSafeError(t *testing.T) {
	err := errors.New("redis: connection pool exhausted")

	tests := []struct {
		name   string
		status int
		prod   bool
		want   string
	}{
		{"dev 500 shows detail", http.StatusInternalServerError, false, err.Error()},
		{"prod 500 hides detail", http.StatusInternalServerError, true, "Internal Server Error"},
		{"prod 422 shows detail", http.StatusUnprocessableEntity, true, err.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := httpx.SafeError(err, tt.status, tt.prod); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
