package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/communityhub/internal/app/features/health"
	resourcestore "github.com/dalemusser/communityhub/internal/app/store/resources"
	"go.uber.org/zap"
)

type response struct {
	Status    string `json:"status"`
	Resources int    `json:"resources"`
	Message   string `json:"message"`
}

func serve(t *testing.T, h *health.Handler) (*httptest.ResponseRecorder, response) {
	t.Helper()
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, resp
}

func TestServe_DatasetLoaded(t *testing.T) {
	store, err := resourcestore.Load("")
	if err != nil {
		t.Fatalf("Load embedded dataset: %v", err)
	}
	rec, resp := serve(t, health.NewHandler(store, zap.NewNop()))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}
	if resp.Status != "ok" {
		t.Errorf("status: got %q, want %q", resp.Status, "ok")
	}
	if resp.Resources != store.Len() {
		t.Errorf("resources: got %d, want %d", resp.Resources, store.Len())
	}
}

func TestServe_EmptyDatasetIsHealthy(t *testing.T) {
	store, err := resourcestore.New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rec, resp := serve(t, health.NewHandler(store, zap.NewNop()))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if resp.Resources != 0 {
		t.Errorf("resources: got %d, want 0", resp.Resources)
	}
}

func TestServe_NoDataset(t *testing.T) {
	rec, resp := serve(t, health.NewHandler(nil, zap.NewNop()))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	if resp.Status != "error" {
		t.Errorf("status: got %q, want %q", resp.Status, "error")
	}
}
