// internal/app/features/health/handler.go
package health

import (
	"encoding/json"
	"net/http"

	resourcestore "github.com/dalemusser/communityhub/internal/app/store/resources"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Store *resourcestore.Store
	Log   *zap.Logger
}

// NewHandler constructs a health Handler with the resource store and logger.
func NewHandler(store *resourcestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Log:   logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status    string `json:"status"`
	Resources int    `json:"resources"`
	Message   string `json:"message,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "resources":9 }
//
// When no dataset is loaded: 503 and
//
//	{ "status":"error", "resources":0, "message":"Dataset unavailable" }
//
// An empty but loaded dataset is still healthy.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.Store == nil {
		h.Log.Error("health-check: no resource dataset loaded")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "error",
			Message: "Dataset unavailable",
		})
		return
	}

	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:    "ok",
		Resources: h.Store.Len(),
	})
}
