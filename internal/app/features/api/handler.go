// internal/app/features/api/handler.go
package api

import (
	resourcestore "github.com/dalemusser/communityhub/internal/app/store/resources"
	"github.com/dalemusser/communityhub/internal/app/system/metrics"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Handler serves the read-only JSON view of the directory.
type Handler struct {
	Store   *resourcestore.Store
	Metrics *metrics.Recorder
	Locale  language.Tag
	Log     *zap.Logger
}

// NewHandler creates a new api handler. rec may be nil.
func NewHandler(store *resourcestore.Store, rec *metrics.Recorder, locale language.Tag, logger *zap.Logger) *Handler {
	return &Handler{
		Store:   store,
		Metrics: rec,
		Locale:  locale,
		Log:     logger,
	}
}
