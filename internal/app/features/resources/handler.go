// internal/app/features/resources/handler.go
package resources

import (
	resourcestore "github.com/dalemusser/communityhub/internal/app/store/resources"
	"github.com/dalemusser/communityhub/internal/app/system/metrics"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Handler owns the public directory pages (the filtered list and the
// single-resource view).
//
// It is constructed once at startup in bootstrap, using the shared
// resource store, search metrics, and logger.
type Handler struct {
	Store   *resourcestore.Store
	Metrics *metrics.Recorder
	Locale  language.Tag
	Log     *zap.Logger
}

// NewHandler constructs a Handler. rec may be nil when metrics are disabled.
func NewHandler(store *resourcestore.Store, rec *metrics.Recorder, locale language.Tag, logger *zap.Logger) *Handler {
	return &Handler{
		Store:   store,
		Metrics: rec,
		Locale:  locale,
		Log:     logger,
	}
}
