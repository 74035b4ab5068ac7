// internal/app/features/contact/routes.go
package contact

import "github.com/go-chi/chi/v5"

// Routes serves the "Report an update" page under "/contact".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeContact)
	return r
}
