// internal/app/features/api/routes.go
package api

import "github.com/go-chi/chi/v5"

// Routes serves the JSON API. Bootstrap mounts this at "/api".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/resources", h.ServeList)
	r.Get("/resources/{id}", h.ServeResource)
	r.Get("/categories", h.ServeCategories)
	return r
}
