// internal/app/features/about/routes.go
package about

import "github.com/go-chi/chi/v5"

// Routes serves the about page. Bootstrap mounts this at "/about".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAbout)
	return r
}
