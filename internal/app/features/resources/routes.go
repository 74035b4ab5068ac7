// internal/app/features/resources/routes.go
package resources

import (
	"net/http"

	"github.com/dalemusser/communityhub/internal/app/system/viewdata"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the directory pages. Bootstrap mounts this at "/".
//
//	h := resources.NewHandler(store, rec, locale, logger)
//	r.Mount("/", resources.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST (live search + HTMX results swap)
	r.Get("/", h.ServeList)

	// VIEW
	r.Get("/resources/{id}", h.ServeView)

	return r
}

func newBaseVM(r *http.Request, title string) viewdata.BaseVM {
	return viewdata.NewBaseVM(r, title, "/")
}
