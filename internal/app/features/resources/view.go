// internal/app/features/resources/view.go
package resources

import (
	"net/http"
	"time"

	uierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/system/browse"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeView renders a single resource. Unknown ids get the 404 page.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, ok := h.Store.Get(id)
	if !ok {
		h.Log.Debug("resource not found", zap.String("id", id))
		uierrors.RenderNotFound(w, r, "That resource is not in the directory.")
		return
	}

	data := viewData{
		BaseVM: newBaseVM(r, res.Name),
		Card:   browse.NewCard(res, time.Now()),
	}

	templates.Render(w, r, "resources_view", data)
}
