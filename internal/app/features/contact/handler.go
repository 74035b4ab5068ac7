// internal/app/features/contact/handler.go
package contact

import (
	"net/http"

	"github.com/dalemusser/communityhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
}

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		Log: logger,
	}
}

func (h *Handler) ServeContact(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Report an update", "/"),
	}

	templates.Render(w, r, "contact", data)
}
