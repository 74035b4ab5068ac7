// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/communityhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderNotFound writes a 404 status and the not-found page with msg.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Not found", "/"),
		Message: msg,
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_not_found", data)
}
