// internal/app/features/about/handler.go
package about

import (
	"net/http"

	resourcestore "github.com/dalemusser/communityhub/internal/app/store/resources"
	"github.com/dalemusser/communityhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// categoryCount is one row of the "what's listed" summary.
type categoryCount struct {
	Category string
	Count    int
}

type pageData struct {
	viewdata.BaseVM
	Total      int
	Categories []categoryCount
}

type Handler struct {
	Store *resourcestore.Store
	Log   *zap.Logger
}

func NewHandler(store *resourcestore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:     viewdata.NewBaseVM(r, "About this directory", "/"),
		Total:      h.Store.Len(),
		Categories: summarize(h.Store),
	}

	templates.Render(w, r, "about", data)
}

// summarize lists the dataset's categories in filter order with their counts.
func summarize(store *resourcestore.Store) []categoryCount {
	counts := store.CountByCategory()
	cats := store.Categories()

	// first entry is the "All categories" sentinel
	out := make([]categoryCount, 0, len(cats))
	for _, c := range cats[1:] {
		out = append(out, categoryCount{Category: c, Count: counts[c]})
	}
	return out
}
