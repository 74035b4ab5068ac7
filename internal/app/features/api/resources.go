// internal/app/features/api/resources.go
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dalemusser/communityhub/internal/app/system/browse"
	"github.com/dalemusser/communityhub/internal/app/system/finder"
	"github.com/dalemusser/communityhub/internal/app/system/metrics"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeList returns the filtered, name-sorted directory.
//
//	GET /api/resources?q=food&category=Food
//
//	{ "query":"food", "category":"Food", "total":9, "shown":2,
//	  "categories":["All categories","Housing",…], "resources":[…] }
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	state := browse.FromParams(
		normalize.QueryParam(query.Search(r, "q")),
		normalize.Category(query.Get(r, "category")),
		false,
	)

	all := h.Store.All()
	shown := finder.FilterLocale(all, state.Query(), h.Locale)

	hasTerm := strings.TrimSpace(state.SearchTerm) != ""
	h.Metrics.ObserveSearch(metrics.CategoryLabel(state.SelectedCategory, h.Store.Categories()), hasTerm, len(shown))

	resp := listResponse{
		Query:      state.SearchTerm,
		Category:   state.SelectedCategory,
		Total:      len(all),
		Shown:      len(shown),
		Categories: h.Store.Categories(),
		Resources:  make([]resourceJSON, 0, len(shown)),
	}
	for _, res := range shown {
		resp.Resources = append(resp.Resources, toJSON(res))
	}

	writeJSON(w, http.StatusOK, resp)
}

// ServeResource returns one resource by id, or 404.
func (h *Handler) ServeResource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, ok := h.Store.Get(id)
	if !ok {
		h.Log.Debug("api: resource not found", zap.String("id", id))
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "resource not found"})
		return
	}

	writeJSON(w, http.StatusOK, toJSON(res))
}

// ServeCategories returns the category filter options with their counts.
// The first entry is the all-categories sentinel, counting every resource.
func (h *Handler) ServeCategories(w http.ResponseWriter, r *http.Request) {
	counts := h.Store.CountByCategory()

	cats := h.Store.Categories()
	out := make([]categoryJSON, 0, len(cats))
	for _, c := range cats {
		n := counts[c]
		if c == finder.AllCategories {
			n = h.Store.Len()
		}
		out = append(out, categoryJSON{Name: c, Count: n})
	}

	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
