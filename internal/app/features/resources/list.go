// internal/app/features/resources/list.go
package resources

import (
	"net/http"
	"strings"

	"github.com/dalemusser/communityhub/internal/app/system/browse"
	"github.com/dalemusser/communityhub/internal/app/system/metrics"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeList renders the directory: search box, category select, count line,
// and the filtered, name-sorted resource cards.
// Supports live HTMX search by swapping only the results block.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	state := stateFromRequest(r)

	vm := browse.View(state, h.Store.All(), browse.Options{Locale: h.Locale})

	hasTerm := strings.TrimSpace(state.SearchTerm) != ""
	h.Metrics.ObserveSearch(metrics.CategoryLabel(state.SelectedCategory, h.Store.Categories()), hasTerm, vm.Shown)
	h.Log.Debug("directory list",
		zap.String("category", state.SelectedCategory),
		zap.Bool("has_term", hasTerm),
		zap.Int("shown", vm.Shown),
		zap.Int("total", vm.Total))

	data := listData{
		BaseVM:    newBaseVM(r, "Find help"),
		ViewModel: vm,
		ResetURL:  "/?reset=1",
	}

	// HTMX partial refresh
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == resultsTarget {
		templates.RenderSnippet(w, "resources_results", data)
		return
	}

	templates.Render(w, r, "resources_list", data)
}

// stateFromRequest rebuilds the page state from ?q=, ?category= and ?reset=.
func stateFromRequest(r *http.Request) browse.State {
	return browse.FromParams(
		normalize.QueryParam(query.Search(r, "q")),
		normalize.Category(query.Get(r, "category")),
		query.Get(r, "reset") != "",
	)
}
