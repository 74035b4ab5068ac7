// internal/app/features/resources/types.go
package resources

import (
	"github.com/dalemusser/communityhub/internal/app/system/browse"
	"github.com/dalemusser/communityhub/internal/app/system/viewdata"
)

// listData provides template data for the directory list page.
type listData struct {
	viewdata.BaseVM
	browse.ViewModel

	// ResetURL clears both filters.
	ResetURL string
}

// viewData is the model for the single-resource page.
type viewData struct {
	viewdata.BaseVM
	Card browse.Card
}

// resultsTarget is the element id swapped by HTMX live search.
const resultsTarget = "resources-list-wrap"
