// internal/app/features/api/types.go
package api

import (
	"github.com/dalemusser/communityhub/internal/app/system/listingfmt"
	"github.com/dalemusser/communityhub/internal/domain/models"
)

// resourceJSON is a resource plus the display facts the web cards derive.
type resourceJSON struct {
	models.Resource
	Closed        bool   `json:"closed"`
	HasWebsite    bool   `json:"has_website"`
	VerifiedLabel string `json:"verified_label"`
}

func toJSON(r models.Resource) resourceJSON {
	if r.Languages == nil {
		r.Languages = []string{}
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	return resourceJSON{
		Resource:      r,
		Closed:        r.IsClosed(),
		HasWebsite:    listingfmt.HasWebsite(r),
		VerifiedLabel: listingfmt.VerifiedLabel(r.LastVerifiedAt),
	}
}

// listResponse answers GET /api/resources.
type listResponse struct {
	Query      string         `json:"query"`
	Category   string         `json:"category"`
	Total      int            `json:"total"`
	Shown      int            `json:"shown"`
	Categories []string       `json:"categories"`
	Resources  []resourceJSON `json:"resources"`
}

// categoryJSON is one entry of GET /api/categories.
type categoryJSON struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}
