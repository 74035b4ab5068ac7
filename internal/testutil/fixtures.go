package testutil

import (
	"context"
	"net/http"
	"testing"

	resourcestore "github.com/dalemusser/communityhub/internal/app/store/resources"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Resources returns a small dataset covering the filter edge cases: mixed
// name case, a shared zip across categories, a closed listing, and
// listings with and without optional fields.
func Resources() []models.Resource {
	return []models.Resource{
		{
			ID: "zed-shelter", Name: "Zed Shelter", Category: models.CategoryHousing,
			Eligibility: "Adults", Cost: "Free", Zip: "99201",
			Phone: "509-555-0101", Tags: []string{"shelter", "beds"},
			LastVerifiedAt: "2024-01-15", Source: "Provider",
		},
		{
			ID: "apple-pantry", Name: "Apple Pantry", Category: models.CategoryFood,
			Eligibility: "Anyone", Cost: "Free", Zip: "99202",
			Website: "https://apple.example.org", Source: "Phone call",
		},
		{
			ID: "meals-on-wheels", Name: "meals on wheels", Category: models.CategoryFood,
			Status:      models.StatusTemporarilyClosed,
			Eligibility: "Seniors", Cost: "Donation", Zip: "99201", Source: "Community",
		},
	}
}

// NewStore builds a resource store from items, failing the test on error.
func NewStore(t *testing.T, items []models.Resource) *resourcestore.Store {
	t.Helper()
	store, err := resourcestore.New(items)
	if err != nil {
		t.Fatalf("resourcestore.New: %v", err)
	}
	return store
}
