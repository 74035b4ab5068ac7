package about

import (
	"net/http/httptest"
	"strings"
	"testing"

	resourcestore "github.com/dalemusser/communityhub/internal/app/store/resources"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/dalemusser/communityhub/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, items []models.Resource) *Handler {
	t.Helper()
	store, err := resourcestore.New(items)
	if err != nil {
		t.Fatalf("resourcestore.New: %v", err)
	}
	return NewHandler(store, zap.NewNop())
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t, nil)
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestSummarize(t *testing.T) {
	h := newTestHandler(t, []models.Resource{
		{Name: "Food Bank", Category: models.CategoryFood},
		{Name: "Shelter", Category: models.CategoryHousing},
		{Name: "Pantry", Category: models.CategoryFood},
	})

	got := summarize(h.Store)
	want := []categoryCount{
		{Category: models.CategoryFood, Count: 2},
		{Category: models.CategoryHousing, Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_Empty(t *testing.T) {
	h := newTestHandler(t, nil)
	if got := summarize(h.Store); len(got) != 0 {
		t.Errorf("summarize(empty) = %v, want none", got)
	}
}

func TestServeAbout(t *testing.T) {
	testutil.BootTemplates(t)

	tests := []struct {
		name    string
		items   []models.Resource
		want    []string
		notWant []string
	}{
		{
			name:  "listed",
			items: testutil.Resources(),
			want: []string{
				"About this directory", "3 resources across these categories",
				`<a href="/?category=Food">Food</a> (2)`, `<a href="/?category=Housing">Housing</a> (1)`,
				"Accuracy matters",
			},
			notWant: []string{"No resources are listed yet", "All categories"},
		},
		{
			name:    "empty",
			items:   nil,
			want:    []string{"No resources are listed yet", "Accuracy matters"},
			notWant: []string{"across these categories"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, tt.items)
			rec := httptest.NewRecorder()
			h.ServeAbout(rec, httptest.NewRequest("GET", "/about", nil))

			if rec.Code != 200 {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			body := rec.Body.String()
			for _, w := range tt.want {
				if !strings.Contains(body, w) {
					t.Errorf("body missing %q", w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(body, w) {
					t.Errorf("body should not contain %q", w)
				}
			}
		})
	}
}
