package finder

import (
	"strings"
	"testing"

	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func sampleResources() []models.Resource {
	return []models.Resource{
		{
			ID:          "gamma",
			Name:        "Gamma Clinic",
			Category:    "Health",
			Tags:        []string{"spokane", "walk-in"},
			Eligibility: "Anyone",
			Cost:        "Sliding scale",
		},
		{
			ID:          "alpha",
			Name:        "Alpha Shelter",
			Category:    "Housing",
			Address:     "100 W Main Ave",
			Zip:         "99201",
			Eligibility: "Adults 18+",
			Cost:        "Free",
		},
		{
			ID:          "beta",
			Name:        "Beta Pantry",
			Category:    "Food",
			Eligibility: "Families",
			Cost:        "Free",
		},
	}
}

func names(items []models.Resource) []string {
	out := make([]string, 0, len(items))
	for _, r := range items {
		out = append(out, r.Name)
	}
	return out
}

func TestFilter_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"term matches name", Query{Term: "pantry", Category: AllCategories}, []string{"Beta Pantry"}},
		{"category only", Query{Term: "", Category: "Housing"}, []string{"Alpha Shelter"}},
		{"term matches tag", Query{Term: "spokane", Category: AllCategories}, []string{"Gamma Clinic"}},
		{"term matches zip", Query{Term: "99201", Category: AllCategories}, []string{"Alpha Shelter"}},
		{"term matches cost", Query{Term: "free", Category: AllCategories}, []string{"Alpha Shelter", "Beta Pantry"}},
		{"term matches category text", Query{Term: "health", Category: AllCategories}, []string{"Gamma Clinic"}},
		{"term is case-insensitive", Query{Term: "  PANTRY ", Category: AllCategories}, []string{"Beta Pantry"}},
		{"term and category combine", Query{Term: "free", Category: "Food"}, []string{"Beta Pantry"}},
		{"category is case-sensitive", Query{Term: "", Category: "housing"}, []string{}},
		{"no matches", Query{Term: "dentist", Category: AllCategories}, []string{}},
		{"whitespace term is empty", Query{Term: "   \t", Category: AllCategories}, []string{"Alpha Shelter", "Beta Pantry", "Gamma Clinic"}},
		{"empty category acts as sentinel", Query{Term: "", Category: ""}, []string{"Alpha Shelter", "Beta Pantry", "Gamma Clinic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Filter(sampleResources(), tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter(%+v) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestFilter_EmptyDataset(t *testing.T) {
	got := Filter(nil, Query{Term: "food", Category: AllCategories})
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d items", len(got))
	}
	got = Filter([]models.Resource{}, Query{Category: AllCategories})
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d items", len(got))
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	items := sampleResources()
	before := names(items)

	_ = Filter(items, Query{Category: AllCategories})

	if diff := cmp.Diff(before, names(items)); diff != "" {
		t.Errorf("input was reordered (-before +after):\n%s", diff)
	}
}

func TestFilter_Properties(t *testing.T) {
	items := append(sampleResources(),
		models.Resource{ID: "d", Name: "delta Food Bank", Category: "Food", Cost: "Free", Tags: []string{"pantry"}},
		models.Resource{ID: "e", Name: "Échelle Housing", Category: "Housing", Eligibility: "Veterans"},
		models.Resource{ID: "f", Name: "Zeta Legal Aid", Category: "Legal", Cost: "Free", Zip: "99202"},
	)
	byID := make(map[string]models.Resource, len(items))
	for _, r := range items {
		byID[r.ID] = r
	}

	queries := []Query{
		{Term: "", Category: AllCategories},
		{Term: "free", Category: AllCategories},
		{Term: "pantry", Category: "Food"},
		{Term: "992", Category: AllCategories},
		{Term: "", Category: "Housing"},
		{Term: "e", Category: AllCategories},
		{Term: "nothing-matches", Category: "Legal"},
	}

	for _, q := range queries {
		got := Filter(items, q)

		seen := make(map[string]bool)
		for _, r := range got {
			if _, ok := byID[r.ID]; !ok {
				t.Errorf("%+v: result %q not in dataset", q, r.ID)
			}
			if seen[r.ID] {
				t.Errorf("%+v: duplicate result %q", q, r.ID)
			}
			seen[r.ID] = true

			if q.Category != AllCategories && r.Category != q.Category {
				t.Errorf("%+v: %q has category %q", q, r.Name, r.Category)
			}
		}

		term := strings.ToLower(strings.TrimSpace(q.Term))
		for _, r := range items {
			inCategory := MatchesCategory(r, q.Category)
			contains := strings.Contains(Haystack(r), term)
			if inCategory && contains != seen[r.ID] {
				t.Errorf("%+v: %q contains=%v but returned=%v", q, r.Name, contains, seen[r.ID])
			}
		}
	}
}

func TestFilter_AllReturnsEverythingSorted(t *testing.T) {
	items := sampleResources()
	got := Filter(items, Query{Term: "", Category: AllCategories})
	if len(got) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(got))
	}
	want := []string{"Alpha Shelter", "Beta Pantry", "Gamma Clinic"}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByName_LocaleAware(t *testing.T) {
	items := []models.Resource{
		{Name: "Zeta"},
		{Name: "Banana Bank"},
		{Name: "apple Pantry"},
		{Name: "Éclair Kitchen"},
	}

	SortByName(items, language.AmericanEnglish)

	// A byte-wise sort would put "Banana Bank" and "Zeta" before "apple Pantry"
	// and "Éclair Kitchen" after "Zeta".
	want := []string{"apple Pantry", "Banana Bank", "Éclair Kitchen", "Zeta"}
	if diff := cmp.Diff(want, names(items)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestHaystack(t *testing.T) {
	r := models.Resource{
		Name:        "Alpha Shelter",
		Category:    "Housing",
		Address:     "100 W Main",
		Zip:         "99201",
		Tags:        []string{"Beds", "Night"},
		Eligibility: "Adults",
		Cost:        "Free",
		Phone:       "509-555-0100",
	}
	want := "alpha shelter housing 100 w main 99201 beds night adults free"
	if got := Haystack(r); got != want {
		t.Errorf("Haystack() = %q, want %q", got, want)
	}

	// Phone is not searchable.
	if strings.Contains(Haystack(r), "555") {
		t.Error("phone should not be part of the haystack")
	}
}

func TestHaystack_AbsentOptionalFields(t *testing.T) {
	r := models.Resource{Name: "X", Category: "Food", Eligibility: "All", Cost: "Free"}
	want := "x food    all free"
	if got := Haystack(r); got != want {
		t.Errorf("Haystack() = %q, want %q", got, want)
	}
}

func TestCategories(t *testing.T) {
	items := []models.Resource{
		{Category: "Health"},
		{Category: "Food"},
		{Category: "Health"},
		{Category: "Housing"},
		{Category: "Food"},
	}
	want := []string{AllCategories, "Health", "Food", "Housing"}
	if diff := cmp.Diff(want, Categories(items)); diff != "" {
		t.Errorf("Categories() mismatch (-want +got):\n%s", diff)
	}
}

func TestCategories_Empty(t *testing.T) {
	want := []string{AllCategories}
	if diff := cmp.Diff(want, Categories(nil)); diff != "" {
		t.Errorf("Categories(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestQuery_IsAll(t *testing.T) {
	tests := []struct {
		q    Query
		want bool
	}{
		{Query{}, true},
		{Query{Term: "  ", Category: AllCategories}, true},
		{Query{Term: "food"}, false},
		{Query{Category: "Food"}, false},
	}
	for _, tt := range tests {
		if got := tt.q.IsAll(); got != tt.want {
			t.Errorf("%+v.IsAll() = %v, want %v", tt.q, got, tt.want)
		}
	}
}
