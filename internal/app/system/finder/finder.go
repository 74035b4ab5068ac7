// Package finder implements the category + free-text filter over the
// resource dataset, followed by a locale-aware sort on name.
//
// Every function here is pure: inputs are never modified and identical
// inputs always produce identical output.
package finder

import (
	"sort"
	"strings"

	"github.com/dalemusser/communityhub/internal/domain/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AllCategories is the category sentinel that disables category filtering.
const AllCategories = "All categories"

// DefaultLocale orders names the way an English-language browser would.
var DefaultLocale = language.AmericanEnglish

// Query is the user's current (search term, category) pair.
type Query struct {
	Term     string
	Category string
}

// normalizedTerm is the trimmed, lowercased term. Empty means "match all".
func (q Query) normalizedTerm() string {
	return strings.ToLower(strings.TrimSpace(q.Term))
}

// IsAll reports whether the query applies no filtering at all.
func (q Query) IsAll() bool {
	return q.normalizedTerm() == "" && isAllCategories(q.Category)
}

// An empty category is treated like the sentinel.
func isAllCategories(c string) bool {
	return c == "" || c == AllCategories
}

// Filter returns every resource matching q, sorted by name using DefaultLocale.
func Filter(items []models.Resource, q Query) []models.Resource {
	return FilterLocale(items, q, DefaultLocale)
}

// FilterLocale is Filter with an explicit collation locale.
func FilterLocale(items []models.Resource, q Query, tag language.Tag) []models.Resource {
	term := q.normalizedTerm()

	out := make([]models.Resource, 0, len(items))
	for _, r := range items {
		if !MatchesCategory(r, q.Category) {
			continue
		}
		if term != "" && !strings.Contains(Haystack(r), term) {
			continue
		}
		out = append(out, r)
	}

	SortByName(out, tag)
	return out
}

// MatchesCategory is the category predicate: the sentinel matches
// everything, anything else must equal the resource category exactly.
func MatchesCategory(r models.Resource, category string) bool {
	return isAllCategories(category) || r.Category == category
}

// Haystack is the lowercased search text for a resource: name, category,
// address, zip, tags, eligibility and cost joined by single spaces.
func Haystack(r models.Resource) string {
	parts := []string{
		r.Name,
		r.Category,
		r.Address,
		r.Zip,
		strings.Join(r.Tags, " "),
		r.Eligibility,
		r.Cost,
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// SortByName sorts items in place by Name under the collation rules of tag.
// Equal names keep their relative order.
func SortByName(items []models.Resource, tag language.Tag) {
	// A Collator keeps internal buffers, so each sort gets its own.
	c := collate.New(tag)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(items[i].Name, items[j].Name) < 0
	})
}

// Categories lists the selectable category filters: the sentinel first,
// then each distinct category in order of first appearance.
func Categories(items []models.Resource) []string {
	out := []string{AllCategories}
	seen := make(map[string]struct{}, len(items))
	for _, r := range items {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	return out
}
