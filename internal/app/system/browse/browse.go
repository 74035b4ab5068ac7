// Package browse holds the directory page state and turns it into a
// display model.
//
// The page has exactly two pieces of state: the search term and the
// selected category. Reduce applies one user action to a State, View renders
// a State against the dataset. Both are pure, so handlers can rebuild the
// whole page from request parameters on every request.
package browse

import (
	"html/template"
	"time"

	"github.com/dalemusser/communityhub/internal/app/system/finder"
	"github.com/dalemusser/communityhub/internal/app/system/listingfmt"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"golang.org/x/text/language"
)

// State is the user-held filter state.
type State struct {
	SearchTerm       string
	SelectedCategory string
}

// Initial is the state of a freshly opened page.
func Initial() State {
	return State{SearchTerm: "", SelectedCategory: finder.AllCategories}
}

// Query converts the state to a finder query.
func (s State) Query() finder.Query {
	return finder.Query{Term: s.SearchTerm, Category: s.SelectedCategory}
}

// ActionKind identifies a user action.
type ActionKind int

const (
	SetSearch ActionKind = iota
	SetCategory
	Reset
)

// Action is one user input. Value is ignored for Reset.
type Action struct {
	Kind  ActionKind
	Value string
}

// Reduce returns the state after applying a. Every action replaces a value;
// there are no other transitions.
func Reduce(s State, a Action) State {
	switch a.Kind {
	case SetSearch:
		s.SearchTerm = a.Value
	case SetCategory:
		if a.Value == "" {
			a.Value = finder.AllCategories
		}
		s.SelectedCategory = a.Value
	case Reset:
		return Initial()
	}
	return s
}

// FromParams replays request parameters as user actions on a fresh state.
// A reset request ignores the other parameters.
func FromParams(term, category string, reset bool) State {
	s := Initial()
	if reset {
		return Reduce(s, Action{Kind: Reset})
	}
	s = Reduce(s, Action{Kind: SetSearch, Value: term})
	return Reduce(s, Action{Kind: SetCategory, Value: category})
}

// CategoryOption is one entry in the category select menu.
type CategoryOption struct {
	Value    string
	Selected bool
}

// Card is the display model for one resource.
type Card struct {
	ID       string
	Name     string
	Category string
	Closed   bool

	Eligibility string
	Cost        string

	VerifiedLabel string
	VerifiedAgo   string
	Source        string

	Address    string
	Phone      string
	PhoneHref  template.URL // only dialable characters, see listingfmt.PhoneHref
	HasPhone   bool
	Website    string
	HasWebsite bool

	Hours         string
	Languages     string
	Accessibility string

	Tags []string
}

// ViewModel is everything the list page renders.
type ViewModel struct {
	SearchTerm       string
	SelectedCategory string
	Categories       []CategoryOption

	Cards []Card
	Shown int
	Total int

	// NoData means the dataset itself is empty; NoMatches means the filters
	// excluded everything.
	NoData    bool
	NoMatches bool
	Filtered  bool
}

// Options tune View. The zero value uses finder.DefaultLocale and time.Now.
type Options struct {
	Locale language.Tag
	Now    time.Time
}

// View renders s against items.
func View(s State, items []models.Resource, opts Options) ViewModel {
	tag := opts.Locale
	if tag == language.Und {
		tag = finder.DefaultLocale
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	q := s.Query()
	matched := finder.FilterLocale(items, q, tag)

	vm := ViewModel{
		SearchTerm:       s.SearchTerm,
		SelectedCategory: s.SelectedCategory,
		Shown:            len(matched),
		Total:            len(items),
		NoData:           len(items) == 0,
		Filtered:         !q.IsAll(),
	}
	vm.NoMatches = !vm.NoData && len(matched) == 0

	for _, c := range finder.Categories(items) {
		vm.Categories = append(vm.Categories, CategoryOption{
			Value:    c,
			Selected: c == s.SelectedCategory,
		})
	}

	vm.Cards = make([]Card, 0, len(matched))
	for _, r := range matched {
		vm.Cards = append(vm.Cards, NewCard(r, now))
	}
	return vm
}

// NewCard builds the display model for a single resource.
func NewCard(r models.Resource, now time.Time) Card {
	tel := listingfmt.PhoneHref(r)
	return Card{
		ID:            r.ID,
		Name:          r.Name,
		Category:      r.Category,
		Closed:        r.IsClosed(),
		Eligibility:   r.Eligibility,
		Cost:          r.Cost,
		VerifiedLabel: listingfmt.VerifiedLabel(r.LastVerifiedAt),
		VerifiedAgo:   listingfmt.VerifiedAgo(r.LastVerifiedAt, now),
		Source:        r.Source,
		Address:       listingfmt.OrNotListed(r.Address),
		Phone:         listingfmt.OrNotListed(r.Phone),
		PhoneHref:     template.URL(tel),
		HasPhone:      tel != "",
		Website:       r.Website,
		HasWebsite:    listingfmt.HasWebsite(r),
		Hours:         listingfmt.Hours(r),
		Languages:     listingfmt.Languages(r),
		Accessibility: listingfmt.Accessibility(r),
		Tags:          r.Tags,
	}
}
