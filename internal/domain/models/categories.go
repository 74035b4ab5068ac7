// internal/domain/models/categories.go
package models

// Canonical resource category values.
//
// These are display labels as well as keys: the category filter matches them
// exactly, case included.
const (
	CategoryHousing = "Housing"
	CategoryFood    = "Food"
	CategorySafety  = "Safety"
	CategoryHealth  = "Health"
	CategorySupport = "Support"
	CategoryLegal   = "Legal"
)

// Categories is the full set of allowed category values.
//
// Treat this slice as the single source of truth for dataset validation.
var Categories = []string{
	CategoryHousing,
	CategoryFood,
	CategorySafety,
	CategoryHealth,
	CategorySupport,
	CategoryLegal,
}

// IsKnownCategory reports whether c is one of Categories.
func IsKnownCategory(c string) bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// Operational status values.
const (
	StatusActive            = "active"
	StatusTemporarilyClosed = "temporarily_closed"
)

// DefaultStatus is applied when a dataset entry omits status.
const DefaultStatus = StatusActive
