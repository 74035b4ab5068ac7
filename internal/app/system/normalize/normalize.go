// Package normalize cleans request parameters before they reach the
// directory state.
package normalize

import (
	"strings"

	"github.com/dalemusser/communityhub/internal/app/system/finder"
)

// QueryParam trims surrounding whitespace and preserves case.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// Category maps blank values and "all" to the all-categories sentinel.
// Any other value is trimmed and otherwise kept exactly, because the
// category filter is case-sensitive.
func Category(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") || strings.EqualFold(s, finder.AllCategories) {
		return finder.AllCategories
	}
	return s
}

// Locale trims a locale tag and falls back to "en-US".
func Locale(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "en-US"
	}
	return s
}
