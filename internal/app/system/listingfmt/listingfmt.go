// Package listingfmt turns resource fields into display text.
//
// None of these functions fail: missing or malformed values degrade to a
// fixed fallback label.
package listingfmt

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/dustin/go-humanize"
)

// Fallback labels shown when a field is absent.
const (
	NotVerified       = "Not yet verified"
	NotListed         = "Not listed"
	HoursFallback     = "Call to confirm"
	AccessFallback    = "Call to confirm details"
	ClosedBadge       = "Temporarily closed"
	verifiedDateStyle = "1/2/2006"
)

// Verification years outside this range are treated as typos.
const (
	minVerifiedYear = 1900
	maxVerifiedYear = 9999
)

// VerifiedAt parses a verification timestamp. ok is false when the value is
// empty or not a recognizable date.
func VerifiedAt(value string) (t time.Time, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	// dateparse has panicked on odd inputs in the past; treat that as unparseable.
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()

	// dateparse drops trailing text and pads short years, so only its layout
	// is trusted and the full value must match that layout exactly.
	layout, err := dateparse.ParseFormat(value)
	if err != nil {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil || parsed.Year() < minVerifiedYear || parsed.Year() > maxVerifiedYear {
		return time.Time{}, false
	}
	return parsed, true
}

// VerifiedLabel returns "Verified M/D/YYYY" or NotVerified.
func VerifiedLabel(value string) string {
	t, ok := VerifiedAt(value)
	if !ok {
		return NotVerified
	}
	return "Verified " + t.Format(verifiedDateStyle)
}

// VerifiedAgo returns relative text such as "3 months ago", or "" when the
// value does not parse.
func VerifiedAgo(value string, now time.Time) string {
	t, ok := VerifiedAt(value)
	if !ok {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// HasWebsite reports whether the resource has a non-blank website.
func HasWebsite(r models.Resource) bool {
	return strings.TrimSpace(r.Website) != ""
}

// OrNotListed returns s, or NotListed when s is empty.
func OrNotListed(s string) string {
	if s == "" {
		return NotListed
	}
	return s
}

// Hours returns the opening hours or HoursFallback.
func Hours(r models.Resource) string {
	if r.Hours == "" {
		return HoursFallback
	}
	return r.Hours
}

// Accessibility returns the accessibility notes or AccessFallback.
func Accessibility(r models.Resource) string {
	if r.Accessibility == "" {
		return AccessFallback
	}
	return r.Accessibility
}

// Languages joins the language list, or returns NotListed.
func Languages(r models.Resource) string {
	if len(r.Languages) == 0 {
		return NotListed
	}
	return strings.Join(r.Languages, ", ")
}

// PhoneHref is the tel: link for the phone number, or "" when the number is
// absent or holds anything besides digits and the usual separators.
func PhoneHref(r models.Resource) string {
	var b strings.Builder
	for _, c := range r.Phone {
		switch {
		case c >= '0' && c <= '9', c == '+', c == '-', c == '.', c == '(', c == ')':
			b.WriteRune(c)
		case c == ' ':
		default:
			return ""
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "tel:" + b.String()
}
