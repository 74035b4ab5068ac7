// internal/domain/models/sitesettings.go
package models

// SiteSettings holds the presentation settings loaded from configuration.
// There is one set per process; nothing edits them at runtime.
type SiteSettings struct {
	// Display settings
	SiteName string // Name shown in the page header

	// ContactEmail receives "Report an update" messages.
	ContactEmail string

	// NoticeHTML is an optional banner, already sanitized.
	NoticeHTML string
}

// HasNotice returns true if a banner should be shown.
func (s SiteSettings) HasNotice() bool {
	return s.NoticeHTML != ""
}

// DefaultSiteName is the site name used when none is configured.
const DefaultSiteName = "Spokane Community Resources"

// DefaultContactEmail is used when no contact address is configured.
const DefaultContactEmail = "hello@example.org"
