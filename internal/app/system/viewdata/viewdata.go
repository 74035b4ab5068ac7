// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/dalemusser/communityhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site settings (from config)
	SiteName   string
	NoticeHTML template.HTML

	// "Report an update" contact
	ContactEmail string
	ReportURL    string // mailto: link with a prefilled subject

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
}

var (
	mu       sync.RWMutex
	settings = models.SiteSettings{
		SiteName:     models.DefaultSiteName,
		ContactEmail: models.DefaultContactEmail,
	}
	notice template.HTML
)

// Init sets the site settings used by every page.
// Call this once at startup from bootstrap.
func Init(s models.SiteSettings) {
	if s.SiteName == "" {
		s.SiteName = models.DefaultSiteName
	}
	if s.ContactEmail == "" {
		s.ContactEmail = models.DefaultContactEmail
	}
	n := noticeHTML(s.NoticeHTML)
	s.NoticeHTML = string(n)

	mu.Lock()
	defer mu.Unlock()
	settings = s
	notice = n
}

// noticeHTML sanitizes the banner. A plain-text notice is wrapped in a
// paragraph so it picks up the same styling as marked-up ones.
func noticeHTML(raw string) template.HTML {
	raw = strings.TrimSpace(raw)
	if raw != "" && htmlsanitize.IsPlainText(raw) {
		raw = "<p>" + raw + "</p>"
	}
	return htmlsanitize.SanitizeToHTML(raw)
}

// Settings returns the current site settings.
func Settings() models.SiteSettings {
	mu.RLock()
	defer mu.RUnlock()
	return settings
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	mu.RLock()
	s, n := settings, notice
	mu.RUnlock()
	return BaseVM{
		SiteName:     s.SiteName,
		NoticeHTML:   n,
		ContactEmail: s.ContactEmail,
		ReportURL:    ReportURL(s),
		Title:        title,
		BackURL:      httpnav.ResolveBackURL(r, backDefault),
		CurrentPath:  httpnav.CurrentPath(r),
	}
}

// ReportURL builds the "Report an update" mailto link.
func ReportURL(s models.SiteSettings) string {
	return "mailto:" + s.ContactEmail + "?subject=" + url.PathEscape(s.SiteName+" update")
}
