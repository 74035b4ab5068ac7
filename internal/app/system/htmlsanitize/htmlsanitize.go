// Package htmlsanitize cleans operator-supplied HTML (the site notice banner)
// before it is rendered without escaping.
package htmlsanitize

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// noticePolicy allows basic formatting and links; everything else goes.
func noticePolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AddTargetBlankToFullyQualifiedLinks(true)
		policy = p
	})
	return policy
}

// Sanitize returns s with unsafe elements and attributes removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return noticePolicy().Sanitize(s)
}

// SanitizeToHTML is Sanitize typed for direct use in templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no markup at all.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}
