package listingfmt

import (
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/communityhub/internal/domain/models"
)

func TestVerifiedLabel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", NotVerified},
		{"whitespace", "   ", NotVerified},
		{"garbage", "not-a-date", NotVerified},
		{"date only", "2024-01-15", "Verified 1/15/2024"},
		{"rfc3339", "2023-11-02T15:04:05Z", "Verified 11/2/2023"},
		{"padded", "  2024-06-30  ", "Verified 6/30/2024"},
		{"short numeric", "1/2/3", NotVerified},
		{"trailing text", "2024-01-15 pending", NotVerified},
		{"year zero", "0000-01-15", NotVerified},
		{"us slashes", "3/4/2024", "Verified 3/4/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifiedLabel(tt.input); got != tt.want {
				t.Errorf("VerifiedLabel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVerifiedLabel_NeverPanics(t *testing.T) {
	inputs := []string{"\x00", "////", "99999999999999999999", "2024-13-45", "T:Z", "-", "1/2/3/4/5"}
	for _, in := range inputs {
		got := VerifiedLabel(in)
		if got != NotVerified && !strings.HasPrefix(got, "Verified ") {
			t.Errorf("VerifiedLabel(%q) = %q, unexpected label", in, got)
		}
	}
}

func TestVerifiedAt(t *testing.T) {
	got, ok := VerifiedAt("2024-01-15")
	if !ok {
		t.Fatal("expected 2024-01-15 to parse")
	}
	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("VerifiedAt() = %v, want %v", got, want)
	}

	if _, ok := VerifiedAt("not-a-date"); ok {
		t.Error("expected not-a-date to fail")
	}
}

func TestVerifiedAgo(t *testing.T) {
	now := time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)

	got := VerifiedAgo("2024-01-15", now)
	if !strings.HasSuffix(got, "ago") {
		t.Errorf("VerifiedAgo() = %q, want suffix 'ago'", got)
	}

	if got := VerifiedAgo("", now); got != "" {
		t.Errorf("VerifiedAgo(\"\") = %q, want empty", got)
	}
}

func TestHasWebsite(t *testing.T) {
	tests := []struct {
		website string
		want    bool
	}{
		{"", false},
		{"  ", false},
		{"\t\n", false},
		{"https://example.org", true},
		{" https://example.org ", true},
	}

	for _, tt := range tests {
		r := models.Resource{Website: tt.website}
		if got := HasWebsite(r); got != tt.want {
			t.Errorf("HasWebsite(%q) = %v, want %v", tt.website, got, tt.want)
		}
	}
}

func TestFallbacks(t *testing.T) {
	var empty models.Resource

	if got := OrNotListed(empty.Address); got != NotListed {
		t.Errorf("OrNotListed(\"\") = %q", got)
	}
	if got := OrNotListed("12 Main"); got != "12 Main" {
		t.Errorf("OrNotListed(\"12 Main\") = %q", got)
	}
	if got := Hours(empty); got != HoursFallback {
		t.Errorf("Hours() = %q", got)
	}
	if got := Accessibility(empty); got != AccessFallback {
		t.Errorf("Accessibility() = %q", got)
	}
	if got := Languages(empty); got != NotListed {
		t.Errorf("Languages() = %q", got)
	}
	if got := PhoneHref(empty); got != "" {
		t.Errorf("PhoneHref() = %q", got)
	}

	full := models.Resource{
		Hours:         "Mon-Fri 9-5",
		Accessibility: "Ramp at side entrance",
		Languages:     []string{"English", "Spanish"},
		Phone:         "509-555-0100",
	}
	if got := Hours(full); got != "Mon-Fri 9-5" {
		t.Errorf("Hours() = %q", got)
	}
	if got := Accessibility(full); got != "Ramp at side entrance" {
		t.Errorf("Accessibility() = %q", got)
	}
	if got := Languages(full); got != "English, Spanish" {
		t.Errorf("Languages() = %q", got)
	}
	if got := PhoneHref(full); got != "tel:509-555-0100" {
		t.Errorf("PhoneHref() = %q", got)
	}
}

func TestPhoneHref(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"", ""},
		{"509-555-0100", "tel:509-555-0100"},
		{"(509) 555 0100", "tel:(509)5550100"},
		{"+1 509.555.0100", "tel:+1509.555.0100"},
		{"211", "tel:211"},
		{"Text HOME to 741741", ""},
		{"javascript:alert(1)", ""},
	}
	for _, tt := range tests {
		if got := PhoneHref(models.Resource{Phone: tt.phone}); got != tt.want {
			t.Errorf("PhoneHref(%q) = %q, want %q", tt.phone, got, tt.want)
		}
	}
}
