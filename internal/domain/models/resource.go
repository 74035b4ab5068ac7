package models

// Resource is one community-assistance listing.
//
// Optional text fields use the empty string for "not listed". The dataset is
// loaded once at startup and never modified afterwards.
type Resource struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"` // one of Categories
	Status   string `yaml:"status" json:"status"`     // "active" or "temporarily_closed"

	Eligibility string `yaml:"eligibility" json:"eligibility"`
	Cost        string `yaml:"cost" json:"cost"`

	Address       string `yaml:"address,omitempty" json:"address,omitempty"`
	Zip           string `yaml:"zip,omitempty" json:"zip,omitempty"`
	Phone         string `yaml:"phone,omitempty" json:"phone,omitempty"`
	Website       string `yaml:"website,omitempty" json:"website,omitempty"`
	Hours         string `yaml:"hours,omitempty" json:"hours,omitempty"`
	Accessibility string `yaml:"accessibility,omitempty" json:"accessibility,omitempty"`

	Languages []string `yaml:"languages,omitempty" json:"languages"`
	Tags      []string `yaml:"tags,omitempty" json:"tags"`

	// LastVerifiedAt is kept as authored; display code parses it leniently.
	LastVerifiedAt string `yaml:"last_verified_at,omitempty" json:"last_verified_at,omitempty"`
	Source         string `yaml:"source" json:"source"`
}

// IsClosed reports whether the listing is marked temporarily closed.
func (r Resource) IsClosed() bool {
	return r.Status == StatusTemporarilyClosed
}
