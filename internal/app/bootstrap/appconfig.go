// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// ports, TLS, logging level and request limits; AppConfig covers the
// directory itself.
type AppConfig struct {
	// Site presentation
	SiteName       string // Heading and page title suffix
	ContactEmail   string // Target of the "Report an update" mailto link
	SiteNoticeHTML string // Optional banner HTML (sanitized before use)

	// Dataset
	DatasetPath string // YAML file of resources; blank uses the embedded seed list

	// Locale is the BCP-47 tag used to order resource names.
	Locale string

	// MetricsEnabled exposes Prometheus metrics at /metrics.
	MetricsEnabled bool

	// APIRateLimit is the per-client request budget for /api each minute.
	// Zero disables limiting.
	APIRateLimit int
}
