// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/mail"

	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// appConfigKeys defines the configuration keys for CommunityHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: site_name, dataset_path, etc.
//   - Environment variables: COMMUNITYHUB_SITE_NAME, COMMUNITYHUB_DATASET_PATH, etc.
//   - Command-line flags: --site_name, --dataset_path, etc.
var appConfigKeys = []config.AppKey{
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Directory name shown in the header"},
	{Name: "contact_email", Default: models.DefaultContactEmail, Desc: "Address for 'Report an update' emails"},
	{Name: "site_notice_html", Default: "", Desc: "Optional banner HTML shown on every page"},

	// Dataset
	{Name: "dataset_path", Default: "", Desc: "YAML resource dataset (blank uses the built-in list)"},
	{Name: "locale", Default: "en-US", Desc: "BCP-47 locale used to sort resource names"},

	// Observability
	{Name: "metrics_enabled", Default: true, Desc: "Expose Prometheus metrics at /metrics"},
	{Name: "api_rate_limit", Default: 120, Desc: "Requests per minute per client for /api (0 disables)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, COMMUNITYHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "COMMUNITYHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SiteName:       appValues.String("site_name"),
		ContactEmail:   appValues.String("contact_email"),
		SiteNoticeHTML: appValues.String("site_notice_html"),

		DatasetPath: appValues.String("dataset_path"),
		Locale:      normalize.Locale(appValues.String("locale")),

		MetricsEnabled: appValues.Bool("metrics_enabled"),
		APIRateLimit:   appValues.Int("api_rate_limit"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The locale must parse as a BCP-47 tag and the contact address must be a
// bare email address, since it is placed into a mailto link.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if _, err := parseLocale(appCfg.Locale); err != nil {
		logger.Error("invalid locale", zap.String("locale", appCfg.Locale), zap.Error(err))
		return err
	}

	if err := validateContactEmail(appCfg.ContactEmail); err != nil {
		logger.Error("invalid contact email", zap.String("contact_email", appCfg.ContactEmail), zap.Error(err))
		return err
	}

	if appCfg.APIRateLimit < 0 {
		return fmt.Errorf("api_rate_limit must be >= 0, got %d", appCfg.APIRateLimit)
	}

	return nil
}

func parseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(normalize.Locale(s))
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	return tag, nil
}

// validateContactEmail accepts "name@host" only, not "Name <name@host>".
func validateContactEmail(s string) error {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return fmt.Errorf("invalid contact_email %q: %w", s, err)
	}
	if addr.Address != s || addr.Name != "" {
		return fmt.Errorf("contact_email %q must be a bare address", s)
	}
	return nil
}
