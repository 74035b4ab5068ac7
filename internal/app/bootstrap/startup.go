// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/communityhub/internal/app/resources"
	"github.com/dalemusser/communityhub/internal/app/system/viewdata"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the dataset is
// loaded, but before the HTTP handler is built. It registers the shared
// templates and publishes the site settings every page reads.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	viewdata.Init(models.SiteSettings{
		SiteName:     appCfg.SiteName,
		ContactEmail: appCfg.ContactEmail,
		NoticeHTML:   appCfg.SiteNoticeHTML,
	})

	logger.Info("site settings applied",
		zap.String("site_name", viewdata.Settings().SiteName),
		zap.Bool("notice", viewdata.Settings().HasNotice()))
	return nil
}
