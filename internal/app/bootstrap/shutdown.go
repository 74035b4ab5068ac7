// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown releases app resources. The dataset is in memory, so only the
// rate limiter's cleanup goroutine needs stopping.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.APILimiter != nil {
		deps.APILimiter.Close()
	}
	if deps.Store != nil {
		logger.Info("communityhub shutting down", zap.Int("resources", deps.Store.Len()))
	}
	return nil
}
