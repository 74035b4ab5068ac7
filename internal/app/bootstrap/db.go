// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"sort"
	"time"

	resourcestore "github.com/dalemusser/communityhub/internal/app/store/resources"
	"github.com/dalemusser/communityhub/internal/app/system/metrics"
	"github.com/dalemusser/communityhub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// ConnectDB loads the resource dataset and builds the metrics registry.
//
// A dataset that fails validation aborts startup, naming the bad record.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	source := appCfg.DatasetPath
	if source == "" {
		source = "(embedded)"
	}

	store, err := resourcestore.Load(appCfg.DatasetPath)
	if err != nil {
		logger.Error("resource dataset load failed", zap.String("dataset", source), zap.Error(err))
		return DBDeps{}, fmt.Errorf("load dataset %s: %w", source, err)
	}
	logger.Info("resource dataset loaded",
		zap.String("dataset", source),
		zap.Int("resources", store.Len()))

	deps := DBDeps{Store: store}

	if appCfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Registry = reg
		deps.Metrics = metrics.New(reg)
	}

	if appCfg.APIRateLimit > 0 {
		deps.APILimiter = ratelimit.New(appCfg.APIRateLimit, time.Minute)
	}

	return deps, nil
}

// EnsureSchema reports the shape of the loaded dataset. There is nothing to
// migrate; an empty dataset is allowed but logged as a warning.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Store.Len() == 0 {
		logger.Warn("resource dataset is empty; the directory will show no listings")
		return nil
	}

	counts := deps.Store.CountByCategory()
	cats := make([]string, 0, len(counts))
	for c := range counts {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	fields := make([]zap.Field, 0, len(cats))
	for _, c := range cats {
		fields = append(fields, zap.Int(c, counts[c]))
	}
	logger.Info("resource categories", fields...)
	return nil
}
