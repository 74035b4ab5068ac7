// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	resourcestore "github.com/dalemusser/communityhub/internal/app/store/resources"
	"github.com/dalemusser/communityhub/internal/app/system/metrics"
	"github.com/dalemusser/communityhub/internal/app/system/ratelimit"
	"github.com/prometheus/client_golang/prometheus"
)

// DBDeps holds the back-end dependencies for the app. CommunityHub has no
// database; its "backend" is the in-memory resource store plus the
// metrics registry that handlers record into.
type DBDeps struct {
	Store *resourcestore.Store

	// Registry and Metrics are nil when metrics_enabled is false.
	Registry *prometheus.Registry
	Metrics  *metrics.Recorder

	// APILimiter throttles /api per client; nil when api_rate_limit is 0.
	APILimiter *ratelimit.Limiter
}
