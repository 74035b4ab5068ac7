// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutfeature "github.com/dalemusser/communityhub/internal/app/features/about"
	apifeature "github.com/dalemusser/communityhub/internal/app/features/api"
	contactfeature "github.com/dalemusser/communityhub/internal/app/features/contact"
	errorsfeature "github.com/dalemusser/communityhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/communityhub/internal/app/features/health"
	resourcesfeature "github.com/dalemusser/communityhub/internal/app/features/resources"
	"github.com/dalemusser/communityhub/internal/app/system/metrics"
	"github.com/dalemusser/communityhub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, dataset loading, and the Startup
// hook have completed. CommunityHub boots the template engine, then mounts
// the public directory, the JSON API, and the informational pages. There
// is no session or auth middleware; every page is public.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	locale, err := parseLocale(appCfg.Locale)
	if err != nil {
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(deps, locale, logger), nil
}

// newRouter mounts every feature. It is split from BuildHandler so tests
// can build routers against different dependencies without rebooting the
// template engine.
func newRouter(deps DBDeps, locale language.Tag, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Set before mounting so subrouters inherit the 404 page.
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Store, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	if deps.Registry != nil {
		r.Handle("/metrics", metrics.Handler(deps.Registry))
	}

	// JSON API, throttled per client
	apiHandler := apifeature.NewHandler(deps.Store, deps.Metrics, locale, logger)
	r.Route("/api", func(r chi.Router) {
		r.Use(ratelimit.Middleware(deps.APILimiter, logger))
		r.Mount("/", apifeature.Routes(apiHandler))
	})

	// Informational pages
	aboutHandler := aboutfeature.NewHandler(deps.Store, logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	contactHandler := contactfeature.NewHandler(logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	// The directory (list + detail) owns the site root.
	resHandler := resourcesfeature.NewHandler(deps.Store, deps.Metrics, locale, logger)
	r.Mount("/", resourcesfeature.Routes(resHandler))

	return r
}
