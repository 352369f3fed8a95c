// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	announcementsfeature "github.com/dalemusser/schoolhub/internal/app/features/announcements"
	healthfeature "github.com/dalemusser/schoolhub/internal/app/features/health"
	announcementstore "github.com/dalemusser/schoolhub/internal/app/store/announcements"
	teacherstore "github.com/dalemusser/schoolhub/internal/app/store/teachers"
	"github.com/dalemusser/schoolhub/internal/app/system/auth"
	"github.com/dalemusser/schoolhub/internal/app/system/requestid"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// SchoolHub mounts the announcements API under /announcements and a health
// endpoint under /health. Requests are tagged with an X-Request-ID so log
// lines can be correlated across the stack.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.SchoolHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Announcements API
	annStore := announcementstore.New(deps.SchoolHubMongoDatabase)
	teachers := teacherstore.New(deps.SchoolHubMongoDatabase)
	authorizer := auth.NewDirectoryAuthorizer(teachers)

	annHandler := announcementsfeature.NewHandler(annStore, authorizer, logger)
	r.Route("/announcements", annHandler.MountRoutes)

	return r, nil
}
