package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"dashboard/internal/auth"
	"dashboard/internal/http/handlers"
	"dashboard/internal/middleware"
)

// RouterConfig carries the boundary collaborators: logging, CORS origins,
// optional country lookup for access logs, optional identity resolver.
type RouterConfig struct {
	Logger        zerolog.Logger
	CORSOrigins   []string
	DefaultLocale string
	Country       middleware.CountryLookup
	Identity      auth.Resolver
}

func NewRouter(app *handlers.App, cfg RouterConfig) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(cfg.Logger, cfg.Country),
		middleware.CORS(cfg.CORSOrigins),
		middleware.Locale(cfg.DefaultLocale),
		middleware.WithIdentity(cfg.Identity),
	)

	r.Get("/health", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(cfg.Identity != nil))

		r.Route("/stats", func(r chi.Router) {
			r.Get("/overview", app.StatsOverview)
			r.Get("/daily", app.StatsDaily)
			r.Get("/workspace-ranking", app.WorkspaceRanking)
			r.Get("/developer-ranking", app.DeveloperRanking)
			r.Get("/group-ranking", app.GroupRanking)
		})

		r.Get("/feedbacks/summary", app.FeedbacksSummary)
	})

	return r
}
