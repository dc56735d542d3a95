package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/timetrack-backend/internal/adapter/postgres"
	catalogrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/catalog"
	reportrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/report"
	"github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/timeentry"
	userrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/timetrack-backend/internal/auth"
	"github.com/heartmarshall/timetrack-backend/internal/config"
	"github.com/heartmarshall/timetrack-backend/internal/export"
	"github.com/heartmarshall/timetrack-backend/internal/metrics"
	"github.com/heartmarshall/timetrack-backend/internal/service/catalog"
	"github.com/heartmarshall/timetrack-backend/internal/service/report"
	"github.com/heartmarshall/timetrack-backend/internal/service/timetrack"
	"github.com/heartmarshall/timetrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/timetrack-backend/internal/transport/rest"
)

// Services holds the wired domain services.
type Services struct {
	TimeTrack *timetrack.Service
	Reports   *report.Service
	Catalog   *catalog.Service
}

// NewServices builds repositories on pool and the services on top of them.
func NewServices(pool *pgxpool.Pool, cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) *Services {
	entries := timeentry.New(pool)
	catalogRepo := catalogrepo.New(pool)
	users := userrepo.New(pool)
	reports := reportrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	return &Services{
		TimeTrack: timetrack.NewService(logger, entries, catalogRepo, tx, m, cfg.TimeTrack.Location),
		Reports:   report.NewService(logger, reports, catalogRepo, users, m, cfg.TimeTrack.Location),
		Catalog:   catalog.NewService(logger, catalogRepo, users),
	}
}

// Formatter returns the CSV formatter configured by cfg.
func Formatter(cfg config.ExportConfig) export.CSVFormatter {
	return export.CSVFormatter{Location: cfg.Location, Labels: cfg.Labels}
}

// NewHandler assembles the router and its middleware. The returned func
// releases background resources held by the middleware.
func NewHandler(
	cfg *config.Config,
	svcs *Services,
	pool *pgxpool.Pool,
	m *metrics.Metrics,
	logger *slog.Logger,
) (http.Handler, func()) {
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	var metricsHandler http.Handler
	if cfg.Server.MetricsEnabled {
		metricsHandler = m.Handler()
	}

	router := rest.NewRouter(rest.RouterDeps{
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Entries: rest.NewEntryHandler(svcs.TimeTrack, logger),
		Reports: rest.NewReportHandler(svcs.Reports, Formatter(cfg.Export), logger),
		Admin:   rest.NewAdminHandler(svcs.Catalog, logger),
		Metrics: metricsHandler,
		Global: []middleware.Middleware{
			middleware.RequestID,
			middleware.Recovery(logger),
			middleware.Metrics(m),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
		},
		API: []middleware.Middleware{
			limiter.Limit(cfg.RateLimit.RequestsPerMinute),
		},
		Auth: middleware.Auth(auth.NewValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)),
	})

	return router, limiter.Stop
}
