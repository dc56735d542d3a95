// Package cmd contains the reportctl commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/timetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timetrack-backend/internal/app"
	"github.com/heartmarshall/timetrack-backend/internal/config"
	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/internal/metrics"
	"github.com/heartmarshall/timetrack-backend/internal/service/report"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// Filter flags mirror the query parameters of GET /api/v1/reports/*.
var (
	startDate string
	endDate   string
	projectID string
	userID    string
	taskID    string
	status    string
	operator  string
	cfgPath   string
)

var rootCmd = &cobra.Command{
	Use:   "reportctl",
	Short: "Time tracking reports from the command line",
	Long: `reportctl reads time entries straight from the database configured
by --config, CONFIG_PATH or DATABASE_DSN and prints summaries or writes CSV exports.

Dates are calendar days (YYYY-MM-DD) in the configured timetrack timezone.

Examples:
  # Totals for March
  reportctl summary --start 2026-03-01 --end 2026-03-31

  # Export one project's completed entries into ./out
  reportctl export --project 7d4c... --status COMPLETED --out ./out`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help() //nolint:errcheck
	},
}

// Execute runs the root command. SIGINT cancels in-flight queries.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&startDate, "start", "", "first day to include (YYYY-MM-DD)")
	f.StringVar(&endDate, "end", "", "last day to include (YYYY-MM-DD)")
	f.StringVar(&projectID, "project", "", "project ID")
	f.StringVar(&userID, "user", "", "worker user ID")
	f.StringVar(&taskID, "task", "", "task ID")
	f.StringVar(&status, "status", "", "entry status (IN_PROGRESS, COMPLETED, CANCELLED)")
	f.StringVar(&cfgPath, "config", "", "YAML config file (default: CONFIG_PATH or ./config.yaml)")
	f.StringVar(&operator, "as", "", "admin user ID recorded as the caller (default: a fixed reportctl ID)")
}

// filterValues collects the filter flags in query-string form.
func filterValues() url.Values {
	q := url.Values{}
	for key, val := range map[string]string{
		"startDate": startDate,
		"endDate":   endDate,
		"projectId": projectID,
		"userId":    userID,
		"taskId":    taskID,
		"status":    status,
	} {
		if val != "" {
			q.Set(key, val)
		}
	}
	return q
}

// cliOperator identifies reportctl as the caller when --as is not given.
var cliOperator = uuid.NewSHA1(uuid.NameSpaceURL, []byte("reportctl"))

// operatorCtx returns ctx carrying an admin identity for the report service.
func operatorCtx(ctx context.Context, raw string) (context.Context, error) {
	id := cliOperator
	if raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("--as: %w", err)
		}
		id = parsed
	}
	ctx = ctxutil.WithUserID(ctx, id)
	return ctxutil.WithUserRole(ctx, string(domain.UserRoleAdmin)), nil
}

// loadConfig honours --config before falling back to CONFIG_PATH.
func loadConfig() (*config.Config, error) {
	if cfgPath != "" {
		return config.LoadFile(cfgPath)
	}
	return config.Load()
}

// session is an open database connection with the report service on top.
type session struct {
	cfg     *config.Config
	log     *slog.Logger
	pool    *pgxpool.Pool
	reports *report.Service
}

func (s *session) Close() {
	s.pool.Close()
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := app.NewLogger(cfg.Log, os.Stderr, "reportctl")

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	svcs := app.NewServices(pool, cfg, metrics.New(false), logger)
	return &session{cfg: cfg, log: logger, pool: pool, reports: svcs.Reports}, nil
}

// prepare opens a session and resolves the filter and caller identity.
func prepare(cmd *cobra.Command) (*session, context.Context, domain.ReportFilter, error) {
	f, err := report.ParseFilter(filterValues())
	if err != nil {
		return nil, nil, f, err
	}

	ctx, err := operatorCtx(cmd.Context(), operator)
	if err != nil {
		return nil, nil, f, err
	}

	s, err := openSession(ctx)
	if err != nil {
		return nil, nil, f, err
	}
	return s, ctx, f, nil
}
