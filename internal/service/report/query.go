package report

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// Operation labels reported to the metrics recorder.
const (
	opQuery         = "query"
	opSummarize     = "summarize"
	opFilterCatalog = "filter_catalog"
)

// Query returns the entries matching f, newest first (admin only).
func (s *Service) Query(ctx context.Context, f domain.ReportFilter) ([]domain.ReportRow, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrUnauthorized
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.reports.List(ctx, f, s.loc)
	if err != nil {
		return nil, fmt.Errorf("report query: %w", err)
	}

	s.metrics.ReportQuery(opQuery)
	s.log.DebugContext(ctx, "report queried", slog.Int("rows", len(rows)))

	return rows, nil
}

// Summarize aggregates the entries matching f (admin only).
func (s *Service) Summarize(ctx context.Context, f domain.ReportFilter) (*domain.Summary, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrUnauthorized
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.reports.List(ctx, f, s.loc)
	if err != nil {
		return nil, fmt.Errorf("report summarize: %w", err)
	}

	summary := Summarize(rows)

	s.metrics.ReportQuery(opSummarize)
	s.log.DebugContext(ctx, "report summarized",
		slog.Int("entries", summary.TotalEntries),
		slog.Int("minutes", summary.TotalMinutes),
	)

	return &summary, nil
}

// FilterCatalog loads the lookup lists for report filter controls
// (admin only). Users are restricted to workers.
func (s *Service) FilterCatalog(ctx context.Context) (*domain.FilterCatalog, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrUnauthorized
	}

	var catalog domain.FilterCatalog

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		projects, err := s.options.ListProjectOptions(gctx)
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}
		catalog.Projects = projects
		return nil
	})
	g.Go(func() error {
		users, err := s.users.ListByRole(gctx, domain.UserRoleWorker)
		if err != nil {
			return fmt.Errorf("list workers: %w", err)
		}
		catalog.Users = users
		return nil
	})
	g.Go(func() error {
		tasks, err := s.options.ListTaskOptions(gctx)
		if err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}
		catalog.Tasks = tasks
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("filter catalog: %w", err)
	}

	s.metrics.ReportQuery(opFilterCatalog)

	return &catalog, nil
}
