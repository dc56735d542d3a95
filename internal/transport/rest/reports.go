package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/internal/export"
	"github.com/heartmarshall/timetrack-backend/internal/service/report"
)

// reportService defines the admin report operations used by ReportHandler.
type reportService interface {
	Query(ctx context.Context, f domain.ReportFilter) ([]domain.ReportRow, error)
	Summarize(ctx context.Context, f domain.ReportFilter) (*domain.Summary, error)
	FilterCatalog(ctx context.Context) (*domain.FilterCatalog, error)
}

// ReportHandler serves the admin report endpoints and CSV download.
type ReportHandler struct {
	svc       reportService
	formatter export.CSVFormatter
	now       func() time.Time
	log       *slog.Logger
}

// NewReportHandler creates a ReportHandler. The formatter's Location is
// also used to date the export file name.
func NewReportHandler(svc reportService, formatter export.CSVFormatter, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		svc:       svc,
		formatter: formatter,
		now:       time.Now,
		log:       logger.With("handler", "reports"),
	}
}

// Entries returns the filtered report rows.
// GET /reports/entries
func (h *ReportHandler) Entries(w http.ResponseWriter, r *http.Request) {
	f, err := report.ParseFilter(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	rows, err := h.svc.Query(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportRows(rows))
}

// Summary returns totals grouped by worker and project.
// GET /reports/summary
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	f, err := report.ParseFilter(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	summary, err := h.svc.Summarize(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

// Filters returns the lookup lists for report filter controls.
// GET /reports/filters
func (h *ReportHandler) Filters(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.svc.FilterCatalog(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFilterCatalogResponse(catalog))
}

// Export streams the filtered rows as a CSV attachment.
// GET /reports/export.csv
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	f, err := report.ParseFilter(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	rows, err := h.svc.Query(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	now := h.now()
	if h.formatter.Location != nil {
		now = now.In(h.formatter.Location)
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(now)))
	w.WriteHeader(http.StatusOK)
	if err := h.formatter.Write(w, rows); err != nil {
		h.log.WarnContext(r.Context(), "csv export interrupted", slog.String("error", err.Error()))
	}
}
