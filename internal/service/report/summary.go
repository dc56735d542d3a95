package report

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var minutesPerHour = decimal.NewFromInt(60)

// Summarize aggregates rows into totals grouped by user and by project.
// Rows without a duration count as entries but add no minutes or cost.
// Groups appear in the order their first row appears in rows, and the
// minutes of each grouping sum to TotalMinutes.
func Summarize(rows []domain.ReportRow) domain.Summary {
	summary := domain.Summary{
		ByUser:    []domain.UserSummary{},
		ByProject: []domain.ProjectSummary{},
	}

	userIdx := make(map[uuid.UUID]int)
	projectIdx := make(map[uuid.UUID]int)

	for _, row := range rows {
		minutes := 0
		if row.Duration != nil {
			minutes = *row.Duration
		}

		summary.TotalEntries++
		summary.TotalMinutes += minutes

		ui, ok := userIdx[row.User.ID]
		if !ok {
			ui = len(summary.ByUser)
			userIdx[row.User.ID] = ui
			summary.ByUser = append(summary.ByUser, domain.UserSummary{User: row.User})
		}
		summary.ByUser[ui].TotalMinutes += minutes
		summary.ByUser[ui].EntriesCount++

		pi, ok := projectIdx[row.Project.ID]
		if !ok {
			pi = len(summary.ByProject)
			projectIdx[row.Project.ID] = pi
			summary.ByProject = append(summary.ByProject, domain.ProjectSummary{
				Project:       row.Project,
				EstimatedCost: decimal.Zero,
			})
		}
		group := &summary.ByProject[pi]
		group.TotalMinutes += minutes
		group.EntriesCount++
		group.EstimatedCost = group.EstimatedCost.Add(rowCost(row))
	}

	for i := range summary.ByProject {
		summary.ByProject[i].EstimatedCost = summary.ByProject[i].EstimatedCost.Round(2)
	}
	summary.TotalHours = float64(summary.TotalMinutes) / 60

	return summary
}

// rowCost is duration/60 × hourly rate, or zero when either is unset.
func rowCost(row domain.ReportRow) decimal.Decimal {
	if row.Duration == nil || row.Project.HourlyRate == nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(*row.Duration)).
		Mul(*row.Project.HourlyRate).
		Div(minutesPerHour)
}
