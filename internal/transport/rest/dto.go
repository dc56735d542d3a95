package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

type entryResponse struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"projectId"`
	ProjectName string     `json:"projectName,omitempty"`
	TaskID      uuid.UUID  `json:"taskId"`
	TaskName    string     `json:"taskName,omitempty"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Duration    *int       `json:"duration"`
	Status      string     `json:"status"`
	Notes       *string    `json:"notes"`
}

func toEntryResponse(e *domain.TimeEntry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		ProjectName: e.ProjectName,
		TaskID:      e.TaskID,
		TaskName:    e.TaskName,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Duration:    e.Duration,
		Status:      string(e.Status),
		Notes:       e.Notes,
	}
}

func toEntryResponses(entries []domain.TimeEntry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i := range entries {
		out[i] = toEntryResponse(&entries[i])
	}
	return out
}

type taskResponse struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"projectId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"isActive"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
	}
}

type projectResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	HourlyRate  *decimal.Decimal `json:"hourlyRate"`
	Status      string           `json:"status"`
	ClientName  *string          `json:"clientName"`
	ClientEmail *string          `json:"clientEmail"`
	Tasks       []taskResponse   `json:"tasks,omitempty"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	resp := projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		HourlyRate:  p.HourlyRate,
		Status:      string(p.Status),
		ClientName:  p.ClientName,
		ClientEmail: p.ClientEmail,
	}
	for i := range p.Tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(&p.Tasks[i]))
	}
	return resp
}

type reportUserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type reportProjectResponse struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"`
	ClientName *string          `json:"clientName"`
	HourlyRate *decimal.Decimal `json:"hourlyRate"`
}

type reportTaskResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type reportRowResponse struct {
	ID        uuid.UUID             `json:"id"`
	StartTime time.Time             `json:"startTime"`
	EndTime   *time.Time            `json:"endTime"`
	Duration  *int                  `json:"duration"`
	Status    string                `json:"status"`
	Notes     *string               `json:"notes"`
	User      reportUserResponse    `json:"user"`
	Project   reportProjectResponse `json:"project"`
	Task      reportTaskResponse    `json:"task"`
}

func toReportUser(u domain.ReportUser) reportUserResponse {
	return reportUserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toReportProject(p domain.ReportProject) reportProjectResponse {
	return reportProjectResponse{ID: p.ID, Name: p.Name, ClientName: p.ClientName, HourlyRate: p.HourlyRate}
}

func toReportRows(rows []domain.ReportRow) []reportRowResponse {
	out := make([]reportRowResponse, len(rows))
	for i, r := range rows {
		out[i] = reportRowResponse{
			ID:        r.ID,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Duration:  r.Duration,
			Status:    string(r.Status),
			Notes:     r.Notes,
			User:      toReportUser(r.User),
			Project:   toReportProject(r.Project),
			Task:      reportTaskResponse{ID: r.Task.ID, Name: r.Task.Name},
		}
	}
	return out
}

type userSummaryResponse struct {
	User         reportUserResponse `json:"user"`
	TotalMinutes int                `json:"totalMinutes"`
	EntriesCount int                `json:"entriesCount"`
}

type projectSummaryResponse struct {
	Project       reportProjectResponse `json:"project"`
	TotalMinutes  int                   `json:"totalMinutes"`
	EntriesCount  int                   `json:"entriesCount"`
	EstimatedCost decimal.Decimal       `json:"estimatedCost"`
}

type summaryResponse struct {
	TotalEntries int                      `json:"totalEntries"`
	TotalMinutes int                      `json:"totalMinutes"`
	TotalHours   float64                  `json:"totalHours"`
	ByUser       []userSummaryResponse    `json:"byUser"`
	ByProject    []projectSummaryResponse `json:"byProject"`
}

func toSummaryResponse(s *domain.Summary) summaryResponse {
	resp := summaryResponse{
		TotalEntries: s.TotalEntries,
		TotalMinutes: s.TotalMinutes,
		TotalHours:   s.TotalHours,
		ByUser:       make([]userSummaryResponse, len(s.ByUser)),
		ByProject:    make([]projectSummaryResponse, len(s.ByProject)),
	}
	for i, u := range s.ByUser {
		resp.ByUser[i] = userSummaryResponse{User: toReportUser(u.User), TotalMinutes: u.TotalMinutes, EntriesCount: u.EntriesCount}
	}
	for i, p := range s.ByProject {
		resp.ByProject[i] = projectSummaryResponse{
			Project:       toReportProject(p.Project),
			TotalMinutes:  p.TotalMinutes,
			EntriesCount:  p.EntriesCount,
			EstimatedCost: p.EstimatedCost,
		}
	}
	return resp
}

type optionResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	ProjectID *uuid.UUID `json:"projectId,omitempty"`
}

type filterCatalogResponse struct {
	Projects []optionResponse `json:"projects"`
	Users    []optionResponse `json:"users"`
	Tasks    []optionResponse `json:"tasks"`
}

func toFilterCatalogResponse(c *domain.FilterCatalog) filterCatalogResponse {
	resp := filterCatalogResponse{
		Projects: make([]optionResponse, len(c.Projects)),
		Users:    make([]optionResponse, len(c.Users)),
		Tasks:    make([]optionResponse, len(c.Tasks)),
	}
	for i, p := range c.Projects {
		resp.Projects[i] = optionResponse{ID: p.ID, Name: p.Name}
	}
	for i, u := range c.Users {
		resp.Users[i] = optionResponse{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	for i, t := range c.Tasks {
		resp.Tasks[i] = optionResponse{ID: t.ID, Name: t.Name, ProjectID: &t.ProjectID}
	}
	return resp
}
