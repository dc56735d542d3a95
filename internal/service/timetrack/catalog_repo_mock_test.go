package timetrack

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	GetProjectFunc           func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetTaskFunc              func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	IsAssignedFunc           func(ctx context.Context, projectID uuid.UUID, userID uuid.UUID) (bool, error)
	ListAssignedProjectsFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)

	calls struct {
		GetProject []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetTask []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		IsAssigned []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			UserID    uuid.UUID
		}
		ListAssignedProjects []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetProject           sync.RWMutex
	lockGetTask              sync.RWMutex
	lockIsAssigned           sync.RWMutex
	lockListAssignedProjects sync.RWMutex
}

func (mock *catalogRepoMock) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if mock.GetProjectFunc == nil {
		panic("catalogRepoMock.GetProjectFunc: method is nil but catalogRepo.GetProject was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetProject.Lock()
	mock.calls.GetProject = append(mock.calls.GetProject, callInfo)
	mock.lockGetProject.Unlock()
	return mock.GetProjectFunc(ctx, id)
}

func (mock *catalogRepoMock) GetProjectCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetProject.RLock()
	calls := mock.calls.GetProject
	mock.lockGetProject.RUnlock()
	return calls
}

func (mock *catalogRepoMock) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if mock.GetTaskFunc == nil {
		panic("catalogRepoMock.GetTaskFunc: method is nil but catalogRepo.GetTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetTask.Lock()
	mock.calls.GetTask = append(mock.calls.GetTask, callInfo)
	mock.lockGetTask.Unlock()
	return mock.GetTaskFunc(ctx, id)
}

func (mock *catalogRepoMock) GetTaskCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetTask.RLock()
	calls := mock.calls.GetTask
	mock.lockGetTask.RUnlock()
	return calls
}

func (mock *catalogRepoMock) IsAssigned(ctx context.Context, projectID uuid.UUID, userID uuid.UUID) (bool, error) {
	if mock.IsAssignedFunc == nil {
		panic("catalogRepoMock.IsAssignedFunc: method is nil but catalogRepo.IsAssigned was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		UserID    uuid.UUID
	}{
		Ctx:       ctx,
		ProjectID: projectID,
		UserID:    userID,
	}
	mock.lockIsAssigned.Lock()
	mock.calls.IsAssigned = append(mock.calls.IsAssigned, callInfo)
	mock.lockIsAssigned.Unlock()
	return mock.IsAssignedFunc(ctx, projectID, userID)
}

func (mock *catalogRepoMock) IsAssignedCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	UserID    uuid.UUID
} {
	mock.lockIsAssigned.RLock()
	calls := mock.calls.IsAssigned
	mock.lockIsAssigned.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ListAssignedProjects(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	if mock.ListAssignedProjectsFunc == nil {
		panic("catalogRepoMock.ListAssignedProjectsFunc: method is nil but catalogRepo.ListAssignedProjects was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListAssignedProjects.Lock()
	mock.calls.ListAssignedProjects = append(mock.calls.ListAssignedProjects, callInfo)
	mock.lockListAssignedProjects.Unlock()
	return mock.ListAssignedProjectsFunc(ctx, userID)
}

func (mock *catalogRepoMock) ListAssignedProjectsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListAssignedProjects.RLock()
	calls := mock.calls.ListAssignedProjects
	mock.lockListAssignedProjects.RUnlock()
	return calls
}
