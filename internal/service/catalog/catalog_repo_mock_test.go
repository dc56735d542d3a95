package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	GetProjectFunc          func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	CreateProjectFunc       func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	UpdateProjectStatusFunc func(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) (*domain.Project, error)
	CreateTaskFunc          func(ctx context.Context, t *domain.Task) (*domain.Task, error)
	ToggleTaskFunc          func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	AssignFunc              func(ctx context.Context, projectID uuid.UUID, userID uuid.UUID) error

	calls struct {
		GetProject []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreateProject []struct {
			Ctx context.Context
			P   *domain.Project
		}
		UpdateProjectStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.ProjectStatus
		}
		CreateTask []struct {
			Ctx context.Context
			T   *domain.Task
		}
		ToggleTask []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Assign []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			UserID    uuid.UUID
		}
	}
	lockGetProject          sync.RWMutex
	lockCreateProject       sync.RWMutex
	lockUpdateProjectStatus sync.RWMutex
	lockCreateTask          sync.RWMutex
	lockToggleTask          sync.RWMutex
	lockAssign              sync.RWMutex
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

func (mock *catalogRepoMock) CreateProject(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if mock.CreateProjectFunc == nil {
		panic("catalogRepoMock.CreateProjectFunc: method is nil but catalogRepo.CreateProject was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Project
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreateProject.Lock()
	mock.calls.CreateProject = append(mock.calls.CreateProject, callInfo)
	mock.lockCreateProject.Unlock()
	return mock.CreateProjectFunc(ctx, p)
}

func (mock *catalogRepoMock) CreateProjectCalls() []struct {
	Ctx context.Context
	P   *domain.Project
} {
	mock.lockCreateProject.RLock()
	calls := mock.calls.CreateProject
	mock.lockCreateProject.RUnlock()
	return calls
}

func (mock *catalogRepoMock) UpdateProjectStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) (*domain.Project, error) {
	if mock.UpdateProjectStatusFunc == nil {
		panic("catalogRepoMock.UpdateProjectStatusFunc: method is nil but catalogRepo.UpdateProjectStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.ProjectStatus
	}{
		Ctx:    ctx,
		ID:     id,
		Status: status,
	}
	mock.lockUpdateProjectStatus.Lock()
	mock.calls.UpdateProjectStatus = append(mock.calls.UpdateProjectStatus, callInfo)
	mock.lockUpdateProjectStatus.Unlock()
	return mock.UpdateProjectStatusFunc(ctx, id, status)
}

func (mock *catalogRepoMock) UpdateProjectStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.ProjectStatus
} {
	mock.lockUpdateProjectStatus.RLock()
	calls := mock.calls.UpdateProjectStatus
	mock.lockUpdateProjectStatus.RUnlock()
	return calls
}

func (mock *catalogRepoMock) CreateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if mock.CreateTaskFunc == nil {
		panic("catalogRepoMock.CreateTaskFunc: method is nil but catalogRepo.CreateTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Task
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreateTask.Lock()
	mock.calls.CreateTask = append(mock.calls.CreateTask, callInfo)
	mock.lockCreateTask.Unlock()
	return mock.CreateTaskFunc(ctx, t)
}

func (mock *catalogRepoMock) CreateTaskCalls() []struct {
	Ctx context.Context
	T   *domain.Task
} {
	mock.lockCreateTask.RLock()
	calls := mock.calls.CreateTask
	mock.lockCreateTask.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ToggleTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if mock.ToggleTaskFunc == nil {
		panic("catalogRepoMock.ToggleTaskFunc: method is nil but catalogRepo.ToggleTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockToggleTask.Lock()
	mock.calls.ToggleTask = append(mock.calls.ToggleTask, callInfo)
	mock.lockToggleTask.Unlock()
	return mock.ToggleTaskFunc(ctx, id)
}

func (mock *catalogRepoMock) ToggleTaskCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockToggleTask.RLock()
	calls := mock.calls.ToggleTask
	mock.lockToggleTask.RUnlock()
	return calls
}

func (mock *catalogRepoMock) Assign(ctx context.Context, projectID uuid.UUID, userID uuid.UUID) error {
	if mock.AssignFunc == nil {
		panic("catalogRepoMock.AssignFunc: method is nil but catalogRepo.Assign was just called")
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
	mock.lockAssign.Lock()
	mock.calls.Assign = append(mock.calls.Assign, callInfo)
	mock.lockAssign.Unlock()
	return mock.AssignFunc(ctx, projectID, userID)
}

func (mock *catalogRepoMock) AssignCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	UserID    uuid.UUID
} {
	mock.lockAssign.RLock()
	calls := mock.calls.Assign
	mock.lockAssign.RUnlock()
	return calls
}
