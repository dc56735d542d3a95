package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/internal/service/catalog"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	CreateProjectFunc       func(ctx context.Context, input catalog.CreateProjectInput) (*domain.Project, error)
	UpdateProjectStatusFunc func(ctx context.Context, projectID uuid.UUID, status domain.ProjectStatus) (*domain.Project, error)
	CreateTaskFunc          func(ctx context.Context, input catalog.CreateTaskInput) (*domain.Task, error)
	ToggleTaskFunc          func(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
	AssignWorkerFunc        func(ctx context.Context, projectID uuid.UUID, userID uuid.UUID) error

	calls struct {
		CreateProject []struct {
			Ctx   context.Context
			Input catalog.CreateProjectInput
		}
		UpdateProjectStatus []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			Status    domain.ProjectStatus
		}
		CreateTask []struct {
			Ctx   context.Context
			Input catalog.CreateTaskInput
		}
		ToggleTask []struct {
			Ctx    context.Context
			TaskID uuid.UUID
		}
		AssignWorker []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			UserID    uuid.UUID
		}
	}
	lockCreateProject       sync.RWMutex
	lockUpdateProjectStatus sync.RWMutex
	lockCreateTask          sync.RWMutex
	lockToggleTask          sync.RWMutex
	lockAssignWorker        sync.RWMutex
}

func (mock *catalogServiceMock) CreateProject(ctx context.Context, input catalog.CreateProjectInput) (*domain.Project, error) {
	if mock.CreateProjectFunc == nil {
		panic("catalogServiceMock.CreateProjectFunc: method is nil but catalogService.CreateProject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateProjectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateProject.Lock()
	mock.calls.CreateProject = append(mock.calls.CreateProject, callInfo)
	mock.lockCreateProject.Unlock()
	return mock.CreateProjectFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateProjectCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateProjectInput
} {
	mock.lockCreateProject.RLock()
	calls := mock.calls.CreateProject
	mock.lockCreateProject.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpdateProjectStatus(ctx context.Context, projectID uuid.UUID, status domain.ProjectStatus) (*domain.Project, error) {
	if mock.UpdateProjectStatusFunc == nil {
		panic("catalogServiceMock.UpdateProjectStatusFunc: method is nil but catalogService.UpdateProjectStatus was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		Status    domain.ProjectStatus
	}{
		Ctx:       ctx,
		ProjectID: projectID,
		Status:    status,
	}
	mock.lockUpdateProjectStatus.Lock()
	mock.calls.UpdateProjectStatus = append(mock.calls.UpdateProjectStatus, callInfo)
	mock.lockUpdateProjectStatus.Unlock()
	return mock.UpdateProjectStatusFunc(ctx, projectID, status)
}

func (mock *catalogServiceMock) UpdateProjectStatusCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	Status    domain.ProjectStatus
} {
	mock.lockUpdateProjectStatus.RLock()
	calls := mock.calls.UpdateProjectStatus
	mock.lockUpdateProjectStatus.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateTask(ctx context.Context, input catalog.CreateTaskInput) (*domain.Task, error) {
	if mock.CreateTaskFunc == nil {
		panic("catalogServiceMock.CreateTaskFunc: method is nil but catalogService.CreateTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateTaskInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateTask.Lock()
	mock.calls.CreateTask = append(mock.calls.CreateTask, callInfo)
	mock.lockCreateTask.Unlock()
	return mock.CreateTaskFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateTaskCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateTaskInput
} {
	mock.lockCreateTask.RLock()
	calls := mock.calls.CreateTask
	mock.lockCreateTask.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ToggleTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	if mock.ToggleTaskFunc == nil {
		panic("catalogServiceMock.ToggleTaskFunc: method is nil but catalogService.ToggleTask was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
	}{
		Ctx:    ctx,
		TaskID: taskID,
	}
	mock.lockToggleTask.Lock()
	mock.calls.ToggleTask = append(mock.calls.ToggleTask, callInfo)
	mock.lockToggleTask.Unlock()
	return mock.ToggleTaskFunc(ctx, taskID)
}

func (mock *catalogServiceMock) ToggleTaskCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
} {
	mock.lockToggleTask.RLock()
	calls := mock.calls.ToggleTask
	mock.lockToggleTask.RUnlock()
	return calls
}

func (mock *catalogServiceMock) AssignWorker(ctx context.Context, projectID uuid.UUID, userID uuid.UUID) error {
	if mock.AssignWorkerFunc == nil {
		panic("catalogServiceMock.AssignWorkerFunc: method is nil but catalogService.AssignWorker was just called")
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
	mock.lockAssignWorker.Lock()
	mock.calls.AssignWorker = append(mock.calls.AssignWorker, callInfo)
	mock.lockAssignWorker.Unlock()
	return mock.AssignWorkerFunc(ctx, projectID, userID)
}

func (mock *catalogServiceMock) AssignWorkerCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	UserID    uuid.UUID
} {
	mock.lockAssignWorker.RLock()
	calls := mock.calls.AssignWorker
	mock.lockAssignWorker.RUnlock()
	return calls
}
