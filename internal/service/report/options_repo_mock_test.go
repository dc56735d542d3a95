package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var _ optionsRepo = &optionsRepoMock{}

type optionsRepoMock struct {
	ListProjectOptionsFunc func(ctx context.Context) ([]domain.CatalogProject, error)
	ListTaskOptionsFunc    func(ctx context.Context) ([]domain.CatalogTask, error)

	calls struct {
		ListProjectOptions []struct {
			Ctx context.Context
		}
		ListTaskOptions []struct {
			Ctx context.Context
		}
	}
	lockListProjectOptions sync.RWMutex
	lockListTaskOptions    sync.RWMutex
}

func (mock *optionsRepoMock) ListProjectOptions(ctx context.Context) ([]domain.CatalogProject, error) {
	if mock.ListProjectOptionsFunc == nil {
		panic("optionsRepoMock.ListProjectOptionsFunc: method is nil but optionsRepo.ListProjectOptions was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListProjectOptions.Lock()
	mock.calls.ListProjectOptions = append(mock.calls.ListProjectOptions, callInfo)
	mock.lockListProjectOptions.Unlock()
	return mock.ListProjectOptionsFunc(ctx)
}

func (mock *optionsRepoMock) ListProjectOptionsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListProjectOptions.RLock()
	calls := mock.calls.ListProjectOptions
	mock.lockListProjectOptions.RUnlock()
	return calls
}

func (mock *optionsRepoMock) ListTaskOptions(ctx context.Context) ([]domain.CatalogTask, error) {
	if mock.ListTaskOptionsFunc == nil {
		panic("optionsRepoMock.ListTaskOptionsFunc: method is nil but optionsRepo.ListTaskOptions was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListTaskOptions.Lock()
	mock.calls.ListTaskOptions = append(mock.calls.ListTaskOptions, callInfo)
	mock.lockListTaskOptions.Unlock()
	return mock.ListTaskOptionsFunc(ctx)
}

func (mock *optionsRepoMock) ListTaskOptionsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTaskOptions.RLock()
	calls := mock.calls.ListTaskOptions
	mock.lockListTaskOptions.RUnlock()
	return calls
}
