package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ListByRoleFunc func(ctx context.Context, role domain.UserRole) ([]domain.CatalogUser, error)

	calls struct {
		ListByRole []struct {
			Ctx  context.Context
			Role domain.UserRole
		}
	}
	lockListByRole sync.RWMutex
}

func (mock *userRepoMock) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.CatalogUser, error) {
	if mock.ListByRoleFunc == nil {
		panic("userRepoMock.ListByRoleFunc: method is nil but userRepo.ListByRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Role domain.UserRole
	}{
		Ctx:  ctx,
		Role: role,
	}
	mock.lockListByRole.Lock()
	mock.calls.ListByRole = append(mock.calls.ListByRole, callInfo)
	mock.lockListByRole.Unlock()
	return mock.ListByRoleFunc(ctx, role)
}

func (mock *userRepoMock) ListByRoleCalls() []struct {
	Ctx  context.Context
	Role domain.UserRole
} {
	mock.lockListByRole.RLock()
	calls := mock.calls.ListByRole
	mock.lockListByRole.RUnlock()
	return calls
}
