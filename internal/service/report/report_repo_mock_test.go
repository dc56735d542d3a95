package report

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	ListFunc func(ctx context.Context, f domain.ReportFilter, loc *time.Location) ([]domain.ReportRow, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.ReportFilter
			Loc *time.Location
		}
	}
	lockList sync.RWMutex
}

func (mock *reportRepoMock) List(ctx context.Context, f domain.ReportFilter, loc *time.Location) ([]domain.ReportRow, error) {
	if mock.ListFunc == nil {
		panic("reportRepoMock.ListFunc: method is nil but reportRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ReportFilter
		Loc *time.Location
	}{
		Ctx: ctx,
		F:   f,
		Loc: loc,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f, loc)
}

func (mock *reportRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ReportFilter
	Loc *time.Location
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
