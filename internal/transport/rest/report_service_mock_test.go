package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	QueryFunc         func(ctx context.Context, f domain.ReportFilter) ([]domain.ReportRow, error)
	SummarizeFunc     func(ctx context.Context, f domain.ReportFilter) (*domain.Summary, error)
	FilterCatalogFunc func(ctx context.Context) (*domain.FilterCatalog, error)

	calls struct {
		Query []struct {
			Ctx context.Context
			F   domain.ReportFilter
		}
		Summarize []struct {
			Ctx context.Context
			F   domain.ReportFilter
		}
		FilterCatalog []struct {
			Ctx context.Context
		}
	}
	lockQuery         sync.RWMutex
	lockSummarize     sync.RWMutex
	lockFilterCatalog sync.RWMutex
}

func (mock *reportServiceMock) Query(ctx context.Context, f domain.ReportFilter) ([]domain.ReportRow, error) {
	if mock.QueryFunc == nil {
		panic("reportServiceMock.QueryFunc: method is nil but reportService.Query was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ReportFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, f)
}

func (mock *reportServiceMock) QueryCalls() []struct {
	Ctx context.Context
	F   domain.ReportFilter
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}

func (mock *reportServiceMock) Summarize(ctx context.Context, f domain.ReportFilter) (*domain.Summary, error) {
	if mock.SummarizeFunc == nil {
		panic("reportServiceMock.SummarizeFunc: method is nil but reportService.Summarize was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ReportFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockSummarize.Lock()
	mock.calls.Summarize = append(mock.calls.Summarize, callInfo)
	mock.lockSummarize.Unlock()
	return mock.SummarizeFunc(ctx, f)
}

func (mock *reportServiceMock) SummarizeCalls() []struct {
	Ctx context.Context
	F   domain.ReportFilter
} {
	mock.lockSummarize.RLock()
	calls := mock.calls.Summarize
	mock.lockSummarize.RUnlock()
	return calls
}

func (mock *reportServiceMock) FilterCatalog(ctx context.Context) (*domain.FilterCatalog, error) {
	if mock.FilterCatalogFunc == nil {
		panic("reportServiceMock.FilterCatalogFunc: method is nil but reportService.FilterCatalog was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockFilterCatalog.Lock()
	mock.calls.FilterCatalog = append(mock.calls.FilterCatalog, callInfo)
	mock.lockFilterCatalog.Unlock()
	return mock.FilterCatalogFunc(ctx)
}

func (mock *reportServiceMock) FilterCatalogCalls() []struct {
	Ctx context.Context
} {
	mock.lockFilterCatalog.RLock()
	calls := mock.calls.FilterCatalog
	mock.lockFilterCatalog.RUnlock()
	return calls
}
