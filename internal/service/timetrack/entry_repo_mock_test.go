package timetrack

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	GetActiveFunc        func(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error)
	HasActiveFunc        func(ctx context.Context, userID uuid.UUID) (bool, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID, since time.Time, until *time.Time) ([]domain.TimeEntry, error)
	CreateFunc           func(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	CompleteFunc         func(ctx context.Context, id uuid.UUID, endTime time.Time, duration int) (*domain.TimeEntry, error)
	UpdateStartTimeFunc  func(ctx context.Context, id uuid.UUID, startTime time.Time) (*domain.TimeEntry, error)

	calls struct {
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetActive []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		HasActive []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
			Until  *time.Time
		}
		Create []struct {
			Ctx   context.Context
			Entry *domain.TimeEntry
		}
		Complete []struct {
			Ctx      context.Context
			ID       uuid.UUID
			EndTime  time.Time
			Duration int
		}
		UpdateStartTime []struct {
			Ctx       context.Context
			ID        uuid.UUID
			StartTime time.Time
		}
	}
	lockGetByIDForUpdate sync.RWMutex
	lockGetActive        sync.RWMutex
	lockHasActive        sync.RWMutex
	lockListByUser       sync.RWMutex
	lockCreate           sync.RWMutex
	lockComplete         sync.RWMutex
	lockUpdateStartTime  sync.RWMutex
}

func (mock *entryRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("entryRepoMock.GetByIDForUpdateFunc: method is nil but entryRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *entryRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetActive(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error) {
	if mock.GetActiveFunc == nil {
		panic("entryRepoMock.GetActiveFunc: method is nil but entryRepo.GetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetActive.Lock()
	mock.calls.GetActive = append(mock.calls.GetActive, callInfo)
	mock.lockGetActive.Unlock()
	return mock.GetActiveFunc(ctx, userID)
}

func (mock *entryRepoMock) GetActiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetActive.RLock()
	calls := mock.calls.GetActive
	mock.lockGetActive.RUnlock()
	return calls
}

func (mock *entryRepoMock) HasActive(ctx context.Context, userID uuid.UUID) (bool, error) {
	if mock.HasActiveFunc == nil {
		panic("entryRepoMock.HasActiveFunc: method is nil but entryRepo.HasActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockHasActive.Lock()
	mock.calls.HasActive = append(mock.calls.HasActive, callInfo)
	mock.lockHasActive.Unlock()
	return mock.HasActiveFunc(ctx, userID)
}

func (mock *entryRepoMock) HasActiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockHasActive.RLock()
	calls := mock.calls.HasActive
	mock.lockHasActive.RUnlock()
	return calls
}

func (mock *entryRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, since time.Time, until *time.Time) ([]domain.TimeEntry, error) {
	if mock.ListByUserFunc == nil {
		panic("entryRepoMock.ListByUserFunc: method is nil but entryRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
		Until  *time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		Since:  since,
		Until:  until,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, since, until)
}

func (mock *entryRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
	Until  *time.Time
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *entryRepoMock) Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.TimeEntry
	}{
		Ctx:   ctx,
		Entry: entry,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.TimeEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Complete(ctx context.Context, id uuid.UUID, endTime time.Time, duration int) (*domain.TimeEntry, error) {
	if mock.CompleteFunc == nil {
		panic("entryRepoMock.CompleteFunc: method is nil but entryRepo.Complete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		EndTime  time.Time
		Duration int
	}{
		Ctx:      ctx,
		ID:       id,
		EndTime:  endTime,
		Duration: duration,
	}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, id, endTime, duration)
}

func (mock *entryRepoMock) CompleteCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	EndTime  time.Time
	Duration int
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *entryRepoMock) UpdateStartTime(ctx context.Context, id uuid.UUID, startTime time.Time) (*domain.TimeEntry, error) {
	if mock.UpdateStartTimeFunc == nil {
		panic("entryRepoMock.UpdateStartTimeFunc: method is nil but entryRepo.UpdateStartTime was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		StartTime time.Time
	}{
		Ctx:       ctx,
		ID:        id,
		StartTime: startTime,
	}
	mock.lockUpdateStartTime.Lock()
	mock.calls.UpdateStartTime = append(mock.calls.UpdateStartTime, callInfo)
	mock.lockUpdateStartTime.Unlock()
	return mock.UpdateStartTimeFunc(ctx, id, startTime)
}

func (mock *entryRepoMock) UpdateStartTimeCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	StartTime time.Time
} {
	mock.lockUpdateStartTime.RLock()
	calls := mock.calls.UpdateStartTime
	mock.lockUpdateStartTime.RUnlock()
	return calls
}
