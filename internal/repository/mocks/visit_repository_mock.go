package mocks

import (
	"context"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockVisitRepository is a mock type for the VisitRepository type
type MockVisitRepository struct {
	mock.Mock
}

// GetByKey provides a mock function with given fields: ctx, destinationID, year, month
func (_m *MockVisitRepository) GetByKey(ctx context.Context, destinationID string, year int, month int) (*models.VisitData, error) {
	ret := _m.Called(ctx, destinationID, year, month)

	var r0 *models.VisitData
	if rf, ok := ret.Get(0).(func(context.Context, string, int, int) *models.VisitData); ok {
		r0 = rf(ctx, destinationID, year, month)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.VisitData)
	}

	return r0, ret.Error(1)
}

// ListByYear provides a mock function with given fields: ctx, year, destinationIDs
func (_m *MockVisitRepository) ListByYear(ctx context.Context, year int, destinationIDs []string) ([]models.VisitData, error) {
	ret := _m.Called(ctx, year, destinationIDs)

	var r0 []models.VisitData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.VisitData)
	}

	return r0, ret.Error(1)
}

// ListByDestination provides a mock function with given fields: ctx, destinationID, year
func (_m *MockVisitRepository) ListByDestination(ctx context.Context, destinationID string, year int) ([]models.VisitData, error) {
	ret := _m.Called(ctx, destinationID, year)

	var r0 []models.VisitData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.VisitData)
	}

	return r0, ret.Error(1)
}

// Update provides a mock function with given fields: ctx, v
func (_m *MockVisitRepository) Update(ctx context.Context, v *models.VisitData) error {
	ret := _m.Called(ctx, v)
	return ret.Error(0)
}

// SetLocked provides a mock function with given fields: ctx, destinationID, year, month, locked
func (_m *MockVisitRepository) SetLocked(ctx context.Context, destinationID string, year int, month int, locked bool) error {
	ret := _m.Called(ctx, destinationID, year, month, locked)
	return ret.Error(0)
}

// SetLockedTx provides a mock function with given fields: ctx, tx, destinationID, year, month, locked
func (_m *MockVisitRepository) SetLockedTx(ctx context.Context, tx pgx.Tx, destinationID string, year int, month int, locked bool) error {
	ret := _m.Called(ctx, tx, destinationID, year, month, locked)
	return ret.Error(0)
}

// LockElapsed provides a mock function with given fields: ctx, now, unlockedBefore
func (_m *MockVisitRepository) LockElapsed(ctx context.Context, now time.Time, unlockedBefore time.Time) (int64, error) {
	ret := _m.Called(ctx, now, unlockedBefore)

	var r0 int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}

	return r0, ret.Error(1)
}

// ExistingIDsTx provides a mock function with given fields: ctx, tx, yearFrom, yearTo
func (_m *MockVisitRepository) ExistingIDsTx(ctx context.Context, tx pgx.Tx, yearFrom int, yearTo int) (map[string]struct{}, error) {
	ret := _m.Called(ctx, tx, yearFrom, yearTo)

	var r0 map[string]struct{}
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, int, int) map[string]struct{}); ok {
		r0 = rf(ctx, tx, yearFrom, yearTo)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]struct{})
	}

	return r0, ret.Error(1)
}

// CreateTx provides a mock function with given fields: ctx, tx, v
func (_m *MockVisitRepository) CreateTx(ctx context.Context, tx pgx.Tx, v *models.VisitData) (bool, error) {
	ret := _m.Called(ctx, tx, v)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, *models.VisitData) bool); ok {
		r0 = rf(ctx, tx, v)
	} else {
		r0 = ret.Bool(0)
	}

	return r0, ret.Error(1)
}

// NewMockVisitRepository creates a new instance of MockVisitRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockVisitRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockVisitRepository {
	mock := &MockVisitRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
