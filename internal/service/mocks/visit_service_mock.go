package mocks

import (
	"context"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockVisitService is a mock type for the VisitService type
type MockVisitService struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, actorUID, destinationID, year, month
func (_m *MockVisitService) Get(ctx context.Context, actorUID string, destinationID string, year int, month int) (*models.VisitData, error) {
	ret := _m.Called(ctx, actorUID, destinationID, year, month)

	var r0 *models.VisitData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.VisitData)
	}

	return r0, ret.Error(1)
}

// ListByDestination provides a mock function with given fields: ctx, actorUID, destinationID, year
func (_m *MockVisitService) ListByDestination(ctx context.Context, actorUID string, destinationID string, year int) ([]models.VisitData, error) {
	ret := _m.Called(ctx, actorUID, destinationID, year)

	var r0 []models.VisitData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.VisitData)
	}

	return r0, ret.Error(1)
}

// ListYear provides a mock function with given fields: ctx, actorUID, year
func (_m *MockVisitService) ListYear(ctx context.Context, actorUID string, year int) ([]models.VisitData, error) {
	ret := _m.Called(ctx, actorUID, year)

	var r0 []models.VisitData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.VisitData)
	}

	return r0, ret.Error(1)
}

// Update provides a mock function with given fields: ctx, actorUID, destinationID, year, month, input
func (_m *MockVisitService) Update(ctx context.Context, actorUID string, destinationID string, year int, month int, input *models.UpdateVisitInput) (*models.VisitData, error) {
	ret := _m.Called(ctx, actorUID, destinationID, year, month, input)

	var r0 *models.VisitData
	if rf, ok := ret.Get(0).(func(context.Context, string, string, int, int, *models.UpdateVisitInput) *models.VisitData); ok {
		r0 = rf(ctx, actorUID, destinationID, year, month, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.VisitData)
	}

	return r0, ret.Error(1)
}

// SetLock provides a mock function with given fields: ctx, actorUID, destinationID, year, month, locked
func (_m *MockVisitService) SetLock(ctx context.Context, actorUID string, destinationID string, year int, month int, locked bool) error {
	ret := _m.Called(ctx, actorUID, destinationID, year, month, locked)
	return ret.Error(0)
}

// LockElapsedPeriods provides a mock function with given fields: ctx, now
func (_m *MockVisitService) LockElapsedPeriods(ctx context.Context, now time.Time) (int64, error) {
	ret := _m.Called(ctx, now)

	var r0 int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}

	return r0, ret.Error(1)
}

// NewMockVisitService creates a new instance of MockVisitService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockVisitService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockVisitService {
	mock := &MockVisitService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
