package mocks

import (
	"context"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockUnlockService is a mock type for the UnlockService type
type MockUnlockService struct {
	mock.Mock
}

// Submit provides a mock function with given fields: ctx, actorUID, input
func (_m *MockUnlockService) Submit(ctx context.Context, actorUID string, input *models.SubmitUnlockInput) (*models.UnlockRequest, error) {
	ret := _m.Called(ctx, actorUID, input)

	var r0 *models.UnlockRequest
	if rf, ok := ret.Get(0).(func(context.Context, string, *models.SubmitUnlockInput) *models.UnlockRequest); ok {
		r0 = rf(ctx, actorUID, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UnlockRequest)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, *models.SubmitUnlockInput) error); ok {
		r1 = rf(ctx, actorUID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Decide provides a mock function with given fields: ctx, requestID, decision, processedBy
func (_m *MockUnlockService) Decide(ctx context.Context, requestID string, decision models.UnlockStatus, processedBy string) (*models.UnlockRequest, error) {
	ret := _m.Called(ctx, requestID, decision, processedBy)

	var r0 *models.UnlockRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UnlockRequest)
	}

	return r0, ret.Error(1)
}

// List provides a mock function with given fields: ctx, actorUID, filter, limit, offset
func (_m *MockUnlockService) List(ctx context.Context, actorUID string, filter models.UnlockFilter, limit int, offset int) ([]models.UnlockRequest, int, error) {
	ret := _m.Called(ctx, actorUID, filter, limit, offset)

	var r0 []models.UnlockRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.UnlockRequest)
	}

	return r0, ret.Int(1), ret.Error(2)
}

// NewMockUnlockService creates a new instance of MockUnlockService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUnlockService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnlockService {
	mock := &MockUnlockService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
