package mocks

import (
	"context"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockUnlockRequestRepository is a mock type for the UnlockRequestRepository type
type MockUnlockRequestRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, req
func (_m *MockUnlockRequestRepository) Create(ctx context.Context, req *models.UnlockRequest) error {
	ret := _m.Called(ctx, req)
	return ret.Error(0)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockUnlockRequestRepository) GetByID(ctx context.Context, id string) (*models.UnlockRequest, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.UnlockRequest
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.UnlockRequest); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UnlockRequest)
	}

	return r0, ret.Error(1)
}

// GetByIDForUpdateTx provides a mock function with given fields: ctx, tx, id
func (_m *MockUnlockRequestRepository) GetByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id string) (*models.UnlockRequest, error) {
	ret := _m.Called(ctx, tx, id)

	var r0 *models.UnlockRequest
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, string) *models.UnlockRequest); ok {
		r0 = rf(ctx, tx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UnlockRequest)
	}

	return r0, ret.Error(1)
}

// HasPending provides a mock function with given fields: ctx, destinationID, year, month
func (_m *MockUnlockRequestRepository) HasPending(ctx context.Context, destinationID string, year int, month int) (bool, error) {
	ret := _m.Called(ctx, destinationID, year, month)
	return ret.Bool(0), ret.Error(1)
}

// List provides a mock function with given fields: ctx, filter, limit, offset
func (_m *MockUnlockRequestRepository) List(ctx context.Context, filter models.UnlockFilter, limit int, offset int) ([]models.UnlockRequest, int, error) {
	ret := _m.Called(ctx, filter, limit, offset)

	var r0 []models.UnlockRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.UnlockRequest)
	}

	return r0, ret.Int(1), ret.Error(2)
}

// UpdateStatusTx provides a mock function with given fields: ctx, tx, id, status, processedBy, processedAt
func (_m *MockUnlockRequestRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id string, status models.UnlockStatus, processedBy string, processedAt time.Time) error {
	ret := _m.Called(ctx, tx, id, status, processedBy, processedAt)
	return ret.Error(0)
}

// NewMockUnlockRequestRepository creates a new instance of MockUnlockRequestRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUnlockRequestRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnlockRequestRepository {
	mock := &MockUnlockRequestRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
