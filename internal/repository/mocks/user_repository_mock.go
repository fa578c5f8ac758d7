package mocks

import (
	"context"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock type for the UserRepository type
type MockUserRepository struct {
	mock.Mock
}

// GetByID provides a mock function with given fields: ctx, uid
func (_m *MockUserRepository) GetByID(ctx context.Context, uid string) (*models.User, error) {
	ret := _m.Called(ctx, uid)

	var r0 *models.User
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.User); ok {
		r0 = rf(ctx, uid)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}

	return r0, ret.Error(1)
}

// GetAll provides a mock function with given fields: ctx, limit, offset
func (_m *MockUserRepository) GetAll(ctx context.Context, limit int, offset int) ([]models.User, int, error) {
	ret := _m.Called(ctx, limit, offset)

	var r0 []models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.User)
	}

	return r0, ret.Int(1), ret.Error(2)
}

// Create provides a mock function with given fields: ctx, user
func (_m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

// UpdateRole provides a mock function with given fields: ctx, uid, role
func (_m *MockUserRepository) UpdateRole(ctx context.Context, uid string, role models.Role) error {
	ret := _m.Called(ctx, uid, role)
	return ret.Error(0)
}

// UpdateStatus provides a mock function with given fields: ctx, uid, status
func (_m *MockUserRepository) UpdateStatus(ctx context.Context, uid string, status models.Status) error {
	ret := _m.Called(ctx, uid, status)
	return ret.Error(0)
}

// UpdateAssignedDestinations provides a mock function with given fields: ctx, uid, destinationIDs
func (_m *MockUserRepository) UpdateAssignedDestinations(ctx context.Context, uid string, destinationIDs []string) error {
	ret := _m.Called(ctx, uid, destinationIDs)
	return ret.Error(0)
}

// UpsertProfileTx provides a mock function with given fields: ctx, tx, user
func (_m *MockUserRepository) UpsertProfileTx(ctx context.Context, tx pgx.Tx, user *models.User) error {
	ret := _m.Called(ctx, tx, user)
	return ret.Error(0)
}

// NewMockUserRepository creates a new instance of MockUserRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	mock := &MockUserRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
