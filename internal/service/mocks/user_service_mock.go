package mocks

import (
	"context"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockUserService is a mock type for the UserService type
type MockUserService struct {
	mock.Mock
}

// ListUsers provides a mock function with given fields: ctx, limit, offset
func (_m *MockUserService) ListUsers(ctx context.Context, limit int, offset int) ([]models.User, int, error) {
	ret := _m.Called(ctx, limit, offset)

	var r0 []models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.User)
	}

	return r0, ret.Int(1), ret.Error(2)
}

// CreateUser provides a mock function with given fields: ctx, input
func (_m *MockUserService) CreateUser(ctx context.Context, input *models.CreateUserInput) (*models.CreateUserResult, error) {
	ret := _m.Called(ctx, input)

	var r0 *models.CreateUserResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CreateUserResult)
	}

	return r0, ret.Error(1)
}

// ChangeRole provides a mock function with given fields: ctx, actorUID, uid, role
func (_m *MockUserService) ChangeRole(ctx context.Context, actorUID string, uid string, role models.Role) error {
	ret := _m.Called(ctx, actorUID, uid, role)
	return ret.Error(0)
}

// ChangeStatus provides a mock function with given fields: ctx, actorUID, uid, status
func (_m *MockUserService) ChangeStatus(ctx context.Context, actorUID string, uid string, status models.Status) error {
	ret := _m.Called(ctx, actorUID, uid, status)
	return ret.Error(0)
}

// AssignDestinations provides a mock function with given fields: ctx, uid, destinationIDs
func (_m *MockUserService) AssignDestinations(ctx context.Context, uid string, destinationIDs []string) error {
	ret := _m.Called(ctx, uid, destinationIDs)
	return ret.Error(0)
}

// NewMockUserService creates a new instance of MockUserService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserService {
	mock := &MockUserService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
