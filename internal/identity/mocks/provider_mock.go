package mocks

import (
	"context"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/identity"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock type for the Provider type
type MockProvider struct {
	mock.Mock
}

func (_m *MockProvider) identityResult(ret mock.Arguments) (*identity.Identity, error) {
	var r0 *identity.Identity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*identity.Identity)
	}
	return r0, ret.Error(1)
}

// GetUserByEmail provides a mock function with given fields: ctx, email
func (_m *MockProvider) GetUserByEmail(ctx context.Context, email string) (*identity.Identity, error) {
	return _m.identityResult(_m.Called(ctx, email))
}

// GetUser provides a mock function with given fields: ctx, uid
func (_m *MockProvider) GetUser(ctx context.Context, uid string) (*identity.Identity, error) {
	return _m.identityResult(_m.Called(ctx, uid))
}

// CreateUser provides a mock function with given fields: ctx, params
func (_m *MockProvider) CreateUser(ctx context.Context, params identity.CreateParams) (*identity.Identity, error) {
	return _m.identityResult(_m.Called(ctx, params))
}

// UpdateUser provides a mock function with given fields: ctx, uid, params
func (_m *MockProvider) UpdateUser(ctx context.Context, uid string, params identity.UpdateParams) (*identity.Identity, error) {
	return _m.identityResult(_m.Called(ctx, uid, params))
}

// SetRoleClaim provides a mock function with given fields: ctx, uid, role
func (_m *MockProvider) SetRoleClaim(ctx context.Context, uid string, role string) error {
	ret := _m.Called(ctx, uid, role)
	return ret.Error(0)
}

// SetDisabled provides a mock function with given fields: ctx, uid, disabled
func (_m *MockProvider) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	ret := _m.Called(ctx, uid, disabled)
	return ret.Error(0)
}

// SignIn provides a mock function with given fields: ctx, email, password
func (_m *MockProvider) SignIn(ctx context.Context, email string, password string) (*identity.Identity, error) {
	return _m.identityResult(_m.Called(ctx, email, password))
}

// NewMockProvider creates a new instance of MockProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProvider {
	mock := &MockProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
