package mocks

import (
	"context"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock type for the AuthService type
type MockAuthService struct {
	mock.Mock
}

// Login provides a mock function with given fields: ctx, input
func (_m *MockAuthService) Login(ctx context.Context, input *models.LoginInput) (*models.LoginResponse, error) {
	ret := _m.Called(ctx, input)

	var r0 *models.LoginResponse
	if rf, ok := ret.Get(0).(func(context.Context, *models.LoginInput) *models.LoginResponse); ok {
		r0 = rf(ctx, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.LoginResponse)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *models.LoginInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Me provides a mock function with given fields: ctx, uid
func (_m *MockAuthService) Me(ctx context.Context, uid string) (*models.MeResponse, error) {
	ret := _m.Called(ctx, uid)

	var r0 *models.MeResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.MeResponse)
	}

	return r0, ret.Error(1)
}

// NewMockAuthService creates a new instance of MockAuthService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthService {
	mock := &MockAuthService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockSeedService is a mock type for the SeedService type
type MockSeedService struct {
	mock.Mock
}

// Run provides a mock function with given fields: ctx
func (_m *MockSeedService) Run(ctx context.Context) (*models.SeedReport, error) {
	ret := _m.Called(ctx)

	var r0 *models.SeedReport
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.SeedReport)
	}

	return r0, ret.Error(1)
}

// NewMockSeedService creates a new instance of MockSeedService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSeedService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSeedService {
	mock := &MockSeedService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
