package mocks

import (
	"context"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockDestinationRepository is a mock type for the DestinationRepository type
type MockDestinationRepository struct {
	mock.Mock
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockDestinationRepository) GetByID(ctx context.Context, id string) (*models.Destination, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Destination
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.Destination); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Destination)
	}

	return r0, ret.Error(1)
}

// GetAll provides a mock function with given fields: ctx, filter
func (_m *MockDestinationRepository) GetAll(ctx context.Context, filter models.DestinationFilter) ([]models.Destination, error) {
	ret := _m.Called(ctx, filter)

	var r0 []models.Destination
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Destination)
	}

	return r0, ret.Error(1)
}

// Create provides a mock function with given fields: ctx, d
func (_m *MockDestinationRepository) Create(ctx context.Context, d *models.Destination) error {
	ret := _m.Called(ctx, d)
	return ret.Error(0)
}

// Update provides a mock function with given fields: ctx, d
func (_m *MockDestinationRepository) Update(ctx context.Context, d *models.Destination) error {
	ret := _m.Called(ctx, d)
	return ret.Error(0)
}

// UpdateImage provides a mock function with given fields: ctx, id, imageURL
func (_m *MockDestinationRepository) UpdateImage(ctx context.Context, id string, imageURL string) error {
	ret := _m.Called(ctx, id, imageURL)
	return ret.Error(0)
}

// ExistingIDs provides a mock function with given fields: ctx, ids
func (_m *MockDestinationRepository) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	ret := _m.Called(ctx, ids)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}

	return r0, ret.Error(1)
}

// UpsertTx provides a mock function with given fields: ctx, tx, d
func (_m *MockDestinationRepository) UpsertTx(ctx context.Context, tx pgx.Tx, d *models.Destination) error {
	ret := _m.Called(ctx, tx, d)
	return ret.Error(0)
}

// NewMockDestinationRepository creates a new instance of MockDestinationRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockDestinationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDestinationRepository {
	mock := &MockDestinationRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
