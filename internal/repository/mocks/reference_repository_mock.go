package mocks

import (
	"context"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type cleanupT interface {
	mock.TestingT
	Cleanup(func())
}

// MockCategoryRepository is a mock type for the CategoryRepository type
type MockCategoryRepository struct {
	mock.Mock
}

// GetAll provides a mock function with given fields: ctx
func (_m *MockCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	ret := _m.Called(ctx)

	var r0 []models.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Category)
	}

	return r0, ret.Error(1)
}

// Create provides a mock function with given fields: ctx, c
func (_m *MockCategoryRepository) Create(ctx context.Context, c *models.Category) error {
	ret := _m.Called(ctx, c)
	return ret.Error(0)
}

// ExistingNamesTx provides a mock function with given fields: ctx, tx
func (_m *MockCategoryRepository) ExistingNamesTx(ctx context.Context, tx pgx.Tx) ([]string, error) {
	ret := _m.Called(ctx, tx)

	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx) []string); ok {
		r0 = rf(ctx, tx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}

	return r0, ret.Error(1)
}

// CreateTx provides a mock function with given fields: ctx, tx, c
func (_m *MockCategoryRepository) CreateTx(ctx context.Context, tx pgx.Tx, c *models.Category) error {
	ret := _m.Called(ctx, tx, c)
	return ret.Error(0)
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository with expectation assertions on cleanup.
func NewMockCategoryRepository(t cleanupT) *MockCategoryRepository {
	mock := &MockCategoryRepository{}
	mock.Mock.Test(t)
	t.Cleanup(func() { mock.AssertExpectations(t) })
	return mock
}

// MockCountryRepository is a mock type for the CountryRepository type
type MockCountryRepository struct {
	mock.Mock
}

// GetAll provides a mock function with given fields: ctx
func (_m *MockCountryRepository) GetAll(ctx context.Context) ([]models.Country, error) {
	ret := _m.Called(ctx)

	var r0 []models.Country
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Country)
	}

	return r0, ret.Error(1)
}

// UpsertTx provides a mock function with given fields: ctx, tx, c
func (_m *MockCountryRepository) UpsertTx(ctx context.Context, tx pgx.Tx, c *models.Country) error {
	ret := _m.Called(ctx, tx, c)
	return ret.Error(0)
}

// NewMockCountryRepository creates a new instance of MockCountryRepository with expectation assertions on cleanup.
func NewMockCountryRepository(t cleanupT) *MockCountryRepository {
	mock := &MockCountryRepository{}
	mock.Mock.Test(t)
	t.Cleanup(func() { mock.AssertExpectations(t) })
	return mock
}

// MockSettingsRepository is a mock type for the SettingsRepository type
type MockSettingsRepository struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx
func (_m *MockSettingsRepository) Get(ctx context.Context) (*models.AppSettings, error) {
	ret := _m.Called(ctx)

	var r0 *models.AppSettings
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.AppSettings)
	}

	return r0, ret.Error(1)
}

// Update provides a mock function with given fields: ctx, s
func (_m *MockSettingsRepository) Update(ctx context.Context, s *models.AppSettings) error {
	ret := _m.Called(ctx, s)
	return ret.Error(0)
}

// UpsertTx provides a mock function with given fields: ctx, tx, s
func (_m *MockSettingsRepository) UpsertTx(ctx context.Context, tx pgx.Tx, s *models.AppSettings) error {
	ret := _m.Called(ctx, tx, s)
	return ret.Error(0)
}

// NewMockSettingsRepository creates a new instance of MockSettingsRepository with expectation assertions on cleanup.
func NewMockSettingsRepository(t cleanupT) *MockSettingsRepository {
	mock := &MockSettingsRepository{}
	mock.Mock.Test(t)
	t.Cleanup(func() { mock.AssertExpectations(t) })
	return mock
}
