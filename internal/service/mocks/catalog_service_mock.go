package mocks

import (
	"context"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/stretchr/testify/mock"
)

type cleanupT interface {
	mock.TestingT
	Cleanup(func())
}

// MockDestinationService is a mock type for the DestinationService type
type MockDestinationService struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockDestinationService) List(ctx context.Context, filter models.DestinationFilter) ([]models.Destination, error) {
	ret := _m.Called(ctx, filter)

	var r0 []models.Destination
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Destination)
	}

	return r0, ret.Error(1)
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockDestinationService) Get(ctx context.Context, id string) (*models.Destination, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Destination
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Destination)
	}

	return r0, ret.Error(1)
}

// Create provides a mock function with given fields: ctx, input
func (_m *MockDestinationService) Create(ctx context.Context, input *models.CreateDestinationInput) (*models.Destination, error) {
	ret := _m.Called(ctx, input)

	var r0 *models.Destination
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Destination)
	}

	return r0, ret.Error(1)
}

// Update provides a mock function with given fields: ctx, id, input
func (_m *MockDestinationService) Update(ctx context.Context, id string, input *models.UpdateDestinationInput) (*models.Destination, error) {
	ret := _m.Called(ctx, id, input)

	var r0 *models.Destination
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Destination)
	}

	return r0, ret.Error(1)
}

// UploadImage provides a mock function with given fields: ctx, id, raw
func (_m *MockDestinationService) UploadImage(ctx context.Context, id string, raw []byte) (*models.Destination, error) {
	ret := _m.Called(ctx, id, raw)

	var r0 *models.Destination
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Destination)
	}

	return r0, ret.Error(1)
}

func NewMockDestinationService(t cleanupT) *MockDestinationService {
	mock := &MockDestinationService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockReferenceService is a mock type for the ReferenceService type
type MockReferenceService struct {
	mock.Mock
}

// ListCategories provides a mock function with given fields: ctx
func (_m *MockReferenceService) ListCategories(ctx context.Context) ([]models.Category, error) {
	ret := _m.Called(ctx)

	var r0 []models.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Category)
	}

	return r0, ret.Error(1)
}

// CreateCategory provides a mock function with given fields: ctx, input
func (_m *MockReferenceService) CreateCategory(ctx context.Context, input *models.CreateCategoryInput) (*models.Category, error) {
	ret := _m.Called(ctx, input)

	var r0 *models.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Category)
	}

	return r0, ret.Error(1)
}

// ListCountries provides a mock function with given fields: ctx
func (_m *MockReferenceService) ListCountries(ctx context.Context) ([]models.Country, error) {
	ret := _m.Called(ctx)

	var r0 []models.Country
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Country)
	}

	return r0, ret.Error(1)
}

// GetSettings provides a mock function with given fields: ctx
func (_m *MockReferenceService) GetSettings(ctx context.Context) (*models.AppSettings, error) {
	ret := _m.Called(ctx)

	var r0 *models.AppSettings
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.AppSettings)
	}

	return r0, ret.Error(1)
}

// UpdateSettings provides a mock function with given fields: ctx, input
func (_m *MockReferenceService) UpdateSettings(ctx context.Context, input *models.UpdateSettingsInput) (*models.AppSettings, error) {
	ret := _m.Called(ctx, input)

	var r0 *models.AppSettings
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.AppSettings)
	}

	return r0, ret.Error(1)
}

func NewMockReferenceService(t cleanupT) *MockReferenceService {
	mock := &MockReferenceService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockReportService is a mock type for the ReportService type
type MockReportService struct {
	mock.Mock
}

// Yearly provides a mock function with given fields: ctx, actorUID, year
func (_m *MockReportService) Yearly(ctx context.Context, actorUID string, year int) (*models.YearlyReport, error) {
	ret := _m.Called(ctx, actorUID, year)

	var r0 *models.YearlyReport
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.YearlyReport)
	}

	return r0, ret.Error(1)
}

func NewMockReportService(t cleanupT) *MockReportService {
	mock := &MockReportService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockSummaryService is a mock type for the SummaryService type
type MockSummaryService struct {
	mock.Mock
}

// Generate provides a mock function with given fields: ctx, actorUID, input
func (_m *MockSummaryService) Generate(ctx context.Context, actorUID string, input *models.SummaryInput) (*models.SummaryResult, error) {
	ret := _m.Called(ctx, actorUID, input)

	var r0 *models.SummaryResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.SummaryResult)
	}

	return r0, ret.Error(1)
}

func NewMockSummaryService(t cleanupT) *MockSummaryService {
	mock := &MockSummaryService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockNarrativeGenerator is a mock type for the NarrativeGenerator type
type MockNarrativeGenerator struct {
	mock.Mock
}

// Generate provides a mock function with given fields: ctx, input
func (_m *MockNarrativeGenerator) Generate(ctx context.Context, input models.NarrativeInput) (string, error) {
	ret := _m.Called(ctx, input)
	return ret.String(0), ret.Error(1)
}

func NewMockNarrativeGenerator(t cleanupT) *MockNarrativeGenerator {
	mock := &MockNarrativeGenerator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
