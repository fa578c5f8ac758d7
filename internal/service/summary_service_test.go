package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	repoMocks "github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository/mocks"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSummaryService_Generate(t *testing.T) {
	input := &models.SummaryInput{DestinationID: "goa-jatijajar", Year: 2024, Month: 5}
	stored := &models.VisitData{
		Wisnus: 1200, Wisman: 30, TotalVisitors: 1280,
		WismanDetails: []models.WismanDetail{{Country: "Malaysia", Count: 20}, {Country: "Belanda", Count: 0}, {Country: " ", Count: 3}},
	}

	t.Run("Builds Structured Input", func(t *testing.T) {
		users := repoMocks.NewMockUserRepository(t)
		destinations := repoMocks.NewMockDestinationRepository(t)
		visits := repoMocks.NewMockVisitRepository(t)
		gen := mocks.NewMockNarrativeGenerator(t)
		svc := service.NewSummaryService(users, destinations, visits, gen)

		users.On("GetByID", mock.Anything, "pengelola-01").Return(pengelola, nil).Once()
		destinations.On("GetByID", mock.Anything, "goa-jatijajar").Return(&models.Destination{ID: "goa-jatijajar", Name: "Goa Jatijajar"}, nil).Once()
		visits.On("GetByKey", mock.Anything, "goa-jatijajar", 2024, 5).Return(stored, nil).Once()
		gen.On("Generate", mock.Anything, models.NarrativeInput{
			MonthName: "Mei", Year: 2024, DestinationName: "Goa Jatijajar",
			Wisnus: 1200, Wisman: 30, Total: 1280,
			Nationalities: []models.WismanDetail{{Country: "Malaysia", Count: 20}},
		}).Return("Pada Mei 2024 Goa Jatijajar dikunjungi 1.280 orang.", nil).Once()

		res, err := svc.Generate(context.Background(), "pengelola-01", input)
		require.NoError(t, err)
		assert.Equal(t, "Pada Mei 2024 Goa Jatijajar dikunjungi 1.280 orang.", res.Summary)
	})

	t.Run("Generator Failure Is Generic", func(t *testing.T) {
		users := repoMocks.NewMockUserRepository(t)
		destinations := repoMocks.NewMockDestinationRepository(t)
		visits := repoMocks.NewMockVisitRepository(t)
		gen := mocks.NewMockNarrativeGenerator(t)
		svc := service.NewSummaryService(users, destinations, visits, gen)

		users.On("GetByID", mock.Anything, "admin-01").Return(admin, nil).Once()
		destinations.On("GetByID", mock.Anything, "goa-jatijajar").Return(&models.Destination{Name: "Goa Jatijajar"}, nil).Once()
		visits.On("GetByKey", mock.Anything, "goa-jatijajar", 2024, 5).Return(stored, nil).Once()
		gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded")).Once()

		_, err := svc.Generate(context.Background(), "admin-01", input)
		assert.ErrorIs(t, err, service.ErrSummaryGenerationFailed)
	})

	t.Run("Unconfigured Generator", func(t *testing.T) {
		users := repoMocks.NewMockUserRepository(t)
		svc := service.NewSummaryService(users, repoMocks.NewMockDestinationRepository(t), repoMocks.NewMockVisitRepository(t), nil)
		users.On("GetByID", mock.Anything, "admin-01").Return(admin, nil).Once()

		_, err := svc.Generate(context.Background(), "admin-01", input)
		assert.ErrorIs(t, err, service.ErrSummaryUnavailable)
	})

	t.Run("Out Of Scope", func(t *testing.T) {
		users := repoMocks.NewMockUserRepository(t)
		svc := service.NewSummaryService(users, repoMocks.NewMockDestinationRepository(t), repoMocks.NewMockVisitRepository(t), mocks.NewMockNarrativeGenerator(t))
		users.On("GetByID", mock.Anything, "pengelola-01").Return(pengelola, nil).Once()

		_, err := svc.Generate(context.Background(), "pengelola-01", &models.SummaryInput{DestinationID: "pantai-menganti", Year: 2024, Month: 5})
		assert.True(t, errors.Is(err, apperrors.ErrAuthorization))
	})
}
