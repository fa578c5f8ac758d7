package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	repoMocks "github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository/mocks"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func visit(dest string, month, wisnus, wisman int, details ...models.WismanDetail) models.VisitData {
	v := models.VisitData{DestinationID: dest, Year: 2024, Month: month, Wisnus: wisnus, Wisman: wisman, WismanDetails: details}
	v.Recalculate()
	return v
}

func TestReportService_Yearly(t *testing.T) {
	active := []models.Destination{
		{ID: "goa-jatijajar", Name: "Goa Jatijajar"},
		{ID: "pantai-menganti", Name: "Pantai Menganti"},
	}
	records := []models.VisitData{
		visit("goa-jatijajar", 1, 100, 10, models.WismanDetail{Country: "Malaysia", Count: 6}, models.WismanDetail{Country: "Belanda", Count: 4}),
		visit("goa-jatijajar", 2, 50, 0),
		visit("pantai-menganti", 1, 400, 5, models.WismanDetail{Country: "Belanda", Count: 5}),
	}

	t.Run("Admin Aggregates All Active Destinations", func(t *testing.T) {
		users := repoMocks.NewMockUserRepository(t)
		destinations := repoMocks.NewMockDestinationRepository(t)
		visits := repoMocks.NewMockVisitRepository(t)
		svc := service.NewReportService(users, destinations, visits)

		users.On("GetByID", mock.Anything, "admin-01").Return(admin, nil).Once()
		destinations.On("GetAll", mock.Anything, models.DestinationFilter{Status: models.StatusAktif}).Return(active, nil).Once()
		visits.On("ListByYear", mock.Anything, 2024, []string{"goa-jatijajar", "pantai-menganti"}).Return(records, nil).Once()

		report, err := svc.Yearly(context.Background(), "admin-01", 2024)
		require.NoError(t, err)

		assert.Equal(t, models.VisitTotals{Wisnus: 550, Wisman: 15, Total: 565}, report.Totals)
		assert.Len(t, report.Months, 12)
		assert.Equal(t, "Januari", report.Months[0].MonthName)
		assert.Equal(t, 515, report.Months[0].Total)
		assert.Equal(t, 0, report.Months[11].Total)

		wantDest := []models.DestinationTotals{
			{DestinationID: "pantai-menganti", DestinationName: "Pantai Menganti", VisitTotals: models.VisitTotals{Wisnus: 400, Wisman: 5, Total: 405}},
			{DestinationID: "goa-jatijajar", DestinationName: "Goa Jatijajar", VisitTotals: models.VisitTotals{Wisnus: 150, Wisman: 10, Total: 160}},
		}
		if diff := cmp.Diff(wantDest, report.Destinations); diff != "" {
			t.Errorf("destinations mismatch (-want +got):\n%s", diff)
		}

		wantCountries := []models.CountryTotal{{Country: "Belanda", Count: 9}, {Country: "Malaysia", Count: 6}}
		if diff := cmp.Diff(wantCountries, report.TopCountries); diff != "" {
			t.Errorf("top countries mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Pengelola Limited To Assignment", func(t *testing.T) {
		users := repoMocks.NewMockUserRepository(t)
		destinations := repoMocks.NewMockDestinationRepository(t)
		visits := repoMocks.NewMockVisitRepository(t)
		svc := service.NewReportService(users, destinations, visits)

		users.On("GetByID", mock.Anything, "pengelola-01").Return(pengelola, nil).Once()
		destinations.On("GetAll", mock.Anything, models.DestinationFilter{Status: models.StatusAktif}).Return(active, nil).Once()
		visits.On("ListByYear", mock.Anything, 2024, []string{"goa-jatijajar"}).Return(records[:2], nil).Once()

		report, err := svc.Yearly(context.Background(), "pengelola-01", 2024)
		require.NoError(t, err)
		assert.Equal(t, 160, report.Totals.Total)
		require.Len(t, report.Destinations, 1)
		assert.Equal(t, "goa-jatijajar", report.Destinations[0].DestinationID)
	})

	t.Run("No Assignment Yields Empty Report", func(t *testing.T) {
		users := repoMocks.NewMockUserRepository(t)
		destinations := repoMocks.NewMockDestinationRepository(t)
		visits := repoMocks.NewMockVisitRepository(t)
		svc := service.NewReportService(users, destinations, visits)

		lonely := &models.User{UID: "pengelola-09", Role: models.RolePengelola, Status: models.StatusAktif}
		users.On("GetByID", mock.Anything, "pengelola-09").Return(lonely, nil).Once()
		destinations.On("GetAll", mock.Anything, mock.Anything).Return(active, nil).Once()

		report, err := svc.Yearly(context.Background(), "pengelola-09", 2024)
		require.NoError(t, err)
		assert.Empty(t, report.Destinations)
		assert.Len(t, report.Months, 12)
		visits.AssertNotCalled(t, "ListByYear", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Year Out Of Range", func(t *testing.T) {
		svc := service.NewReportService(repoMocks.NewMockUserRepository(t), repoMocks.NewMockDestinationRepository(t), repoMocks.NewMockVisitRepository(t))
		_, err := svc.Yearly(context.Background(), "admin-01", 1999)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})
}
