package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	repoMocks "github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository/mocks"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVisitService_Update(t *testing.T) {
	input := &models.UpdateVisitInput{
		Wisnus:        1200,
		Wisman:        30,
		WismanDetails: []models.WismanDetail{{Country: "Malaysia", Count: 20}, {Country: "Belanda", Count: 10}},
		EventVisitors: 50,
	}
	stored := func(locked bool) *models.VisitData {
		return &models.VisitData{ID: "goa-jatijajar-2024-5", DestinationID: "goa-jatijajar", Year: 2024, Month: 5, HistoricalVisitors: 7, Locked: locked}
	}

	tests := []struct {
		name      string
		actor     *models.User
		dest      string
		input     *models.UpdateVisitInput
		locked    bool
		expectGet bool
		wantKind  *apperrors.Error
		wantTotal int
	}{
		{name: "Pengelola Updates Open Period", actor: pengelola, dest: "goa-jatijajar", input: input, expectGet: true, wantTotal: 1280},
		{name: "Pengelola Blocked On Locked Period", actor: pengelola, dest: "goa-jatijajar", input: input, locked: true, expectGet: true, wantKind: apperrors.ErrInvalidState},
		{name: "Admin Overrides Lock", actor: admin, dest: "goa-jatijajar", input: input, locked: true, expectGet: true, wantTotal: 1280},
		{name: "Foreign Destination", actor: pengelola, dest: "pantai-menganti", input: input, wantKind: apperrors.ErrAuthorization},
		{
			name: "Details Exceed Wisman", actor: pengelola, dest: "goa-jatijajar", expectGet: true, wantKind: apperrors.ErrValidation,
			input: &models.UpdateVisitInput{Wisman: 5, WismanDetails: []models.WismanDetail{{Country: "Malaysia", Count: 6}}},
		},
		{
			name: "Count Overflows Int", actor: pengelola, dest: "goa-jatijajar", expectGet: true, wantKind: apperrors.ErrValidation,
			input: &models.UpdateVisitInput{Wisnus: math.MaxInt64, Wisman: 1},
		},
		{
			name: "Total Above Column Max", actor: pengelola, dest: "goa-jatijajar", expectGet: true, wantKind: apperrors.ErrValidation,
			input: &models.UpdateVisitInput{Wisnus: 2_000_000_000, Wisman: 2_000_000_000},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users := repoMocks.NewMockUserRepository(t)
			visits := repoMocks.NewMockVisitRepository(t)
			svc := service.NewVisitService(users, visits)

			users.On("GetByID", mock.Anything, tc.actor.UID).Return(tc.actor, nil).Once()
			if tc.expectGet {
				visits.On("GetByKey", mock.Anything, tc.dest, 2024, 5).Return(stored(tc.locked), nil).Once()
			}
			if tc.wantKind == nil {
				visits.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
			}

			got, err := svc.Update(context.Background(), tc.actor.UID, tc.dest, 2024, 5, tc.input)

			if tc.wantKind != nil {
				assert.True(t, errors.Is(err, tc.wantKind), "got %v", err)
				visits.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			// Nilai historis tersimpan (7) ditimpa input.
			assert.Equal(t, tc.wantTotal, got.TotalVisitors)
			assert.Equal(t, tc.actor.UID, got.LastUpdatedBy)
		})
	}
}

func TestVisitService_ListYear(t *testing.T) {
	t.Run("Admin Unscoped", func(t *testing.T) {
		users := repoMocks.NewMockUserRepository(t)
		visits := repoMocks.NewMockVisitRepository(t)
		users.On("GetByID", mock.Anything, "admin-01").Return(admin, nil).Once()
		visits.On("ListByYear", mock.Anything, 2024, []string(nil)).Return([]models.VisitData{{ID: "a"}, {ID: "b"}}, nil).Once()

		got, err := service.NewVisitService(users, visits).ListYear(context.Background(), "admin-01", 2024)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Inactive Actor", func(t *testing.T) {
		users := repoMocks.NewMockUserRepository(t)
		visits := repoMocks.NewMockVisitRepository(t)
		users.On("GetByID", mock.Anything, "pengelola-02").
			Return(&models.User{UID: "pengelola-02", Role: models.RolePengelola, Status: models.StatusNonaktif}, nil).Once()

		_, err := service.NewVisitService(users, visits).ListYear(context.Background(), "pengelola-02", 2024)
		assert.True(t, errors.Is(err, apperrors.ErrAuthorization))
	})
}

func TestVisitService_SetLockAndLockElapsed(t *testing.T) {
	users := repoMocks.NewMockUserRepository(t)
	visits := repoMocks.NewMockVisitRepository(t)
	svc := service.NewVisitService(users, visits)

	users.On("GetByID", mock.Anything, "pengelola-01").Return(pengelola, nil).Once()
	err := svc.SetLock(context.Background(), "pengelola-01", "goa-jatijajar", 2024, 5, false)
	assert.True(t, errors.Is(err, apperrors.ErrAuthorization))

	users.On("GetByID", mock.Anything, "admin-01").Return(admin, nil).Once()
	visits.On("SetLocked", mock.Anything, "goa-jatijajar", 2024, 5, false).Return(nil).Once()
	require.NoError(t, svc.SetLock(context.Background(), "admin-01", "goa-jatijajar", 2024, 5, false))

	now := time.Date(2024, 7, 1, 0, 5, 0, 0, time.UTC)
	visits.On("LockElapsed", mock.Anything, now, now.Add(-service.DefaultUnlockGrace)).Return(int64(3), nil).Once()
	n, err := svc.LockElapsedPeriods(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestVisitService_LockElapsedKeepsRecentUnlocks(t *testing.T) {
	now := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run("Custom Grace", func(t *testing.T) {
		visits := repoMocks.NewMockVisitRepository(t)
		svc := service.NewVisitService(repoMocks.NewMockUserRepository(t), visits, service.WithUnlockGrace(48*time.Hour))

		// Record Mei 2024 yang dibuka kemarin lewat permintaan yang disetujui
		// punya unlocked_at setelah batas ini, jadi tidak ikut dikunci.
		visits.On("LockElapsed", mock.Anything, now, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).Return(int64(0), nil).Once()

		n, err := svc.LockElapsedPeriods(context.Background(), now)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("Non Positive Grace Keeps Default", func(t *testing.T) {
		visits := repoMocks.NewMockVisitRepository(t)
		svc := service.NewVisitService(repoMocks.NewMockUserRepository(t), visits, service.WithUnlockGrace(0))

		visits.On("LockElapsed", mock.Anything, now, now.Add(-7*24*time.Hour)).Return(int64(1), nil).Once()

		n, err := svc.LockElapsedPeriods(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

func TestVisitService_Get_UnknownRoleHasNoScope(t *testing.T) {
	users := repoMocks.NewMockUserRepository(t)
	visits := repoMocks.NewMockVisitRepository(t)
	tamu := &models.User{UID: "tamu-01", Role: models.Role("tamu"), Status: models.StatusAktif, AssignedDestinations: []string{"goa-jatijajar"}}
	users.On("GetByID", mock.Anything, "tamu-01").Return(tamu, nil).Once()

	_, err := service.NewVisitService(users, visits).Get(context.Background(), "tamu-01", "goa-jatijajar", 2024, 5)
	assert.True(t, errors.Is(err, apperrors.ErrAuthorization))
	visits.AssertNotCalled(t, "GetByKey", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
