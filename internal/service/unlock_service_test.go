package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	repoMocks "github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository/mocks"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	pengelola = &models.User{
		UID: "pengelola-01", Name: "Siti", Role: models.RolePengelola, Status: models.StatusAktif,
		AssignedDestinations: []string{"goa-jatijajar"},
	}
	admin = &models.User{UID: "admin-01", Name: "Admin", Role: models.RoleAdmin, Status: models.StatusAktif}
)

type unlockFixture struct {
	tx           *repoMocks.MockTxManager
	users        *repoMocks.MockUserRepository
	destinations *repoMocks.MockDestinationRepository
	visits       *repoMocks.MockVisitRepository
	requests     *repoMocks.MockUnlockRequestRepository
	decisions    *events.DecisionBus
	svc          service.UnlockService
}

func newUnlockFixture(t *testing.T, now time.Time) *unlockFixture {
	f := &unlockFixture{
		tx:           repoMocks.NewMockTxManager(t),
		users:        repoMocks.NewMockUserRepository(t),
		destinations: repoMocks.NewMockDestinationRepository(t),
		visits:       repoMocks.NewMockVisitRepository(t),
		requests:     repoMocks.NewMockUnlockRequestRepository(t),
		decisions:    events.NewBus[events.UnlockDecided](),
	}
	t.Cleanup(f.decisions.Close)
	f.svc = service.NewUnlockService(f.tx, f.users, f.destinations, f.visits, f.requests, f.decisions,
		service.WithDecideRetryDelay(0), service.WithClock(func() time.Time { return now }))
	return f
}

func TestUnlockService_Submit(t *testing.T) {
	input := &models.SubmitUnlockInput{DestinationID: "goa-jatijajar", Year: 2024, Month: 5, Reason: "  data salah "}

	t.Run("Creates Pending Request", func(t *testing.T) {
		f := newUnlockFixture(t, time.Now())
		f.users.On("GetByID", mock.Anything, "pengelola-01").Return(pengelola, nil).Once()
		f.destinations.On("GetByID", mock.Anything, "goa-jatijajar").Return(&models.Destination{ID: "goa-jatijajar"}, nil).Once()
		f.visits.On("GetByKey", mock.Anything, "goa-jatijajar", 2024, 5).Return(&models.VisitData{ID: "goa-jatijajar-2024-5", Locked: true}, nil).Once()
		f.requests.On("HasPending", mock.Anything, "goa-jatijajar", 2024, 5).Return(false, nil).Once()
		f.requests.On("Create", mock.Anything, mock.MatchedBy(func(r *models.UnlockRequest) bool {
			return r.ID != "" && r.Status == models.UnlockPending && r.Reason == "data salah" && r.ProcessedBy == ""
		})).Return(nil).Once()

		req, err := f.svc.Submit(context.Background(), "pengelola-01", input)

		require.NoError(t, err)
		assert.Equal(t, models.UnlockPending, req.Status)
		assert.Equal(t, "pengelola-01", req.RequestedBy)
		assert.Nil(t, req.ProcessedAt)
	})

	t.Run("Blank Reason Rejected Before Store", func(t *testing.T) {
		f := newUnlockFixture(t, time.Now())
		_, err := f.svc.Submit(context.Background(), "pengelola-01", &models.SubmitUnlockInput{DestinationID: "goa-jatijajar", Year: 2024, Month: 5, Reason: "   "})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
		f.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Not Assigned", func(t *testing.T) {
		f := newUnlockFixture(t, time.Now())
		f.users.On("GetByID", mock.Anything, "pengelola-01").Return(pengelola, nil).Once()

		_, err := f.svc.Submit(context.Background(), "pengelola-01", &models.SubmitUnlockInput{DestinationID: "pantai-menganti", Year: 2024, Month: 5, Reason: "x"})
		assert.True(t, errors.Is(err, apperrors.ErrAuthorization))
	})

	t.Run("Admin Cannot Submit", func(t *testing.T) {
		f := newUnlockFixture(t, time.Now())
		f.users.On("GetByID", mock.Anything, "admin-01").Return(admin, nil).Once()

		_, err := f.svc.Submit(context.Background(), "admin-01", input)
		assert.True(t, errors.Is(err, apperrors.ErrAuthorization))
	})

	t.Run("Unlocked Period", func(t *testing.T) {
		f := newUnlockFixture(t, time.Now())
		f.users.On("GetByID", mock.Anything, "pengelola-01").Return(pengelola, nil).Once()
		f.destinations.On("GetByID", mock.Anything, "goa-jatijajar").Return(&models.Destination{ID: "goa-jatijajar"}, nil).Once()
		f.visits.On("GetByKey", mock.Anything, "goa-jatijajar", 2024, 5).Return(&models.VisitData{Locked: false}, nil).Once()

		_, err := f.svc.Submit(context.Background(), "pengelola-01", input)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("Duplicate Pending", func(t *testing.T) {
		f := newUnlockFixture(t, time.Now())
		f.users.On("GetByID", mock.Anything, "pengelola-01").Return(pengelola, nil).Once()
		f.destinations.On("GetByID", mock.Anything, "goa-jatijajar").Return(&models.Destination{ID: "goa-jatijajar"}, nil).Once()
		f.visits.On("GetByKey", mock.Anything, "goa-jatijajar", 2024, 5).Return(&models.VisitData{Locked: true}, nil).Once()
		f.requests.On("HasPending", mock.Anything, "goa-jatijajar", 2024, 5).Return(true, nil).Once()

		_, err := f.svc.Submit(context.Background(), "pengelola-01", input)
		assert.True(t, errors.Is(err, apperrors.ErrConflict))
		f.requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Concurrent Submit Caught By Unique Index", func(t *testing.T) {
		f := newUnlockFixture(t, time.Now())
		f.users.On("GetByID", mock.Anything, "pengelola-01").Return(pengelola, nil).Once()
		f.destinations.On("GetByID", mock.Anything, "goa-jatijajar").Return(&models.Destination{ID: "goa-jatijajar"}, nil).Once()
		f.visits.On("GetByKey", mock.Anything, "goa-jatijajar", 2024, 5).Return(&models.VisitData{Locked: true}, nil).Once()
		f.requests.On("HasPending", mock.Anything, "goa-jatijajar", 2024, 5).Return(false, nil).Once()
		f.requests.On("Create", mock.Anything, mock.Anything).
			Return(&apperrors.Error{Kind: apperrors.KindConflict, Op: "unlock_requests.create"}).Once()

		_, err := f.svc.Submit(context.Background(), "pengelola-01", input)
		assert.True(t, errors.Is(err, apperrors.ErrConflict))
	})
}

func TestUnlockService_Decide(t *testing.T) {
	now := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	pending := func() *models.UnlockRequest {
		return &models.UnlockRequest{
			ID: "req-1", DestinationID: "goa-jatijajar", Year: 2024, Month: 5,
			Reason: "data salah", Status: models.UnlockPending, RequestedBy: "pengelola-01",
		}
	}

	t.Run("Approve Unlocks Visit And Publishes", func(t *testing.T) {
		f := newUnlockFixture(t, now)
		decided, cancel := f.decisions.Subscribe(1)
		defer cancel()

		f.users.On("GetByID", mock.Anything, "admin-01").Return(admin, nil).Once()
		f.tx.On("WithinTx", mock.Anything, mock.Anything).Return(nil).Once()
		f.requests.On("GetByIDForUpdateTx", mock.Anything, mock.Anything, "req-1").Return(pending(), nil).Once()
		unlock := f.visits.On("SetLockedTx", mock.Anything, mock.Anything, "goa-jatijajar", 2024, 5, false).Return(nil).Once()
		// Kunci dibuka lebih dulu, baru status disetujui.
		f.requests.On("UpdateStatusTx", mock.Anything, mock.Anything, "req-1", models.UnlockApproved, "admin-01", now).
			Return(nil).Once().NotBefore(unlock)

		req, err := f.svc.Decide(context.Background(), "req-1", models.UnlockApproved, "admin-01")

		require.NoError(t, err)
		assert.Equal(t, models.UnlockApproved, req.Status)
		assert.Equal(t, "admin-01", req.ProcessedBy)
		require.NotNil(t, req.ProcessedAt)
		assert.True(t, req.ProcessedAt.Equal(now))

		select {
		case evt := <-decided:
			assert.Equal(t, "req-1", evt.RequestID)
			assert.Equal(t, "approved", evt.Status)
			assert.Equal(t, "pengelola-01", evt.RequestedBy)
		default:
			t.Fatal("expected UnlockDecided event")
		}
	})

	t.Run("Unlock Failure Keeps Request Pending", func(t *testing.T) {
		f := newUnlockFixture(t, now)
		decided, cancel := f.decisions.Subscribe(1)
		defer cancel()

		f.users.On("GetByID", mock.Anything, "admin-01").Return(admin, nil).Once()
		f.tx.On("WithinTx", mock.Anything, mock.Anything).Return(nil).Once()
		f.requests.On("GetByIDForUpdateTx", mock.Anything, mock.Anything, "req-1").Return(pending(), nil).Once()
		f.visits.On("SetLockedTx", mock.Anything, mock.Anything, "goa-jatijajar", 2024, 5, false).
			Return(apperrors.NotFound("visits.lock", "visits/goa-jatijajar-2024-5")).Once()

		req, err := f.svc.Decide(context.Background(), "req-1", models.UnlockApproved, "admin-01")

		assert.Nil(t, req)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
		f.requests.AssertNotCalled(t, "UpdateStatusTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		assert.Empty(t, decided, "no decision may be published")
	})

	t.Run("Unlock Network Failure Exhausts Retries", func(t *testing.T) {
		f := newUnlockFixture(t, now)
		decided, cancel := f.decisions.Subscribe(1)
		defer cancel()

		netErr := &apperrors.Error{Kind: apperrors.KindNetwork, Op: "visits.lock", Path: "visits/goa-jatijajar-2024-5"}
		f.users.On("GetByID", mock.Anything, "admin-01").Return(admin, nil).Once()
		f.tx.On("WithinTx", mock.Anything, mock.Anything).Return(nil).Times(3)
		f.requests.On("GetByIDForUpdateTx", mock.Anything, mock.Anything, "req-1").Return(pending(), nil).Times(3)
		f.visits.On("SetLockedTx", mock.Anything, mock.Anything, "goa-jatijajar", 2024, 5, false).Return(netErr).Times(3)

		_, err := f.svc.Decide(context.Background(), "req-1", models.UnlockApproved, "admin-01")

		assert.True(t, errors.Is(err, apperrors.ErrNetwork))
		f.requests.AssertNotCalled(t, "UpdateStatusTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		assert.Empty(t, decided)
	})

	t.Run("Reject Leaves Visit Locked", func(t *testing.T) {
		f := newUnlockFixture(t, now)
		f.users.On("GetByID", mock.Anything, "admin-01").Return(admin, nil).Once()
		f.tx.On("WithinTx", mock.Anything, mock.Anything).Return(nil).Once()
		f.requests.On("GetByIDForUpdateTx", mock.Anything, mock.Anything, "req-1").Return(pending(), nil).Once()
		f.requests.On("UpdateStatusTx", mock.Anything, mock.Anything, "req-1", models.UnlockRejected, "admin-01", now).Return(nil).Once()

		req, err := f.svc.Decide(context.Background(), "req-1", models.UnlockRejected, "admin-01")

		require.NoError(t, err)
		assert.Equal(t, models.UnlockRejected, req.Status)
		f.visits.AssertNotCalled(t, "SetLockedTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Terminal Request Is Immutable", func(t *testing.T) {
		f := newUnlockFixture(t, now)
		rejected := pending()
		rejected.Status = models.UnlockRejected

		f.users.On("GetByID", mock.Anything, "admin-01").Return(admin, nil).Once()
		f.tx.On("WithinTx", mock.Anything, mock.Anything).Return(nil).Once()
		f.requests.On("GetByIDForUpdateTx", mock.Anything, mock.Anything, "req-1").Return(rejected, nil).Once()

		_, err := f.svc.Decide(context.Background(), "req-1", models.UnlockApproved, "admin-01")

		assert.True(t, errors.Is(err, apperrors.ErrInvalidState))
		f.requests.AssertNotCalled(t, "UpdateStatusTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.visits.AssertNotCalled(t, "SetLockedTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Pending Is Not A Decision", func(t *testing.T) {
		f := newUnlockFixture(t, now)
		_, err := f.svc.Decide(context.Background(), "req-1", models.UnlockPending, "admin-01")
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("Non Admin Rejected", func(t *testing.T) {
		f := newUnlockFixture(t, now)
		f.users.On("GetByID", mock.Anything, "pengelola-01").Return(pengelola, nil).Once()

		_, err := f.svc.Decide(context.Background(), "req-1", models.UnlockApproved, "pengelola-01")
		assert.True(t, errors.Is(err, apperrors.ErrAuthorization))
	})

	t.Run("Transient Failure Retried", func(t *testing.T) {
		f := newUnlockFixture(t, now)
		f.users.On("GetByID", mock.Anything, "admin-01").Return(admin, nil).Once()
		f.tx.On("WithinTx", mock.Anything, mock.Anything).
			Return(&apperrors.Error{Kind: apperrors.KindNetwork, Op: "tx.begin"}).Once()
		f.tx.On("WithinTx", mock.Anything, mock.Anything).Return(nil).Once()
		f.requests.On("GetByIDForUpdateTx", mock.Anything, mock.Anything, "req-1").Return(pending(), nil).Once()
		f.visits.On("SetLockedTx", mock.Anything, mock.Anything, "goa-jatijajar", 2024, 5, false).Return(nil).Once()
		f.requests.On("UpdateStatusTx", mock.Anything, mock.Anything, "req-1", models.UnlockApproved, "admin-01", now).Return(nil).Once()

		req, err := f.svc.Decide(context.Background(), "req-1", models.UnlockApproved, "admin-01")
		require.NoError(t, err)
		assert.Equal(t, models.UnlockApproved, req.Status)
	})

	t.Run("Not Found Not Retried", func(t *testing.T) {
		f := newUnlockFixture(t, now)
		f.users.On("GetByID", mock.Anything, "admin-01").Return(admin, nil).Once()
		f.tx.On("WithinTx", mock.Anything, mock.Anything).Return(nil).Once()
		f.requests.On("GetByIDForUpdateTx", mock.Anything, mock.Anything, "missing").
			Return(nil, apperrors.NotFound("unlock_requests.get", "unlock_requests/missing")).Once()

		_, err := f.svc.Decide(context.Background(), "missing", models.UnlockApproved, "admin-01")
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestUnlockService_List(t *testing.T) {
	t.Run("Pengelola Scoped To Assignment", func(t *testing.T) {
		f := newUnlockFixture(t, time.Now())
		f.users.On("GetByID", mock.Anything, "pengelola-01").Return(pengelola, nil).Once()
		f.requests.On("List", mock.Anything, models.UnlockFilter{
			Status: models.UnlockPending, DestinationIn: []string{"goa-jatijajar"},
		}, 20, 0).Return([]models.UnlockRequest{{ID: "req-1"}}, 1, nil).Once()

		items, total, err := f.svc.List(context.Background(), "pengelola-01", models.UnlockFilter{Status: models.UnlockPending}, 20, 0)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, 1, total)
	})

	t.Run("Pengelola Foreign Destination", func(t *testing.T) {
		f := newUnlockFixture(t, time.Now())
		f.users.On("GetByID", mock.Anything, "pengelola-01").Return(pengelola, nil).Once()

		_, _, err := f.svc.List(context.Background(), "pengelola-01", models.UnlockFilter{DestinationID: "pantai-menganti"}, 20, 0)
		assert.True(t, errors.Is(err, apperrors.ErrAuthorization))
	})

	t.Run("Admin Sees All", func(t *testing.T) {
		f := newUnlockFixture(t, time.Now())
		f.users.On("GetByID", mock.Anything, "admin-01").Return(admin, nil).Once()
		f.requests.On("List", mock.Anything, models.UnlockFilter{}, 20, 0).Return([]models.UnlockRequest{}, 0, nil).Once()

		_, _, err := f.svc.List(context.Background(), "admin-01", models.UnlockFilter{DestinationIn: []string{"ignored"}}, 20, 0)
		require.NoError(t, err)
	})

	t.Run("Unknown Status Filter", func(t *testing.T) {
		f := newUnlockFixture(t, time.Now())
		_, _, err := f.svc.List(context.Background(), "admin-01", models.UnlockFilter{Status: "menunggu"}, 20, 0)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})
}
