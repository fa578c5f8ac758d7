package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func approvedEvent() events.UnlockDecided {
	return events.UnlockDecided{
		RequestID:     "req-1",
		DestinationID: "goa-jatijajar",
		Year:          2024,
		Month:         5,
		Status:        string(models.UnlockApproved),
		RequestedBy:   "pengelola-01",
		ProcessedBy:   "admin-01",
		At:            time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
	}
}

func TestMailer_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		users := mocks.NewMockUserRepository(t)
		dests := mocks.NewMockDestinationRepository(t)
		sender := &fakeSender{}
		m := NewMailer(sender, "noreply@wisata.local", users, dests)

		users.On("GetByID", mock.Anything, "pengelola-01").
			Return(&models.User{UID: "pengelola-01", Name: "Pengelola Goa", Email: "jatijajar@wisata.kebumen.id"}, nil).Once()
		dests.On("GetByID", mock.Anything, "goa-jatijajar").
			Return(&models.Destination{ID: "goa-jatijajar", Name: "Goa Jatijajar"}, nil).Once()

		require.NoError(t, m.Handle(ctx, approvedEvent()))
		require.Equal(t, 1, sender.count())

		msg := sender.sent[0]
		assert.Equal(t, []string{"jatijajar@wisata.kebumen.id"}, msg.GetHeader("To"))
		assert.Equal(t, []string{"Permintaan buka kunci Goa Jatijajar Mei 2024 disetujui"}, msg.GetHeader("Subject"))

		var buf bytes.Buffer
		_, err := msg.WriteTo(&buf)
		require.NoError(t, err)
		assert.True(t, strings.Contains(buf.String(), "dapat diubah kembali"))
	})

	t.Run("Requester not found", func(t *testing.T) {
		users := mocks.NewMockUserRepository(t)
		dests := mocks.NewMockDestinationRepository(t)
		sender := &fakeSender{}
		m := NewMailer(sender, "noreply@wisata.local", users, dests)

		users.On("GetByID", mock.Anything, "pengelola-01").Return(nil, apperrors.NotFound("users.get", "users/pengelola-01")).Once()

		err := m.Handle(ctx, approvedEvent())
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Zero(t, sender.count())
	})

	t.Run("SMTP failure", func(t *testing.T) {
		users := mocks.NewMockUserRepository(t)
		dests := mocks.NewMockDestinationRepository(t)
		sender := &fakeSender{err: errors.New("connection refused")}
		m := NewMailer(sender, "noreply@wisata.local", users, dests)

		users.On("GetByID", mock.Anything, "pengelola-01").Return(&models.User{Email: "a@b.id"}, nil).Once()
		dests.On("GetByID", mock.Anything, "goa-jatijajar").Return(nil, apperrors.NotFound("destinations.get", "destinations/goa-jatijajar")).Once()

		err := m.Handle(ctx, approvedEvent())
		assert.ErrorContains(t, err, "smtp send")
	})
}

func TestSubjectRejected(t *testing.T) {
	evt := approvedEvent()
	evt.Status = string(models.UnlockRejected)
	assert.Equal(t, "Permintaan buka kunci Goa Jatijajar Mei 2024 ditolak", Subject(evt, "Goa Jatijajar"))
	assert.NotContains(t, Body(evt, "Budi", "Goa Jatijajar"), "dapat diubah kembali")
}

func TestMailer_RunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	users := mocks.NewMockUserRepository(t)
	dests := mocks.NewMockDestinationRepository(t)
	sender := &fakeSender{}
	m := NewMailer(sender, "noreply@wisata.local", users, dests)

	users.On("GetByID", mock.Anything, "pengelola-01").Return(&models.User{Email: "a@b.id", Name: "A"}, nil)
	dests.On("GetByID", mock.Anything, "goa-jatijajar").Return(&models.Destination{Name: "Goa Jatijajar"}, nil)

	bus := events.NewBus[events.UnlockDecided]()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- m.Run(ctx, bus) }()

	require.Eventually(t, func() bool { return bus.Subscribers() == 1 }, time.Second, 5*time.Millisecond)
	bus.Publish(approvedEvent())
	require.Eventually(t, func() bool { return sender.count() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, 0, bus.Subscribers())
}
