package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.StoreError("network")
		m.UnlockDecided("approved")
		m.UnlockSubmitted()
		m.VisitsLocked(3)
		m.SeedRun(true)
	})
	assert.Nil(t, m.Registry())
}

func TestObserveErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := New()
	bus := events.NewBus[events.ErrorEvent]()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- m.ObserveErrors(ctx, bus) }()

	require.Eventually(t, func() bool { return bus.Subscribers() == 1 }, time.Second, 5*time.Millisecond)
	bus.Publish(events.ErrorEvent{Kind: apperrors.KindNetwork})
	bus.Publish(events.ErrorEvent{Kind: apperrors.KindNetwork})
	bus.Publish(events.ErrorEvent{Kind: apperrors.KindPermissionDenied})

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(m.storeErrors.WithLabelValues("network")) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.storeErrors.WithLabelValues("permission_denied")))

	cancel()
	require.NoError(t, <-done)
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/metrics", m.Handler())
	app.Get("/destinations/:destId", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/destinations/goa-jatijajar", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/destinations/:destId", "200")))

	m.VisitsLocked(5)
	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "wisata_visits_auto_locked_total 5")
}
