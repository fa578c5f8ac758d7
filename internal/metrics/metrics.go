package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics menampung collector Prometheus aplikasi. Semua method aman dipanggil pada nil.
type Metrics struct {
	registry        *prometheus.Registry
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	storeErrors     *prometheus.CounterVec
	unlockDecisions *prometheus.CounterVec
	unlockSubmitted prometheus.Counter
	visitsLocked    prometheus.Counter
	seedRuns        *prometheus.CounterVec
}

// New mendaftarkan semua collector ke registry baru (bukan default global).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wisata", Name: "http_requests_total", Help: "Jumlah request HTTP per route dan status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wisata", Name: "http_request_duration_seconds", Help: "Latensi request HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		storeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wisata", Name: "store_errors_total", Help: "Error store yang dipublikasikan ke bus error, per kind.",
		}, []string{"kind"}),
		unlockDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wisata", Name: "unlock_decisions_total", Help: "Keputusan permintaan buka kunci per status.",
		}, []string{"status"}),
		unlockSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wisata", Name: "unlock_requests_submitted_total", Help: "Permintaan buka kunci yang diajukan.",
		}),
		visitsLocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wisata", Name: "visits_auto_locked_total", Help: "Record kunjungan yang dikunci otomatis oleh job.",
		}),
		seedRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wisata", Name: "seed_runs_total", Help: "Eksekusi seeding per hasil.",
		}, []string{"result"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpDuration, m.storeErrors, m.unlockDecisions,
		m.unlockSubmitted, m.visitsLocked, m.seedRuns,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler mengekspos registry dalam format Prometheus untuk Fiber.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Middleware mencatat jumlah dan latensi request per route template (bukan path mentah).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		route := c.Route().Path
		m.httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

func (m *Metrics) StoreError(kind string) {
	if m == nil {
		return
	}
	m.storeErrors.WithLabelValues(kind).Inc()
}

func (m *Metrics) UnlockDecided(status string) {
	if m == nil {
		return
	}
	m.unlockDecisions.WithLabelValues(status).Inc()
}

func (m *Metrics) UnlockSubmitted() {
	if m == nil {
		return
	}
	m.unlockSubmitted.Inc()
}

func (m *Metrics) VisitsLocked(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.visitsLocked.Add(float64(n))
}

func (m *Metrics) SeedRun(ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.seedRuns.WithLabelValues(result).Inc()
}

// ObserveErrors menghitung setiap event di bus error sampai ctx selesai.
func (m *Metrics) ObserveErrors(ctx context.Context, bus *events.ErrorBus) error {
	ch, cancel := bus.Subscribe(64)
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-ch:
			if !ok {
				return nil
			}
			m.StoreError(string(evt.Kind))
		}
	}
}

// ObserveDecisions menghitung keputusan buka kunci sampai ctx selesai.
func (m *Metrics) ObserveDecisions(ctx context.Context, bus *events.DecisionBus) error {
	ch, cancel := bus.Subscribe(16)
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-ch:
			if !ok {
				return nil
			}
			m.UnlockDecided(evt.Status)
		}
	}
}
