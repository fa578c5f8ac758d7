package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/configs"
	v1 "github.com/disparbud-kebumen/wisata-dashboard-be/internal/api/v1"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/api/v1/handlers"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/database"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/identity"
	applogger "github.com/disparbud-kebumen/wisata-dashboard-be/internal/logger"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/metrics"
	appmiddleware "github.com/disparbud-kebumen/wisata-dashboard-be/internal/middleware"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/notify"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/realtime"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/seed"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/storage"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/summary"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	_ "github.com/disparbud-kebumen/wisata-dashboard-be/docs" // Registrasi docs Swagger hasil swag init
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Dashboard Statistik Kunjungan Wisata API
// @version 1.0
// @description API backend dashboard statistik kunjungan wisata: data kunjungan bulanan per destinasi,
// @description penguncian periode, permintaan buka kunci, rekap tahunan, dan provisioning data awal.

// @contact.name Tim Pengembang
// @contact.email dev@wisata.local

// @host localhost:3000
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description "Ketik 'Bearer TOKEN_JWT' pada kolom value."

const (
	connectivityInterval = 30 * time.Second
	shutdownTimeout      = 10 * time.Second
	maxBodyBytes         = 10 << 20
)

func main() {
	// --- Langkah 0: Konfigurasi ---
	cfg, err := configs.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(1)
	}

	// --- Langkah 1: Logger ---
	logCloser := applogger.Setup(cfg.Log)
	if logCloser != nil {
		defer func() {
			if err := logCloser.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "[ERROR] Failed to close log file: %v\n", err)
			}
		}()
	}

	if err := run(cfg); err != nil {
		zlog.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
	zlog.Info().Msg("Server stopped")
}

func run(cfg *configs.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Langkah 2: Database ---
	dbPool, err := database.NewPgxPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer dbPool.Close()
	if err := database.EnsureSchema(ctx, dbPool); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	zlog.Info().Str("dsn", cfg.DB.LoggableDSN()).Msg("Database connection pool established")

	// --- Langkah 3: Kanal event ---
	errBus := events.NewBus[events.ErrorEvent]()
	defer errBus.Close()
	decisionBus := events.NewBus[events.UnlockDecided]()
	defer decisionBus.Close()

	// --- Langkah 4: Repository dan kolaborator eksternal ---
	txManager := repository.NewTxManager(dbPool, errBus)
	userRepo := repository.NewUserRepository(dbPool, errBus)
	destinationRepo := repository.NewDestinationRepository(dbPool, errBus)
	visitRepo := repository.NewVisitRepository(dbPool, errBus)
	unlockRepo := repository.NewUnlockRequestRepository(dbPool, errBus)
	categoryRepo := repository.NewCategoryRepository(dbPool, errBus)
	countryRepo := repository.NewCountryRepository(dbPool, errBus)
	settingsRepo := repository.NewSettingsRepository(dbPool, errBus)
	identityProvider := identity.NewPgProvider(dbPool)
	jwtManager := utils.NewJWTManager(cfg.JWT)
	appMetrics := metrics.New()

	var generator service.NarrativeGenerator
	if cfg.Gemini.Enabled() {
		g, err := summary.NewGeminiGenerator(ctx, cfg.Gemini)
		if err != nil {
			return fmt.Errorf("init gemini client: %w", err)
		}
		generator = g
	} else {
		zlog.Warn().Msg("GEMINI_API_KEY not set, narrative summaries disabled")
	}

	var imageStore service.ImageStore
	if cfg.S3.Enabled() {
		s3Store, err := storage.NewS3Store(ctx, cfg.S3)
		if err != nil {
			return fmt.Errorf("init s3 store: %w", err)
		}
		imageStore = s3Store
	} else {
		zlog.Warn().Msg("S3_BUCKET not set, destination image upload disabled")
	}

	catalog, err := seed.Load(cfg.Seed.CatalogPath)
	if err != nil {
		return fmt.Errorf("load seed catalog: %w", err)
	}

	// --- Langkah 5: Service ---
	unlockService := service.NewUnlockService(txManager, userRepo, destinationRepo, visitRepo, unlockRepo, decisionBus)
	visitService := service.NewVisitService(userRepo, visitRepo, service.WithUnlockGrace(cfg.LockJob.UnlockGrace))
	seedService := service.NewSeedService(service.SeedDeps{
		Catalog:         catalog,
		DefaultPassword: cfg.Seed.DefaultPassword,
		Identity:        identityProvider,
		Tx:              txManager,
		Users:           userRepo,
		Destinations:    destinationRepo,
		Visits:          visitRepo,
		Categories:      categoryRepo,
		Countries:       countryRepo,
		Settings:        settingsRepo,
	})
	authService := service.NewAuthService(identityProvider, userRepo, jwtManager)
	userService := service.NewUserService(identityProvider, userRepo, destinationRepo)
	destinationService := service.NewDestinationService(destinationRepo, imageStore)
	referenceService := service.NewReferenceService(categoryRepo, countryRepo, settingsRepo)
	reportService := service.NewReportService(userRepo, destinationRepo, visitRepo)
	summaryService := service.NewSummaryService(userRepo, destinationRepo, visitRepo, generator)
	zlog.Info().Msg("Services initialized")

	// Satu koneksi LISTEN dipakai bersama oleh semua stream.
	visitListener := realtime.NewListener(dbPool, database.VisitsChangedChannel)

	// --- Langkah 6: Aplikasi Fiber ---
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    maxBodyBytes,
	})
	appmiddleware.SetupGlobalMiddleware(app, cfg.App.AllowOrigins, appMetrics)

	app.Get("/swagger/*", fiberSwagger.WrapHandler)
	app.Get("/metrics", appMetrics.Handler())

	v1.SetupRoutes(app, v1.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Admin:       handlers.NewAdminHandler(userService),
		Destination: handlers.NewDestinationHandler(destinationService),
		Visit:       handlers.NewVisitHandler(visitService),
		Unlock:      handlers.NewUnlockHandler(unlockService, appMetrics),
		Report:      handlers.NewReportHandler(reportService, summaryService),
		Reference:   handlers.NewReferenceHandler(referenceService),
		Seed:        handlers.NewSeedHandler(seedService, appMetrics),
		Health:      handlers.NewHealthHandler(dbPool),
		Stream:      handlers.NewStreamHandler(ctx, visitService, visitListener, errBus, decisionBus),
	}, jwtManager, cfg.Seed.TriggerToken)
	zlog.Info().Msg("API v1 routes registered")

	// --- Langkah 7: Server dan pekerjaan latar ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zlog.Info().Msgf("Server is starting on port %s...", cfg.App.Port)
		return app.Listen(":" + cfg.App.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		zlog.Info().Msg("Shutting down server...")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})
	g.Go(func() error { return visitListener.Run(gctx) })
	g.Go(func() error {
		return runLockJob(gctx, visitService, appMetrics, cfg.LockJob.Interval)
	})
	g.Go(func() error {
		return database.WatchConnectivity(gctx, dbPool, errBus, connectivityInterval)
	})
	g.Go(func() error { return appMetrics.ObserveErrors(gctx, errBus) })
	g.Go(func() error { return appMetrics.ObserveDecisions(gctx, decisionBus) })
	g.Go(func() error { return logErrorEvents(gctx, errBus) })

	if cfg.SMTP.Enabled() {
		mailer := notify.NewMailer(notify.NewSMTPDialer(cfg.SMTP), cfg.SMTP.From, userRepo, destinationRepo)
		g.Go(func() error { return mailer.Run(gctx, decisionBus) })
	} else {
		zlog.Warn().Msg("SMTP_HOST not set, unlock decision emails disabled")
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// runLockJob mengunci periode yang sudah berakhir: sekali saat start, lalu tiap interval.
func runLockJob(ctx context.Context, visits service.VisitService, m *metrics.Metrics, interval time.Duration) error {
	lock := func() {
		n, err := visits.LockElapsedPeriods(ctx, time.Now())
		if err != nil {
			zlog.Error().Err(err).Msg("Lock job: failed to lock elapsed periods")
			return
		}
		m.VisitsLocked(n)
	}

	lock()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			lock()
		}
	}
}

// logErrorEvents mencatat setiap event di kanal error pusat.
func logErrorEvents(ctx context.Context, bus *events.ErrorBus) error {
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
			zlog.Warn().Str("kind", string(evt.Kind)).Str("op", evt.Op).Str("path", evt.Path).
				Str("cause", evt.Cause).Msg(evt.Message)
		}
	}
}
