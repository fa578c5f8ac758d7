package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/disparbud-kebumen/wisata-dashboard-be/configs"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/database"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/identity"
	applogger "github.com/disparbud-kebumen/wisata-dashboard-be/internal/logger"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/seed"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type seedOptions struct {
	catalogPath  string
	validateOnly bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts seedOptions

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Provisioning data awal dashboard (idempoten)",
		Long: "Membuat atau memperbarui akun, peran, destinasi, profil pengguna, data referensi,\n" +
			"kerangka data kunjungan bulanan, dan pengaturan aplikasi dari katalog YAML.\n" +
			"Aman dijalankan berulang: data kunjungan yang sudah ada tidak pernah ditimpa.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "Path katalog YAML (default: SEED_CATALOG_PATH atau katalog bawaan)")
	cmd.Flags().BoolVar(&opts.validateOnly, "validate", false, "Hanya validasi katalog, tanpa menulis ke database")
	return cmd
}

func runSeed(ctx context.Context, opts seedOptions) error {
	cfg, err := configs.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		return err
	}
	if logCloser := applogger.Setup(cfg.Log); logCloser != nil {
		defer logCloser.Close()
	}

	path := opts.catalogPath
	if path == "" {
		path = cfg.Seed.CatalogPath
	}
	catalog, err := seed.Load(path)
	if err != nil {
		zlog.Error().Err(err).Str("path", path).Msg("Seed catalog invalid")
		return err
	}
	if opts.validateOnly {
		zlog.Info().
			Int("users", len(catalog.Users)).
			Int("destinations", len(catalog.Destinations)).
			Int("categories", len(catalog.Categories)).
			Int("countries", len(catalog.Countries)).
			Int("year_from", catalog.YearFrom).
			Msg("Seed catalog valid")
		return nil
	}

	pool, err := database.NewPgxPool(ctx, cfg.DB)
	if err != nil {
		zlog.Error().Err(err).Msg("Could not connect to the database")
		return err
	}
	defer pool.Close()
	if err := database.EnsureSchema(ctx, pool); err != nil {
		zlog.Error().Err(err).Msg("Failed to ensure schema")
		return err
	}

	errBus := events.NewBus[events.ErrorEvent]()
	defer errBus.Close()

	svc := service.NewSeedService(service.SeedDeps{
		Catalog:         catalog,
		DefaultPassword: cfg.Seed.DefaultPassword,
		Identity:        identity.NewPgProvider(pool),
		Tx:              repository.NewTxManager(pool, errBus),
		Users:           repository.NewUserRepository(pool, errBus),
		Destinations:    repository.NewDestinationRepository(pool, errBus),
		Visits:          repository.NewVisitRepository(pool, errBus),
		Categories:      repository.NewCategoryRepository(pool, errBus),
		Countries:       repository.NewCountryRepository(pool, errBus),
		Settings:        repository.NewSettingsRepository(pool, errBus),
	})

	report, runErr := svc.Run(ctx)
	if report != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			zlog.Warn().Err(err).Msg("Failed to print seed report")
		}
	}
	if runErr != nil {
		zlog.Error().Err(runErr).Msg("Seeding failed")
		return runErr
	}
	zlog.Info().Int("visits_created", report.VisitsCreated).Int("visits_skipped", report.VisitsSkipped).Msg("Seeding finished")
	return nil
}
