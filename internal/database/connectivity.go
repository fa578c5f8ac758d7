package database

import (
	"context"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	zlog "github.com/rs/zerolog/log"
)

// Pinger dipenuhi oleh *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// WatchConnectivity mem-ping database secara berkala. Saat koneksi hilang, satu
// NetworkError di-publish ke bus (bukan setiap tick); pemulihan hanya di-log.
// Berhenti ketika ctx dibatalkan.
func WatchConnectivity(ctx context.Context, db Pinger, bus *events.ErrorBus, interval time.Duration) error {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	online := true
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := db.Ping(pingCtx)
		cancel()

		switch {
		case err != nil && ctx.Err() != nil:
			return nil
		case err != nil && online:
			online = false
			zlog.Warn().Err(err).Msg("Database connectivity lost")
			bus.Publish(events.NewErrorEvent(&apperrors.Error{
				Kind: apperrors.KindNetwork,
				Op:   "store.connectivity",
				Err:  err,
			}))
		case err == nil && !online:
			online = true
			zlog.Info().Msg("Database connectivity restored")
		}
	}
}
