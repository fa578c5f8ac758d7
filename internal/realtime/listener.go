package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
)

// Notification adalah satu pesan NOTIFY yang diterima.
type Notification struct {
	Channel string
	Payload string
}

// VisitChange adalah payload trigger visits_changed.
type VisitChange struct {
	Op            string `json:"op"`
	ID            string `json:"id"`
	DestinationID string `json:"destination_id"`
	Year          int    `json:"year"`
	Month         int    `json:"month"`
}

// DecodeVisitChange mem-parsing payload trigger.
func DecodeVisitChange(payload string) (VisitChange, error) {
	var vc VisitChange
	if err := json.Unmarshal([]byte(payload), &vc); err != nil {
		return VisitChange{}, fmt.Errorf("decode visit change: %w", err)
	}
	return vc, nil
}

// Subscriber membuka langganan notifikasi. cancel idempoten dan wajib dipanggil
// di setiap jalur keluar.
type Subscriber interface {
	Subscribe(ctx context.Context, channel string) (<-chan Notification, func(), error)
}

const (
	subscriberBuffer    = 16
	defaultRetryBackoff = 2 * time.Second
)

// waitFunc memblokir sampai ada notifikasi berikutnya di koneksi LISTEN.
type waitFunc func(ctx context.Context) (*pgconn.Notification, error)

// connectFunc membuka koneksi LISTEN untuk channels; release melepasnya.
type connectFunc func(ctx context.Context, channels []string) (wait waitFunc, release func(), err error)

// Listener memegang satu koneksi LISTEN untuk semua channel dan menyebarkan
// notifikasi ke pelanggan lewat satu Bus per channel. Jumlah pelanggan stream
// tidak memengaruhi jumlah koneksi pool yang terpakai.
type Listener struct {
	channels []string
	buses    map[string]*events.Bus[Notification]
	connect  connectFunc
	backoff  time.Duration
}

func NewListener(pool *pgxpool.Pool, channels ...string) *Listener {
	return newListener(poolConnect(pool), channels...)
}

func newListener(connect connectFunc, channels ...string) *Listener {
	l := &Listener{
		channels: channels,
		buses:    make(map[string]*events.Bus[Notification], len(channels)),
		connect:  connect,
		backoff:  defaultRetryBackoff,
	}
	for _, ch := range channels {
		l.buses[ch] = events.NewBus[Notification]()
	}
	return l
}

// Subscribe mendaftarkan pelanggan ke channel yang didengarkan Listener.
// Channel keluaran ditutup saat cancel dipanggil atau Run berhenti.
func (l *Listener) Subscribe(_ context.Context, channel string) (<-chan Notification, func(), error) {
	bus, ok := l.buses[channel]
	if !ok {
		return nil, nil, fmt.Errorf("channel %s tidak didengarkan", channel)
	}
	out, cancel := bus.Subscribe(subscriberBuffer)
	return out, cancel, nil
}

// Run mendengarkan sampai ctx selesai, menyambung ulang setelah koneksi putus.
// Semua langganan ditutup saat Run kembali.
func (l *Listener) Run(ctx context.Context) error {
	defer func() {
		for _, bus := range l.buses {
			bus.Close()
		}
	}()

	for {
		err := l.listenOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}
		zlog.Warn().Err(err).Dur("retry_in", l.backoff).Msg("Realtime: listen connection lost, reconnecting")

		timer := time.NewTimer(l.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

func (l *Listener) listenOnce(ctx context.Context) error {
	wait, release, err := l.connect(ctx, l.channels)
	if err != nil {
		return err
	}
	defer release()
	zlog.Info().Strs("channels", l.channels).Msg("Realtime: listening")

	for {
		n, err := wait(ctx)
		if err != nil {
			return err
		}
		if bus, ok := l.buses[n.Channel]; ok {
			bus.Publish(Notification{Channel: n.Channel, Payload: n.Payload})
		}
	}
}

// poolConnect mengambil satu koneksi dari pool dan menjalankan LISTEN untuk setiap channel.
func poolConnect(pool *pgxpool.Pool) connectFunc {
	return func(ctx context.Context, channels []string) (waitFunc, func(), error) {
		conn, err := pool.Acquire(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("acquire listen connection: %w", err)
		}
		for _, ch := range channels {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				conn.Release()
				return nil, nil, fmt.Errorf("listen %s: %w", ch, err)
			}
		}

		wait := func(ctx context.Context) (*pgconn.Notification, error) {
			return conn.Conn().WaitForNotification(ctx)
		}
		release := func() {
			// Koneksi yang terputus karena pembatalan dibuang oleh pool saat Release.
			if !conn.Conn().IsClosed() {
				uctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				if _, err := conn.Exec(uctx, "UNLISTEN *"); err != nil {
					zlog.Warn().Err(err).Msg("Realtime: unlisten failed")
				}
				cancel()
			}
			conn.Release()
		}
		return wait, release, nil
	}
}
