package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/database"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/realtime"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

const defaultHeartbeat = 15 * time.Second

// StreamHandler melayani Server-Sent Events. Stream ditulis setelah handler
// kembali, jadi semua nilai dari request diambil lebih dulu dan konteks stream
// diturunkan dari Base (dibatalkan saat server shutdown).
type StreamHandler struct {
	VisitService service.VisitService
	Subscriber   realtime.Subscriber
	Errors       *events.ErrorBus
	Decisions    *events.DecisionBus
	Base         context.Context
	Heartbeat    time.Duration
}

func NewStreamHandler(
	base context.Context,
	visitService service.VisitService,
	subscriber realtime.Subscriber,
	errBus *events.ErrorBus,
	decisions *events.DecisionBus,
) *StreamHandler {
	return &StreamHandler{
		VisitService: visitService,
		Subscriber:   subscriber,
		Errors:       errBus,
		Decisions:    decisions,
		Base:         base,
		Heartbeat:    defaultHeartbeat,
	}
}

// StreamVisits godoc
// @Summary Stream perubahan data kunjungan (SSE)
// @Description Event "snapshot" berisi semua record tahun tersebut, lalu "visit" dan "visit_deleted" setiap ada perubahan.
// @Description Token boleh dikirim lewat query access_token untuk EventSource.
// @Tags Stream
// @Produce text/event-stream
// @Param year query int false "Tahun (default tahun berjalan)"
// @Success 200 {string} string "event stream"
// @Security ApiKeyAuth
// @Router /stream/visits [get]
func (h *StreamHandler) StreamVisits(c *fiber.Ctx) error {
	claims, ok, err := currentClaims(c)
	if !ok {
		return err
	}
	uid := claims.UID
	year := c.QueryInt("year", time.Now().Year())

	setStreamHeaders(c)
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithCancel(h.Base)
		defer cancel()
		if err := h.streamVisits(ctx, w, uid, year); err != nil {
			zlog.Debug().Err(err).Str("uid", uid).Msg("Visit stream closed")
		}
	}))
	return nil
}

// StreamNotifications godoc
// @Summary Stream notifikasi (SSE)
// @Description Event "error" untuk gangguan penyimpanan dan "unlock_decided" untuk keputusan permintaan buka kunci.
// @Tags Stream
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Security ApiKeyAuth
// @Router /stream/notifications [get]
func (h *StreamHandler) StreamNotifications(c *fiber.Ctx) error {
	claims, ok, err := currentClaims(c)
	if !ok {
		return err
	}
	uid := claims.UID
	isAdmin := claims.Role == string(models.RoleAdmin)

	setStreamHeaders(c)
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithCancel(h.Base)
		defer cancel()
		if err := h.streamNotifications(ctx, w, uid, isAdmin); err != nil {
			zlog.Debug().Err(err).Str("uid", uid).Msg("Notification stream closed")
		}
	}))
	return nil
}

func setStreamHeaders(c *fiber.Ctx) {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")
}

func (h *StreamHandler) heartbeat() time.Duration {
	if h.Heartbeat <= 0 {
		return defaultHeartbeat
	}
	return h.Heartbeat
}

// streamVisits mengirim snapshot lalu meneruskan notifikasi visits_changed untuk
// tahun yang diminta. Record yang tidak boleh dilihat actor dilewati.
// Kembali saat ctx selesai, langganan ditutup, atau klien terputus (flush gagal).
func (h *StreamHandler) streamVisits(ctx context.Context, w *bufio.Writer, uid string, year int) error {
	changes, unsubscribe, err := h.Subscriber.Subscribe(ctx, database.VisitsChangedChannel)
	if err != nil {
		_ = writeEvent(w, "error", events.NewErrorEvent(apperrors.FromStore("stream.visits", database.VisitsChangedChannel, err)))
		return err
	}
	defer unsubscribe()

	snapshot, err := h.VisitService.ListYear(ctx, uid, year)
	if err != nil {
		_ = writeEvent(w, "error", events.NewErrorEvent(err))
		return err
	}
	if err := writeEvent(w, "snapshot", snapshot); err != nil {
		return err
	}

	ticker := time.NewTicker(h.heartbeat())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := writeComment(w, "ping"); err != nil {
				return err
			}
		case n, ok := <-changes:
			if !ok {
				return nil
			}
			change, err := realtime.DecodeVisitChange(n.Payload)
			if err != nil {
				zlog.Warn().Err(err).Str("payload", n.Payload).Msg("Stream: skipping malformed notification")
				continue
			}
			if change.Year != year {
				continue
			}
			if change.Op == "DELETE" {
				if err := writeEvent(w, "visit_deleted", change); err != nil {
					return err
				}
				continue
			}

			v, err := h.VisitService.Get(ctx, uid, change.DestinationID, change.Year, change.Month)
			if err != nil {
				switch apperrors.KindOf(err) {
				case apperrors.KindAuthorization, apperrors.KindNotFound:
				default:
					zlog.Warn().Err(err).Str("visit_id", change.ID).Msg("Stream: failed to load changed visit")
				}
				continue
			}
			if err := writeEvent(w, "visit", v); err != nil {
				return err
			}
		}
	}
}

// streamNotifications meneruskan error pusat ke semua pengguna (tanpa path resource
// untuk non-admin), dan keputusan buka kunci hanya ke pemohon serta admin.
func (h *StreamHandler) streamNotifications(ctx context.Context, w *bufio.Writer, uid string, isAdmin bool) error {
	errCh, cancelErrors := h.Errors.Subscribe(16)
	defer cancelErrors()
	decisionCh, cancelDecisions := h.Decisions.Subscribe(16)
	defer cancelDecisions()

	if err := writeComment(w, "connected"); err != nil {
		return err
	}

	ticker := time.NewTicker(h.heartbeat())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := writeComment(w, "ping"); err != nil {
				return err
			}
		case evt, ok := <-errCh:
			if !ok {
				return nil
			}
			if !isAdmin {
				evt = evt.Redacted()
			}
			if err := writeEvent(w, "error", evt); err != nil {
				return err
			}
		case evt, ok := <-decisionCh:
			if !ok {
				return nil
			}
			if !isAdmin && evt.RequestedBy != uid {
				continue
			}
			if err := writeEvent(w, "unlock_decided", evt); err != nil {
				return err
			}
		}
	}
}

func writeEvent(w *bufio.Writer, event string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event, err)
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	return w.Flush()
}

func writeComment(w *bufio.Writer, text string) error {
	if _, err := fmt.Fprintf(w, ": %s\n\n", text); err != nil {
		return err
	}
	return w.Flush()
}
