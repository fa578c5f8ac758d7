package notify

import (
	"context"
	"fmt"

	"github.com/disparbud-kebumen/wisata-dashboard-be/configs"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
	zlog "github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// Sender mengirim pesan e-mail. *gomail.Dialer memenuhi interface ini.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer memberi tahu pengelola lewat e-mail saat permintaan buka kuncinya diputuskan.
type Mailer struct {
	sender       Sender
	from         string
	users        repository.UserRepository
	destinations repository.DestinationRepository
}

func NewMailer(sender Sender, from string, users repository.UserRepository, destinations repository.DestinationRepository) *Mailer {
	return &Mailer{sender: sender, from: from, users: users, destinations: destinations}
}

// NewSMTPDialer membangun dialer gomail dari config.
func NewSMTPDialer(cfg configs.SMTPConfig) *gomail.Dialer {
	return gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
}

// Run membaca event keputusan sampai ctx selesai. Kegagalan kirim hanya di-log.
func (m *Mailer) Run(ctx context.Context, bus *events.DecisionBus) error {
	ch, cancel := bus.Subscribe(16)
	defer cancel()

	zlog.Info().Msg("Notify: unlock decision mailer started")
	for {
		select {
		case <-ctx.Done():
			zlog.Info().Msg("Notify: unlock decision mailer stopped")
			return nil
		case evt, ok := <-ch:
			if !ok {
				return nil
			}
			if err := m.Handle(ctx, evt); err != nil {
				zlog.Error().Err(err).Str("request_id", evt.RequestID).Msg("Notify: failed to send decision e-mail")
			}
		}
	}
}

// Handle menyusun dan mengirim satu e-mail keputusan.
func (m *Mailer) Handle(ctx context.Context, evt events.UnlockDecided) error {
	requester, err := m.users.GetByID(ctx, evt.RequestedBy)
	if err != nil {
		return fmt.Errorf("load requester %s: %w", evt.RequestedBy, err)
	}
	if requester.Email == "" {
		return nil
	}
	destName := evt.DestinationID
	if d, err := m.destinations.GetByID(ctx, evt.DestinationID); err == nil {
		destName = d.Name
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", requester.Email)
	msg.SetHeader("Subject", Subject(evt, destName))
	msg.SetBody("text/plain", Body(evt, requester.Name, destName))

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	zlog.Info().Str("request_id", evt.RequestID).Str("to", requester.Email).Str("status", evt.Status).Msg("Notify: decision e-mail sent")
	return nil
}

func decisionLabel(status string) string {
	if status == string(models.UnlockApproved) {
		return "disetujui"
	}
	return "ditolak"
}

func Subject(evt events.UnlockDecided, destName string) string {
	return fmt.Sprintf("Permintaan buka kunci %s %s %d %s",
		destName, utils.MonthName(evt.Month), evt.Year, decisionLabel(evt.Status))
}

func Body(evt events.UnlockDecided, name, destName string) string {
	body := fmt.Sprintf("Halo %s,\n\nPermintaan buka kunci data kunjungan %s periode %s %d telah %s oleh admin.\n",
		name, destName, utils.MonthName(evt.Month), evt.Year, decisionLabel(evt.Status))
	if evt.Status == string(models.UnlockApproved) {
		body += "Data periode tersebut kini dapat diubah kembali.\n"
	}
	return body + "\nSalam,\nDashboard Statistik Pariwisata"
}
