package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type summaryServiceImpl struct {
	users        repository.UserRepository
	destinations repository.DestinationRepository
	visits       repository.VisitRepository
	generator    NarrativeGenerator // nil bila GEMINI_API_KEY tidak diset.
}

func NewSummaryService(users repository.UserRepository, destinations repository.DestinationRepository, visits repository.VisitRepository, generator NarrativeGenerator) SummaryService {
	return &summaryServiceImpl{users: users, destinations: destinations, visits: visits, generator: generator}
}

func (s *summaryServiceImpl) Generate(ctx context.Context, actorUID string, input *models.SummaryInput) (*models.SummaryResult, error) {
	const op = "summaries.generate"
	if !validMonth(input.Month) {
		return nil, apperrors.Validation(op, "bulan harus di antara 1 dan 12")
	}
	actor, err := loadActor(ctx, s.users, op, actorUID)
	if err != nil {
		return nil, err
	}
	if err := requireScope(actor, op, input.DestinationID); err != nil {
		return nil, err
	}
	if s.generator == nil {
		return nil, ErrSummaryUnavailable
	}

	// --- 1. Destinasi dan record kunjungan dibaca paralel ---
	var (
		dest  *models.Destination
		visit *models.VisitData
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dest, err = s.destinations.GetByID(gctx, input.DestinationID)
		return err
	})
	g.Go(func() error {
		var err error
		visit, err = s.visits.GetByKey(gctx, input.DestinationID, input.Year, input.Month)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// --- 2. Input terstruktur; negara tanpa wisman tidak ikut dikirim ---
	nationalities := make([]models.WismanDetail, 0, len(visit.WismanDetails))
	for _, d := range visit.WismanDetails {
		if d.Count > 0 && strings.TrimSpace(d.Country) != "" {
			nationalities = append(nationalities, d)
		}
	}
	narrative := models.NarrativeInput{
		MonthName:       utils.MonthName(input.Month),
		Year:            input.Year,
		DestinationName: dest.Name,
		Wisnus:          visit.Wisnus,
		Wisman:          visit.Wisman,
		Total:           visit.TotalVisitors,
		Nationalities:   nationalities,
	}

	// --- 3. Panggil generator. Detail error hanya ke log, pengguna menerima pesan umum ---
	text, err := s.generator.Generate(ctx, narrative)
	if err != nil {
		zlog.Error().Err(err).Str("destination_id", input.DestinationID).Int("year", input.Year).Int("month", input.Month).Msg("Service: narrative generation failed")
		return nil, fmt.Errorf("%w: %v", ErrSummaryGenerationFailed, err)
	}

	return &models.SummaryResult{
		DestinationID: input.DestinationID,
		Year:          input.Year,
		Month:         input.Month,
		Summary:       text,
	}, nil
}
