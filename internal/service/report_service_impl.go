package service

import (
	"context"
	"sort"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
)

const topCountriesLimit = 10

type reportServiceImpl struct {
	users        repository.UserRepository
	destinations repository.DestinationRepository
	visits       repository.VisitRepository
}

func NewReportService(users repository.UserRepository, destinations repository.DestinationRepository, visits repository.VisitRepository) ReportService {
	return &reportServiceImpl{users: users, destinations: destinations, visits: visits}
}

func (s *reportServiceImpl) Yearly(ctx context.Context, actorUID string, year int) (*models.YearlyReport, error) {
	const op = "reports.yearly"
	if year < 2000 || year > 2100 {
		return nil, apperrors.Validation(op, "tahun tidak valid")
	}
	actor, err := loadActor(ctx, s.users, op, actorUID)
	if err != nil {
		return nil, err
	}

	// --- 1. Destinasi aktif dalam jangkauan actor ---
	active, err := s.destinations.GetAll(ctx, models.DestinationFilter{Status: models.StatusAktif})
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(active))
	var ids []string
	for _, d := range active {
		if !actor.IsActiveAdmin() && !actor.Manages(d.ID) {
			continue
		}
		names[d.ID] = d.Name
		ids = append(ids, d.ID)
	}

	// --- 2. Kerangka laporan: 12 bulan selalu ada walau tanpa data ---
	report := &models.YearlyReport{
		Year:         year,
		Months:       make([]models.MonthTotals, 12),
		Destinations: []models.DestinationTotals{},
		TopCountries: []models.CountryTotal{},
	}
	for i := range report.Months {
		report.Months[i] = models.MonthTotals{Month: i + 1, MonthName: utils.MonthName(i + 1)}
	}
	if len(ids) == 0 {
		return report, nil
	}

	// --- 3. Agregasi per bulan, per destinasi, dan per negara ---
	visits, err := s.visits.ListByYear(ctx, year, ids)
	if err != nil {
		return nil, err
	}

	perDest := make(map[string]*models.DestinationTotals, len(ids))
	for _, id := range ids {
		perDest[id] = &models.DestinationTotals{DestinationID: id, DestinationName: names[id]}
	}
	countries := make(map[string]int)
	for _, v := range visits {
		dt, ok := perDest[v.DestinationID]
		if !ok {
			continue
		}
		report.Totals.Add(v)
		if validMonth(v.Month) {
			report.Months[v.Month-1].Add(v)
		}
		dt.Add(v)
		for _, d := range v.WismanDetails {
			countries[d.Country] += d.Count
		}
	}

	for _, id := range ids {
		report.Destinations = append(report.Destinations, *perDest[id])
	}
	sort.SliceStable(report.Destinations, func(i, j int) bool {
		return report.Destinations[i].Total > report.Destinations[j].Total
	})

	for country, count := range countries {
		report.TopCountries = append(report.TopCountries, models.CountryTotal{Country: country, Count: count})
	}
	sort.Slice(report.TopCountries, func(i, j int) bool {
		a, b := report.TopCountries[i], report.TopCountries[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Country < b.Country
	})
	if len(report.TopCountries) > topCountriesLimit {
		report.TopCountries = report.TopCountries[:topCountriesLimit]
	}
	return report, nil
}
