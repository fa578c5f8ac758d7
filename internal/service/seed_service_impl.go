package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/identity"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/seed"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
	"github.com/jackc/pgx/v5"
	zlog "github.com/rs/zerolog/log"
)

// SeedDeps mengelompokkan dependensi SeedService karena jumlahnya banyak.
type SeedDeps struct {
	Catalog         *seed.Catalog
	DefaultPassword string
	Identity        identity.Provider
	Tx              repository.TxManager
	Users           repository.UserRepository
	Destinations    repository.DestinationRepository
	Visits          repository.VisitRepository
	Categories      repository.CategoryRepository
	Countries       repository.CountryRepository
	Settings        repository.SettingsRepository
	Now             func() time.Time
}

type seedServiceImpl struct {
	SeedDeps
}

func NewSeedService(deps SeedDeps) SeedService {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &seedServiceImpl{SeedDeps: deps}
}

// seedRun menyimpan state satu eksekusi: laporan dan transkrip.
type seedRun struct {
	report *models.SeedReport
}

func (r *seedRun) logf(step, format string, args ...any) {
	line := fmt.Sprintf("[%s] ", step) + fmt.Sprintf(format, args...)
	r.report.Transcript = append(r.report.Transcript, line)
	zlog.Info().Str("step", step).Msg(line)
}

func (s *seedServiceImpl) Run(ctx context.Context) (*models.SeedReport, error) {
	const op = "seed.run"
	now := s.Now()
	run := &seedRun{report: &models.SeedReport{StartedAt: now, Transcript: []string{}}}

	fail := func(step string, err error) (*models.SeedReport, error) {
		run.logf(step, "GAGAL: %v", err)
		run.report.FinishedAt = s.Now()
		zlog.Error().Err(err).Str("step", step).Strs("transcript", run.report.Transcript).Msg("Seed: run aborted")
		if _, ok := err.(*apperrors.Error); ok {
			return run.report, err
		}
		return run.report, &apperrors.Error{Kind: apperrors.KindOf(err), Op: op, Msg: "langkah " + step + " gagal", Err: err}
	}

	// --- Langkah 1: akun identitas ---
	uids := make(map[string]string, len(s.Catalog.Users))
	for _, u := range s.Catalog.Users {
		uid, created, err := s.ensureIdentity(ctx, u)
		if err != nil {
			return fail("1-identitas", fmt.Errorf("%s: %w", u.Email, err))
		}
		uids[u.Email] = uid
		if created {
			run.report.UsersCreated++
			run.logf("1-identitas", "akun dibuat: %s (%s)", u.Email, uid)
		} else {
			run.report.UsersUpdated++
			run.logf("1-identitas", "akun sudah ada, nama/foto diperbarui: %s (%s)", u.Email, uid)
		}
	}

	// --- Langkah 2: klaim peran ---
	for _, u := range s.Catalog.Users {
		if err := s.Identity.SetRoleClaim(ctx, uids[u.Email], u.Role); err != nil {
			return fail("2-peran", fmt.Errorf("%s: %w", u.Email, err))
		}
		run.report.RolesSet++
		run.logf("2-peran", "peran %s diset untuk %s", u.Role, u.Email)
	}

	// --- Langkah 3-8: semua tulisan dokumen dalam satu transaksi ---
	err := s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		nameToID, active, err := s.upsertDestinations(ctx, tx, run)
		if err != nil {
			return err
		}
		if err := s.upsertProfiles(ctx, tx, run, uids, nameToID); err != nil {
			return err
		}
		if err := s.seedReferenceData(ctx, tx, run); err != nil {
			return err
		}
		if err := s.seedVisits(ctx, tx, run, active, now); err != nil {
			return err
		}
		st := s.Catalog.Settings
		if err := s.Settings.UpsertTx(ctx, tx, &models.AppSettings{AppName: st.AppName, Subtitle: st.Subtitle, FooterText: st.FooterText}); err != nil {
			return err
		}
		run.report.SettingsUpserted = true
		run.logf("7-pengaturan", "pengaturan aplikasi ditulis")
		return nil
	})
	if err != nil {
		return fail("8-commit", err)
	}

	run.report.FinishedAt = s.Now()
	run.logf("8-commit", "transaksi di-commit: %d destinasi, %d profil, %d kunjungan baru, %d dilewati",
		run.report.DestinationsUpserted, run.report.ProfilesUpserted, run.report.VisitsCreated, run.report.VisitsSkipped)
	return run.report, nil
}

// ensureIdentity membuat akun baru atau memperbarui nama/foto akun lama. uid tidak pernah berubah.
func (s *seedServiceImpl) ensureIdentity(ctx context.Context, u seed.UserEntry) (string, bool, error) {
	existing, err := s.Identity.GetUserByEmail(ctx, u.Email)
	switch {
	case errors.Is(err, identity.ErrIdentityNotFound):
		password := u.Password
		if password == "" {
			password = s.DefaultPassword
		}
		created, err := s.Identity.CreateUser(ctx, identity.CreateParams{
			Email:       u.Email,
			Password:    password,
			DisplayName: u.Name,
			PhotoURL:    u.Avatar,
		})
		if err != nil {
			return "", false, err
		}
		return created.UID, true, nil
	case err != nil:
		return "", false, err
	}

	if _, err := s.Identity.UpdateUser(ctx, existing.UID, identity.UpdateParams{DisplayName: u.Name, PhotoURL: u.Avatar}); err != nil {
		return "", false, err
	}
	return existing.UID, false, nil
}

func (s *seedServiceImpl) upsertDestinations(ctx context.Context, tx pgx.Tx, run *seedRun) (map[string]string, []string, error) {
	nameToID := make(map[string]string, len(s.Catalog.Destinations))
	var active []string
	for _, d := range s.Catalog.Destinations {
		dest := &models.Destination{
			ID:             utils.Slugify(d.Name),
			Name:           d.Name,
			Category:       d.Category,
			ManagementType: models.ManagementType(d.ManagementType),
			Location:       d.Location,
			Status:         models.Status(d.Status),
		}
		if dest.ID == "" {
			return nil, nil, apperrors.Validation("seed.run", fmt.Sprintf("nama destinasi %q tidak menghasilkan id", d.Name))
		}
		if err := s.Destinations.UpsertTx(ctx, tx, dest); err != nil {
			return nil, nil, err
		}
		nameToID[strings.ToLower(d.Name)] = dest.ID
		if dest.Status == models.StatusAktif {
			active = append(active, dest.ID)
		}
		run.report.DestinationsUpserted++
		run.logf("3-destinasi", "%s -> %s", d.Name, dest.ID)
	}
	return nameToID, active, nil
}

func (s *seedServiceImpl) upsertProfiles(ctx context.Context, tx pgx.Tx, run *seedRun, uids, nameToID map[string]string) error {
	for _, u := range s.Catalog.Users {
		assigned := []string{}
		if u.Role == string(models.RolePengelola) {
			for _, name := range u.AssignedLocations {
				id, ok := nameToID[strings.ToLower(strings.TrimSpace(name))]
				if !ok {
					run.report.UnresolvedLocations++
					run.logf("4-profil", "lokasi %q untuk %s tidak ditemukan, dilewati", name, u.Email)
					continue
				}
				assigned = append(assigned, id)
			}
		}
		profile := &models.User{
			UID:                  uids[u.Email],
			Name:                 u.Name,
			Email:                u.Email,
			Role:                 models.Role(u.Role),
			AssignedDestinations: assigned,
			Status:               models.StatusAktif,
			Avatar:               u.Avatar,
		}
		if err := s.Users.UpsertProfileTx(ctx, tx, profile); err != nil {
			return err
		}
		run.report.ProfilesUpserted++
		run.logf("4-profil", "profil %s (%s) ditulis, destinasi: %v", u.Email, u.Role, assigned)
	}
	return nil
}

func (s *seedServiceImpl) seedReferenceData(ctx context.Context, tx pgx.Tx, run *seedRun) error {
	existing, err := s.Categories.ExistingNamesTx(ctx, tx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, n := range existing {
		seen[strings.ToLower(n)] = true
	}
	for _, name := range s.Catalog.Categories {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || seen[key] {
			continue
		}
		if err := s.Categories.CreateTx(ctx, tx, &models.Category{ID: utils.Slugify(name), Name: strings.TrimSpace(name)}); err != nil {
			return err
		}
		seen[key] = true
		run.report.CategoriesCreated++
		run.logf("5-referensi", "kategori dibuat: %s", name)
	}

	for _, c := range s.Catalog.Countries {
		if err := s.Countries.UpsertTx(ctx, tx, &models.Country{Code: c.Code, Name: c.Name}); err != nil {
			return err
		}
		run.report.CountriesUpserted++
	}
	run.logf("5-referensi", "%d negara ditulis", run.report.CountriesUpserted)
	return nil
}

// seedVisits membuat record kosong untuk setiap destinasi aktif x tahun x bulan yang belum ada.
// Record yang sudah ada tidak pernah disentuh.
func (s *seedServiceImpl) seedVisits(ctx context.Context, tx pgx.Tx, run *seedRun, active []string, now time.Time) error {
	yearTo := now.Year()
	existing, err := s.Visits.ExistingIDsTx(ctx, tx, s.Catalog.YearFrom, yearTo)
	if err != nil {
		return err
	}

	for _, destID := range active {
		for year := s.Catalog.YearFrom; year <= yearTo; year++ {
			for month := 1; month <= 12; month++ {
				id := utils.VisitID(destID, year, month)
				if _, ok := existing[id]; ok {
					run.report.VisitsSkipped++
					continue
				}
				v := &models.VisitData{
					ID:            id,
					DestinationID: destID,
					Year:          year,
					Month:         month,
					WismanDetails: []models.WismanDetail{},
					Locked:        utils.PeriodEnded(year, month, now),
					LastUpdatedBy: "seed",
				}
				v.Recalculate()
				created, err := s.Visits.CreateTx(ctx, tx, v)
				if err != nil {
					return err
				}
				if created {
					run.report.VisitsCreated++
				} else {
					run.report.VisitsSkipped++
				}
			}
		}
	}
	run.logf("6-kunjungan", "%d record dibuat, %d sudah ada (tahun %d-%d)",
		run.report.VisitsCreated, run.report.VisitsSkipped, s.Catalog.YearFrom, yearTo)
	return nil
}
