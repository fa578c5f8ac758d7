package service

import (
	"context"
	"errors"
	"strings"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
)

type referenceServiceImpl struct {
	categories repository.CategoryRepository
	countries  repository.CountryRepository
	settings   repository.SettingsRepository
}

func NewReferenceService(categories repository.CategoryRepository, countries repository.CountryRepository, settings repository.SettingsRepository) ReferenceService {
	return &referenceServiceImpl{categories: categories, countries: countries, settings: settings}
}

func (s *referenceServiceImpl) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.GetAll(ctx)
}

func (s *referenceServiceImpl) CreateCategory(ctx context.Context, input *models.CreateCategoryInput) (*models.Category, error) {
	const op = "categories.create"
	name := strings.TrimSpace(input.Name)
	c := &models.Category{ID: utils.Slugify(name), Name: name}
	if c.ID == "" {
		return nil, apperrors.Validation(op, "nama kategori harus memuat huruf atau angka")
	}
	if err := s.categories.Create(ctx, c); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict(op, "kategori sudah ada")
		}
		return nil, err
	}
	return c, nil
}

func (s *referenceServiceImpl) ListCountries(ctx context.Context) ([]models.Country, error) {
	return s.countries.GetAll(ctx)
}

// GetSettings mengembalikan pengaturan kosong bila seed belum pernah dijalankan.
func (s *referenceServiceImpl) GetSettings(ctx context.Context) (*models.AppSettings, error) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &models.AppSettings{}, nil
		}
		return nil, err
	}
	return st, nil
}

func (s *referenceServiceImpl) UpdateSettings(ctx context.Context, input *models.UpdateSettingsInput) (*models.AppSettings, error) {
	st := &models.AppSettings{
		AppName:    strings.TrimSpace(input.AppName),
		Subtitle:   strings.TrimSpace(input.Subtitle),
		FooterText: strings.TrimSpace(input.FooterText),
	}
	if err := s.settings.Update(ctx, st); err != nil {
		return nil, err
	}
	return s.settings.Get(ctx)
}
