package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/storage"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"
)

type destinationServiceImpl struct {
	destinations repository.DestinationRepository
	images       ImageStore // nil bila S3 tidak dikonfigurasi.
}

func NewDestinationService(destinations repository.DestinationRepository, images ImageStore) DestinationService {
	return &destinationServiceImpl{destinations: destinations, images: images}
}

func (s *destinationServiceImpl) List(ctx context.Context, filter models.DestinationFilter) ([]models.Destination, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperrors.Validation("destinations.list", "status filter tidak dikenal")
	}
	return s.destinations.GetAll(ctx, filter)
}

func (s *destinationServiceImpl) Get(ctx context.Context, id string) (*models.Destination, error) {
	return s.destinations.GetByID(ctx, id)
}

func (s *destinationServiceImpl) Create(ctx context.Context, input *models.CreateDestinationInput) (*models.Destination, error) {
	const op = "destinations.create"
	name := strings.TrimSpace(input.Name)
	id := utils.Slugify(name)
	if id == "" {
		return nil, apperrors.Validation(op, "nama destinasi harus memuat huruf atau angka")
	}
	status := input.Status
	if status == "" {
		status = models.StatusAktif
	}

	d := &models.Destination{
		ID:             id,
		Name:           name,
		Category:       strings.TrimSpace(input.Category),
		ManagementType: input.ManagementType,
		Location:       strings.TrimSpace(input.Location),
		Status:         status,
	}
	if err := s.destinations.Create(ctx, d); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict(op, fmt.Sprintf("destinasi dengan id %q sudah ada", id))
		}
		return nil, err
	}
	return d, nil
}

// Update mengubah field katalog. Id (slug) tidak ikut berubah walau nama diganti.
func (s *destinationServiceImpl) Update(ctx context.Context, id string, input *models.UpdateDestinationInput) (*models.Destination, error) {
	d, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		d.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		d.Category = strings.TrimSpace(*input.Category)
	}
	if input.ManagementType != nil {
		d.ManagementType = *input.ManagementType
	}
	if input.Location != nil {
		d.Location = strings.TrimSpace(*input.Location)
	}
	if input.Status != nil {
		d.Status = *input.Status
	}
	if err := s.destinations.Update(ctx, d); err != nil {
		return nil, err
	}
	zlog.Info().Str("destination_id", id).Msg("Service: destination updated")
	return d, nil
}

// UploadImage mengecilkan gambar, mengubahnya ke webp, menyimpannya di object storage,
// lalu menulis URL publiknya ke destinasi.
func (s *destinationServiceImpl) UploadImage(ctx context.Context, id string, raw []byte) (*models.Destination, error) {
	const op = "destinations.image"
	if s.images == nil {
		return nil, ErrImageStorageDisabled
	}
	d, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	encoded, err := storage.ProcessImage(bytes.NewReader(raw))
	if err != nil {
		return nil, apperrors.Validation(op, "berkas bukan gambar yang didukung: "+err.Error())
	}

	key := fmt.Sprintf("destinations/%s/%s.webp", id, uuid.NewString())
	url, err := s.images.Put(ctx, key, encoded, "image/webp")
	if err != nil {
		zlog.Error().Err(err).Str("destination_id", id).Str("key", key).Msg("Service: image upload failed")
		return nil, &apperrors.Error{Kind: apperrors.KindNetwork, Op: op, Path: "destinations/" + id, Msg: "gagal mengunggah gambar", Err: err}
	}
	if err := s.destinations.UpdateImage(ctx, id, url); err != nil {
		return nil, err
	}
	d.ImageURL = url
	zlog.Info().Str("destination_id", id).Str("url", url).Int("bytes", len(encoded)).Msg("Service: destination image updated")
	return d, nil
}
