package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wolfyek/client-gallery/internal/models"
)

// ErrGalleryNotFound is returned when no gallery matches the id or slug.
var ErrGalleryNotFound = errors.New("gallery not found")

// GalleryStore is the persistence boundary for galleries. Saves are
// full-document overwrites: the photo list travels with the gallery row,
// last writer wins.
type GalleryStore interface {
	GetGalleries(ctx context.Context) ([]models.Gallery, error)
	GetGallery(ctx context.Context, id string) (*models.Gallery, error)
	GetGalleryBySlug(ctx context.Context, slug string) (*models.Gallery, error)
	SaveGallery(ctx context.Context, gallery *models.Gallery) error
	DeleteGallery(ctx context.Context, id string) error
}

type gormGalleryStore struct {
	db *gorm.DB
}

// NewGalleryStore returns the Postgres-backed gallery store.
func NewGalleryStore(db *gorm.DB) GalleryStore {
	return &gormGalleryStore{db: db}
}

func (s *gormGalleryStore) GetGalleries(ctx context.Context) ([]models.Gallery, error) {
	var galleries []models.Gallery
	err := s.db.WithContext(ctx).Order("date DESC, created_at DESC").Find(&galleries).Error
	return galleries, err
}

func (s *gormGalleryStore) GetGallery(ctx context.Context, id string) (*models.Gallery, error) {
	var gallery models.Gallery
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&gallery).Error
	switch {
	case err == nil:
		return &gallery, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrGalleryNotFound
	default:
		return nil, err
	}
}

func (s *gormGalleryStore) GetGalleryBySlug(ctx context.Context, slug string) (*models.Gallery, error) {
	var gallery models.Gallery
	err := s.db.WithContext(ctx).
		Where("slug = ? OR slug_en = ?", slug, slug).
		First(&gallery).Error
	switch {
	case err == nil:
		return &gallery, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrGalleryNotFound
	default:
		return nil, err
	}
}

func (s *gormGalleryStore) SaveGallery(ctx context.Context, gallery *models.Gallery) error {
	return s.db.WithContext(ctx).Save(gallery).Error
}

func (s *gormGalleryStore) DeleteGallery(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Gallery{}).Error
}
