package repositories

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wolfyek/client-gallery/internal/models"
)

// LogStore is the fire-and-forget audit trail. Write failures are logged
// and swallowed so a broken log table never blocks the import pipeline
// or a visitor download.
type LogStore interface {
	LogActivity(ctx context.Context, logType, description, user string)
	LogDownload(ctx context.Context, email, galleryTitle, photoID, photoSrc, photoName string)
	GetActivity(ctx context.Context) ([]models.ActivityLog, error)
	GetDownloads(ctx context.Context) ([]models.DownloadLog, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error
	DeleteDownload(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type gormLogStore struct {
	db *gorm.DB
}

// NewLogStore returns the Postgres-backed log store.
func NewLogStore(db *gorm.DB) LogStore {
	return &gormLogStore{db: db}
}

func (s *gormLogStore) LogActivity(ctx context.Context, logType, description, user string) {
	log.Printf("[ACTIVITY] %s: %s (User: %s)", logType, description, user)
	entry := models.ActivityLog{
		ID:          uuid.New(),
		Type:        logType,
		Description: description,
		User:        user,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("Failed to persist activity log: %v", err)
	}
}

func (s *gormLogStore) LogDownload(ctx context.Context, email, galleryTitle, photoID, photoSrc, photoName string) {
	log.Printf("[DOWNLOAD] %s downloaded %s from %s", email, photoName, galleryTitle)
	entry := models.DownloadLog{
		ID:           uuid.New(),
		Email:        email,
		GalleryTitle: galleryTitle,
		PhotoID:      photoID,
		PhotoSrc:     photoSrc,
		PhotoName:    photoName,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("Failed to persist download log: %v", err)
	}
}

func (s *gormLogStore) GetActivity(ctx context.Context) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := s.db.WithContext(ctx).Order("timestamp DESC").Find(&entries).Error
	return entries, err
}

func (s *gormLogStore) GetDownloads(ctx context.Context) ([]models.DownloadLog, error) {
	var entries []models.DownloadLog
	err := s.db.WithContext(ctx).Order("timestamp DESC").Find(&entries).Error
	return entries, err
}

func (s *gormLogStore) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ActivityLog{}).Error
}

func (s *gormLogStore) DeleteDownload(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.DownloadLog{}).Error
}

func (s *gormLogStore) DeleteAll(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&models.ActivityLog{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("1 = 1").Delete(&models.DownloadLog{}).Error
}
