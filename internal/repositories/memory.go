package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wolfyek/client-gallery/internal/models"
)

// MemoryGalleryStore is an in-memory GalleryStore for tests.
type MemoryGalleryStore struct {
	mu        sync.RWMutex
	galleries map[string]models.Gallery
	order     []string
}

func NewMemoryGalleryStore() *MemoryGalleryStore {
	return &MemoryGalleryStore{galleries: make(map[string]models.Gallery)}
}

func (s *MemoryGalleryStore) GetGalleries(_ context.Context) ([]models.Gallery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Gallery, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.galleries[id])
	}
	return out, nil
}

func (s *MemoryGalleryStore) GetGallery(_ context.Context, id string) (*models.Gallery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.galleries[id]
	if !ok {
		return nil, ErrGalleryNotFound
	}
	return &g, nil
}

func (s *MemoryGalleryStore) GetGalleryBySlug(_ context.Context, slug string) (*models.Gallery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.galleries {
		if g.Slug == slug || g.SlugEn == slug {
			gallery := g
			return &gallery, nil
		}
	}
	return nil, ErrGalleryNotFound
}

func (s *MemoryGalleryStore) SaveGallery(_ context.Context, gallery *models.Gallery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.galleries[gallery.ID]; !exists {
		s.order = append(s.order, gallery.ID)
	}
	s.galleries[gallery.ID] = *gallery
	return nil
}

func (s *MemoryGalleryStore) DeleteGallery(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.galleries, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// MemoryLogStore is an in-memory LogStore for tests.
type MemoryLogStore struct {
	mu        sync.Mutex
	Activity  []models.ActivityLog
	Downloads []models.DownloadLog
}

func NewMemoryLogStore() *MemoryLogStore {
	return &MemoryLogStore{}
}

func (s *MemoryLogStore) LogActivity(_ context.Context, logType, description, user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Activity = append(s.Activity, models.ActivityLog{
		ID:          uuid.New(),
		Type:        logType,
		Description: description,
		User:        user,
	})
}

func (s *MemoryLogStore) LogDownload(_ context.Context, email, galleryTitle, photoID, photoSrc, photoName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Downloads = append(s.Downloads, models.DownloadLog{
		ID:           uuid.New(),
		Email:        email,
		GalleryTitle: galleryTitle,
		PhotoID:      photoID,
		PhotoSrc:     photoSrc,
		PhotoName:    photoName,
	})
}

func (s *MemoryLogStore) GetActivity(_ context.Context) ([]models.ActivityLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ActivityLog(nil), s.Activity...), nil
}

func (s *MemoryLogStore) GetDownloads(_ context.Context) ([]models.DownloadLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DownloadLog(nil), s.Downloads...), nil
}

func (s *MemoryLogStore) DeleteActivity(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, entry := range s.Activity {
		if entry.ID == id {
			s.Activity = append(s.Activity[:i], s.Activity[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryLogStore) DeleteDownload(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, entry := range s.Downloads {
		if entry.ID == id {
			s.Downloads = append(s.Downloads[:i], s.Downloads[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryLogStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Activity = nil
	s.Downloads = nil
	return nil
}
