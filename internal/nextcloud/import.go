package nextcloud

import (
	"context"
	"log"

	"github.com/wolfyek/client-gallery/internal/models"
)

// Import runs the whole pipeline for one admin-supplied share link:
// parse, list, group, build. It returns the chronologically ordered
// photos plus any basename-collision warnings from grouping. Nothing is
// persisted here; the caller saves the gallery only once the admin
// confirms the imported set.
func (c *Client) Import(ctx context.Context, shareURL string) ([]models.Photo, []string, error) {
	share, err := ParseShareLink(shareURL)
	if err != nil {
		return nil, nil, err
	}

	files, err := c.ListFiles(ctx, share)
	if err != nil {
		return nil, nil, err
	}

	groups, warnings := GroupVariants(files)
	photos := BuildPhotos(share, groups)

	log.Printf("nextcloud: imported %d photos from %d files (%d warnings)",
		len(photos), len(files), len(warnings))
	return photos, warnings, nil
}
