// Package handlers implements the JSON API surface: public gallery
// browsing and downloads, and the cookie-gated admin endpoints that
// manage galleries and run Nextcloud imports.
package handlers

import (
	"github.com/wolfyek/client-gallery/internal/archive"
	"github.com/wolfyek/client-gallery/internal/nextcloud"
	"github.com/wolfyek/client-gallery/internal/repositories"
)

// Handler carries the collaborators every endpoint needs. Construct it
// once in main and hand it to the router.
type Handler struct {
	galleries repositories.GalleryStore
	logs      repositories.LogStore
	nextcloud *nextcloud.Client
	packager  *archive.Packager
	uploads   *repositories.R2Storage // nil disables the upload surface
}

func New(
	galleries repositories.GalleryStore,
	logs repositories.LogStore,
	nc *nextcloud.Client,
	packager *archive.Packager,
	uploads *repositories.R2Storage,
) *Handler {
	return &Handler{
		galleries: galleries,
		logs:      logs,
		nextcloud: nc,
		packager:  packager,
		uploads:   uploads,
	}
}
