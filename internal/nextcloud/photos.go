package nextcloud

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wolfyek/client-gallery/internal/models"
	"github.com/wolfyek/client-gallery/internal/utils"
)

// Preview endpoint sizing. Upscaling stays disabled so small originals
// are served at their native resolution.
const (
	previewWidth  = 1920
	previewHeight = 1080
)

// Declared intrinsic dimensions when the source gives us none.
const (
	defaultWidth  = 1920
	defaultHeight = 1080
)

// PreviewURL builds the public preview endpoint URL for a share-relative
// file path, at maximum practical resolution with upscaling disabled.
func PreviewURL(share Share, filePath string) string {
	if !strings.HasPrefix(filePath, "/") {
		filePath = "/" + filePath
	}
	return fmt.Sprintf("%s/index.php/apps/files_sharing/publicpreview/%s?file=%s&x=%d&y=%d&a=true&scalingup=0",
		strings.TrimRight(share.BaseURL, "/"),
		share.Token,
		url.QueryEscape(filePath),
		previewWidth,
		previewHeight,
	)
}

// BuildPhotos turns variant groups into Photo records, ordered
// chronologically by capture time. Undated photos sort after all dated
// ones, keeping their original relative order.
func BuildPhotos(share Share, groups []VariantGroup) []models.Photo {
	photos := make([]models.Photo, 0, len(groups))

	for _, g := range groups {
		main := g.Full
		if main == nil {
			main = g.Web
		}
		if main == nil {
			// Impossible by construction; skip rather than panic.
			continue
		}

		photo := models.Photo{
			ID:     newPhotoID(),
			Src:    PreviewURL(share, main.Path),
			Width:  defaultWidth,
			Height: defaultHeight,
			Alt:    main.Filename,
		}
		if g.Web != nil && g.Web != main {
			photo.PreviewSrc = PreviewURL(share, g.Web.Path)
		}
		if taken, ok := captureTime(g); ok {
			photo.DateTaken = taken
		}
		photos = append(photos, photo)
	}

	sort.SliceStable(photos, func(i, j int) bool {
		a, b := photos[i].DateTaken, photos[j].DateTaken
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a < b
	})
	return photos
}

// captureTime derives an ISO-8601 timestamp from the group's WebDAV
// Last-Modified, preferring the master copy. Unparseable dates leave the
// photo undated.
func captureTime(g VariantGroup) (string, bool) {
	var raw string
	if g.Full != nil && g.Full.LastModified != "" {
		raw = g.Full.LastModified
	} else if g.Web != nil {
		raw = g.Web.LastModified
	}
	if raw == "" {
		return "", false
	}
	t, err := http.ParseTime(raw)
	if err != nil {
		return "", false
	}
	return t.UTC().Format(time.RFC3339), true
}

// newPhotoID mints a fresh opaque id per photo. Ids are never derived
// from filenames, so re-importing the same share yields new ids.
func newPhotoID() string {
	id, err := utils.GenerateSecureToken(8)
	if err != nil {
		return uuid.NewString()
	}
	return id
}
