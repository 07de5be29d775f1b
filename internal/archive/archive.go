// Package archive packages a gallery's original photos into one ZIP
// stream, fetching them from the remote share on the fly.
package archive

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/wolfyek/client-gallery/internal/models"
	"github.com/wolfyek/client-gallery/internal/nextcloud"
)

// Upstream fetches run a few at a time, politely rate-limited, so one
// bulk download doesn't hammer the share host.
const (
	fetchConcurrency = 3
	fetchInterval    = 200 * time.Millisecond
)

// ErrNoPhotos is returned when not a single photo could be fetched.
var ErrNoPhotos = errors.New("no photos could be fetched for the archive")

type Packager struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewPackager returns a Packager using the given HTTP client. Passing
// nil installs a client with a generous per-photo timeout.
func NewPackager(httpClient *http.Client) *Packager {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Packager{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Every(fetchInterval), fetchConcurrency),
	}
}

// WriteArchive streams a ZIP of all photos into w, under one top-level
// folder. Photos fetch concurrently in small batches; the writer itself
// is sequential since zip.Writer is not safe for concurrent use.
// Individual fetch failures are logged and skipped; the archive fails
// only when nothing could be fetched at all.
func (p *Packager) WriteArchive(ctx context.Context, w io.Writer, folder string, photos []models.Photo) error {
	zw := zip.NewWriter(w)
	written := 0

	for start := 0; start < len(photos); start += fetchConcurrency {
		end := min(start+fetchConcurrency, len(photos))
		batch := photos[start:end]
		contents := make([][]byte, len(batch))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(fetchConcurrency)
		for i, photo := range batch {
			g.Go(func() error {
				data, err := p.fetchOriginal(gctx, photo)
				if err != nil {
					log.Printf("archive: skipping %s: %v", photo.Alt, err)
					return nil
				}
				contents[i] = data
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for i, data := range contents {
			if data == nil {
				continue
			}
			entry, err := zw.Create(folder + "/" + entryName(batch[i], start+i))
			if err != nil {
				return err
			}
			if _, err := entry.Write(data); err != nil {
				return err
			}
			written++
		}
	}

	if err := zw.Close(); err != nil {
		return err
	}
	if written == 0 && len(photos) > 0 {
		return ErrNoPhotos
	}
	return nil
}

// fetchOriginal downloads one photo's original bytes, resolving the
// stored URL to the attachment endpoint first so the archive never
// contains resized preview data when an original is reachable.
func (p *Packager) fetchOriginal(ctx context.Context, photo models.Photo) ([]byte, error) {
	target, ok := nextcloud.ToDownloadURL(photo.Src)
	if !ok {
		if !strings.HasPrefix(photo.Src, "http://") && !strings.HasPrefix(photo.Src, "https://") {
			return nil, fmt.Errorf("no fetchable URL for photo %s", photo.ID)
		}
		target = photo.Src
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", target, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func entryName(photo models.Photo, index int) string {
	if photo.Alt != "" {
		return photo.Alt
	}
	return fmt.Sprintf("photo-%03d.jpg", index+1)
}
