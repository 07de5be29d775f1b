package nextcloud

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestImportEndToEnd(t *testing.T) {
	ts, _ := newWebdavServer(t, 207, namespacedMultistatus)

	photos, warnings, err := NewClient(nil).Import(context.Background(), ts.URL+"/s/tok123")
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	// Full/Event (1).jpg and Web/Event (1).jpg pair into one photo.
	if len(photos) != 1 {
		t.Fatalf("got %d photos, want 1", len(photos))
	}
	p := photos[0]
	if !strings.Contains(p.Src, "publicpreview/tok123") {
		t.Errorf("src = %q, want preview URL for the share token", p.Src)
	}
	if !strings.Contains(p.Src, "%2FFull%2FEvent") {
		t.Errorf("src should target the Full variant: %q", p.Src)
	}
	if !strings.Contains(p.PreviewSrc, "%2FWeb%2FEvent") {
		t.Errorf("previewSrc should target the Web variant: %q", p.PreviewSrc)
	}
	if p.DateTaken != "2024-01-02T12:30:00Z" {
		t.Errorf("dateTaken = %q, want master Last-Modified", p.DateTaken)
	}
}

func TestImportRejectsBadShareURL(t *testing.T) {
	_, _, err := NewClient(nil).Import(context.Background(), "https://nc.example.com/files/nope")
	if !errors.Is(err, ErrInvalidShareURL) {
		t.Fatalf("error = %v, want ErrInvalidShareURL", err)
	}
}
