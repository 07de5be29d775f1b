package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/wolfyek/client-gallery/internal/models"
)

func TestWriteArchive(t *testing.T) {
	images := map[string][]byte{
		"/a.jpg": []byte("jpeg-bytes-a"),
		"/b.jpg": []byte("jpeg-bytes-b"),
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok := images[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer ts.Close()

	photos := []models.Photo{
		{ID: "p1", Src: ts.URL + "/a.jpg", Alt: "a.jpg"},
		{ID: "p2", Src: ts.URL + "/b.jpg", Alt: "b.jpg"},
	}

	var buf bytes.Buffer
	p := NewPackager(ts.Client())
	if err := p.WriteArchive(context.Background(), &buf, "Shoot", photos); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reading archive back: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("archive holds %d entries, want 2", len(zr.File))
	}

	got := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("reading %s: %v", f.Name, err)
		}
		got[f.Name] = string(data)
	}

	if got["Shoot/a.jpg"] != "jpeg-bytes-a" || got["Shoot/b.jpg"] != "jpeg-bytes-b" {
		t.Errorf("entries = %v", got)
	}
}

func TestWriteArchiveSkipsFailedFetches(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok.jpg" {
			w.Write([]byte("ok"))
			return
		}
		http.NotFound(w, r)
	}))
	defer ts.Close()

	photos := []models.Photo{
		{ID: "p1", Src: ts.URL + "/gone.jpg", Alt: "gone.jpg"},
		{ID: "p2", Src: ts.URL + "/ok.jpg", Alt: "ok.jpg"},
	}

	var buf bytes.Buffer
	p := NewPackager(ts.Client())
	if err := p.WriteArchive(context.Background(), &buf, "Shoot", photos); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reading archive back: %v", err)
	}
	if len(zr.File) != 1 || zr.File[0].Name != "Shoot/ok.jpg" {
		t.Errorf("expected only the reachable photo, got %v", zr.File)
	}
}

func TestWriteArchiveNothingFetchable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	photos := []models.Photo{{ID: "p1", Src: ts.URL + "/gone.jpg"}}

	var buf bytes.Buffer
	p := NewPackager(ts.Client())
	if err := p.WriteArchive(context.Background(), &buf, "Shoot", photos); err != ErrNoPhotos {
		t.Errorf("err = %v, want ErrNoPhotos", err)
	}
}

func TestWriteArchiveResolvesProxyURLs(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Write([]byte("original"))
	}))
	defer ts.Close()

	// Proxy encoding pointing back at the test server as the share host.
	stored := "/api/proxy?server=" + url.QueryEscape(ts.URL) +
		"&token=abc123&path=" + url.QueryEscape("/Full/Photo.jpg")
	photos := []models.Photo{{ID: "p1", Src: stored, Alt: "Photo.jpg"}}

	var buf bytes.Buffer
	p := NewPackager(ts.Client())
	if err := p.WriteArchive(context.Background(), &buf, "Shoot", photos); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}

	want := "/s/abc123/download?files=Photo.jpg&path=%2FFull"
	if gotPath != want {
		t.Errorf("fetched %q, want %q", gotPath, want)
	}
}

func TestEntryName(t *testing.T) {
	if got := entryName(models.Photo{Alt: "Sunset.jpg"}, 0); got != "Sunset.jpg" {
		t.Errorf("entryName with alt = %q", got)
	}
	if got := entryName(models.Photo{}, 4); got != "photo-005.jpg" {
		t.Errorf("entryName fallback = %q", got)
	}
}
