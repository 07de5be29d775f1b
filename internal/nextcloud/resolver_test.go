package nextcloud

import (
	"strings"
	"testing"
)

const proxyEncoded = "/api/proxy?server=https%3A%2F%2Fnc.example.com&token=abc123&path=%2FFull%2FPhoto.jpg"

func TestToDisplayURLRebuildsProxyEncoding(t *testing.T) {
	got := ToDisplayURL(proxyEncoded)

	if !strings.HasPrefix(got, "https://nc.example.com/index.php/apps/files_sharing/publicpreview/abc123?") {
		t.Fatalf("unexpected endpoint: %q", got)
	}
	if !strings.Contains(got, "file=%2FFull%2FPhoto.jpg") {
		t.Errorf("missing encoded file path: %q", got)
	}
	if !strings.Contains(got, "scalingup=0") {
		t.Errorf("upscaling must stay disabled: %q", got)
	}
}

func TestToDisplayURLPassesThroughDirectURLs(t *testing.T) {
	direct := "https://nc.example.com/index.php/apps/files_sharing/publicpreview/abc123?file=%2FA.jpg&x=1920&y=1080&a=true&scalingup=0"
	if got := ToDisplayURL(direct); got != direct {
		t.Errorf("direct URL should pass through, got %q", got)
	}

	foreign := "https://images.example.com/unsplash.jpg"
	if got := ToDisplayURL(foreign); got != foreign {
		t.Errorf("foreign URL should pass through, got %q", got)
	}
}

func TestToDisplayURLUnresolvableProxyReturnsEmpty(t *testing.T) {
	inputs := []string{
		"/api/proxy",
		"/api/proxy?server=https://nc.example.com&token=abc123", // no path
		"/api/proxy?path=/A.jpg",
	}
	for _, in := range inputs {
		if got := ToDisplayURL(in); got != "" {
			t.Errorf("ToDisplayURL(%q) = %q, want empty sentinel", in, got)
		}
	}
}

func TestToDownloadURLFromProxyEncoding(t *testing.T) {
	got, ok := ToDownloadURL(proxyEncoded)
	if !ok {
		t.Fatal("expected a download target")
	}
	if !strings.HasPrefix(got, "https://nc.example.com/s/abc123/download?") {
		t.Fatalf("wrong endpoint: %q", got)
	}
	if !strings.Contains(got, "files=Photo.jpg") {
		t.Errorf("missing files param: %q", got)
	}
	if !strings.Contains(got, "path=%2FFull") {
		t.Errorf("missing directory param: %q", got)
	}
	if strings.Contains(got, "publicpreview") {
		t.Errorf("download must not use the preview endpoint: %q", got)
	}
}

func TestToDownloadURLFromPreviewURL(t *testing.T) {
	preview := PreviewURL(Share{Token: "abc123", BaseURL: "https://nc.example.com"}, "/Full/Photo.jpg")

	got, ok := ToDownloadURL(preview)
	if !ok {
		t.Fatal("expected a download target")
	}
	want := "https://nc.example.com/s/abc123/download?files=Photo.jpg&path=%2FFull"
	if got != want {
		t.Errorf("ToDownloadURL() = %q, want %q", got, want)
	}
}

func TestToDownloadURLRootFile(t *testing.T) {
	got, ok := ToDownloadURL("/api/proxy?server=https://nc.example.com&token=abc123&path=/Photo.jpg")
	if !ok {
		t.Fatal("expected a download target")
	}
	if !strings.Contains(got, "path=%2F&") && !strings.HasSuffix(got, "path=%2F") {
		t.Errorf("root files should get path=/: %q", got)
	}
}

func TestResolversNeverPanicOnGarbage(t *testing.T) {
	garbage := []string{
		"",
		"::::not-a-url::::",
		"/api/proxy?%zz",
		"https://nc.example.com/publicpreview/",
		"\x7f%41",
	}
	for _, in := range garbage {
		// Must not panic, and must never produce a download target.
		_ = ToDisplayURL(in)
		if got, ok := ToDownloadURL(in); ok {
			t.Errorf("ToDownloadURL(%q) = %q, want no target", in, got)
		}
	}

	if got := ToDisplayURL("/api/proxy?%zz"); got != "" {
		t.Errorf("malformed proxy query resolved to %q, want empty sentinel", got)
	}
}
