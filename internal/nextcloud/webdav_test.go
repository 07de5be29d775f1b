package nextcloud

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const namespacedMultistatus = `<?xml version="1.0"?>
<d:multistatus xmlns:d="DAV:" xmlns:s="http://sabredav.org/ns" xmlns:oc="http://owncloud.org/ns">
  <d:response>
    <d:href>/public.php/webdav/</d:href>
    <d:propstat>
      <d:prop><d:getlastmodified>Mon, 01 Jan 2024 10:00:00 GMT</d:getlastmodified></d:prop>
      <d:status>HTTP/1.1 200 OK</d:status>
    </d:propstat>
  </d:response>
  <d:response>
    <d:href>/public.php/webdav/Full/</d:href>
    <d:propstat>
      <d:prop><d:getlastmodified>Mon, 01 Jan 2024 10:00:00 GMT</d:getlastmodified></d:prop>
      <d:status>HTTP/1.1 200 OK</d:status>
    </d:propstat>
  </d:response>
  <d:response>
    <d:href>/public.php/webdav/Full/Event%20(1).jpg</d:href>
    <d:propstat>
      <d:prop><d:getlastmodified>Tue, 02 Jan 2024 12:30:00 GMT</d:getlastmodified></d:prop>
      <d:status>HTTP/1.1 200 OK</d:status>
    </d:propstat>
  </d:response>
  <d:response>
    <d:href>/public.php/webdav/Web/Event%20(1).jpg</d:href>
    <d:propstat>
      <d:prop><d:getlastmodified>Tue, 02 Jan 2024 12:31:00 GMT</d:getlastmodified></d:prop>
      <d:status>HTTP/1.1 200 OK</d:status>
    </d:propstat>
  </d:response>
  <d:response>
    <d:href>/public.php/webdav/notes.txt</d:href>
    <d:propstat>
      <d:prop><d:getlastmodified>Tue, 02 Jan 2024 12:32:00 GMT</d:getlastmodified></d:prop>
      <d:status>HTTP/1.1 200 OK</d:status>
    </d:propstat>
  </d:response>
</d:multistatus>`

// Older servers emit unprefixed elements and may return a single
// response object rather than a list.
const bareSingleResponse = `<?xml version="1.0"?>
<multistatus xmlns="DAV:">
  <response>
    <href>/public.php/webdav/Portrait.PNG</href>
    <propstat>
      <prop><getlastmodified>Wed, 03 Jan 2024 08:00:00 GMT</getlastmodified></prop>
      <status>HTTP/1.1 200 OK</status>
    </propstat>
  </response>
</multistatus>`

func newWebdavServer(t *testing.T, status int, body string) (*httptest.Server, Share) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PROPFIND" {
			t.Errorf("method = %s, want PROPFIND", r.Method)
		}
		if r.URL.Path != "/public.php/webdav" {
			t.Errorf("path = %s, want /public.php/webdav", r.URL.Path)
		}
		if r.Header.Get("Depth") != "infinity" {
			t.Errorf("Depth = %q, want infinity", r.Header.Get("Depth"))
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "tok123" || pass != "" {
			t.Errorf("basic auth = %q/%q, want tok123/empty", user, pass)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts, Share{Token: "tok123", BaseURL: ts.URL}
}

func TestListFilesParsesNamespacedMultistatus(t *testing.T) {
	_, share := newWebdavServer(t, http.StatusMultiStatus, namespacedMultistatus)

	files, err := NewClient(nil).ListFiles(context.Background(), share)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}

	// Root, the Full/ collection and notes.txt are filtered out.
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %+v", len(files), files)
	}

	f := files[0]
	if f.Path != "/Full/Event (1).jpg" {
		t.Errorf("path = %q, want decoded share-relative path", f.Path)
	}
	if f.Filename != "Event (1).jpg" {
		t.Errorf("filename = %q", f.Filename)
	}
	if f.ParentFolder != "Full" {
		t.Errorf("parentFolder = %q, want Full", f.ParentFolder)
	}
	if f.LastModified != "Tue, 02 Jan 2024 12:30:00 GMT" {
		t.Errorf("lastModified = %q", f.LastModified)
	}

	if files[1].ParentFolder != "Web" {
		t.Errorf("second file parentFolder = %q, want Web", files[1].ParentFolder)
	}
}

func TestListFilesParsesBareSingleResponse(t *testing.T) {
	_, share := newWebdavServer(t, http.StatusMultiStatus, bareSingleResponse)

	files, err := NewClient(nil).ListFiles(context.Background(), share)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	if files[0].Filename != "Portrait.PNG" {
		t.Errorf("filename = %q", files[0].Filename)
	}
	if files[0].ParentFolder != "" {
		t.Errorf("parentFolder = %q, want empty at share root", files[0].ParentFolder)
	}
}

func TestListFilesNon2xxIsUpstreamError(t *testing.T) {
	_, share := newWebdavServer(t, http.StatusUnauthorized, "nope")

	_, err := NewClient(nil).ListFiles(context.Background(), share)
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if upstream.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", upstream.Status)
	}
}

func TestListFilesMalformedXMLMeansZeroFiles(t *testing.T) {
	_, share := newWebdavServer(t, http.StatusMultiStatus, "<html>maintenance page</html")

	files, err := NewClient(nil).ListFiles(context.Background(), share)
	if err != nil {
		t.Fatalf("malformed XML must not be a hard failure, got %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}
