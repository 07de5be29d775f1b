package nextcloud

import (
	"context"
	"encoding/xml"
	"io"
	"log"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

const webdavMount = "/public.php/webdav"

// DefaultTimeout bounds the WebDAV listing round trip. A timeout is
// reported to the caller as UpstreamError, same as a 5xx.
const DefaultTimeout = 30 * time.Second

// Client talks to a Nextcloud server. The zero value is not usable;
// construct it with NewClient so the HTTP client carries a timeout.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a Client using the given HTTP client. Passing nil
// installs a client with DefaultTimeout.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{httpClient: httpClient}
}

// Recognized image extensions. Anything else (including directories,
// which have no extension) is skipped during listing.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".avif": true,
}

func isImageFilename(name string) bool {
	return imageExtensions[strings.ToLower(path.Ext(name))]
}

// WebDAV multistatus response. encoding/xml matches on local names, so
// both namespaced (d:href) and bare (href) element forms decode into the
// same fields, and slice fields absorb single-vs-repeated encodings.
type multistatus struct {
	Responses []davResponse `xml:"response"`
}

type davResponse struct {
	Href      string        `xml:"href"`
	Propstats []davPropstat `xml:"propstat"`
}

type davPropstat struct {
	LastModified string `xml:"prop>getlastmodified"`
}

// ListFiles issues a recursive PROPFIND against the share's WebDAV
// endpoint and returns the image files it contains. One network round
// trip; no retries, a failed import is re-triggered manually.
//
// A non-2xx status is returned as *UpstreamError. A response body that
// is not valid multistatus XML is treated as zero files found, not as a
// hard failure.
func (c *Client) ListFiles(ctx context.Context, share Share) ([]RemoteFile, error) {
	endpoint := strings.TrimRight(share.BaseURL, "/") + webdavMount

	req, err := http.NewRequestWithContext(ctx, "PROPFIND", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(share.Token, "")
	req.Header.Set("Depth", "infinity")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	var ms multistatus
	if err := xml.Unmarshal(body, &ms); err != nil {
		log.Printf("nextcloud: unparseable PROPFIND response (%v), treating as empty share", err)
		return nil, nil
	}

	files := make([]RemoteFile, 0, len(ms.Responses))
	for _, r := range ms.Responses {
		rel, ok := relativeHref(r.Href)
		if !ok {
			continue
		}
		filename := path.Base(rel)
		if !isImageFilename(filename) {
			continue
		}
		files = append(files, RemoteFile{
			Path:         rel,
			Filename:     filename,
			ParentFolder: parentFolder(rel),
			LastModified: firstLastModified(r.Propstats),
		})
	}
	return files, nil
}

// relativeHref strips the WebDAV mount prefix from a response href and
// decodes it to a share-relative path. Hrefs outside the mount, the
// mount root itself, and collection hrefs (trailing slash) are dropped.
func relativeHref(href string) (string, bool) {
	decoded, err := url.PathUnescape(strings.TrimSpace(href))
	if err != nil {
		decoded = href
	}
	idx := strings.Index(decoded, webdavMount)
	if idx < 0 {
		return "", false
	}
	rel := decoded[idx+len(webdavMount):]
	if rel == "" || rel == "/" || strings.HasSuffix(rel, "/") {
		return "", false
	}
	if !strings.HasPrefix(rel, "/") {
		rel = "/" + rel
	}
	return rel, true
}

func parentFolder(rel string) string {
	dir := path.Dir(rel)
	if dir == "/" || dir == "." {
		return ""
	}
	return path.Base(dir)
}

func firstLastModified(propstats []davPropstat) string {
	for _, ps := range propstats {
		if ps.LastModified != "" {
			return ps.LastModified
		}
	}
	return ""
}
