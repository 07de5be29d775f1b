package nextcloud

import (
	"net/url"
	"path"
	"strings"
)

// Stored photo URLs come in several historical encodings. Rather than
// migrating stored data, these two resolvers normalize any encoding to a
// working target at read time. Both are pure: no network, no panics.

const proxyPrefix = "/api/proxy"

// ToDisplayURL maps a stored photo URL to one a browser <img> tag can
// load inline. Legacy redirect-proxy encodings are rebuilt into the
// canonical preview endpoint; anything else passes through unchanged.
// A proxy URL missing its parameters resolves to "" so callers render a
// placeholder instead of requesting a guessed, broken URL.
func ToDisplayURL(stored string) string {
	if stored == "" {
		return ""
	}
	if !strings.HasPrefix(stored, proxyPrefix) {
		return stored
	}

	server, token, filePath, ok := parseProxyURL(stored)
	if !ok {
		return ""
	}
	return PreviewURL(Share{Token: token, BaseURL: server}, filePath)
}

// ToDownloadURL maps a stored photo URL to the share-download endpoint,
// which serves the original bytes with a Content-Disposition: attachment
// header. The preview endpoint is never used here since it serves
// resized raster data. Returns ok=false when no safe target can be
// derived; callers fall back to their own failure path rather than
// downloading a wrong-resolution asset.
func ToDownloadURL(stored string) (string, bool) {
	if stored == "" {
		return "", false
	}

	if strings.HasPrefix(stored, proxyPrefix) {
		server, token, filePath, ok := parseProxyURL(stored)
		if !ok {
			return "", false
		}
		return downloadURL(server, token, filePath), true
	}

	if strings.Contains(stored, "/publicpreview/") {
		u, err := url.Parse(stored)
		if err != nil || u.Host == "" {
			return "", false
		}
		token := pathSegmentAfter(u.Path, "publicpreview")
		filePath := u.Query().Get("file")
		if token == "" || filePath == "" {
			return "", false
		}
		return downloadURL(u.Scheme+"://"+u.Host, token, filePath), true
	}

	return "", false
}

// parseProxyURL extracts {server, token, path} from the internal
// redirect-proxy query-string encoding.
func parseProxyURL(stored string) (server, token, filePath string, ok bool) {
	u, err := url.Parse(stored)
	if err != nil {
		return "", "", "", false
	}
	q := u.Query()
	server = strings.TrimRight(q.Get("server"), "/")
	token = q.Get("token")
	filePath = q.Get("path")
	if server == "" || token == "" || filePath == "" {
		return "", "", "", false
	}
	return server, token, filePath, true
}

// downloadURL builds {server}/s/{token}/download?path={dir}&files={name}.
// Files at the share root get path=/.
func downloadURL(server, token, filePath string) string {
	if !strings.HasPrefix(filePath, "/") {
		filePath = "/" + filePath
	}
	dir := path.Dir(filePath)
	name := path.Base(filePath)

	v := url.Values{}
	v.Set("path", dir)
	v.Set("files", name)
	return strings.TrimRight(server, "/") + "/s/" + token + "/download?" + v.Encode()
}

func pathSegmentAfter(p, marker string) string {
	segments := strings.Split(strings.Trim(p, "/"), "/")
	for i, seg := range segments {
		if seg == marker && i+1 < len(segments) {
			return segments[i+1]
		}
	}
	return ""
}
