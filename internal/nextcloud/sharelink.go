package nextcloud

import (
	"net/url"
	"strings"
)

// ParseShareLink extracts the share token and server base URL from a
// user-supplied public share link. All historical link shapes are
// accepted:
//
//	https://host/s/{token}
//	https://host/index.php/s/{token}
//	https://host/public.php/dav/files/{token}/...
//
// The base URL is the scheme+host(+port) prefix; any /index.php routing
// segment is dropped with the rest of the path.
func ParseShareLink(raw string) (Share, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Share{}, ErrInvalidShareURL
	}

	base := u.Scheme + "://" + u.Host
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	for i, seg := range segments {
		if seg == "s" && i+1 < len(segments) && segments[i+1] != "" {
			return Share{Token: segments[i+1], BaseURL: base}, nil
		}
	}

	// Direct WebDAV links: public.php/dav/files/{token}/...
	for i := 0; i+3 < len(segments); i++ {
		if segments[i] == "public.php" && segments[i+1] == "dav" &&
			segments[i+2] == "files" && segments[i+3] != "" {
			return Share{Token: segments[i+3], BaseURL: base}, nil
		}
	}

	return Share{}, ErrInvalidShareURL
}
