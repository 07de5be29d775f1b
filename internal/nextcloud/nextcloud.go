// Package nextcloud implements the import pipeline against a Nextcloud
// public share: parsing the share link, listing the share over WebDAV,
// pairing web/full variants of the same photo, building Photo records,
// and resolving stored photo URLs to working display/download targets.
package nextcloud

import (
	"errors"
	"fmt"
)

// ErrInvalidShareURL is returned when a share link cannot be parsed into
// a token and base URL. Surfaced verbatim to the admin as form feedback.
var ErrInvalidShareURL = errors.New("invalid Nextcloud share URL: must contain /s/{token}")

// UpstreamError reports a failed WebDAV round trip: either a non-2xx
// response (Status set) or a transport failure (Status zero, Err set).
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("nextcloud unavailable: status %d", e.Status)
	}
	return fmt.Sprintf("nextcloud unreachable: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Share identifies one public share: the opaque token used as a Basic-auth
// credential and the scheme+host prefix of the server.
type Share struct {
	Token   string
	BaseURL string
}

// RemoteFile is one WebDAV-listed object, relative to the share root.
// It exists only for the duration of an import.
type RemoteFile struct {
	Path         string // server-relative, starts with "/"
	Filename     string // last path segment
	ParentFolder string // segment before the filename, "" at share root
	LastModified string // HTTP-date from the server, may be empty
}
