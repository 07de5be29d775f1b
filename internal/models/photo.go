package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Photo is one entry in a gallery's photo list. Photos are value objects
// owned by their Gallery; the whole list is persisted as a single JSON
// document, so edits are full-document overwrites (last-writer-wins).
type Photo struct {
	ID         string `json:"id"`
	Src        string `json:"src"`                  // master/full-resolution URL, the download target
	PreviewSrc string `json:"previewSrc,omitempty"` // optional lower-resolution display URL
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Alt        string `json:"alt"`                 // human-readable filename
	DateTaken  string `json:"dateTaken,omitempty"` // ISO-8601; derived from WebDAV Last-Modified
}

// DisplaySrc returns the URL to render: previewSrc when present, src otherwise.
func (p Photo) DisplaySrc() string {
	if p.PreviewSrc != "" {
		return p.PreviewSrc
	}
	return p.Src
}

// PhotoList stores a gallery's photos as one JSONB column.
type PhotoList []Photo

func (l PhotoList) Value() (driver.Value, error) {
	if l == nil {
		l = PhotoList{}
	}
	return json.Marshal(l)
}

func (l *PhotoList) Scan(value any) error {
	if value == nil {
		*l = PhotoList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for PhotoList: %T", value)
	}
	return json.Unmarshal(data, l)
}
