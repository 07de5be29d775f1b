package models

import (
	"time"
)

// Gallery is one client gallery. The photo list lives inside the row as a
// JSON document, so saving a gallery overwrites its photos wholesale.
type Gallery struct {
	ID                 string    `json:"id" gorm:"primaryKey"`
	Title              string    `json:"title" gorm:"not null"`
	Description        string    `json:"description,omitempty"`
	Date               string    `json:"date"` // YYYY-MM-DD
	CoverImage         string    `json:"coverImage"`
	CoverImagePosition string    `json:"coverImagePosition,omitempty"` // CSS object-position value
	Password           string    `json:"password,omitempty"`           // empty means public
	Downloadable       *bool     `json:"downloadable,omitempty"`       // nil means true
	Category           string    `json:"category,omitempty"`
	Slug               string    `json:"slug,omitempty" gorm:"index"`
	TitleEn            string    `json:"titleEn,omitempty"`
	DescriptionEn      string    `json:"descriptionEn,omitempty"`
	SlugEn             string    `json:"slugEn,omitempty"`
	Hidden             bool      `json:"hidden,omitempty" gorm:"default:false"`
	Photos             PhotoList `json:"photos" gorm:"type:jsonb"`
	CreatedAt          time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt          time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// IsDownloadable reports whether visitors may download photos.
// Galleries created before the flag existed have no value stored and
// default to downloadable.
func (g *Gallery) IsDownloadable() bool {
	return g.Downloadable == nil || *g.Downloadable
}

// IsProtected reports whether the gallery is gated behind a password.
func (g *Gallery) IsProtected() bool {
	return g.Password != ""
}
