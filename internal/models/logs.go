package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity log types.
const (
	ActivityCreateGallery = "CREATE_GALLERY"
	ActivityUpdateGallery = "UPDATE_GALLERY"
	ActivityDeleteGallery = "DELETE_GALLERY"
	ActivityLogin         = "LOGIN"
	ActivityOther         = "OTHER"
)

// ActivityLog records one admin action.
type ActivityLog struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Type        string    `json:"type" gorm:"not null;index"`
	Description string    `json:"description" gorm:"not null"`
	User        string    `json:"user" gorm:"column:username;not null"`
	Timestamp   time.Time `json:"timestamp" gorm:"autoCreateTime;index"`
}

// DownloadLog records one visitor download, keyed by the email the
// visitor entered before downloading.
type DownloadLog struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"not null;index"`
	GalleryTitle string    `json:"galleryTitle" gorm:"not null"`
	PhotoID      string    `json:"photoId"`
	PhotoSrc     string    `json:"photoSrc"`
	PhotoName    string    `json:"photoName"`
	Timestamp    time.Time `json:"timestamp" gorm:"autoCreateTime;index"`
}
