package db_models

import "github.com/google/uuid"

// Photo is gallery metadata; the bytes live in the configured upload store.
type Photo struct {
	BaseModel
	Filename     string `gorm:"not null"`
	OriginalName string
	Path         string `gorm:"not null"`
	URL          string `gorm:"not null"`
	ContentType  string
	SizeBytes    int64
	UploadedBy   uuid.UUID `gorm:"type:uuid"`
}
