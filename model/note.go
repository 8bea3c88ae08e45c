package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note is a shared study note. Every authenticated user can read it; only the
// uploader (or an admin) can delete it. A note carries either inline text
// content or an opaque base64-encoded file payload. UploaderName is a
// denormalized snapshot taken at creation time.
type Note struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID       string    `gorm:"not null;index;type:varchar(36)" json:"userId"`
	UploaderName string    `gorm:"not null" json:"uploaderName"`
	Title        string    `gorm:"not null" json:"title"`
	Subject      string    `json:"subject,omitempty"`
	Content      string    `gorm:"type:text" json:"content,omitempty"`
	FileData     string    `gorm:"type:text" json:"fileData,omitempty"` // Base64 encoded file
	FileName     string    `json:"fileName,omitempty"`
	FileType     string    `json:"fileType,omitempty"`
	Date         time.Time `gorm:"autoCreateTime;index" json:"date"`
	Downloads    int       `gorm:"default:0" json:"downloads"`
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
