package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FocusSession records a completed focus timer run. Sessions are append-only:
// they are created and listed by their owner, never updated or deleted.
type FocusSession struct {
	ID       string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID   string    `gorm:"not null;index;type:varchar(36)" json:"userId"`
	Duration int       `gorm:"not null" json:"duration"` // in minutes
	TaskTag  string    `json:"taskTag,omitempty"`
	Date     time.Time `gorm:"autoCreateTime;index" json:"date"`
}

func (f *FocusSession) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
