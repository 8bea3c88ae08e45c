package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CollabRoom is a topic-scoped study room. Members is an unordered set of
// user ids; the creator is always an initial member and joining is
// idempotent. CreatedByName is a denormalized snapshot of the creator's
// display name.
type CollabRoom struct {
	ID            string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Topic         string         `gorm:"not null" json:"topic"`
	CreatedBy     string         `gorm:"not null;index;type:varchar(36)" json:"createdBy"`
	CreatedByName string         `gorm:"not null" json:"createdByName"`
	Members       pq.StringArray `gorm:"type:text[]" json:"members"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (r *CollabRoom) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// HasMember reports whether userID is in the room's membership set
func (r *CollabRoom) HasMember(userID string) bool {
	for _, m := range r.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// Message is a room chat message, append-only and displayed in ascending
// timestamp order. SenderName is denormalized at send time.
type Message struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RoomID     string    `gorm:"not null;index;type:varchar(36)" json:"roomId"`
	Sender     string    `gorm:"not null;type:varchar(36)" json:"sender"`
	SenderName string    `gorm:"not null" json:"senderName"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Timestamp  time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
