package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MentorRole is the role of a mentor chat entry
type MentorRole string

const (
	MentorRoleUser      MentorRole = "user"
	MentorRoleAssistant MentorRole = "assistant"
)

// MentorChat is one entry of an AI-mentor conversation. Entries are
// append-only; a session's history is the ordered sequence of its entries.
// Metadata holds provider bookkeeping (model used, latency) and never
// surfaces in API responses.
type MentorChat struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string         `gorm:"not null;index:idx_mentor_session;type:varchar(36)" json:"userId"`
	SessionID string         `gorm:"not null;index:idx_mentor_session;type:varchar(64)" json:"sessionId"`
	Role      MentorRole     `gorm:"type:varchar(20);not null" json:"role"` // user, assistant
	Message   string         `gorm:"type:text;not null" json:"message"`
	Timestamp time.Time      `gorm:"autoCreateTime;index" json:"timestamp"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"-"`
}

func (m *MentorChat) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
