package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin action types recorded in the audit trail
const (
	AdminActionUpdateRole = "update_role"
	AdminActionBanUser    = "ban_user"
	AdminActionUnbanUser  = "unban_user"
	AdminActionDeleteUser = "delete_user"
)

// AdminLog is an append-only audit entry written as a side effect of every
// admin mutation. AdminName is denormalized at write time.
type AdminLog struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	AdminID    string    `gorm:"not null;index;type:varchar(36)" json:"adminId"`
	AdminName  string    `gorm:"not null" json:"adminName"`
	ActionType string    `gorm:"type:varchar(40);not null" json:"actionType"`
	Target     string    `gorm:"not null" json:"target"`
	Timestamp  time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (l *AdminLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
