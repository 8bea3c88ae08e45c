package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a study task owned by a single user. Only the owner can see or
// mutate it.
type Task struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"not null;index;type:varchar(36)" json:"userId"`
	Title     string    `gorm:"not null" json:"title"`
	Subject   string    `json:"subject,omitempty"`
	DueDate   string    `json:"dueDate,omitempty"`
	Priority  string    `gorm:"type:varchar(10);default:'medium'" json:"priority"` // low, medium, high
	Completed bool      `gorm:"default:false" json:"completed"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// IsValidPriority reports whether p is an accepted task priority
func IsValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
