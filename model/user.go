package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User represents a registered user in the system
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // Never expose password in JSON
	Role         string    `gorm:"type:varchar(20);default:'student'" json:"role"` // student, admin
	JoinDate     time.Time `gorm:"autoCreateTime" json:"joinDate"`
	LastActive   time.Time `gorm:"autoCreateTime" json:"lastActive"`
	Banned       bool      `gorm:"default:false" json:"banned"`
}

// BeforeCreate mints an opaque id for the user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// IsAdmin returns true if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsValidRole reports whether role is one of the assignable roles
func IsValidRole(role string) bool {
	return role == RoleStudent || role == RoleAdmin
}
