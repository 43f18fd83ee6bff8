package domain

import (
	"time"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleTrainer Role = "Trainer"
	RoleTrainee Role = "Trainee"
)

// AllowedRoles lists every role accepted at signup.
var AllowedRoles = []Role{RoleTrainer, RoleTrainee}

// ValidRole reports whether role is one of the allowed roles.
func ValidRole(role Role) bool {
	for _, r := range AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User represents a user in the system (either a Trainer or a Trainee).
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"` // Never expose this via JSON
	Role         Role      `gorm:"size:20;not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

func (u *User) IsTrainee() bool {
	return u.Role == RoleTrainee
}
