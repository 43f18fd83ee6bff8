package domain

import (
	"time"
)

// Group represents a set of trainees organized by a single trainer.
// Membership lives in the group_members edge table; the owning trainer
// is added as a member when the group is created.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	InviteCode  string    `gorm:"size:20;uniqueIndex;not null" json:"invite_code"`
	TrainerID   uint      `gorm:"not null;index" json:"trainer_id"` // Owner, fixed at creation
	CreatedAt   time.Time `json:"created_at"`
}

// GroupMember is the membership edge between a group and a user.
// The composite unique index makes a concurrent duplicate join surface
// as a constraint violation instead of a second row.
type GroupMember struct {
	ID      uint `gorm:"primaryKey"`
	GroupID uint `gorm:"not null;uniqueIndex:idx_group_user"`
	UserID  uint `gorm:"not null;uniqueIndex:idx_group_user"`
}
