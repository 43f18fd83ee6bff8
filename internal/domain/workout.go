package domain

import (
	"time"
)

// Workout represents a single workout definition created by a trainer.
type Workout struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Exercise    string    `gorm:"size:100;not null" json:"exercise"`
	Duration    int       `gorm:"not null" json:"duration"` // Duration in minutes
	Type        string    `gorm:"size:50;not null" json:"type"`
	Description string    `gorm:"size:500" json:"description"`
	TrainerID   uint      `gorm:"not null;index" json:"trainer_id"` // Owner, fixed at creation
	CreatedAt   time.Time `json:"created_at"`
}
