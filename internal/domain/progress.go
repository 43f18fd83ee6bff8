package domain

import (
	"time"
)

// Progress represents a single progress entry a trainee logged against
// a workout. The logging trainee owns the entry.
type Progress struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	WorkoutID uint      `gorm:"not null;index" json:"workout_id"`
	Value     float64   `gorm:"not null" json:"value"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Notes     string    `gorm:"size:500" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	Workout   Workout   `gorm:"foreignKey:WorkoutID" json:"workout"`
}

// TableName overrides GORM's pluralization ("progresses").
func (Progress) TableName() string {
	return "progress"
}
