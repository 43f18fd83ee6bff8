package domain

import (
	"time"
)

// WorkoutPlan represents an ordered sequence of workouts a trainer
// assigns to groups. Workouts and group assignments live in the
// plan_workouts and group_workout_plans edge tables.
type WorkoutPlan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	TrainerID   uint      `gorm:"not null;index" json:"trainer_id"` // Owner, fixed at creation
	CreatedAt   time.Time `json:"created_at"`
}

// PlanWorkout is the plan↔workout edge. Order is caller-supplied and
// never renumbered; duplicate workouts and duplicate order values are
// allowed, so the edge keeps its own serial id. That id doubles as the
// stable tie-break when listing a plan's workouts in order.
type PlanWorkout struct {
	ID            uint    `gorm:"primaryKey"`
	WorkoutPlanID uint    `gorm:"not null;index"`
	WorkoutID     uint    `gorm:"not null"`
	Order         int     `gorm:"column:sort_order;not null"`
	Workout       Workout `gorm:"foreignKey:WorkoutID"`
}

// TableName keeps the edge table name explicit.
func (PlanWorkout) TableName() string {
	return "plan_workouts"
}

// GroupPlan is the group↔plan assignment edge. Assignment is
// idempotent; the composite unique index guards against a duplicate
// edge slipping in between check and insert.
type GroupPlan struct {
	ID            uint `gorm:"primaryKey"`
	GroupID       uint `gorm:"not null;uniqueIndex:idx_group_plan"`
	WorkoutPlanID uint `gorm:"not null;uniqueIndex:idx_group_plan"`
}

func (GroupPlan) TableName() string {
	return "group_workout_plans"
}
