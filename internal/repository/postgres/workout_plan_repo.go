package postgres

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postgresWorkoutPlanRepository implements repository.WorkoutPlanRepository using GORM.
type postgresWorkoutPlanRepository struct {
	db *gorm.DB
}

// NewPostgresWorkoutPlanRepository creates a new instance of postgresWorkoutPlanRepository.
func NewPostgresWorkoutPlanRepository(db *gorm.DB) repository.WorkoutPlanRepository {
	return &postgresWorkoutPlanRepository{db: db}
}

// Create inserts a new workout plan.
func (r *postgresWorkoutPlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) error {
	if plan.Name == "" || plan.TrainerID == 0 {
		return errors.New("plan name and trainer ID are required")
	}
	return r.db.WithContext(ctx).Create(plan).Error
}

// GetByID retrieves a workout plan by its primary key.
func (r *postgresWorkoutPlanRepository) GetByID(ctx context.Context, id uint) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	err := r.db.WithContext(ctx).First(&plan, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// ListByTrainerID retrieves the plans created by a specific trainer.
func (r *postgresWorkoutPlanRepository) ListByTrainerID(ctx context.Context, trainerID uint) ([]domain.WorkoutPlan, error) {
	var plans []domain.WorkoutPlan
	err := r.db.WithContext(ctx).
		Where("trainer_id = ?", trainerID).
		Order("id").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// ListForMember retrieves the plans assigned to any group the user is a
// member of. DISTINCT folds plans reachable through several groups into
// one row.
func (r *postgresWorkoutPlanRepository) ListForMember(ctx context.Context, userID uint) ([]domain.WorkoutPlan, error) {
	var plans []domain.WorkoutPlan
	err := r.db.WithContext(ctx).
		Distinct("workout_plans.*").
		Joins("JOIN group_workout_plans ON group_workout_plans.workout_plan_id = workout_plans.id").
		Joins("JOIN group_members ON group_members.group_id = group_workout_plans.group_id").
		Where("group_members.user_id = ?", userID).
		Order("workout_plans.id").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// AddWorkout appends a plan↔workout edge. The same workout may appear
// several times with the same or different order values; no
// deduplication happens here.
func (r *postgresWorkoutPlanRepository) AddWorkout(ctx context.Context, planID, workoutID uint, order int) error {
	edge := domain.PlanWorkout{
		WorkoutPlanID: planID,
		WorkoutID:     workoutID,
		Order:         order,
	}
	return r.db.WithContext(ctx).Create(&edge).Error
}

// ListWorkoutsInOrder retrieves the plan's edges sorted ascending by
// order value; the serial edge id breaks ties in insertion order.
func (r *postgresWorkoutPlanRepository) ListWorkoutsInOrder(ctx context.Context, planID uint) ([]domain.PlanWorkout, error) {
	var edges []domain.PlanWorkout
	err := r.db.WithContext(ctx).
		Preload("Workout").
		Where("workout_plan_id = ?", planID).
		Order("sort_order, id").
		Find(&edges).Error
	if err != nil {
		return nil, err
	}
	return edges, nil
}

// AssignGroup adds a group↔plan edge. ON CONFLICT DO NOTHING makes the
// operation idempotent even under concurrent assigns.
func (r *postgresWorkoutPlanRepository) AssignGroup(ctx context.Context, planID, groupID uint) error {
	edge := domain.GroupPlan{GroupID: groupID, WorkoutPlanID: planID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error
}

// CountGroups returns the number of groups the plan is assigned to.
func (r *postgresWorkoutPlanRepository) CountGroups(ctx context.Context, planID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.GroupPlan{}).
		Where("workout_plan_id = ?", planID).
		Count(&count).Error
	return count, err
}

// IsAssignedToUserGroups reports whether the plan is assigned to at
// least one group the user belongs to.
func (r *postgresWorkoutPlanRepository) IsAssignedToUserGroups(ctx context.Context, planID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.GroupPlan{}).
		Joins("JOIN group_members ON group_members.group_id = group_workout_plans.group_id").
		Where("group_workout_plans.workout_plan_id = ? AND group_members.user_id = ?", planID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
