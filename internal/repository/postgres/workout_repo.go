package postgres

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

// postgresWorkoutRepository implements repository.WorkoutRepository using GORM.
type postgresWorkoutRepository struct {
	db *gorm.DB
}

// NewPostgresWorkoutRepository creates a new instance of postgresWorkoutRepository.
func NewPostgresWorkoutRepository(db *gorm.DB) repository.WorkoutRepository {
	return &postgresWorkoutRepository{db: db}
}

// Create inserts a new workout.
func (r *postgresWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	if workout.Name == "" || workout.Exercise == "" || workout.Type == "" || workout.TrainerID == 0 {
		return errors.New("workout name, exercise, type, and trainer ID are required")
	}
	return r.db.WithContext(ctx).Create(workout).Error
}

// GetByID retrieves a workout by its primary key.
func (r *postgresWorkoutRepository) GetByID(ctx context.Context, id uint) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.db.WithContext(ctx).First(&workout, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// ListByTrainerID retrieves the workouts created by a specific trainer.
func (r *postgresWorkoutRepository) ListByTrainerID(ctx context.Context, trainerID uint) ([]domain.Workout, error) {
	var workouts []domain.Workout
	err := r.db.WithContext(ctx).
		Where("trainer_id = ?", trainerID).
		Order("id").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// ListAll retrieves every workout.
func (r *postgresWorkoutRepository) ListAll(ctx context.Context) ([]domain.Workout, error) {
	var workouts []domain.Workout
	err := r.db.WithContext(ctx).Order("id").Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}
