package postgres

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

// postgresProgressRepository implements repository.ProgressRepository using GORM.
type postgresProgressRepository struct {
	db *gorm.DB
}

// NewPostgresProgressRepository creates a new instance of postgresProgressRepository.
func NewPostgresProgressRepository(db *gorm.DB) repository.ProgressRepository {
	return &postgresProgressRepository{db: db}
}

// Create inserts a new progress entry and reloads it with its workout
// so the caller can serialize the embedded workout right away.
func (r *postgresProgressRepository) Create(ctx context.Context, progress *domain.Progress) error {
	if progress.UserID == 0 || progress.WorkoutID == 0 {
		return errors.New("progress user ID and workout ID are required")
	}
	if err := r.db.WithContext(ctx).Omit("Workout").Create(progress).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Workout").First(progress, progress.ID).Error
}

// GetByID retrieves a progress entry with its workout.
func (r *postgresProgressRepository) GetByID(ctx context.Context, id uint) (*domain.Progress, error) {
	var progress domain.Progress
	err := r.db.WithContext(ctx).Preload("Workout").First(&progress, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &progress, nil
}

// ListByUserID retrieves the progress entries logged by a user.
func (r *postgresProgressRepository) ListByUserID(ctx context.Context, userID uint) ([]domain.Progress, error) {
	var entries []domain.Progress
	err := r.db.WithContext(ctx).
		Preload("Workout").
		Where("user_id = ?", userID).
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListForTrainer retrieves the progress entries of Trainee members
// across all groups owned by the trainer. DISTINCT deduplicates entries
// reachable through several groups.
func (r *postgresProgressRepository) ListForTrainer(ctx context.Context, trainerID uint) ([]domain.Progress, error) {
	var entries []domain.Progress
	err := r.db.WithContext(ctx).
		Preload("Workout").
		Distinct("progress.*").
		Joins("JOIN users ON users.id = progress.user_id").
		Joins("JOIN group_members ON group_members.user_id = progress.user_id").
		Joins("JOIN groups ON groups.id = group_members.group_id").
		Where("groups.trainer_id = ? AND users.role = ?", trainerID, domain.RoleTrainee).
		Order("progress.id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
