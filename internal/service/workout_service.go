package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
)

// WorkoutService covers workout creation and role-scoped reads.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, trainerID uint, name, exercise string, duration int, workoutType, description string) (*domain.Workout, error)
	// ListWorkouts returns the workouts the user may see: a trainer
	// sees only their own, a trainee sees all.
	ListWorkouts(ctx context.Context, user *domain.User) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, id uint) (*domain.Workout, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

// CreateWorkout creates a workout owned by the trainer.
func (s *workoutService) CreateWorkout(ctx context.Context, trainerID uint, name, exercise string, duration int, workoutType, description string) (*domain.Workout, error) {
	if trainerID == 0 || name == "" || exercise == "" || workoutType == "" {
		return nil, errors.New("trainer ID, name, exercise, and type are required")
	}
	if duration <= 0 {
		return nil, errors.New("duration must be a positive number of minutes")
	}

	workout := &domain.Workout{
		Name:        name,
		Exercise:    exercise,
		Duration:    duration,
		Type:        workoutType,
		Description: description,
		TrainerID:   trainerID,
	}
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// ListWorkouts returns the role-scoped workout listing.
func (s *workoutService) ListWorkouts(ctx context.Context, user *domain.User) ([]domain.Workout, error) {
	if user.IsTrainer() {
		return s.workoutRepo.ListByTrainerID(ctx, user.ID)
	}
	return s.workoutRepo.ListAll(ctx)
}

// GetWorkout retrieves a single workout. Any authenticated user may
// view any workout, so there is no ownership gate here.
func (s *workoutService) GetWorkout(ctx context.Context, id uint) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}
