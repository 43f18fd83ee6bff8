package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"time"
)

// --- Error Definitions ---
var (
	ErrProgressNotFound = errors.New("progress not found")
)

// ProgressService covers progress logging and scoped reads.
type ProgressService interface {
	// LogProgress records a progress entry for the trainee. A nil date
	// defaults to the current date.
	LogProgress(ctx context.Context, userID, workoutID uint, value float64, date *time.Time, notes string) (*domain.Progress, error)
	// ListProgress returns the entries the user may see: a trainee
	// sees exactly their own, a trainer the deduplicated union of
	// entries from trainees across all groups they own.
	ListProgress(ctx context.Context, user *domain.User) ([]domain.Progress, error)
	GetProgress(ctx context.Context, user *domain.User, progressID uint) (*domain.Progress, error)
	ListOwnProgress(ctx context.Context, userID uint) ([]domain.Progress, error)
}

// progressService implements the ProgressService interface.
type progressService struct {
	progressRepo repository.ProgressRepository
	workoutRepo  repository.WorkoutRepository
	groupRepo    repository.GroupRepository
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(
	progressRepo repository.ProgressRepository,
	workoutRepo repository.WorkoutRepository,
	groupRepo repository.GroupRepository,
) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		workoutRepo:  workoutRepo,
		groupRepo:    groupRepo,
	}
}

// LogProgress records a progress entry against an existing workout.
func (s *progressService) LogProgress(ctx context.Context, userID, workoutID uint, value float64, date *time.Time, notes string) (*domain.Progress, error) {
	if userID == 0 || workoutID == 0 {
		return nil, errors.New("user ID and workout ID are required")
	}

	if _, err := s.workoutRepo.GetByID(ctx, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	entryDate := time.Now().UTC().Truncate(24 * time.Hour)
	if date != nil {
		entryDate = *date
	}

	progress := &domain.Progress{
		UserID:    userID,
		WorkoutID: workoutID,
		Value:     value,
		Date:      entryDate,
		Notes:     notes,
	}
	if err := s.progressRepo.Create(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// ListProgress returns the role-scoped progress listing. A trainer who
// owns no groups with trainee members gets an empty list, not an error.
func (s *progressService) ListProgress(ctx context.Context, user *domain.User) ([]domain.Progress, error) {
	if user.IsTrainer() {
		return s.progressRepo.ListForTrainer(ctx, user.ID)
	}
	return s.progressRepo.ListByUserID(ctx, user.ID)
}

// GetProgress retrieves a single entry. A trainee may view only their
// own entries; a trainer only entries of trainees who are members of a
// group the trainer owns. Absence is reported before ownership.
func (s *progressService) GetProgress(ctx context.Context, user *domain.User, progressID uint) (*domain.Progress, error) {
	progress, err := s.progressRepo.GetByID(ctx, progressID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}

	if user.IsTrainee() && progress.UserID != user.ID {
		return nil, ErrAccessDenied
	}
	if user.IsTrainer() {
		ok, err := s.groupRepo.IsTraineeOfTrainer(ctx, user.ID, progress.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrAccessDenied
		}
	}

	return progress, nil
}

// ListOwnProgress returns the caller's own entries regardless of role.
func (s *progressService) ListOwnProgress(ctx context.Context, userID uint) ([]domain.Progress, error) {
	return s.progressRepo.ListByUserID(ctx, userID)
}
