package repository

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
)

// Error constants for the repository layer
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate record")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
}

// GroupRepository defines the interface for interacting with groups and
// the group_members edge table.
type GroupRepository interface {
	// Create persists the group and adds the owning trainer as the
	// first member, atomically.
	Create(ctx context.Context, group *domain.Group) error
	GetByID(ctx context.Context, id uint) (*domain.Group, error)
	GetByInviteCode(ctx context.Context, code string) (*domain.Group, error)
	UpdateInviteCode(ctx context.Context, groupID uint, code string) error

	AddMember(ctx context.Context, groupID, userID uint) error
	IsMember(ctx context.Context, groupID, userID uint) (bool, error)
	ListMembers(ctx context.Context, groupID uint) ([]domain.User, error)
	CountMembers(ctx context.Context, groupID uint) (int64, error)

	// IsTraineeOfTrainer reports whether userID is a Trainee member of
	// at least one group owned by trainerID.
	IsTraineeOfTrainer(ctx context.Context, trainerID, userID uint) (bool, error)
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	GetByID(ctx context.Context, id uint) (*domain.Workout, error)
	ListByTrainerID(ctx context.Context, trainerID uint) ([]domain.Workout, error)
	ListAll(ctx context.Context) ([]domain.Workout, error)
}

// WorkoutPlanRepository defines the interface for interacting with
// workout plans and their edge tables (plan_workouts, group_workout_plans).
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) error
	GetByID(ctx context.Context, id uint) (*domain.WorkoutPlan, error)
	ListByTrainerID(ctx context.Context, trainerID uint) ([]domain.WorkoutPlan, error)
	// ListForMember returns the deduplicated plans assigned to any
	// group the user is a member of.
	ListForMember(ctx context.Context, userID uint) ([]domain.WorkoutPlan, error)

	// AddWorkout appends a plan↔workout edge with the caller-supplied
	// order; duplicate edges are allowed.
	AddWorkout(ctx context.Context, planID, workoutID uint, order int) error
	// ListWorkoutsInOrder returns edges sorted ascending by order,
	// ties broken by insertion order.
	ListWorkoutsInOrder(ctx context.Context, planID uint) ([]domain.PlanWorkout, error)

	// AssignGroup adds a group↔plan edge; assigning twice is a no-op.
	AssignGroup(ctx context.Context, planID, groupID uint) error
	CountGroups(ctx context.Context, planID uint) (int64, error)
	// IsAssignedToUserGroups reports whether the plan is assigned to
	// at least one group the user is a member of.
	IsAssignedToUserGroups(ctx context.Context, planID, userID uint) (bool, error)
}

// ProgressRepository defines the interface for interacting with progress entries.
type ProgressRepository interface {
	Create(ctx context.Context, progress *domain.Progress) error
	GetByID(ctx context.Context, id uint) (*domain.Progress, error)
	ListByUserID(ctx context.Context, userID uint) ([]domain.Progress, error)
	// ListForTrainer returns the deduplicated progress entries of
	// Trainee members across all groups owned by the trainer.
	ListForTrainer(ctx context.Context, trainerID uint) ([]domain.Progress, error)
}
