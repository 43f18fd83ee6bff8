package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound = errors.New("workout plan not found")
)

// PlanDetail bundles a plan with its ordered workout edges and the
// number of groups it is assigned to, which is what every plan response
// serializes.
type PlanDetail struct {
	Plan        domain.WorkoutPlan
	Workouts    []domain.PlanWorkout
	GroupsCount int64
}

// WorkoutPlanService covers plan creation, scoped reads, workout
// sequencing, and group assignment.
type WorkoutPlanService interface {
	CreatePlan(ctx context.Context, trainerID uint, name, description string) (*PlanDetail, error)
	// ListPlans returns the plans the user may see: a trainer sees the
	// plans they created, a trainee the deduplicated union of plans
	// assigned to their groups.
	ListPlans(ctx context.Context, user *domain.User) ([]PlanDetail, error)
	GetPlan(ctx context.Context, user *domain.User, planID uint) (*PlanDetail, error)
	AddWorkout(ctx context.Context, trainerID, planID, workoutID uint, order int) (*PlanDetail, error)
	AssignToGroup(ctx context.Context, trainerID, planID, groupID uint) (*PlanDetail, error)
}

// workoutPlanService implements the WorkoutPlanService interface.
type workoutPlanService struct {
	planRepo    repository.WorkoutPlanRepository
	workoutRepo repository.WorkoutRepository
	groupRepo   repository.GroupRepository
}

// NewWorkoutPlanService creates a new instance of workoutPlanService.
func NewWorkoutPlanService(
	planRepo repository.WorkoutPlanRepository,
	workoutRepo repository.WorkoutRepository,
	groupRepo repository.GroupRepository,
) WorkoutPlanService {
	return &workoutPlanService{
		planRepo:    planRepo,
		workoutRepo: workoutRepo,
		groupRepo:   groupRepo,
	}
}

// CreatePlan creates an empty plan owned by the trainer.
func (s *workoutPlanService) CreatePlan(ctx context.Context, trainerID uint, name, description string) (*PlanDetail, error) {
	if trainerID == 0 || name == "" {
		return nil, errors.New("trainer ID and plan name are required")
	}

	plan := &domain.WorkoutPlan{
		Name:        name,
		Description: description,
		TrainerID:   trainerID,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return &PlanDetail{Plan: *plan}, nil
}

// ListPlans returns the role-scoped plan listing.
func (s *workoutPlanService) ListPlans(ctx context.Context, user *domain.User) ([]PlanDetail, error) {
	var plans []domain.WorkoutPlan
	var err error
	if user.IsTrainer() {
		plans, err = s.planRepo.ListByTrainerID(ctx, user.ID)
	} else {
		plans, err = s.planRepo.ListForMember(ctx, user.ID)
	}
	if err != nil {
		return nil, err
	}

	details := make([]PlanDetail, 0, len(plans))
	for _, plan := range plans {
		detail, err := s.loadDetail(ctx, plan)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// GetPlan retrieves a single plan. A trainer may view only their own
// plans; a trainee only plans assigned to a group they belong to.
// Absence is reported before ownership.
func (s *workoutPlanService) GetPlan(ctx context.Context, user *domain.User, planID uint) (*PlanDetail, error) {
	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	if user.IsTrainer() && plan.TrainerID != user.ID {
		return nil, ErrAccessDenied
	}
	if user.IsTrainee() {
		assigned, err := s.planRepo.IsAssignedToUserGroups(ctx, planID, user.ID)
		if err != nil {
			return nil, err
		}
		if !assigned {
			return nil, ErrAccessDenied
		}
	}

	return s.loadDetail(ctx, *plan)
}

// AddWorkout appends a workout edge to the plan with the caller-supplied
// order value. The plan and workout are checked independently; the same
// workout may be added again with any order.
func (s *workoutPlanService) AddWorkout(ctx context.Context, trainerID, planID, workoutID uint, order int) (*PlanDetail, error) {
	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.TrainerID != trainerID {
		return nil, ErrAccessDenied
	}

	if _, err := s.workoutRepo.GetByID(ctx, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	if err := s.planRepo.AddWorkout(ctx, planID, workoutID, order); err != nil {
		return nil, err
	}
	return s.loadDetail(ctx, *plan)
}

// AssignToGroup assigns the plan to a group owned by the same trainer.
// Assigning an already-assigned group is a no-op, not an error.
func (s *workoutPlanService) AssignToGroup(ctx context.Context, trainerID, planID, groupID uint) (*PlanDetail, error) {
	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.TrainerID != trainerID {
		return nil, ErrAccessDenied
	}

	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	if group.TrainerID != trainerID {
		return nil, ErrAccessDenied
	}

	if err := s.planRepo.AssignGroup(ctx, planID, groupID); err != nil {
		return nil, err
	}
	return s.loadDetail(ctx, *plan)
}

func (s *workoutPlanService) getPlan(ctx context.Context, planID uint) (*domain.WorkoutPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *workoutPlanService) loadDetail(ctx context.Context, plan domain.WorkoutPlan) (*PlanDetail, error) {
	workouts, err := s.planRepo.ListWorkoutsInOrder(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	groups, err := s.planRepo.CountGroups(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	return &PlanDetail{Plan: plan, Workouts: workouts, GroupsCount: groups}, nil
}
