package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrainerTraineeLifecycle walks a full coaching flow over the
// in-memory repositories: the trainer builds a workout, group, and
// plan, a trainee joins and logs progress, and the trainer reviews it.
func TestTrainerTraineeLifecycle(t *testing.T) {
	ctx := context.Background()

	userRepo := newStubUserRepo()
	groupRepo := newStubGroupRepo()
	workoutRepo := newStubWorkoutRepo()
	planRepo := newStubPlanRepo(workoutRepo, groupRepo)
	progressRepo := newStubProgressRepo(workoutRepo, groupRepo)

	authSvc := NewAuthService(userRepo, "test-secret", 0)
	groupSvc := NewGroupService(groupRepo)
	workoutSvc := NewWorkoutService(workoutRepo)
	planSvc := NewWorkoutPlanService(planRepo, workoutRepo, groupRepo)
	progressSvc := NewProgressService(progressRepo, workoutRepo, groupRepo)

	// Trainer signs up and in.
	trainer, err := authSvc.Register(ctx, "coach", "s3cret", domain.RoleTrainer)
	require.NoError(t, err)
	_, trainer, err = authSvc.Login(ctx, "coach", "s3cret")
	require.NoError(t, err)
	groupRepo.addUser(trainer)

	// Trainer creates a workout and a group.
	workout, err := workoutSvc.CreateWorkout(ctx, trainer.ID, "Push Day", "Push-ups", 30, "Strength", "")
	require.NoError(t, err)
	group, _, err := groupSvc.CreateGroup(ctx, trainer.ID, "A", "")
	require.NoError(t, err)

	// Trainee signs up, signs in, and joins with the invite code.
	trainee, err := authSvc.Register(ctx, "runner", "pa55word", domain.RoleTrainee)
	require.NoError(t, err)
	_, trainee, err = authSvc.Login(ctx, "runner", "pa55word")
	require.NoError(t, err)
	groupRepo.addUser(trainee)

	_, count, err := groupSvc.JoinGroup(ctx, trainee.ID, group.InviteCode)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// A second join with the same code conflicts and keeps the count.
	_, _, err = groupSvc.JoinGroup(ctx, trainee.ID, group.InviteCode)
	require.ErrorIs(t, err, ErrAlreadyMember)
	count, err = groupRepo.CountMembers(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Trainer builds the plan and assigns it to the group.
	plan, err := planSvc.CreatePlan(ctx, trainer.ID, "P1", "")
	require.NoError(t, err)
	_, err = planSvc.AddWorkout(ctx, trainer.ID, plan.Plan.ID, workout.ID, 1)
	require.NoError(t, err)
	_, err = planSvc.AssignToGroup(ctx, trainer.ID, plan.Plan.ID, group.ID)
	require.NoError(t, err)

	// The trainee now sees exactly that plan.
	visible, err := planSvc.ListPlans(ctx, trainee)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "P1", visible[0].Plan.Name)
	require.Len(t, visible[0].Workouts, 1)
	assert.Equal(t, workout.ID, visible[0].Workouts[0].WorkoutID)

	// The trainee logs progress; the trainer sees exactly that entry.
	entry, err := progressSvc.LogProgress(ctx, trainee.ID, workout.ID, 10.5, nil, "")
	require.NoError(t, err)

	reviewed, err := progressSvc.ListProgress(ctx, trainer)
	require.NoError(t, err)
	require.Len(t, reviewed, 1)
	assert.Equal(t, entry.ID, reviewed[0].ID)
	assert.Equal(t, 10.5, reviewed[0].Value)
}
