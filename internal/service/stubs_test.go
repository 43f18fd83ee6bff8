package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"sort"
	"time"
)

// In-memory repository stubs shared by the service tests.

// --- User repository stub ---

type stubUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	saved := *user
	r.users[user.ID] = &saved
	return nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			found := *user
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) GetByID(_ context.Context, id uint) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := *user
	return &found, nil
}

func (r *stubUserRepo) delete(id uint) {
	delete(r.users, id)
}

// --- Group repository stub ---

type stubGroupRepo struct {
	groups  map[uint]*domain.Group
	members map[uint][]uint
	users   map[uint]*domain.User
	nextID  uint

	// Number of upcoming Create calls forced to fail with ErrDuplicate,
	// simulating invite code collisions.
	createCollisions int
}

func newStubGroupRepo() *stubGroupRepo {
	return &stubGroupRepo{
		groups:  make(map[uint]*domain.Group),
		members: make(map[uint][]uint),
		users:   make(map[uint]*domain.User),
	}
}

func (r *stubGroupRepo) addUser(user *domain.User) {
	r.users[user.ID] = user
}

func (r *stubGroupRepo) Create(_ context.Context, group *domain.Group) error {
	if r.createCollisions > 0 {
		r.createCollisions--
		return repository.ErrDuplicate
	}
	for _, existing := range r.groups {
		if existing.InviteCode == group.InviteCode {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	group.ID = r.nextID
	group.CreatedAt = time.Now()
	saved := *group
	r.groups[group.ID] = &saved
	r.members[group.ID] = []uint{group.TrainerID}
	return nil
}

func (r *stubGroupRepo) GetByID(_ context.Context, id uint) (*domain.Group, error) {
	group, ok := r.groups[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := *group
	return &found, nil
}

func (r *stubGroupRepo) GetByInviteCode(_ context.Context, code string) (*domain.Group, error) {
	for _, group := range r.groups {
		if group.InviteCode == code {
			found := *group
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubGroupRepo) UpdateInviteCode(_ context.Context, groupID uint, code string) error {
	group, ok := r.groups[groupID]
	if !ok {
		return repository.ErrNotFound
	}
	for id, other := range r.groups {
		if id != groupID && other.InviteCode == code {
			return repository.ErrDuplicate
		}
	}
	group.InviteCode = code
	return nil
}

func (r *stubGroupRepo) AddMember(_ context.Context, groupID, userID uint) error {
	for _, id := range r.members[groupID] {
		if id == userID {
			return repository.ErrDuplicate
		}
	}
	r.members[groupID] = append(r.members[groupID], userID)
	return nil
}

func (r *stubGroupRepo) IsMember(_ context.Context, groupID, userID uint) (bool, error) {
	for _, id := range r.members[groupID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubGroupRepo) ListMembers(_ context.Context, groupID uint) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.members[groupID]))
	for _, id := range r.members[groupID] {
		if user, ok := r.users[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (r *stubGroupRepo) CountMembers(_ context.Context, groupID uint) (int64, error) {
	return int64(len(r.members[groupID])), nil
}

func (r *stubGroupRepo) IsTraineeOfTrainer(_ context.Context, trainerID, userID uint) (bool, error) {
	user, ok := r.users[userID]
	if !ok || user.Role != domain.RoleTrainee {
		return false, nil
	}
	for groupID, group := range r.groups {
		if group.TrainerID != trainerID {
			continue
		}
		for _, id := range r.members[groupID] {
			if id == userID {
				return true, nil
			}
		}
	}
	return false, nil
}

// --- Workout repository stub ---

type stubWorkoutRepo struct {
	workouts []domain.Workout
	nextID   uint
}

func newStubWorkoutRepo() *stubWorkoutRepo {
	return &stubWorkoutRepo{}
}

func (r *stubWorkoutRepo) Create(_ context.Context, workout *domain.Workout) error {
	r.nextID++
	workout.ID = r.nextID
	workout.CreatedAt = time.Now()
	r.workouts = append(r.workouts, *workout)
	return nil
}

func (r *stubWorkoutRepo) GetByID(_ context.Context, id uint) (*domain.Workout, error) {
	for _, workout := range r.workouts {
		if workout.ID == id {
			found := workout
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubWorkoutRepo) ListByTrainerID(_ context.Context, trainerID uint) ([]domain.Workout, error) {
	result := make([]domain.Workout, 0)
	for _, workout := range r.workouts {
		if workout.TrainerID == trainerID {
			result = append(result, workout)
		}
	}
	return result, nil
}

func (r *stubWorkoutRepo) ListAll(_ context.Context) ([]domain.Workout, error) {
	return append([]domain.Workout(nil), r.workouts...), nil
}

// --- Workout plan repository stub ---

type stubPlanRepo struct {
	plans       map[uint]*domain.WorkoutPlan
	edges       []domain.PlanWorkout
	assignments map[uint][]uint // planID -> groupIDs
	nextID      uint
	nextEdgeID  uint

	workoutRepo *stubWorkoutRepo
	groupRepo   *stubGroupRepo
}

func newStubPlanRepo(workoutRepo *stubWorkoutRepo, groupRepo *stubGroupRepo) *stubPlanRepo {
	return &stubPlanRepo{
		plans:       make(map[uint]*domain.WorkoutPlan),
		assignments: make(map[uint][]uint),
		workoutRepo: workoutRepo,
		groupRepo:   groupRepo,
	}
}

func (r *stubPlanRepo) Create(_ context.Context, plan *domain.WorkoutPlan) error {
	r.nextID++
	plan.ID = r.nextID
	plan.CreatedAt = time.Now()
	saved := *plan
	r.plans[plan.ID] = &saved
	return nil
}

func (r *stubPlanRepo) GetByID(_ context.Context, id uint) (*domain.WorkoutPlan, error) {
	plan, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := *plan
	return &found, nil
}

func (r *stubPlanRepo) ListByTrainerID(_ context.Context, trainerID uint) ([]domain.WorkoutPlan, error) {
	result := make([]domain.WorkoutPlan, 0)
	for id := uint(1); id <= r.nextID; id++ {
		if plan, ok := r.plans[id]; ok && plan.TrainerID == trainerID {
			result = append(result, *plan)
		}
	}
	return result, nil
}

func (r *stubPlanRepo) ListForMember(ctx context.Context, userID uint) ([]domain.WorkoutPlan, error) {
	seen := make(map[uint]bool)
	result := make([]domain.WorkoutPlan, 0)
	for id := uint(1); id <= r.nextID; id++ {
		plan, ok := r.plans[id]
		if !ok || seen[id] {
			continue
		}
		assigned, err := r.IsAssignedToUserGroups(ctx, id, userID)
		if err != nil {
			return nil, err
		}
		if assigned {
			seen[id] = true
			result = append(result, *plan)
		}
	}
	return result, nil
}

func (r *stubPlanRepo) AddWorkout(_ context.Context, planID, workoutID uint, order int) error {
	r.nextEdgeID++
	edge := domain.PlanWorkout{
		ID:            r.nextEdgeID,
		WorkoutPlanID: planID,
		WorkoutID:     workoutID,
		Order:         order,
	}
	if workout, err := r.workoutRepo.GetByID(context.Background(), workoutID); err == nil {
		edge.Workout = *workout
	}
	r.edges = append(r.edges, edge)
	return nil
}

func (r *stubPlanRepo) ListWorkoutsInOrder(_ context.Context, planID uint) ([]domain.PlanWorkout, error) {
	result := make([]domain.PlanWorkout, 0)
	for _, edge := range r.edges {
		if edge.WorkoutPlanID == planID {
			result = append(result, edge)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *stubPlanRepo) AssignGroup(_ context.Context, planID, groupID uint) error {
	for _, id := range r.assignments[planID] {
		if id == groupID {
			return nil
		}
	}
	r.assignments[planID] = append(r.assignments[planID], groupID)
	return nil
}

func (r *stubPlanRepo) CountGroups(_ context.Context, planID uint) (int64, error) {
	return int64(len(r.assignments[planID])), nil
}

func (r *stubPlanRepo) IsAssignedToUserGroups(ctx context.Context, planID, userID uint) (bool, error) {
	for _, groupID := range r.assignments[planID] {
		member, err := r.groupRepo.IsMember(ctx, groupID, userID)
		if err != nil {
			return false, err
		}
		if member {
			return true, nil
		}
	}
	return false, nil
}

// --- Progress repository stub ---

type stubProgressRepo struct {
	entries []domain.Progress
	nextID  uint

	workoutRepo *stubWorkoutRepo
	groupRepo   *stubGroupRepo
}

func newStubProgressRepo(workoutRepo *stubWorkoutRepo, groupRepo *stubGroupRepo) *stubProgressRepo {
	return &stubProgressRepo{workoutRepo: workoutRepo, groupRepo: groupRepo}
}

func (r *stubProgressRepo) Create(_ context.Context, progress *domain.Progress) error {
	r.nextID++
	progress.ID = r.nextID
	progress.CreatedAt = time.Now()
	if workout, err := r.workoutRepo.GetByID(context.Background(), progress.WorkoutID); err == nil {
		progress.Workout = *workout
	}
	r.entries = append(r.entries, *progress)
	return nil
}

func (r *stubProgressRepo) GetByID(_ context.Context, id uint) (*domain.Progress, error) {
	for _, entry := range r.entries {
		if entry.ID == id {
			found := entry
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubProgressRepo) ListByUserID(_ context.Context, userID uint) ([]domain.Progress, error) {
	result := make([]domain.Progress, 0)
	for _, entry := range r.entries {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (r *stubProgressRepo) ListForTrainer(ctx context.Context, trainerID uint) ([]domain.Progress, error) {
	result := make([]domain.Progress, 0)
	for _, entry := range r.entries {
		visible, err := r.groupRepo.IsTraineeOfTrainer(ctx, trainerID, entry.UserID)
		if err != nil {
			return nil, err
		}
		if visible {
			result = append(result, entry)
		}
	}
	return result, nil
}
