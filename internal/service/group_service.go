package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"math/rand/v2"
)

// --- Error Definitions ---
var (
	ErrGroupNotFound = errors.New("group not found")
	ErrAlreadyMember = errors.New("user is already a member of this group")
	// ErrAccessDenied is shared by every ownership and membership gate
	// in the service layer; handlers map it to 401.
	ErrAccessDenied = errors.New("access denied")
)

const (
	inviteCodeLength   = 10
	inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// How many fresh codes to try when the unique index rejects one.
	inviteCodeRetries = 5
)

// GroupService covers group creation, joining via invite codes, invite
// regeneration, and member listing.
type GroupService interface {
	CreateGroup(ctx context.Context, trainerID uint, name, description string) (*domain.Group, int64, error)
	JoinGroup(ctx context.Context, userID uint, inviteCode string) (*domain.Group, int64, error)
	RegenerateInvite(ctx context.Context, trainerID, groupID uint) (string, error)
	GetMembers(ctx context.Context, user *domain.User, groupID uint) ([]domain.User, error)
}

// groupService implements the GroupService interface.
type groupService struct {
	groupRepo repository.GroupRepository
}

// NewGroupService creates a new instance of groupService.
func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

// CreateGroup creates a group with a fresh invite code and the creating
// trainer as its first member. Returns the group and its member count.
func (s *groupService) CreateGroup(ctx context.Context, trainerID uint, name, description string) (*domain.Group, int64, error) {
	if trainerID == 0 || name == "" {
		return nil, 0, errors.New("trainer ID and group name are required")
	}

	group := &domain.Group{
		Name:        name,
		Description: description,
		TrainerID:   trainerID,
	}

	// Invite codes are unique across all groups; retry with a fresh
	// code if the index rejects a collision.
	var err error
	for i := 0; i < inviteCodeRetries; i++ {
		group.InviteCode = generateInviteCode()
		err = s.groupRepo.Create(ctx, group)
		if !errors.Is(err, repository.ErrDuplicate) {
			break
		}
	}
	if err != nil {
		return nil, 0, err
	}

	// The trainer was just added as the only member.
	return group, 1, nil
}

// JoinGroup adds the user to the group matching the invite code.
// An unmatched code is Not-Found; joining twice is a Conflict.
func (s *groupService) JoinGroup(ctx context.Context, userID uint, inviteCode string) (*domain.Group, int64, error) {
	if inviteCode == "" {
		return nil, 0, errors.New("invite code is required")
	}

	group, err := s.groupRepo.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, 0, ErrGroupNotFound
		}
		return nil, 0, err
	}

	// The membership edge's unique index turns a concurrent duplicate
	// join into ErrDuplicate, so the race cannot double-add.
	if err := s.groupRepo.AddMember(ctx, group.ID, userID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, 0, ErrAlreadyMember
		}
		return nil, 0, err
	}

	count, err := s.groupRepo.CountMembers(ctx, group.ID)
	if err != nil {
		return nil, 0, err
	}
	return group, count, nil
}

// RegenerateInvite replaces the group's invite code with a fresh one.
// Only the owning trainer may regenerate; the old code stops working
// immediately.
func (s *groupService) RegenerateInvite(ctx context.Context, trainerID, groupID uint) (string, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrGroupNotFound
		}
		return "", err
	}

	if group.TrainerID != trainerID {
		return "", ErrAccessDenied
	}

	for i := 0; i < inviteCodeRetries; i++ {
		code := generateInviteCode()
		if code == group.InviteCode {
			continue
		}
		err = s.groupRepo.UpdateInviteCode(ctx, groupID, code)
		if errors.Is(err, repository.ErrDuplicate) {
			continue
		}
		if err != nil {
			return "", err
		}
		return code, nil
	}
	if err == nil {
		err = errors.New("failed to generate a fresh invite code")
	}
	return "", err
}

// GetMembers lists the group's members. Only the owning trainer or a
// current member may view the list.
func (s *groupService) GetMembers(ctx context.Context, user *domain.User, groupID uint) ([]domain.User, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	if group.TrainerID != user.ID {
		member, err := s.groupRepo.IsMember(ctx, groupID, user.ID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, ErrAccessDenied
		}
	}

	return s.groupRepo.ListMembers(ctx, groupID)
}

// generateInviteCode produces a random 10-character code from the
// uppercase+digit alphabet.
func generateInviteCode() string {
	code := make([]byte, inviteCodeLength)
	for i := range code {
		code[i] = inviteCodeAlphabet[rand.IntN(len(inviteCodeAlphabet))]
	}
	return string(code)
}
