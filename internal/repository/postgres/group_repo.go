package postgres

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

// postgresGroupRepository implements repository.GroupRepository using GORM.
type postgresGroupRepository struct {
	db *gorm.DB
}

// NewPostgresGroupRepository creates a new instance of postgresGroupRepository.
func NewPostgresGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &postgresGroupRepository{db: db}
}

// Create persists the group and its first membership edge (the owning
// trainer) in one transaction. A duplicate invite code is reported as
// repository.ErrDuplicate so the caller can regenerate and retry.
func (r *postgresGroupRepository) Create(ctx context.Context, group *domain.Group) error {
	if group.Name == "" || group.InviteCode == "" || group.TrainerID == 0 {
		return errors.New("group name, invite code, and trainer ID are required")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		member := domain.GroupMember{GroupID: group.ID, UserID: group.TrainerID}
		return tx.Create(&member).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByID retrieves a group by its primary key.
func (r *postgresGroupRepository) GetByID(ctx context.Context, id uint) (*domain.Group, error) {
	var group domain.Group
	err := r.db.WithContext(ctx).First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// GetByInviteCode retrieves a group by its current invite code.
func (r *postgresGroupRepository) GetByInviteCode(ctx context.Context, code string) (*domain.Group, error) {
	var group domain.Group
	err := r.db.WithContext(ctx).Where("invite_code = ?", code).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// UpdateInviteCode replaces the group's invite code. The old code stops
// matching immediately since lookups go through GetByInviteCode.
func (r *postgresGroupRepository) UpdateInviteCode(ctx context.Context, groupID uint, code string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Group{}).
		Where("id = ?", groupID).
		Update("invite_code", code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicate
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AddMember inserts a membership edge. A duplicate membership is
// reported as repository.ErrDuplicate via the composite unique index.
func (r *postgresGroupRepository) AddMember(ctx context.Context, groupID, userID uint) error {
	member := domain.GroupMember{GroupID: groupID, UserID: userID}
	err := r.db.WithContext(ctx).Create(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// IsMember reports whether the user has a membership edge in the group.
func (r *postgresGroupRepository) IsMember(ctx context.Context, groupID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListMembers retrieves the users who are members of the group.
func (r *postgresGroupRepository) ListMembers(ctx context.Context, groupID uint) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Joins("JOIN group_members ON group_members.user_id = users.id").
		Where("group_members.group_id = ?", groupID).
		Order("group_members.id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// CountMembers returns the number of members in the group.
func (r *postgresGroupRepository) CountMembers(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.GroupMember{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count, err
}

// IsTraineeOfTrainer reports whether the user is a Trainee member of at
// least one group owned by the trainer.
func (r *postgresGroupRepository) IsTraineeOfTrainer(ctx context.Context, trainerID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.GroupMember{}).
		Joins("JOIN groups ON groups.id = group_members.group_id").
		Joins("JOIN users ON users.id = group_members.user_id").
		Where("groups.trainer_id = ? AND group_members.user_id = ? AND users.role = ?",
			trainerID, userID, domain.RoleTrainee).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
