package groups

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/joefazee/wagerlog/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new group repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// Create inserts the group and its owner's membership in one transaction
func (r *repository) Create(ctx context.Context, group *models.Group) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(group).Error; err != nil {
			return err
		}
		owner := &models.GroupMember{GroupID: group.ID, UserID: group.OwnerID}
		return tx.Omit(clause.Associations).Create(owner).Error
	})
}

// InviteCodeExists reports whether any group already uses code
func (r *repository) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Group{}).Where("invite_code = ?", code).Count(&count).Error
	return count > 0, err
}

// GetByID retrieves a group by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	var group models.Group
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByInviteCode retrieves a group by its invite code
func (r *repository) GetByInviteCode(ctx context.Context, code string) (*models.Group, error) {
	var group models.Group
	if err := r.db.WithContext(ctx).Where("invite_code = ?", code).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

type groupRow struct {
	ID          uuid.UUID
	Name        string
	Description *string
	OwnerID     uuid.UUID
	InviteCode  string
	CreatedAt   time.Time
	MemberCount int64
}

// ListForUser returns the groups userID belongs to, newest first
func (r *repository) ListForUser(ctx context.Context, userID uuid.UUID) ([]GroupSummary, error) {
	var rows []groupRow
	err := r.db.WithContext(ctx).
		Table("groups").
		Select("groups.id, groups.name, groups.description, groups.owner_id, groups.invite_code, groups.created_at, "+
			"(SELECT COUNT(*) FROM group_members gm WHERE gm.group_id = groups.id) AS member_count").
		Joins("JOIN group_members ON group_members.group_id = groups.id AND group_members.user_id = ?", userID).
		Order("groups.created_at DESC").
		Order("groups.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]GroupSummary, len(rows))
	for i, row := range rows {
		summaries[i] = GroupSummary{
			Group: models.Group{
				ID:          row.ID,
				Name:        row.Name,
				Description: row.Description,
				OwnerID:     row.OwnerID,
				InviteCode:  row.InviteCode,
				CreatedAt:   row.CreatedAt,
			},
			MemberCount: row.MemberCount,
		}
	}
	return summaries, nil
}

// GetMember retrieves one membership
func (r *repository) GetMember(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupMember, error) {
	var member models.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembers returns the roster ordered by join time, then user ID
func (r *repository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Order("user_id ASC").
		Find(&members).Error
	return members, err
}

// CountMembers returns the roster size
func (r *repository) CountMembers(ctx context.Context, groupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.GroupMember{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// AddMember inserts a membership
func (r *repository) AddMember(ctx context.Context, member *models.GroupMember) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(member).Error
}

// RemoveMember deletes a membership
func (r *repository) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.GroupMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a group and every membership
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Group{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
