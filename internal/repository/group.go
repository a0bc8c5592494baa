package repository

import (
	"time"

	"bustrip-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new group
func (r *GroupRepository) Create(group *models.Group) error {
	return r.db.Create(group).Error
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByName retrieves a group by name within an organization
func (r *GroupRepository) GetByName(orgID uuid.UUID, name string) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "organization_id = ? AND name = ?", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByOrganizationID retrieves all groups for an organization with pagination
func (r *GroupRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Group, int64, error) {
	var groups []models.Group
	var total int64

	// Get total count
	if err := r.db.Model(&models.Group{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Where("organization_id = ?", orgID).Order("name").Limit(limit).Offset(offset).Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// Update applies the given column updates to a group
func (r *GroupRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Group{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a group
func (r *GroupRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Group{}, "id = ?", id).Error
}

// CountActiveCreatedFor counts active groups of an organization created for a user
func (r *GroupRepository) CountActiveCreatedFor(orgID, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Group{}).
		Where("organization_id = ? AND created_for_user_id = ? AND is_active = ?", orgID, userID, true).
		Count(&count).Error
	return count, err
}

// ReassignCreatedFor moves every group of an organization created for one user to another
func (r *GroupRepository) ReassignCreatedFor(orgID, fromUserID, toUserID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Group{}).
		Where("organization_id = ? AND created_for_user_id = ?", orgID, fromUserID).
		Updates(map[string]interface{}{"created_for_user_id": toUserID, "updated_at": time.Now()})
	return result.RowsAffected, result.Error
}
