package repository

import (
	"time"

	"bustrip-backend/internal/database/models"
	apperrors "bustrip-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for organization memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.OrganizationMembership) error {
	if membership.Version == 0 {
		membership.Version = 1
	}
	return r.db.Create(membership).Error
}

// GetByID retrieves a membership by ID
func (r *MembershipRepository) GetByID(id uuid.UUID) (*models.OrganizationMembership, error) {
	var membership models.OrganizationMembership
	err := r.db.First(&membership, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByOrganizationAndUser retrieves the membership of a user in an organization
func (r *MembershipRepository) GetByOrganizationAndUser(orgID, userID uuid.UUID) (*models.OrganizationMembership, error) {
	var membership models.OrganizationMembership
	err := r.db.First(&membership, "organization_id = ? AND user_id = ?", orgID, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByOrganizationID retrieves all memberships of an organization with pagination
func (r *MembershipRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.OrganizationMembership, int64, error) {
	var memberships []models.OrganizationMembership
	var total int64

	// Get total count
	if err := r.db.Model(&models.OrganizationMembership{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Preload("User").Where("organization_id = ?", orgID).
		Order("created_at").Limit(limit).Offset(offset).Find(&memberships).Error
	if err != nil {
		return nil, 0, err
	}

	return memberships, total, nil
}

// GetCreator retrieves the creator membership of an organization
func (r *MembershipRepository) GetCreator(orgID uuid.UUID) (*models.OrganizationMembership, error) {
	var membership models.OrganizationMembership
	err := r.db.First(&membership, "organization_id = ? AND member_type = ?", orgID, models.MemberTypeCreator).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// CountByUserID counts the organizations a user belongs to
func (r *MembershipRepository) CountByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrganizationMembership{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// UpdateMemberType changes the member type if nobody changed the row since it was read
func (r *MembershipRepository) UpdateMemberType(membership *models.OrganizationMembership, memberType models.MemberType) error {
	result := r.db.Model(&models.OrganizationMembership{}).
		Where("id = ? AND version = ?", membership.ID, membership.Version).
		Updates(map[string]interface{}{
			"member_type": memberType,
			"version":     membership.Version + 1,
			"updated_at":  time.Now(),
			"updated_by":  membership.UpdatedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrMembershipConflict
	}

	membership.MemberType = memberType
	membership.Version++
	return nil
}

// Delete removes the membership if nobody changed the row since it was read
func (r *MembershipRepository) Delete(membership *models.OrganizationMembership) error {
	result := r.db.Where("id = ? AND version = ?", membership.ID, membership.Version).
		Delete(&models.OrganizationMembership{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrMembershipConflict
	}
	return nil
}
