package repository

import (
	"bustrip-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PermissionRepository handles database operations for organization permissions
type PermissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a new permission repository
func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// CreateBatch creates the permission rows of an organization
func (r *PermissionRepository) CreateBatch(perms []models.OrganizationPermissions) error {
	if len(perms) == 0 {
		return nil
	}
	return r.db.Create(&perms).Error
}

// GetByOrganizationAndType retrieves the permission row of a member type
func (r *PermissionRepository) GetByOrganizationAndType(orgID uuid.UUID, memberType models.MemberType) (*models.OrganizationPermissions, error) {
	var perms models.OrganizationPermissions
	err := r.db.First(&perms, "organization_id = ? AND member_type = ?", orgID, memberType).Error
	if err != nil {
		return nil, err
	}
	return &perms, nil
}

// GetByOrganizationID retrieves every permission row of an organization
func (r *PermissionRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.OrganizationPermissions, error) {
	var perms []models.OrganizationPermissions
	err := r.db.Where("organization_id = ?", orgID).Order("member_type").Find(&perms).Error
	if err != nil {
		return nil, err
	}
	return perms, nil
}

// Update updates a permission row
func (r *PermissionRepository) Update(perms *models.OrganizationPermissions) error {
	return r.db.Save(perms).Error
}
