package repository

import (
	"time"

	"bustrip-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationRepository handles database operations for organization invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(invitation *models.OrganizationInvitation) error {
	return r.db.Create(invitation).Error
}

// GetByID retrieves an invitation by ID
func (r *InvitationRepository) GetByID(id uuid.UUID) (*models.OrganizationInvitation, error) {
	var invitation models.OrganizationInvitation
	err := r.db.First(&invitation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByToken retrieves an invitation by its token
func (r *InvitationRepository) GetByToken(token string) (*models.OrganizationInvitation, error) {
	var invitation models.OrganizationInvitation
	err := r.db.First(&invitation, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetPendingByEmail retrieves the pending invitation of an email in an organization
func (r *InvitationRepository) GetPendingByEmail(orgID uuid.UUID, email string) (*models.OrganizationInvitation, error) {
	var invitation models.OrganizationInvitation
	err := r.db.First(&invitation, "organization_id = ? AND email = ? AND status = ?",
		orgID, email, models.InvitationStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// UpdateStatus sets the status of an invitation
func (r *InvitationRepository) UpdateStatus(id uuid.UUID, status models.InvitationStatus, acceptedAt *time.Time) error {
	return r.db.Model(&models.OrganizationInvitation{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "accepted_at": acceptedAt}).Error
}
