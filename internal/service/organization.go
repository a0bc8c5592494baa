package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bustrip-backend/internal/database/models"
	apperrors "bustrip-backend/internal/errors"
	"bustrip-backend/internal/logger"
	"bustrip-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultGroupName is the group every bootstrapped organization starts with
const DefaultGroupName = "General"

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	ShortName string `json:"short_name,omitempty" validate:"max=20"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	ShortName *string `json:"short_name,omitempty" validate:"omitempty,max=20"`
}

// DeactivateOrganizationRequest represents the request to deactivate an organization
type DeactivateOrganizationRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	ShortName          string    `json:"short_name"`
	IsActive           bool      `json:"is_active"`
	DeactivationReason string    `json:"deactivation_reason,omitempty"`
	CreatedByUserID    uuid.UUID `json:"created_by_user_id"`
	CreatedAt          string    `json:"created_at"`
	UpdatedAt          string    `json:"updated_at"`
}

// OrganizationListResponse represents a paginated list of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repos     *repository.Repositories
	tx        repository.TxManager
	auth      Authorizer
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repos *repository.Repositories, tx repository.TxManager, auth Authorizer, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repos:     repos,
		tx:        tx,
		auth:      auth,
		validator: validator,
	}
}

// provisionOrganization writes an organization, its permission rows, the creator
// membership and optionally a default group. It must run inside a transaction.
func provisionOrganization(repos *repository.Repositories, auth Authorizer, org *models.Organization, defaultGroup string) error {
	if err := repos.Organizations.Create(org); err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	if err := repos.Permissions.CreateBatch(auth.DefaultPermissions(org.ID, org.CreatedBy)); err != nil {
		return fmt.Errorf("failed to create permissions: %w", err)
	}

	if defaultGroup != "" {
		group := &models.Group{
			BaseModel:        models.BaseModel{CreatedBy: org.CreatedBy, UpdatedBy: org.CreatedBy},
			OrganizationID:   org.ID,
			Name:             defaultGroup,
			IsActive:         true,
			CreatedForUserID: org.CreatedByUserID,
		}
		if err := repos.Groups.Create(group); err != nil {
			return fmt.Errorf("failed to create default group: %w", err)
		}
	}

	membership := &models.OrganizationMembership{
		BaseModel:      models.BaseModel{CreatedBy: org.CreatedBy, UpdatedBy: org.CreatedBy},
		OrganizationID: org.ID,
		UserID:         org.CreatedByUserID,
		MemberType:     models.MemberTypeCreator,
		Version:        1,
	}
	if err := repos.Memberships.Create(membership); err != nil {
		return fmt.Errorf("failed to create creator membership: %w", err)
	}
	return nil
}

// Create creates a new organization with the actor as creator
func (s *OrganizationService) Create(ctx context.Context, actor Actor, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if actor.UserID == uuid.Nil {
		return nil, apperrors.ErrMissingActor
	}

	existing, err := s.repos.Organizations.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	org := &models.Organization{
		BaseModel:       models.BaseModel{CreatedBy: actor.audit(), UpdatedBy: actor.audit()},
		Name:            req.Name,
		ShortName:       req.ShortName,
		IsActive:        true,
		CreatedByUserID: actor.UserID,
	}

	err = s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		return provisionOrganization(repos, s.auth, org, "")
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("organization_id", org.ID.String()).Info("organization created")
	return toOrganizationResponse(org), nil
}

// GetByID retrieves an organization the actor belongs to
func (s *OrganizationService) GetByID(actor Actor, id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.auth.RequireMembership(actor, id); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// ListForUser lists the organizations of the actor
func (s *OrganizationService) ListForUser(actor Actor, page, pageSize int) (*OrganizationListResponse, error) {
	if actor.UserID == uuid.Nil {
		return nil, apperrors.ErrMissingActor
	}
	limit, offset, page, pageSize := normalizePagination(page, pageSize)

	orgs, total, err := s.repos.Organizations.GetByUserID(actor.UserID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		responses[i] = *toOrganizationResponse(&orgs[i])
	}

	return &OrganizationListResponse{
		Organizations: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Update renames an organization
func (s *OrganizationService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	org, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.auth.Authorize(actor, id, CapManageOrganization); err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != org.Name {
		existing, err := s.repos.Organizations.GetByName(*req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing organization by name: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrOrganizationExists
		}
		org.Name = *req.Name
	}
	if req.ShortName != nil {
		org.ShortName = *req.ShortName
	}

	return s.save(ctx, actor, org)
}

// Deactivate suspends an organization. Deactivated organizations accept no new trips.
func (s *OrganizationService) Deactivate(ctx context.Context, actor Actor, id uuid.UUID, req *DeactivateOrganizationRequest) (*OrganizationResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	org, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.auth.Authorize(actor, id, CapManageOrganization); err != nil {
		return nil, err
	}

	org.IsActive = false
	org.DeactivationReason = req.Reason
	return s.save(ctx, actor, org)
}

// Reactivate lifts a deactivation
func (s *OrganizationService) Reactivate(ctx context.Context, actor Actor, id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.auth.Authorize(actor, id, CapManageOrganization); err != nil {
		return nil, err
	}

	org.IsActive = true
	org.DeactivationReason = ""
	return s.save(ctx, actor, org)
}

// Delete removes an organization with everything it owns. Only the creator may do this.
func (s *OrganizationService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.load(id); err != nil {
		return err
	}
	membership, err := s.auth.RequireMembership(actor, id)
	if err != nil {
		return err
	}
	if membership != nil && membership.MemberType != models.MemberTypeCreator {
		return fmt.Errorf("%w: only the creator can delete the organization", apperrors.ErrNotPermitted)
	}

	if err := s.repos.Organizations.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	logger.WithContext(ctx).WithField("organization_id", id.String()).Info("organization deleted")
	return nil
}

func (s *OrganizationService) save(ctx context.Context, actor Actor, org *models.Organization) (*OrganizationResponse, error) {
	org.UpdatedBy = actor.audit()
	org.UpdatedAt = time.Now()
	if err := s.repos.Organizations.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	logger.WithContext(ctx).WithField("organization_id", org.ID.String()).Debug("organization updated")
	return toOrganizationResponse(org), nil
}

func (s *OrganizationService) load(id uuid.UUID) (*models.Organization, error) {
	org, err := s.repos.Organizations.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

func toOrganizationResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:                 org.ID,
		Name:               org.Name,
		ShortName:          org.ShortName,
		IsActive:           org.IsActive,
		DeactivationReason: org.DeactivationReason,
		CreatedByUserID:    org.CreatedByUserID,
		CreatedAt:          org.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          org.UpdatedAt.Format(time.RFC3339),
	}
}
