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

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name             string     `json:"name" validate:"required,min=1,max=100"`
	Description      string     `json:"description,omitempty"`
	CreatedForUserID *uuid.UUID `json:"created_for_user_id,omitempty"`
}

// UpdateGroupRequest represents the request to update a group
type UpdateGroupRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	ID               uuid.UUID `json:"id"`
	OrganizationID   uuid.UUID `json:"organization_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	IsActive         bool      `json:"is_active"`
	CreatedForUserID uuid.UUID `json:"created_for_user_id"`
	CreatedAt        string    `json:"created_at"`
	UpdatedAt        string    `json:"updated_at"`
}

// GroupListResponse represents a paginated list of groups
type GroupListResponse struct {
	Groups   []GroupResponse `json:"groups"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// GroupService handles business logic for groups
type GroupService struct {
	repos     *repository.Repositories
	auth      Authorizer
	validator *validator.Validate
}

// NewGroupService creates a new group service
func NewGroupService(repos *repository.Repositories, auth Authorizer, validator *validator.Validate) *GroupService {
	return &GroupService{
		repos:     repos,
		auth:      auth,
		validator: validator,
	}
}

// Create creates a new group in an organization
func (s *GroupService) Create(ctx context.Context, actor Actor, orgID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.auth.Authorize(actor, orgID, CapManageGroups); err != nil {
		return nil, err
	}

	if _, err := s.repos.Organizations.GetByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	existing, err := s.repos.Groups.GetByName(orgID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing group by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrGroupExists
	}

	createdFor := actor.UserID
	if req.CreatedForUserID != nil {
		createdFor = *req.CreatedForUserID
	}
	if _, err := s.repos.Memberships.GetByOrganizationAndUser(orgID, createdFor); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("created_for_user_id", "must be a member of the organization")
		}
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	group := &models.Group{
		BaseModel:        models.BaseModel{CreatedBy: actor.audit(), UpdatedBy: actor.audit()},
		OrganizationID:   orgID,
		Name:             req.Name,
		Description:      req.Description,
		IsActive:         true,
		CreatedForUserID: createdFor,
	}
	if err := s.repos.Groups.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	logger.WithContext(ctx).WithField("group_id", group.ID.String()).Info("group created")
	return toGroupResponse(group), nil
}

// GetByID retrieves a group by its ID
func (s *GroupService) GetByID(actor Actor, id uuid.UUID) (*GroupResponse, error) {
	group, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.auth.RequireMembership(actor, group.OrganizationID); err != nil {
		return nil, err
	}
	return toGroupResponse(group), nil
}

// GetByOrganization retrieves the groups of an organization
func (s *GroupService) GetByOrganization(actor Actor, orgID uuid.UUID, page, pageSize int) (*GroupListResponse, error) {
	if _, err := s.auth.RequireMembership(actor, orgID); err != nil {
		return nil, err
	}
	limit, offset, page, pageSize := normalizePagination(page, pageSize)

	groups, total, err := s.repos.Groups.GetByOrganizationID(orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}

	responses := make([]GroupResponse, len(groups))
	for i := range groups {
		responses[i] = *toGroupResponse(&groups[i])
	}

	return &GroupListResponse{
		Groups:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates the name or description of a group
func (s *GroupService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateGroupRequest) (*GroupResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	group, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.auth.Authorize(actor, group.OrganizationID, CapManageGroups); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != group.Name {
		existing, err := s.repos.Groups.GetByName(group.OrganizationID, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing group by name: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrGroupExists
		}
		updates["name"] = *req.Name
		group.Name = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
		group.Description = *req.Description
	}
	if len(updates) == 0 {
		return toGroupResponse(group), nil
	}

	return s.apply(ctx, actor, group, updates)
}

// SetActive activates or deactivates a group. Deactivated groups accept no new trips.
func (s *GroupService) SetActive(ctx context.Context, actor Actor, id uuid.UUID, active bool) (*GroupResponse, error) {
	group, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.auth.Authorize(actor, group.OrganizationID, CapManageGroups); err != nil {
		return nil, err
	}
	if group.IsActive == active {
		return toGroupResponse(group), nil
	}

	group.IsActive = active
	return s.apply(ctx, actor, group, map[string]interface{}{"is_active": active})
}

// Delete deletes a group that has no open trips
func (s *GroupService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	group, err := s.load(id)
	if err != nil {
		return err
	}
	if _, err := s.auth.Authorize(actor, group.OrganizationID, CapManageGroups); err != nil {
		return err
	}

	open, err := s.repos.Trips.CountOpenByGroup(id)
	if err != nil {
		return fmt.Errorf("failed to count trips: %w", err)
	}
	if open > 0 {
		return apperrors.NewReferencedEntityError("group", "an open trip")
	}

	if err := s.repos.Groups.Delete(id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	logger.WithContext(ctx).WithField("group_id", id.String()).Info("group deleted")
	return nil
}

func (s *GroupService) apply(ctx context.Context, actor Actor, group *models.Group, updates map[string]interface{}) (*GroupResponse, error) {
	group.UpdatedBy = actor.audit()
	group.UpdatedAt = time.Now()
	updates["updated_by"] = group.UpdatedBy
	updates["updated_at"] = group.UpdatedAt

	if err := s.repos.Groups.Update(group.ID, updates); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	logger.WithContext(ctx).WithField("group_id", group.ID.String()).Debug("group updated")
	return toGroupResponse(group), nil
}

func (s *GroupService) load(id uuid.UUID) (*models.Group, error) {
	group, err := s.repos.Groups.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

func toGroupResponse(group *models.Group) *GroupResponse {
	return &GroupResponse{
		ID:               group.ID,
		OrganizationID:   group.OrganizationID,
		Name:             group.Name,
		Description:      group.Description,
		IsActive:         group.IsActive,
		CreatedForUserID: group.CreatedForUserID,
		CreatedAt:        group.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        group.UpdatedAt.Format(time.RFC3339),
	}
}
