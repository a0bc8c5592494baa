package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"bustrip-backend/internal/config"
	"bustrip-backend/internal/database/models"
	apperrors "bustrip-backend/internal/errors"
	"bustrip-backend/internal/logger"
	"bustrip-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteRequest invites a user by id or email
type InviteRequest struct {
	Email      string            `json:"email,omitempty" validate:"omitempty,email,max=255"`
	UserID     *uuid.UUID        `json:"user_id,omitempty"`
	MemberType models.MemberType `json:"member_type" validate:"required"`
}

// AcceptInvitationRequest accepts a pending invitation
type AcceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

// ChangeRoleRequest changes the member type of a membership
type ChangeRoleRequest struct {
	MemberType models.MemberType `json:"member_type" validate:"required"`
	Version    *int              `json:"version,omitempty"`
}

// RemoveMemberRequest removes a membership. ReassignTo receives the groups and
// open trips created for the leaving user.
type RemoveMemberRequest struct {
	ReassignTo *uuid.UUID `json:"reassign_to,omitempty"`
	Version    *int       `json:"version,omitempty"`
}

// MembershipResponse represents the response for membership operations
type MembershipResponse struct {
	ID             uuid.UUID         `json:"id"`
	OrganizationID uuid.UUID         `json:"organization_id"`
	UserID         uuid.UUID         `json:"user_id"`
	Email          string            `json:"email,omitempty"`
	FullName       string            `json:"full_name,omitempty"`
	MemberType     models.MemberType `json:"member_type"`
	Version        int               `json:"version"`
	CreatedAt      string            `json:"created_at"`
}

// MembershipListResponse represents a paginated list of memberships
type MembershipListResponse struct {
	Members  []MembershipResponse `json:"members"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// InvitationResponse represents a pending invitation. The token is only returned to the inviter.
type InvitationResponse struct {
	ID             uuid.UUID               `json:"id"`
	OrganizationID uuid.UUID               `json:"organization_id"`
	Email          string                  `json:"email"`
	MemberType     models.MemberType       `json:"member_type"`
	Status         models.InvitationStatus `json:"status"`
	Token          string                  `json:"token,omitempty"`
	ExpiresAt      string                  `json:"expires_at"`
}

// InviteResponse holds either the membership created directly or the pending invitation
type InviteResponse struct {
	Membership *MembershipResponse `json:"membership,omitempty"`
	Invitation *InvitationResponse `json:"invitation,omitempty"`
}

// MembershipService manages who belongs to an organization and with which member type
type MembershipService struct {
	repos         *repository.Repositories
	tx            repository.TxManager
	auth          Authorizer
	notifier      Notifier
	validator     *validator.Validate
	inviteMode    string
	invitationTTL time.Duration
	now           func() time.Time
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	repos *repository.Repositories,
	tx repository.TxManager,
	auth Authorizer,
	notifier Notifier,
	validator *validator.Validate,
	cfg *config.Config,
) *MembershipService {
	mode := config.InviteModeDirect
	ttl := 72 * time.Hour
	if cfg != nil {
		if cfg.InviteMode != "" {
			mode = cfg.InviteMode
		}
		if cfg.InvitationTTLHours > 0 {
			ttl = time.Duration(cfg.InvitationTTLHours) * time.Hour
		}
	}
	return &MembershipService{
		repos:         repos,
		tx:            tx,
		auth:          auth,
		notifier:      notifier,
		validator:     validator,
		inviteMode:    mode,
		invitationTTL: ttl,
		now:           time.Now,
	}
}

// Invite adds a user to an organization. In direct mode a known user becomes a
// member immediately; otherwise a pending invitation with a token is created.
func (s *MembershipService) Invite(ctx context.Context, actor Actor, orgID uuid.UUID, req *InviteRequest) (*InviteResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.MemberType == models.MemberTypeCreator {
		return nil, apperrors.ErrCreatorInvite
	}
	if !req.MemberType.IsValid() {
		return nil, apperrors.NewValidationError("member_type", "must be one of: admin member")
	}
	if req.Email == "" && req.UserID == nil {
		return nil, apperrors.NewValidationError("email", "email or user_id is required")
	}

	if _, err := s.auth.Authorize(actor, orgID, CapManageMembers); err != nil {
		return nil, err
	}
	org, err := s.loadOrganization(orgID)
	if err != nil {
		return nil, err
	}
	if !org.IsActive {
		return nil, apperrors.ErrOrganizationInactive
	}

	user, err := s.resolveInvitee(req)
	if err != nil {
		return nil, err
	}

	if user != nil {
		_, err := s.repos.Memberships.GetByOrganizationAndUser(orgID, user.ID)
		if err == nil {
			return nil, apperrors.ErrMembershipExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing membership: %w", err)
		}
	}

	if s.inviteMode == config.InviteModeDirect && user != nil {
		membership := &models.OrganizationMembership{
			BaseModel:      models.BaseModel{CreatedBy: actor.audit(), UpdatedBy: actor.audit()},
			OrganizationID: orgID,
			UserID:         user.ID,
			MemberType:     req.MemberType,
			Version:        1,
		}
		if err := s.repos.Memberships.Create(membership); err != nil {
			return nil, fmt.Errorf("failed to create membership: %w", err)
		}
		membership.User = *user

		s.notifier.Notify(ctx, Message{
			Title:   "Added to organization",
			Message: fmt.Sprintf("You were added to %s as %s", org.Name, req.MemberType),
			Target:  ToUser(user.ID),
		})
		return &InviteResponse{Membership: toMembershipResponse(membership)}, nil
	}

	email := req.Email
	if user != nil {
		email = user.Email
	}
	email = strings.ToLower(email)

	_, err = s.repos.Invitations.GetPendingByEmail(orgID, email)
	if err == nil {
		return nil, apperrors.ErrInvitationExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing invitation: %w", err)
	}

	token, err := newInvitationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	invitedBy := actor.UserID
	if actor.System {
		invitedBy = org.CreatedByUserID
	}

	invitation := &models.OrganizationInvitation{
		BaseModel:       models.BaseModel{CreatedBy: actor.audit(), UpdatedBy: actor.audit()},
		OrganizationID:  orgID,
		Email:           email,
		MemberType:      req.MemberType,
		Token:           token,
		Status:          models.InvitationStatusPending,
		ExpiresAt:       s.now().Add(s.invitationTTL),
		InvitedByUserID: invitedBy,
	}
	if err := s.repos.Invitations.Create(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	if user != nil {
		s.notifier.Notify(ctx, Message{
			Title:   "Organization invitation",
			Message: fmt.Sprintf("You were invited to %s as %s", org.Name, req.MemberType),
			Target:  ToUser(user.ID),
		})
	}

	resp := toInvitationResponse(invitation)
	resp.Token = invitation.Token
	return &InviteResponse{Invitation: resp}, nil
}

// AcceptInvitation turns a pending invitation into a membership of the actor
func (s *MembershipService) AcceptInvitation(ctx context.Context, actor Actor, req *AcceptInvitationRequest) (*MembershipResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if actor.UserID == uuid.Nil {
		return nil, apperrors.ErrMissingActor
	}

	invitation, err := s.repos.Invitations.GetByToken(req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	if invitation.Status != models.InvitationStatusPending {
		return nil, apperrors.ErrInvitationNotPending
	}

	now := s.now()
	if invitation.IsExpired(now) {
		if err := s.repos.Invitations.UpdateStatus(invitation.ID, models.InvitationStatusExpired, nil); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("failed to mark invitation expired")
		}
		return nil, apperrors.ErrInvitationExpired
	}

	user, err := s.repos.Users.GetByID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !strings.EqualFold(user.Email, invitation.Email) {
		return nil, apperrors.ErrInvitationEmailMismatch
	}

	membership := &models.OrganizationMembership{
		BaseModel:      models.BaseModel{CreatedBy: actor.audit(), UpdatedBy: actor.audit()},
		OrganizationID: invitation.OrganizationID,
		UserID:         user.ID,
		MemberType:     invitation.MemberType,
		Version:        1,
	}

	err = s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		_, err := repos.Memberships.GetByOrganizationAndUser(invitation.OrganizationID, user.ID)
		if err == nil {
			return apperrors.ErrMembershipExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing membership: %w", err)
		}
		if err := repos.Memberships.Create(membership); err != nil {
			return fmt.Errorf("failed to create membership: %w", err)
		}
		if err := repos.Invitations.UpdateStatus(invitation.ID, models.InvitationStatusAccepted, &now); err != nil {
			return fmt.Errorf("failed to update invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	membership.User = *user
	return toMembershipResponse(membership), nil
}

// RevokeInvitation withdraws a pending invitation
func (s *MembershipService) RevokeInvitation(ctx context.Context, actor Actor, invitationID uuid.UUID) error {
	invitation, err := s.repos.Invitations.GetByID(invitationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to get invitation: %w", err)
	}
	if _, err := s.auth.Authorize(actor, invitation.OrganizationID, CapManageMembers); err != nil {
		return err
	}
	if invitation.Status != models.InvitationStatusPending {
		return apperrors.ErrInvitationNotPending
	}

	if err := s.repos.Invitations.UpdateStatus(invitation.ID, models.InvitationStatusRevoked, nil); err != nil {
		return fmt.Errorf("failed to revoke invitation: %w", err)
	}
	logger.WithContext(ctx).WithField("invitation_id", invitation.ID.String()).Info("invitation revoked")
	return nil
}

// ChangeRole changes the member type of a membership. Promoting a member to
// creator transfers ownership: the previous creator becomes an admin in the
// same transaction.
func (s *MembershipService) ChangeRole(ctx context.Context, actor Actor, membershipID uuid.UUID, req *ChangeRoleRequest) (*MembershipResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if !req.MemberType.IsValid() {
		return nil, apperrors.NewValidationError("member_type", "must be one of: creator admin member")
	}

	membership, err := s.loadMembership(membershipID)
	if err != nil {
		return nil, err
	}
	if _, err := s.auth.Authorize(actor, membership.OrganizationID, CapManageMembers); err != nil {
		return nil, err
	}
	if req.Version != nil && *req.Version != membership.Version {
		return nil, apperrors.ErrMembershipConflict
	}
	if membership.MemberType == req.MemberType {
		return toMembershipResponse(membership), nil
	}
	if membership.MemberType == models.MemberTypeCreator {
		return nil, apperrors.ErrCreatorDemotion
	}
	membership.UpdatedBy = actor.audit()

	if req.MemberType != models.MemberTypeCreator {
		if err := s.repos.Memberships.UpdateMemberType(membership, req.MemberType); err != nil {
			if apperrors.IsConflict(err) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to change member type: %w", err)
		}
		s.notifyRoleChange(ctx, membership)
		return toMembershipResponse(membership), nil
	}

	if _, err := s.auth.Authorize(actor, membership.OrganizationID, CapTransferOwnership); err != nil {
		return nil, err
	}

	var previous *models.OrganizationMembership
	err = s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		creator, err := repos.Memberships.GetCreator(membership.OrganizationID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get creator: %w", err)
		}
		if creator != nil {
			creator.UpdatedBy = actor.audit()
			if err := repos.Memberships.UpdateMemberType(creator, models.MemberTypeAdmin); err != nil {
				if apperrors.IsConflict(err) {
					return err
				}
				return fmt.Errorf("failed to demote creator: %w", err)
			}
			previous = creator
		}

		if err := repos.Memberships.UpdateMemberType(membership, models.MemberTypeCreator); err != nil {
			if apperrors.IsConflict(err) {
				return err
			}
			return fmt.Errorf("failed to promote creator: %w", err)
		}

		org, err := repos.Organizations.GetByID(membership.OrganizationID)
		if err != nil {
			return fmt.Errorf("failed to get organization: %w", err)
		}
		org.CreatedByUserID = membership.UserID
		org.UpdatedBy = actor.audit()
		if err := repos.Organizations.Update(org); err != nil {
			return fmt.Errorf("failed to update organization owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("organization_id", membership.OrganizationID.String()).Info("organization ownership transferred")
	s.notifyRoleChange(ctx, membership)
	if previous != nil {
		s.notifyRoleChange(ctx, previous)
	}
	return toMembershipResponse(membership), nil
}

// Remove removes another user's membership
func (s *MembershipService) Remove(ctx context.Context, actor Actor, membershipID uuid.UUID, req *RemoveMemberRequest) error {
	membership, err := s.loadMembership(membershipID)
	if err != nil {
		return err
	}
	if _, err := s.auth.Authorize(actor, membership.OrganizationID, CapManageMembers); err != nil {
		return err
	}
	return s.removeMembership(ctx, actor, membership, req)
}

// SelfRemove removes the actor from an organization. It needs no permission.
func (s *MembershipService) SelfRemove(ctx context.Context, actor Actor, orgID uuid.UUID, req *RemoveMemberRequest) error {
	if actor.UserID == uuid.Nil {
		return apperrors.ErrMissingActor
	}
	membership, err := s.repos.Memberships.GetByOrganizationAndUser(orgID, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}
	return s.removeMembership(ctx, actor, membership, req)
}

func (s *MembershipService) removeMembership(ctx context.Context, actor Actor, membership *models.OrganizationMembership, req *RemoveMemberRequest) error {
	if req == nil {
		req = &RemoveMemberRequest{}
	}
	if membership.MemberType == models.MemberTypeCreator {
		return apperrors.ErrCreatorCannotLeave
	}
	if req.Version != nil && *req.Version != membership.Version {
		return apperrors.ErrMembershipConflict
	}

	orgID := membership.OrganizationID
	if req.ReassignTo != nil {
		if *req.ReassignTo == membership.UserID {
			return apperrors.NewValidationError("reassign_to", "must be a different member")
		}
		if _, err := s.repos.Memberships.GetByOrganizationAndUser(orgID, *req.ReassignTo); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewValidationError("reassign_to", "must be a member of the organization")
			}
			return fmt.Errorf("failed to check reassignment target: %w", err)
		}
	}

	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		groups, err := repos.Groups.CountActiveCreatedFor(orgID, membership.UserID)
		if err != nil {
			return fmt.Errorf("failed to count groups: %w", err)
		}
		trips, err := repos.Trips.CountOpenCreatedFor(orgID, membership.UserID)
		if err != nil {
			return fmt.Errorf("failed to count trips: %w", err)
		}

		if groups > 0 || trips > 0 {
			if req.ReassignTo == nil {
				if groups > 0 {
					return apperrors.NewReferencedEntityError("membership", "an active group")
				}
				return apperrors.NewReferencedEntityError("membership", "an open trip")
			}
			if _, err := repos.Groups.ReassignCreatedFor(orgID, membership.UserID, *req.ReassignTo); err != nil {
				return fmt.Errorf("failed to reassign groups: %w", err)
			}
			if _, err := repos.Trips.ReassignOpenCreatedFor(orgID, membership.UserID, *req.ReassignTo); err != nil {
				return fmt.Errorf("failed to reassign trips: %w", err)
			}
		}

		if err := repos.Memberships.Delete(membership); err != nil {
			if apperrors.IsConflict(err) {
				return err
			}
			return fmt.Errorf("failed to delete membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization_id": orgID.String(),
		"user_id":         membership.UserID.String(),
	}).Info("membership removed")

	if actor.UserID != membership.UserID {
		s.notifier.Notify(ctx, Message{
			Title:   "Removed from organization",
			Message: "Your membership was removed",
			Target:  ToUser(membership.UserID),
		})
	}
	return nil
}

// ListMembers lists the memberships of an organization
func (s *MembershipService) ListMembers(actor Actor, orgID uuid.UUID, page, pageSize int) (*MembershipListResponse, error) {
	if _, err := s.auth.RequireMembership(actor, orgID); err != nil {
		return nil, err
	}
	limit, offset, page, pageSize := normalizePagination(page, pageSize)

	memberships, total, err := s.repos.Memberships.GetByOrganizationID(orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	responses := make([]MembershipResponse, len(memberships))
	for i := range memberships {
		responses[i] = *toMembershipResponse(&memberships[i])
	}

	return &MembershipListResponse{
		Members:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// BootstrapDefaultOrganization gives a user without memberships a personal
// organization, its permissions, a default group and the creator membership.
// It writes through repos so the caller decides the transaction boundary, and
// returns nil when the user already belongs somewhere.
func (s *MembershipService) BootstrapDefaultOrganization(ctx context.Context, repos *repository.Repositories, user *models.AppUser) (*OrganizationResponse, error) {
	count, err := repos.Memberships.CountByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count memberships: %w", err)
	}
	if count > 0 {
		return nil, nil
	}

	audit := user.ID.String()
	org := &models.Organization{
		BaseModel:       models.BaseModel{CreatedBy: audit, UpdatedBy: audit},
		Name:            defaultOrganizationName(user),
		ShortName:       "personal",
		IsActive:        true,
		CreatedByUserID: user.ID,
	}

	if err := provisionOrganization(repos, s.auth, org, DefaultGroupName); err != nil {
		return nil, fmt.Errorf("failed to bootstrap default organization: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization_id": org.ID.String(),
		"user_id":         user.ID.String(),
	}).Info("default organization bootstrapped")
	return toOrganizationResponse(org), nil
}

// defaultOrganizationName builds "<full name> (<id prefix>)", shortening the
// full name so the result fits organizations.name
func defaultOrganizationName(user *models.AppUser) string {
	suffix := fmt.Sprintf(" (%s)", user.ID.String()[:8])
	name := []rune(strings.TrimSpace(user.FullName))
	if limit := models.OrganizationNameMaxLength - len(suffix); len(name) > limit {
		name = []rune(strings.TrimSpace(string(name[:limit])))
	}
	return string(name) + suffix
}

func (s *MembershipService) resolveInvitee(req *InviteRequest) (*models.AppUser, error) {
	if req.UserID != nil {
		user, err := s.repos.Users.GetByID(*req.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		return user, nil
	}

	user, err := s.repos.Users.GetByEmail(strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *MembershipService) notifyRoleChange(ctx context.Context, membership *models.OrganizationMembership) {
	s.notifier.Notify(ctx, Message{
		Title:   "Role changed",
		Message: fmt.Sprintf("Your role is now %s", membership.MemberType),
		Target:  ToUser(membership.UserID),
	})
}

func (s *MembershipService) loadMembership(id uuid.UUID) (*models.OrganizationMembership, error) {
	membership, err := s.repos.Memberships.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return membership, nil
}

func (s *MembershipService) loadOrganization(id uuid.UUID) (*models.Organization, error) {
	org, err := s.repos.Organizations.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// newInvitationToken returns 32 random bytes, hex encoded
func newInvitationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func toMembershipResponse(m *models.OrganizationMembership) *MembershipResponse {
	return &MembershipResponse{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		UserID:         m.UserID,
		Email:          m.User.Email,
		FullName:       m.User.FullName,
		MemberType:     m.MemberType,
		Version:        m.Version,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}

func toInvitationResponse(inv *models.OrganizationInvitation) *InvitationResponse {
	return &InvitationResponse{
		ID:             inv.ID,
		OrganizationID: inv.OrganizationID,
		Email:          inv.Email,
		MemberType:     inv.MemberType,
		Status:         inv.Status,
		ExpiresAt:      inv.ExpiresAt.Format(time.RFC3339),
	}
}
