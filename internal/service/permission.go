package service

import (
	"errors"
	"fmt"
	"os"

	"bustrip-backend/internal/database/models"
	apperrors "bustrip-backend/internal/errors"
	"bustrip-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Capability names one permission flag
type Capability string

const (
	CapCreateTrip         Capability = "create_trip"
	CapEditTrip           Capability = "edit_trip"
	CapSubmitTrip         Capability = "submit_trip"
	CapApproveTrip        Capability = "approve_trip"
	CapAssignTrip         Capability = "assign_trip"
	CapActivateTrip       Capability = "activate_trip"
	CapCancelTrip         Capability = "cancel_trip"
	CapManageMembers      Capability = "manage_members"
	CapManageGroups       Capability = "manage_groups"
	CapManageEquipment    Capability = "manage_equipment"
	CapManageOrganization Capability = "manage_organization"
	CapTransferOwnership  Capability = "transfer_ownership"
)

// PermissionSet is the evaluated permission bundle of one member type
type PermissionSet struct {
	CanCreateTrip         bool `json:"can_create_trip" yaml:"can_create_trip"`
	CanEditTrip           bool `json:"can_edit_trip" yaml:"can_edit_trip"`
	CanSubmitTrip         bool `json:"can_submit_trip" yaml:"can_submit_trip"`
	CanApproveTrip        bool `json:"can_approve_trip" yaml:"can_approve_trip"`
	CanAssignTrip         bool `json:"can_assign_trip" yaml:"can_assign_trip"`
	CanActivateTrip       bool `json:"can_activate_trip" yaml:"can_activate_trip"`
	CanCancelTrip         bool `json:"can_cancel_trip" yaml:"can_cancel_trip"`
	CanManageMembers      bool `json:"can_manage_members" yaml:"can_manage_members"`
	CanManageGroups       bool `json:"can_manage_groups" yaml:"can_manage_groups"`
	CanManageEquipment    bool `json:"can_manage_equipment" yaml:"can_manage_equipment"` // advisory, fleet writes need the system admin role
	CanManageOrganization bool `json:"can_manage_organization" yaml:"can_manage_organization"`
	CanTransferOwnership  bool `json:"can_transfer_ownership" yaml:"can_transfer_ownership"`
}

// Allows reports whether the set grants capability
func (p PermissionSet) Allows(capability Capability) bool {
	switch capability {
	case CapCreateTrip:
		return p.CanCreateTrip
	case CapEditTrip:
		return p.CanEditTrip
	case CapSubmitTrip:
		return p.CanSubmitTrip
	case CapApproveTrip:
		return p.CanApproveTrip
	case CapAssignTrip:
		return p.CanAssignTrip
	case CapActivateTrip:
		return p.CanActivateTrip
	case CapCancelTrip:
		return p.CanCancelTrip
	case CapManageMembers:
		return p.CanManageMembers
	case CapManageGroups:
		return p.CanManageGroups
	case CapManageEquipment:
		return p.CanManageEquipment
	case CapManageOrganization:
		return p.CanManageOrganization
	case CapTransferOwnership:
		return p.CanTransferOwnership
	}
	return false
}

// LeastPrivilege grants nothing mutating. It applies whenever no permission row exists.
func LeastPrivilege() PermissionSet {
	return PermissionSet{}
}

func permissionSetFromModel(m *models.OrganizationPermissions) PermissionSet {
	return PermissionSet{
		CanCreateTrip:         m.CanCreateTrip,
		CanEditTrip:           m.CanEditTrip,
		CanSubmitTrip:         m.CanSubmitTrip,
		CanApproveTrip:        m.CanApproveTrip,
		CanAssignTrip:         m.CanAssignTrip,
		CanActivateTrip:       m.CanActivateTrip,
		CanCancelTrip:         m.CanCancelTrip,
		CanManageMembers:      m.CanManageMembers,
		CanManageGroups:       m.CanManageGroups,
		CanManageEquipment:    m.CanManageEquipment,
		CanManageOrganization: m.CanManageOrganization,
		CanTransferOwnership:  m.CanTransferOwnership,
	}
}

func (p PermissionSet) applyTo(m *models.OrganizationPermissions) {
	m.CanCreateTrip = p.CanCreateTrip
	m.CanEditTrip = p.CanEditTrip
	m.CanSubmitTrip = p.CanSubmitTrip
	m.CanApproveTrip = p.CanApproveTrip
	m.CanAssignTrip = p.CanAssignTrip
	m.CanActivateTrip = p.CanActivateTrip
	m.CanCancelTrip = p.CanCancelTrip
	m.CanManageMembers = p.CanManageMembers
	m.CanManageGroups = p.CanManageGroups
	m.CanManageEquipment = p.CanManageEquipment
	m.CanManageOrganization = p.CanManageOrganization
	m.CanTransferOwnership = p.CanTransferOwnership
}

// Policy holds the permission rows written for every new organization
type Policy map[models.MemberType]PermissionSet

// DefaultPolicy: creators get everything, admins everything but ownership and
// organization management, members may prepare trips.
func DefaultPolicy() Policy {
	return Policy{
		models.MemberTypeCreator: {
			CanCreateTrip: true, CanEditTrip: true, CanSubmitTrip: true, CanApproveTrip: true,
			CanAssignTrip: true, CanActivateTrip: true, CanCancelTrip: true,
			CanManageMembers: true, CanManageGroups: true, CanManageEquipment: true,
			CanManageOrganization: true, CanTransferOwnership: true,
		},
		models.MemberTypeAdmin: {
			CanCreateTrip: true, CanEditTrip: true, CanSubmitTrip: true, CanApproveTrip: true,
			CanAssignTrip: true, CanActivateTrip: true, CanCancelTrip: true,
			CanManageMembers: true, CanManageGroups: true, CanManageEquipment: true,
		},
		models.MemberTypeMember: {
			CanCreateTrip: true, CanEditTrip: true, CanSubmitTrip: true,
		},
	}
}

// LoadPolicyFile reads a YAML policy keyed by member type. Member types missing
// from the file keep their default permissions.
func LoadPolicyFile(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read permission policy: %w", err)
	}
	return ParsePolicy(data)
}

// ParsePolicy parses a YAML policy document
func ParsePolicy(data []byte) (Policy, error) {
	var raw map[string]PermissionSet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPolicyFileInvalid, err)
	}

	policy := DefaultPolicy()
	for key, set := range raw {
		memberType := models.MemberType(key)
		if !memberType.IsValid() {
			return nil, fmt.Errorf("%w: unknown member type %q", apperrors.ErrPolicyFileInvalid, key)
		}
		policy[memberType] = set
	}

	if err := checkCreatorSet(policy[models.MemberTypeCreator]); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPolicyFileInvalid, err)
	}
	return policy, nil
}

// checkCreatorSet keeps the creator able to hand over the organization
func checkCreatorSet(set PermissionSet) error {
	if !set.CanTransferOwnership || !set.CanManageMembers {
		return apperrors.NewValidationError("member_type", "creator must keep can_transfer_ownership and can_manage_members")
	}
	return nil
}

// SetPermissionsRequest replaces the permission row of one member type.
// can_manage_equipment is advisory: it is stored and reported for clients, but
// the fleet endpoints are guarded by the system admin role, not by this flag.
type SetPermissionsRequest struct {
	MemberType  models.MemberType `json:"member_type" validate:"required,oneof=creator admin member"`
	Permissions PermissionSet     `json:"permissions"`
}

// PermissionResponse represents the permission row of one member type
type PermissionResponse struct {
	OrganizationID uuid.UUID         `json:"organization_id"`
	MemberType     models.MemberType `json:"member_type"`
	Permissions    PermissionSet     `json:"permissions"`
}

// PermissionService evaluates and manages organization permissions
type PermissionService struct {
	permissions repository.PermissionRepositoryInterface
	memberships repository.MembershipRepositoryInterface
	policy      Policy
	validator   *validator.Validate
}

// NewPermissionService creates a new permission service. A nil policy means DefaultPolicy.
func NewPermissionService(
	permissions repository.PermissionRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	policy Policy,
	validator *validator.Validate,
) *PermissionService {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &PermissionService{
		permissions: permissions,
		memberships: memberships,
		policy:      policy,
		validator:   validator,
	}
}

// Evaluate returns the permission set of a member type in an organization,
// falling back to LeastPrivilege when the organization has no row for it.
func (s *PermissionService) Evaluate(orgID uuid.UUID, memberType models.MemberType) (PermissionSet, error) {
	row, err := s.permissions.GetByOrganizationAndType(orgID, memberType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeastPrivilege(), nil
		}
		return LeastPrivilege(), fmt.Errorf("failed to load permissions: %w", err)
	}
	return permissionSetFromModel(row), nil
}

// RequireMembership returns the membership of the actor in the organization.
// The system actor gets a nil membership and no error.
func (s *PermissionService) RequireMembership(actor Actor, orgID uuid.UUID) (*models.OrganizationMembership, error) {
	if actor.System {
		return nil, nil
	}
	if actor.UserID == uuid.Nil {
		return nil, apperrors.ErrMissingActor
	}

	membership, err := s.memberships.GetByOrganizationAndUser(orgID, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotAMember
		}
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	return membership, nil
}

// Authorize checks that the actor holds capability in the organization
func (s *PermissionService) Authorize(actor Actor, orgID uuid.UUID, capability Capability) (*models.OrganizationMembership, error) {
	if actor.System {
		return nil, nil
	}

	membership, err := s.RequireMembership(actor, orgID)
	if err != nil {
		return nil, err
	}

	set, err := s.Evaluate(orgID, membership.MemberType)
	if err != nil {
		return nil, err
	}
	if !set.Allows(capability) {
		return nil, fmt.Errorf("%w: %s requires %s", apperrors.ErrNotPermitted, membership.MemberType, capability)
	}
	return membership, nil
}

// DefaultPermissions builds the permission rows of a new organization from the policy
func (s *PermissionService) DefaultPermissions(orgID uuid.UUID, createdBy string) []models.OrganizationPermissions {
	rows := make([]models.OrganizationPermissions, 0, len(models.AllMemberTypes))
	for _, memberType := range models.AllMemberTypes {
		row := models.OrganizationPermissions{
			BaseModel:      models.BaseModel{CreatedBy: createdBy, UpdatedBy: createdBy},
			OrganizationID: orgID,
			MemberType:     memberType,
		}
		s.policy[memberType].applyTo(&row)
		rows = append(rows, row)
	}
	return rows
}

// GetPermissions lists the permission rows of an organization
func (s *PermissionService) GetPermissions(actor Actor, orgID uuid.UUID) ([]PermissionResponse, error) {
	if _, err := s.RequireMembership(actor, orgID); err != nil {
		return nil, err
	}

	rows, err := s.permissions.GetByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get permissions: %w", err)
	}

	responses := make([]PermissionResponse, len(rows))
	for i := range rows {
		responses[i] = toPermissionResponse(&rows[i])
	}
	return responses, nil
}

// SetPermissions replaces the permission row of a member type
func (s *PermissionService) SetPermissions(actor Actor, orgID uuid.UUID, req *SetPermissionsRequest) (*PermissionResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.Authorize(actor, orgID, CapManageOrganization); err != nil {
		return nil, err
	}
	if req.MemberType == models.MemberTypeCreator {
		if err := checkCreatorSet(req.Permissions); err != nil {
			return nil, err
		}
	}

	row, err := s.permissions.GetByOrganizationAndType(orgID, req.MemberType)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load permissions: %w", err)
	}

	if row == nil {
		row = &models.OrganizationPermissions{
			BaseModel:      models.BaseModel{CreatedBy: actor.audit()},
			OrganizationID: orgID,
			MemberType:     req.MemberType,
		}
		req.Permissions.applyTo(row)
		row.UpdatedBy = actor.audit()
		if err := s.permissions.CreateBatch([]models.OrganizationPermissions{*row}); err != nil {
			return nil, fmt.Errorf("failed to create permissions: %w", err)
		}
	} else {
		req.Permissions.applyTo(row)
		row.UpdatedBy = actor.audit()
		if err := s.permissions.Update(row); err != nil {
			return nil, fmt.Errorf("failed to update permissions: %w", err)
		}
	}

	resp := toPermissionResponse(row)
	return &resp, nil
}

func toPermissionResponse(row *models.OrganizationPermissions) PermissionResponse {
	return PermissionResponse{
		OrganizationID: row.OrganizationID,
		MemberType:     row.MemberType,
		Permissions:    permissionSetFromModel(row),
	}
}
