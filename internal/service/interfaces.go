package service

import (
	"context"
	"time"

	"bustrip-backend/internal/database/models"
	"bustrip-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// Authorizer evaluates organization permissions for an actor
type Authorizer interface {
	Evaluate(orgID uuid.UUID, memberType models.MemberType) (PermissionSet, error)
	Authorize(actor Actor, orgID uuid.UUID, capability Capability) (*models.OrganizationMembership, error)
	RequireMembership(actor Actor, orgID uuid.UUID) (*models.OrganizationMembership, error)
	DefaultPermissions(orgID uuid.UUID, createdBy string) []models.OrganizationPermissions
}

// Notifier dispatches notifications without failing the caller
type Notifier interface {
	Notify(ctx context.Context, msg Message)
}

// PermissionServiceInterface defines the interface for permission management
type PermissionServiceInterface interface {
	GetPermissions(actor Actor, orgID uuid.UUID) ([]PermissionResponse, error)
	SetPermissions(actor Actor, orgID uuid.UUID, req *SetPermissionsRequest) (*PermissionResponse, error)
}

// TripServiceInterface defines the interface for the trip lifecycle
type TripServiceInterface interface {
	CreateTrip(ctx context.Context, actor Actor, req *CreateTripRequest) (*TripResponse, error)
	UpdateTrip(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateTripRequest) (*TripResponse, error)
	SubmitForQuote(ctx context.Context, actor Actor, id uuid.UUID) (*TripResponse, error)
	ApproveOrReject(ctx context.Context, actor Actor, id uuid.UUID, req *DecisionRequest) (*TripResponse, error)
	Assign(ctx context.Context, actor Actor, tripID uuid.UUID, req *AssignRequest) (*AssignmentResponse, error)
	Unassign(ctx context.Context, actor Actor, tripID, assignmentID uuid.UUID) error
	Activate(ctx context.Context, actor Actor, id uuid.UUID) (*TripResponse, error)
	Complete(ctx context.Context, id uuid.UUID) (*TripResponse, error)
	CompleteElapsed(ctx context.Context, now time.Time) (*CompletionSummary, error)
	Cancel(ctx context.Context, actor Actor, id uuid.UUID, req *CancelRequest) (*TripResponse, error)
	Copy(ctx context.Context, actor Actor, id uuid.UUID) (*TripResponse, error)
	GetTrip(actor Actor, id uuid.UUID) (*TripResponse, error)
	ListTrips(actor Actor, orgID uuid.UUID, status string, page, pageSize int) (*TripListResponse, error)
	GetChangeLog(actor Actor, id uuid.UUID) ([]ChangeLogResponse, error)
}

// MembershipServiceInterface defines the interface for organization membership
type MembershipServiceInterface interface {
	Invite(ctx context.Context, actor Actor, orgID uuid.UUID, req *InviteRequest) (*InviteResponse, error)
	AcceptInvitation(ctx context.Context, actor Actor, req *AcceptInvitationRequest) (*MembershipResponse, error)
	RevokeInvitation(ctx context.Context, actor Actor, invitationID uuid.UUID) error
	ChangeRole(ctx context.Context, actor Actor, membershipID uuid.UUID, req *ChangeRoleRequest) (*MembershipResponse, error)
	Remove(ctx context.Context, actor Actor, membershipID uuid.UUID, req *RemoveMemberRequest) error
	SelfRemove(ctx context.Context, actor Actor, orgID uuid.UUID, req *RemoveMemberRequest) error
	ListMembers(actor Actor, orgID uuid.UUID, page, pageSize int) (*MembershipListResponse, error)
	BootstrapDefaultOrganization(ctx context.Context, repos *repository.Repositories, user *models.AppUser) (*OrganizationResponse, error)
}

// OrganizationServiceInterface defines the interface for organization management
type OrganizationServiceInterface interface {
	Create(ctx context.Context, actor Actor, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(actor Actor, id uuid.UUID) (*OrganizationResponse, error)
	ListForUser(actor Actor, page, pageSize int) (*OrganizationListResponse, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Deactivate(ctx context.Context, actor Actor, id uuid.UUID, req *DeactivateOrganizationRequest) (*OrganizationResponse, error)
	Reactivate(ctx context.Context, actor Actor, id uuid.UUID) (*OrganizationResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

// GroupServiceInterface defines the interface for group management
type GroupServiceInterface interface {
	Create(ctx context.Context, actor Actor, orgID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error)
	GetByID(actor Actor, id uuid.UUID) (*GroupResponse, error)
	GetByOrganization(actor Actor, orgID uuid.UUID, page, pageSize int) (*GroupListResponse, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateGroupRequest) (*GroupResponse, error)
	SetActive(ctx context.Context, actor Actor, id uuid.UUID, active bool) (*GroupResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

// UserServiceInterface defines the interface for user accounts
type UserServiceInterface interface {
	Register(ctx context.Context, req *RegisterUserRequest) (*UserResponse, error)
	CreateUser(ctx context.Context, actor Actor, req *CreateUserRequest) (*UserResponse, error)
	GetUserByID(id uuid.UUID) (*UserResponse, error)
	DeleteUser(ctx context.Context, actor Actor, id uuid.UUID) error
}

// FleetServiceInterface defines the interface for equipment and driver management
type FleetServiceInterface interface {
	CreateEquipment(ctx context.Context, actor Actor, req *CreateEquipmentRequest) (*EquipmentResponse, error)
	GetEquipment(id uuid.UUID) (*EquipmentResponse, error)
	ListEquipment(page, pageSize int) (*EquipmentListResponse, error)
	SetEquipmentActive(ctx context.Context, actor Actor, id uuid.UUID, active bool) error
	CreateDriver(ctx context.Context, actor Actor, req *CreateDriverRequest) (*DriverResponse, error)
	GetDriver(id uuid.UUID) (*DriverResponse, error)
	ListDrivers(page, pageSize int) (*DriverListResponse, error)
	SetDriverActive(ctx context.Context, actor Actor, id uuid.UUID, active bool) error
}

// NotificationServiceInterface defines the interface for reading notifications
type NotificationServiceInterface interface {
	ListForUser(actor Actor, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error)
	MarkRead(actor Actor, id uuid.UUID) error
	MarkAllRead(actor Actor) (int64, error)
}
