package repository

import (
	"context"
	"time"

	"bustrip-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.AppUser) error
	GetByID(id uuid.UUID) (*models.AppUser, error)
	GetByEmail(email string) (*models.AppUser, error)
	GetActiveByRole(role models.SystemRole) ([]models.AppUser, error)
	GetAllActive() ([]models.AppUser, error)
	CountReferences(id uuid.UUID) (map[string]int64, error)
	Delete(id uuid.UUID) error
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations.
// UpdateMemberType and Delete are conditioned on the version carried by the membership.
type MembershipRepositoryInterface interface {
	Create(membership *models.OrganizationMembership) error
	GetByID(id uuid.UUID) (*models.OrganizationMembership, error)
	GetByOrganizationAndUser(orgID, userID uuid.UUID) (*models.OrganizationMembership, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.OrganizationMembership, int64, error)
	GetCreator(orgID uuid.UUID) (*models.OrganizationMembership, error)
	CountByUserID(userID uuid.UUID) (int64, error)
	UpdateMemberType(membership *models.OrganizationMembership, memberType models.MemberType) error
	Delete(membership *models.OrganizationMembership) error
}

// PermissionRepositoryInterface defines the interface for organization permission operations
type PermissionRepositoryInterface interface {
	CreateBatch(perms []models.OrganizationPermissions) error
	GetByOrganizationAndType(orgID uuid.UUID, memberType models.MemberType) (*models.OrganizationPermissions, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.OrganizationPermissions, error)
	Update(perms *models.OrganizationPermissions) error
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	Create(invitation *models.OrganizationInvitation) error
	GetByID(id uuid.UUID) (*models.OrganizationInvitation, error)
	GetByToken(token string) (*models.OrganizationInvitation, error)
	GetPendingByEmail(orgID uuid.UUID, email string) (*models.OrganizationInvitation, error)
	UpdateStatus(id uuid.UUID, status models.InvitationStatus, acceptedAt *time.Time) error
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	Create(group *models.Group) error
	GetByID(id uuid.UUID) (*models.Group, error)
	GetByName(orgID uuid.UUID, name string) (*models.Group, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Group, int64, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	CountActiveCreatedFor(orgID, userID uuid.UUID) (int64, error)
	ReassignCreatedFor(orgID, fromUserID, toUserID uuid.UUID) (int64, error)
}

// TripRepositoryInterface defines the interface for trip repository operations.
// Update and Touch are conditioned on the version carried by the trip.
type TripRepositoryInterface interface {
	Create(trip *models.Trip) error
	GetByID(id uuid.UUID) (*models.Trip, error)
	GetByOrganizationID(orgID uuid.UUID, status *models.TripStatus, limit, offset int) ([]models.Trip, int64, error)
	Update(trip *models.Trip) error
	Touch(trip *models.Trip, status models.TripStatus) error
	CountOpenByGroup(groupID uuid.UUID) (int64, error)
	CountOpenCreatedFor(orgID, userID uuid.UUID) (int64, error)
	ReassignOpenCreatedFor(orgID, fromUserID, toUserID uuid.UUID) (int64, error)
	GetLiveEndedBefore(t time.Time) ([]models.Trip, error)
}

// TripChangeLogRepositoryInterface is append-only: there is no update or delete
type TripChangeLogRepositoryInterface interface {
	Append(entry *models.TripChangeLog) error
	GetByTripID(tripID uuid.UUID) ([]models.TripChangeLog, error)
}

// AssignmentRepositoryInterface defines the interface for trip bus assignment operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.TripBusAssignment) error
	GetByID(id uuid.UUID) (*models.TripBusAssignment, error)
	GetByTripID(tripID uuid.UUID) ([]models.TripBusAssignment, error)
	Exists(tripID, equipmentID, driverID uuid.UUID) (bool, error)
	CountByTripID(tripID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// EquipmentRepositoryInterface defines the interface for equipment repository operations
type EquipmentRepositoryInterface interface {
	Create(equipment *models.Equipment) error
	GetByID(id uuid.UUID) (*models.Equipment, error)
	GetByBusNumber(busNumber string) (*models.Equipment, error)
	GetAll(limit, offset int) ([]models.Equipment, int64, error)
	SetActive(id uuid.UUID, active bool) error
}

// DriverRepositoryInterface defines the interface for bus driver repository operations
type DriverRepositoryInterface interface {
	Create(driver *models.BusDriver) error
	GetByID(id uuid.UUID) (*models.BusDriver, error)
	GetByUserID(userID uuid.UUID) (*models.BusDriver, error)
	GetAll(limit, offset int) ([]models.BusDriver, int64, error)
	SetActive(id uuid.UUID, active bool) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification, recipients []uuid.UUID) error
	GetForUser(userID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.UserNotification, int64, error)
	MarkRead(id, userID uuid.UUID, at time.Time) (int64, error)
	MarkAllRead(userID uuid.UUID, at time.Time) (int64, error)
}

// TxManager runs fn inside one database transaction. The repositories handed to fn
// are bound to that transaction; returning an error rolls every write back.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}
