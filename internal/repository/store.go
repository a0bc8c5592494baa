package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles every repository bound to the same connection or transaction
type Repositories struct {
	Users         UserRepositoryInterface
	Organizations OrganizationRepositoryInterface
	Memberships   MembershipRepositoryInterface
	Permissions   PermissionRepositoryInterface
	Invitations   InvitationRepositoryInterface
	Groups        GroupRepositoryInterface
	Trips         TripRepositoryInterface
	ChangeLogs    TripChangeLogRepositoryInterface
	Assignments   AssignmentRepositoryInterface
	Equipment     EquipmentRepositoryInterface
	Drivers       DriverRepositoryInterface
	Notifications NotificationRepositoryInterface
}

// NewRepositories creates the full repository set on db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(db),
		Organizations: NewOrganizationRepository(db),
		Memberships:   NewMembershipRepository(db),
		Permissions:   NewPermissionRepository(db),
		Invitations:   NewInvitationRepository(db),
		Groups:        NewGroupRepository(db),
		Trips:         NewTripRepository(db),
		ChangeLogs:    NewTripChangeLogRepository(db),
		Assignments:   NewAssignmentRepository(db),
		Equipment:     NewEquipmentRepository(db),
		Drivers:       NewDriverRepository(db),
		Notifications: NewNotificationRepository(db),
	}
}

// GormTxManager implements TxManager on top of gorm transactions
type GormTxManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager
func NewTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise
func (m *GormTxManager) WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
