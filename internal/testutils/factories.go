package testutils

import (
	"time"

	"bustrip-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test AppUser data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test AppUser with default values
func (f *UserFactory) Create() *models.AppUser {
	id := uuid.New()
	return &models.AppUser{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique email per user to avoid index conflicts
		Email:       "user-" + id.String()[:8] + "@test.com",
		FullName:    "Jane Traveller",
		PhoneNumber: "+1-555-0100",
		Role:        models.SystemRoleUser,
		IsActive:    true,
	}
}

// WithRole sets a custom system role for the user
func (f *UserFactory) WithRole(role models.SystemRole) *models.AppUser {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.AppUser {
	user := f.Create()
	user.Email = email
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values.
// CreatedByUserID must be set to a persisted user before saving.
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "Test School " + id.String()[:8],
		ShortName: "TS",
		IsActive:  true,
	}
}

// WithCreator sets the creating user of the organization
func (f *OrganizationFactory) WithCreator(userID uuid.UUID) *models.Organization {
	org := f.Create()
	org.CreatedByUserID = userID
	return org
}

// MembershipFactory provides methods to create test OrganizationMembership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test OrganizationMembership with default values
func (f *MembershipFactory) Create() *models.OrganizationMembership {
	return &models.OrganizationMembership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		UserID:         uuid.New(),
		MemberType:     models.MemberTypeMember,
		Version:        1,
	}
}

// For creates a membership of a user in an organization with the given member type
func (f *MembershipFactory) For(orgID, userID uuid.UUID, memberType models.MemberType) *models.OrganizationMembership {
	m := f.Create()
	m.OrganizationID = orgID
	m.UserID = userID
	m.MemberType = memberType
	return m
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group with default values
func (f *GroupFactory) Create() *models.Group {
	id := uuid.New()
	return &models.Group{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:   uuid.New(),
		Name:             "class-" + id.String()[:8],
		Description:      "A test group",
		IsActive:         true,
		CreatedForUserID: uuid.New(),
	}
}

// For creates a group of an organization created for a user
func (f *GroupFactory) For(orgID, userID uuid.UUID) *models.Group {
	group := f.Create()
	group.OrganizationID = orgID
	group.CreatedForUserID = userID
	return group
}

// WithName sets a custom name for the group
func (f *GroupFactory) WithName(name string) *models.Group {
	group := f.Create()
	group.Name = name
	return group
}

// TripFactory provides methods to create test Trip data
type TripFactory struct{}

// NewTripFactory creates a new TripFactory
func NewTripFactory() *TripFactory {
	return &TripFactory{}
}

// Create creates a draft Trip with default values
func (f *TripFactory) Create() *models.Trip {
	departure := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	ret := departure.Add(8 * time.Hour)
	return &models.Trip{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:   uuid.New(),
		CreatedForUserID: uuid.New(),
		Title:            "Museum visit",
		Origin:           "School parking lot",
		Destination:      "Natural History Museum",
		DepartureAt:      &departure,
		ReturnAt:         &ret,
		PassengerCount:   40,
		Status:           models.TripStatusDraft,
		Version:          1,
	}
}

// For creates a trip of an organization created for a user
func (f *TripFactory) For(orgID, userID uuid.UUID) *models.Trip {
	trip := f.Create()
	trip.OrganizationID = orgID
	trip.CreatedForUserID = userID
	return trip
}

// WithStatus creates a trip in the given status
func (f *TripFactory) WithStatus(status models.TripStatus) *models.Trip {
	trip := f.Create()
	trip.Status = status
	return trip
}

// EquipmentFactory provides methods to create test Equipment data
type EquipmentFactory struct{}

// NewEquipmentFactory creates a new EquipmentFactory
func NewEquipmentFactory() *EquipmentFactory {
	return &EquipmentFactory{}
}

// Create creates a test Equipment with default values
func (f *EquipmentFactory) Create() *models.Equipment {
	id := uuid.New()
	return &models.Equipment{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BusNumber:    "BUS-" + id.String()[:6],
		Make:         "Blue Bird",
		Model:        "Vision",
		Capacity:     48,
		LicensePlate: "SCH-" + id.String()[:4],
		IsActive:     true,
	}
}

// DriverFactory provides methods to create test BusDriver data
type DriverFactory struct{}

// NewDriverFactory creates a new DriverFactory
func NewDriverFactory() *DriverFactory {
	return &DriverFactory{}
}

// Create creates a test BusDriver with default values
func (f *DriverFactory) Create() *models.BusDriver {
	id := uuid.New()
	expires := time.Now().AddDate(2, 0, 0)
	return &models.BusDriver{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:         uuid.New(),
		LicenseNumber:  "CDL-" + id.String()[:8],
		LicenseExpires: &expires,
		IsActive:       true,
	}
}

// ForUser creates the driver record of a user
func (f *DriverFactory) ForUser(userID uuid.UUID) *models.BusDriver {
	driver := f.Create()
	driver.UserID = userID
	return driver
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organization *OrganizationFactory
	Membership   *MembershipFactory
	Group        *GroupFactory
	Trip         *TripFactory
	Equipment    *EquipmentFactory
	Driver       *DriverFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organization: NewOrganizationFactory(),
		Membership:   NewMembershipFactory(),
		Group:        NewGroupFactory(),
		Trip:         NewTripFactory(),
		Equipment:    NewEquipmentFactory(),
		Driver:       NewDriverFactory(),
	}
}

// CreateOrganizationWithCreator builds an organization, its creating user and the creator membership
func (fs *FactorySet) CreateOrganizationWithCreator() (*models.AppUser, *models.Organization, *models.OrganizationMembership) {
	user := fs.User.Create()
	org := fs.Organization.WithCreator(user.ID)
	membership := fs.Membership.For(org.ID, user.ID, models.MemberTypeCreator)
	return user, org, membership
}
