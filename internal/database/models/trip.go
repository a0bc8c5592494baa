package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Trip is a bus trip requested for an organization. Version guards concurrent transitions.
type Trip struct {
	BaseModel
	OrganizationID     uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	GroupID            *uuid.UUID `json:"group_id,omitempty" gorm:"type:uuid;index"`
	CreatedForUserID   uuid.UUID  `json:"created_for_user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title              string     `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Origin             string     `json:"origin" gorm:"size:255"`
	Destination        string     `json:"destination" gorm:"size:255"`
	DepartureAt        *time.Time `json:"departure_at,omitempty"`
	ReturnAt           *time.Time `json:"return_at,omitempty"`
	PassengerCount     int        `json:"passenger_count" gorm:"not null;default:0"`
	Notes              string     `json:"notes" gorm:"type:text"`
	QuotedPrice        *float64   `json:"quoted_price,omitempty" gorm:"type:numeric(12,2)"`
	Status             TripStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	CancellationReason string     `json:"cancellation_reason,omitempty" gorm:"size:500"`
	CopiedFromTripID   *uuid.UUID `json:"copied_from_trip_id,omitempty" gorm:"type:uuid"`
	Version            int        `json:"version" gorm:"not null;default:1"`

	// Relationships
	Organization   Organization        `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Group          *Group              `json:"-" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	CreatedForUser AppUser             `json:"-" gorm:"foreignKey:CreatedForUserID;constraint:OnDelete:RESTRICT"`
	Assignments    []TripBusAssignment `json:"assignments,omitempty" gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	ChangeLogs     []TripChangeLog     `json:"change_logs,omitempty" gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Trip
func (Trip) TableName() string {
	return "trips"
}

// TripChangeLog is one append-only record of a trip status transition.
// ChangedByUserID is nil when the change came from the scheduler.
type TripChangeLog struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TripID          uuid.UUID  `json:"trip_id" gorm:"type:uuid;not null;index"`
	OldStatus       TripStatus `json:"old_status" gorm:"type:varchar(20)"`
	NewStatus       TripStatus `json:"new_status" gorm:"type:varchar(20);not null"`
	ChangedByUserID *uuid.UUID `json:"changed_by_user_id,omitempty" gorm:"type:uuid;index"`
	Comment         string     `json:"comment,omitempty" gorm:"size:500"`
	ChangedAt       time.Time  `json:"changed_at" gorm:"not null;index"`

	// Relationships
	Trip          Trip     `json:"-" gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	ChangedByUser *AppUser `json:"-" gorm:"foreignKey:ChangedByUserID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for TripChangeLog
func (TripChangeLog) TableName() string {
	return "trip_change_logs"
}

// BeforeCreate sets the UUID and timestamp if not already set
func (l *TripChangeLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.ChangedAt.IsZero() {
		l.ChangedAt = time.Now()
	}
	return nil
}

// TripBusAssignment binds a piece of equipment and a driver to a trip
type TripBusAssignment struct {
	BaseModel
	TripID           uuid.UUID `json:"trip_id" gorm:"type:uuid;not null;uniqueIndex:idx_trip_assignment" validate:"required"`
	EquipmentID      uuid.UUID `json:"equipment_id" gorm:"type:uuid;not null;uniqueIndex:idx_trip_assignment" validate:"required"`
	DriverID         uuid.UUID `json:"driver_id" gorm:"type:uuid;not null;uniqueIndex:idx_trip_assignment" validate:"required"`
	AssignedByUserID uuid.UUID `json:"assigned_by_user_id" gorm:"type:uuid;not null"`
	AssignedAt       time.Time `json:"assigned_at" gorm:"not null"`

	// Relationships
	Trip           Trip      `json:"-" gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	Equipment      Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID;constraint:OnDelete:RESTRICT"`
	Driver         BusDriver `json:"driver,omitempty" gorm:"foreignKey:DriverID;constraint:OnDelete:RESTRICT"`
	AssignedByUser AppUser   `json:"-" gorm:"foreignKey:AssignedByUserID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for TripBusAssignment
func (TripBusAssignment) TableName() string {
	return "trip_bus_assignments"
}
