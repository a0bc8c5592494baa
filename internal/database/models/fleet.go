package models

import (
	"time"

	"github.com/google/uuid"
)

// Equipment is a bus of the fleet
type Equipment struct {
	BaseModel
	BusNumber    string `json:"bus_number" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"`
	Make         string `json:"make" gorm:"size:100"`
	Model        string `json:"model" gorm:"size:100"`
	Capacity     int    `json:"capacity" gorm:"not null;default:0" validate:"min=0"`
	LicensePlate string `json:"license_plate" gorm:"size:20"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`

	// Relationships
	Documents []EquipmentDocument `json:"documents,omitempty" gorm:"foreignKey:EquipmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Equipment
func (Equipment) TableName() string {
	return "equipment"
}

// EquipmentDocument is an attachment of a piece of equipment
type EquipmentDocument struct {
	BaseModel
	EquipmentID uuid.UUID `json:"equipment_id" gorm:"type:uuid;not null;index"`
	FileName    string    `json:"file_name" gorm:"not null;size:255"`
	StoragePath string    `json:"storage_path" gorm:"not null;size:500"`

	Equipment Equipment `json:"-" gorm:"foreignKey:EquipmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for EquipmentDocument
func (EquipmentDocument) TableName() string {
	return "equipment_documents"
}

// BusDriver is the driver record of exactly one user
type BusDriver struct {
	BaseModel
	UserID         uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	LicenseNumber  string     `json:"license_number" gorm:"not null;size:50" validate:"required,max=50"`
	LicenseExpires *time.Time `json:"license_expires,omitempty"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`

	// Relationships
	User      AppUser          `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Documents []DriverDocument `json:"documents,omitempty" gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for BusDriver
func (BusDriver) TableName() string {
	return "bus_drivers"
}

// DriverDocument is an attachment of a driver record
type DriverDocument struct {
	BaseModel
	DriverID    uuid.UUID `json:"driver_id" gorm:"type:uuid;not null;index"`
	FileName    string    `json:"file_name" gorm:"not null;size:255"`
	StoragePath string    `json:"storage_path" gorm:"not null;size:500"`

	Driver BusDriver `json:"-" gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DriverDocument
func (DriverDocument) TableName() string {
	return "driver_documents"
}
