package models

import (
	"github.com/google/uuid"
)

// OrganizationNameMaxLength is the column size of organizations.name
const OrganizationNameMaxLength = 100

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name               string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	ShortName          string    `json:"short_name" gorm:"size:20" validate:"max=20"`
	IsActive           bool      `json:"is_active" gorm:"default:true"`
	DeactivationReason string    `json:"deactivation_reason" gorm:"size:500"`
	CreatedByUserID    uuid.UUID `json:"created_by_user_id" gorm:"type:uuid;not null;index"`

	// Relationships
	CreatedByUser AppUser                   `json:"-" gorm:"foreignKey:CreatedByUserID;constraint:OnDelete:RESTRICT"`
	Memberships   []OrganizationMembership  `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Permissions   []OrganizationPermissions `json:"permissions,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Groups        []Group                   `json:"groups,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Trips         []Trip                    `json:"trips,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Invitations   []OrganizationInvitation  `json:"invitations,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
