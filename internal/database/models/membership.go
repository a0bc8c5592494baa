package models

import (
	"github.com/google/uuid"
)

// OrganizationMembership associates a user with an organization and a member type.
// Version guards concurrent role changes and removals.
type OrganizationMembership struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_membership_org_user" validate:"required"`
	UserID         uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_membership_org_user;index" validate:"required"`
	MemberType     MemberType `json:"member_type" gorm:"type:varchar(20);not null;default:'member'" validate:"required"`
	Version        int        `json:"version" gorm:"not null;default:1"`

	// Relationships
	Organization Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	User         AppUser      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for OrganizationMembership
func (OrganizationMembership) TableName() string {
	return "organization_memberships"
}
