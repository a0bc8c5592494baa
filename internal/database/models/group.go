package models

import (
	"github.com/google/uuid"
)

// Group represents a group of travellers within an organization
type Group struct {
	BaseModel
	OrganizationID   uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_group_name" validate:"required"`
	Name             string    `json:"name" gorm:"uniqueIndex:idx_org_group_name;not null;size:100" validate:"required,min=1,max=100"`
	Description      string    `json:"description" gorm:"type:text"`
	IsActive         bool      `json:"is_active" gorm:"default:true"`
	CreatedForUserID uuid.UUID `json:"created_for_user_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Organization   Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	CreatedForUser AppUser      `json:"-" gorm:"foreignKey:CreatedForUserID;constraint:OnDelete:RESTRICT"`
	Trips          []Trip       `json:"trips,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}
