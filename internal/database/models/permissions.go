package models

import (
	"github.com/google/uuid"
)

// OrganizationPermissions is the permission bundle of one member type in one organization
type OrganizationPermissions struct {
	BaseModel
	OrganizationID        uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_permissions_org_type"`
	MemberType            MemberType `json:"member_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_permissions_org_type"`
	CanCreateTrip         bool       `json:"can_create_trip"`
	CanEditTrip           bool       `json:"can_edit_trip"`
	CanSubmitTrip         bool       `json:"can_submit_trip"`
	CanApproveTrip        bool       `json:"can_approve_trip"`
	CanAssignTrip         bool       `json:"can_assign_trip"`
	CanActivateTrip       bool       `json:"can_activate_trip"`
	CanCancelTrip         bool       `json:"can_cancel_trip"`
	CanManageMembers      bool       `json:"can_manage_members"`
	CanManageGroups       bool       `json:"can_manage_groups"`
	CanManageEquipment    bool       `json:"can_manage_equipment"` // advisory only
	CanManageOrganization bool       `json:"can_manage_organization"`
	CanTransferOwnership  bool       `json:"can_transfer_ownership"`

	// Relationships
	Organization Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OrganizationPermissions
func (OrganizationPermissions) TableName() string {
	return "organization_permissions"
}
