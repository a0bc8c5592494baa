package models

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationInvitation is a pending offer of membership sent to an email address
type OrganizationInvitation struct {
	BaseModel
	OrganizationID  uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Email           string           `json:"email" gorm:"not null;size:255;index" validate:"required,email,max=255"`
	MemberType      MemberType       `json:"member_type" gorm:"type:varchar(20);not null" validate:"required"`
	Token           string           `json:"-" gorm:"uniqueIndex;not null;size:64"`
	Status          InvitationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ExpiresAt       time.Time        `json:"expires_at" gorm:"not null"`
	InvitedByUserID uuid.UUID        `json:"invited_by_user_id" gorm:"type:uuid;not null"`
	AcceptedAt      *time.Time       `json:"accepted_at,omitempty"`

	// Relationships
	Organization  Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	InvitedByUser AppUser      `json:"-" gorm:"foreignKey:InvitedByUserID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for OrganizationInvitation
func (OrganizationInvitation) TableName() string {
	return "organization_invitations"
}

// IsExpired reports whether the invitation can no longer be accepted at t
func (i *OrganizationInvitation) IsExpired(t time.Time) bool {
	return !t.Before(i.ExpiresAt)
}
