package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is the payload of a message sent to one or more users
type Notification struct {
	BaseModel
	Title       string     `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Message     string     `json:"message" gorm:"not null;size:1000" validate:"required,max=1000"`
	FullMessage string     `json:"full_message,omitempty" gorm:"type:text"`
	TargetKind  TargetKind `json:"target_kind" gorm:"type:varchar(20);not null"`
	TargetValue string     `json:"target_value,omitempty" gorm:"size:100"`

	// Relationships
	Recipients []UserNotification `json:"recipients,omitempty" gorm:"foreignKey:NotificationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// UserNotification is the delivery record of a notification for one user
type UserNotification struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	NotificationID uuid.UUID  `json:"notification_id" gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`

	// Relationships
	Notification Notification `json:"notification" gorm:"foreignKey:NotificationID;constraint:OnDelete:CASCADE"`
	User         AppUser      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for UserNotification
func (UserNotification) TableName() string {
	return "user_notifications"
}

// BeforeCreate sets the UUID if not already set
func (n *UserNotification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
