package models

// AppUser is an account of the application. No foreign key to it cascades on delete.
type AppUser struct {
	BaseModel
	Email       string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FullName    string     `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	PhoneNumber string     `json:"phone_number" gorm:"size:20"`
	Role        SystemRole `json:"role" gorm:"type:varchar(20);not null;default:'user'" validate:"required"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for AppUser
func (AppUser) TableName() string {
	return "app_users"
}
