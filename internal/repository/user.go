package repository

import (
	"bustrip-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// userReferences lists every column that points at a user, keyed by what it means
var userReferences = []struct {
	label  string
	model  interface{}
	column string
}{
	{"organization creator", &models.Organization{}, "created_by_user_id"},
	{"organization membership", &models.OrganizationMembership{}, "user_id"},
	{"invitation sender", &models.OrganizationInvitation{}, "invited_by_user_id"},
	{"group", &models.Group{}, "created_for_user_id"},
	{"trip", &models.Trip{}, "created_for_user_id"},
	{"trip change log", &models.TripChangeLog{}, "changed_by_user_id"},
	{"trip assignment", &models.TripBusAssignment{}, "assigned_by_user_id"},
	{"driver record", &models.BusDriver{}, "user_id"},
	{"notification", &models.UserNotification{}, "user_id"},
}

// Create creates a new user
func (r *UserRepository) Create(user *models.AppUser) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.AppUser, error) {
	var user models.AppUser
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.AppUser, error) {
	var user models.AppUser
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetActiveByRole retrieves all active users holding a system role
func (r *UserRepository) GetActiveByRole(role models.SystemRole) ([]models.AppUser, error) {
	var users []models.AppUser
	err := r.db.Where("role = ? AND is_active = ?", role, true).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetAllActive retrieves all active users
func (r *UserRepository) GetAllActive() ([]models.AppUser, error) {
	var users []models.AppUser
	err := r.db.Where("is_active = ?", true).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// CountReferences counts the rows that still reference a user. Only non-zero counts are returned.
func (r *UserRepository) CountReferences(id uuid.UUID) (map[string]int64, error) {
	refs := make(map[string]int64)
	for _, ref := range userReferences {
		var count int64
		if err := r.db.Model(ref.model).Where(ref.column+" = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			refs[ref.label] = count
		}
	}
	return refs, nil
}

// Delete deletes a user
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AppUser{}, "id = ?", id).Error
}
