package repository

import (
	"bustrip-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DriverRepository handles database operations for bus drivers
type DriverRepository struct {
	db *gorm.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

// Create creates a new driver record
func (r *DriverRepository) Create(driver *models.BusDriver) error {
	return r.db.Create(driver).Error
}

// GetByID retrieves a driver by ID
func (r *DriverRepository) GetByID(id uuid.UUID) (*models.BusDriver, error) {
	var driver models.BusDriver
	err := r.db.Preload("User").Preload("Documents").First(&driver, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

// GetByUserID retrieves the driver record of a user
func (r *DriverRepository) GetByUserID(userID uuid.UUID) (*models.BusDriver, error) {
	var driver models.BusDriver
	err := r.db.First(&driver, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

// GetAll retrieves all drivers with pagination
func (r *DriverRepository) GetAll(limit, offset int) ([]models.BusDriver, int64, error) {
	var drivers []models.BusDriver
	var total int64

	if err := r.db.Model(&models.BusDriver{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").Order("created_at").Limit(limit).Offset(offset).Find(&drivers).Error
	if err != nil {
		return nil, 0, err
	}

	return drivers, total, nil
}

// SetActive activates or deactivates a driver
func (r *DriverRepository) SetActive(id uuid.UUID, active bool) error {
	return r.db.Model(&models.BusDriver{}).Where("id = ?", id).Update("is_active", active).Error
}
