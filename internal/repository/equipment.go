package repository

import (
	"bustrip-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentRepository handles database operations for fleet equipment
type EquipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Create creates a new piece of equipment
func (r *EquipmentRepository) Create(equipment *models.Equipment) error {
	return r.db.Create(equipment).Error
}

// GetByID retrieves equipment by ID
func (r *EquipmentRepository) GetByID(id uuid.UUID) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.Preload("Documents").First(&equipment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// GetByBusNumber retrieves equipment by bus number
func (r *EquipmentRepository) GetByBusNumber(busNumber string) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.First(&equipment, "bus_number = ?", busNumber).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// GetAll retrieves all equipment with pagination
func (r *EquipmentRepository) GetAll(limit, offset int) ([]models.Equipment, int64, error) {
	var equipment []models.Equipment
	var total int64

	if err := r.db.Model(&models.Equipment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("bus_number").Limit(limit).Offset(offset).Find(&equipment).Error
	if err != nil {
		return nil, 0, err
	}

	return equipment, total, nil
}

// SetActive activates or deactivates a piece of equipment
func (r *EquipmentRepository) SetActive(id uuid.UUID, active bool) error {
	return r.db.Model(&models.Equipment{}).Where("id = ?", id).Update("is_active", active).Error
}
