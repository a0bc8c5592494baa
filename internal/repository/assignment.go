package repository

import (
	"bustrip-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for trip bus assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(assignment *models.TripBusAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.TripBusAssignment, error) {
	var assignment models.TripBusAssignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByTripID retrieves the assignments of a trip with equipment and driver
func (r *AssignmentRepository) GetByTripID(tripID uuid.UUID) ([]models.TripBusAssignment, error) {
	var assignments []models.TripBusAssignment
	err := r.db.Preload("Equipment").Preload("Driver").
		Where("trip_id = ?", tripID).Order("assigned_at").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// Exists checks whether the trip, equipment and driver combination is already assigned
func (r *AssignmentRepository) Exists(tripID, equipmentID, driverID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TripBusAssignment{}).
		Where("trip_id = ? AND equipment_id = ? AND driver_id = ?", tripID, equipmentID, driverID).
		Count(&count).Error
	return count > 0, err
}

// CountByTripID counts the assignments of a trip
func (r *AssignmentRepository) CountByTripID(tripID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TripBusAssignment{}).Where("trip_id = ?", tripID).Count(&count).Error
	return count, err
}

// Delete deletes an assignment
func (r *AssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TripBusAssignment{}, "id = ?", id).Error
}
