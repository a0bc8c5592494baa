package repository

import (
	"bustrip-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TripChangeLogRepository appends and reads trip status history
type TripChangeLogRepository struct {
	db *gorm.DB
}

// NewTripChangeLogRepository creates a new change log repository
func NewTripChangeLogRepository(db *gorm.DB) *TripChangeLogRepository {
	return &TripChangeLogRepository{db: db}
}

// Append inserts one change log entry
func (r *TripChangeLogRepository) Append(entry *models.TripChangeLog) error {
	return r.db.Create(entry).Error
}

// GetByTripID retrieves the history of a trip, oldest first
func (r *TripChangeLogRepository) GetByTripID(tripID uuid.UUID) ([]models.TripChangeLog, error) {
	var entries []models.TripChangeLog
	err := r.db.Where("trip_id = ?", tripID).Order("changed_at ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
