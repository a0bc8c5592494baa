package repository

import (
	"time"

	"bustrip-backend/internal/database/models"
	apperrors "bustrip-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TripRepository handles database operations for trips
type TripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create creates a new trip
func (r *TripRepository) Create(trip *models.Trip) error {
	if trip.Version == 0 {
		trip.Version = 1
	}
	return r.db.Create(trip).Error
}

// GetByID retrieves a trip by ID with its assignments
func (r *TripRepository) GetByID(id uuid.UUID) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.Preload("Assignments").First(&trip, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetByOrganizationID retrieves the trips of an organization with pagination, optionally filtered by status
func (r *TripRepository) GetByOrganizationID(orgID uuid.UUID, status *models.TripStatus, limit, offset int) ([]models.Trip, int64, error) {
	var trips []models.Trip
	var total int64

	query := r.db.Model(&models.Trip{}).Where("organization_id = ?", orgID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}

	return trips, total, nil
}

// Update writes the trip if nobody changed the row since it was read.
// On success the in-memory version is bumped to match the stored one.
func (r *TripRepository) Update(trip *models.Trip) error {
	result := r.db.Model(&models.Trip{}).
		Where("id = ? AND version = ?", trip.ID, trip.Version).
		Updates(map[string]interface{}{
			"group_id":            trip.GroupID,
			"created_for_user_id": trip.CreatedForUserID,
			"title":               trip.Title,
			"origin":              trip.Origin,
			"destination":         trip.Destination,
			"departure_at":        trip.DepartureAt,
			"return_at":           trip.ReturnAt,
			"passenger_count":     trip.PassengerCount,
			"notes":               trip.Notes,
			"quoted_price":        trip.QuotedPrice,
			"status":              trip.Status,
			"cancellation_reason": trip.CancellationReason,
			"version":             trip.Version + 1,
			"updated_at":          time.Now(),
			"updated_by":          trip.UpdatedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTripConflict
	}

	trip.Version++
	return nil
}

// Touch bumps the version of a trip that still has the given status and the
// version carried by trip. Writes to rows hanging off a trip call it in the same
// transaction so concurrent versioned updates of the trip see the change.
func (r *TripRepository) Touch(trip *models.Trip, status models.TripStatus) error {
	result := r.db.Model(&models.Trip{}).
		Where("id = ? AND version = ? AND status = ?", trip.ID, trip.Version, status).
		Updates(map[string]interface{}{
			"version":    trip.Version + 1,
			"updated_at": time.Now(),
			"updated_by": trip.UpdatedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTripConflict
	}

	trip.Version++
	return nil
}

// CountOpenByGroup counts the non-terminal trips of a group
func (r *TripRepository) CountOpenByGroup(groupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Trip{}).
		Where("group_id = ? AND status IN ?", groupID, models.NonTerminalTripStatuses).
		Count(&count).Error
	return count, err
}

// CountOpenCreatedFor counts the non-terminal trips of an organization created for a user
func (r *TripRepository) CountOpenCreatedFor(orgID, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Trip{}).
		Where("organization_id = ? AND created_for_user_id = ? AND status IN ?", orgID, userID, models.NonTerminalTripStatuses).
		Count(&count).Error
	return count, err
}

// ReassignOpenCreatedFor moves the non-terminal trips of one user to another.
// The version is bumped so that concurrent editors see a conflict.
func (r *TripRepository) ReassignOpenCreatedFor(orgID, fromUserID, toUserID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Trip{}).
		Where("organization_id = ? AND created_for_user_id = ? AND status IN ?", orgID, fromUserID, models.NonTerminalTripStatuses).
		Updates(map[string]interface{}{
			"created_for_user_id": toUserID,
			"version":             gorm.Expr("version + 1"),
			"updated_at":          time.Now(),
		})
	return result.RowsAffected, result.Error
}

// GetLiveEndedBefore retrieves live trips whose return time is before t
func (r *TripRepository) GetLiveEndedBefore(t time.Time) ([]models.Trip, error) {
	var trips []models.Trip
	err := r.db.Where("status = ? AND return_at IS NOT NULL AND return_at < ?", models.TripStatusLive, t).
		Order("return_at").Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}
