package repository

import (
	"time"

	"bustrip-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create stores a notification and one delivery row per recipient
func (r *NotificationRepository) Create(notification *models.Notification, recipients []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Recipients").Create(notification).Error; err != nil {
			return err
		}
		if len(recipients) == 0 {
			return nil
		}

		rows := make([]models.UserNotification, 0, len(recipients))
		for _, userID := range recipients {
			rows = append(rows, models.UserNotification{
				NotificationID: notification.ID,
				UserID:         userID,
			})
		}
		return tx.Omit("Notification", "User").CreateInBatches(rows, 100).Error
	})
}

// GetForUser retrieves the notifications delivered to a user, newest first
func (r *NotificationRepository) GetForUser(userID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.UserNotification, int64, error) {
	var rows []models.UserNotification
	var total int64

	query := r.db.Model(&models.UserNotification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Notification").Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// MarkRead marks one delivery of a user as read
func (r *NotificationRepository) MarkRead(id, userID uuid.UUID, at time.Time) (int64, error) {
	result := r.db.Model(&models.UserNotification{}).
		Where("id = ? AND user_id = ? AND read_at IS NULL", id, userID).
		Update("read_at", at)
	return result.RowsAffected, result.Error
}

// MarkAllRead marks every unread delivery of a user as read
func (r *NotificationRepository) MarkAllRead(userID uuid.UUID, at time.Time) (int64, error) {
	result := r.db.Model(&models.UserNotification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", at)
	return result.RowsAffected, result.Error
}
