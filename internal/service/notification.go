package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bustrip-backend/internal/database/models"
	apperrors "bustrip-backend/internal/errors"
	"bustrip-backend/internal/logger"
	"bustrip-backend/internal/repository"

	"github.com/google/uuid"
)

// Target addresses a notification
type Target struct {
	Kind   models.TargetKind
	UserID uuid.UUID
	Role   models.SystemRole
}

// ToUser addresses a single user
func ToUser(userID uuid.UUID) Target {
	return Target{Kind: models.TargetKindUser, UserID: userID}
}

// ToRole addresses every active user holding a system role
func ToRole(role models.SystemRole) Target {
	return Target{Kind: models.TargetKindRole, Role: role}
}

// Broadcast addresses every active user
func Broadcast() Target {
	return Target{Kind: models.TargetKindBroadcast}
}

// Message is a notification to deliver
type Message struct {
	Title       string
	Message     string
	FullMessage string
	Target      Target
}

// Publisher hands stored notifications to a delivery channel
type Publisher interface {
	Publish(ctx context.Context, notification *models.Notification, recipients []uuid.UUID) error
}

// LogPublisher publishes notifications to the structured log
type LogPublisher struct{}

// Publish logs the notification with its recipients
func (LogPublisher) Publish(ctx context.Context, notification *models.Notification, recipients []uuid.UUID) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"notification_id": notification.ID.String(),
		"title":           notification.Title,
		"target":          string(notification.TargetKind),
		"recipients":      len(recipients),
	}).Info("notification published")
	return nil
}

// NotificationResponse represents one notification delivered to a user
type NotificationResponse struct {
	ID             uuid.UUID  `json:"id"`
	NotificationID uuid.UUID  `json:"notification_id"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	FullMessage    string     `json:"full_message,omitempty"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      string     `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// NotificationService resolves recipients, stores notifications and publishes them
type NotificationService struct {
	users         repository.UserRepositoryInterface
	notifications repository.NotificationRepositoryInterface
	publisher     Publisher
	async         bool
	now           func() time.Time
	wg            sync.WaitGroup
}

// NewNotificationService creates a new notification service. A nil publisher logs notifications.
func NewNotificationService(
	users repository.UserRepositoryInterface,
	notifications repository.NotificationRepositoryInterface,
	publisher Publisher,
	async bool,
) *NotificationService {
	if publisher == nil {
		publisher = LogPublisher{}
	}
	return &NotificationService{
		users:         users,
		notifications: notifications,
		publisher:     publisher,
		async:         async,
		now:           time.Now,
	}
}

// Notify delivers msg without ever failing the caller. Failures are logged.
func (s *NotificationService) Notify(ctx context.Context, msg Message) {
	if !s.async {
		s.dispatch(ctx, msg)
		return
	}

	detached := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.dispatch(detached, msg)
	}()
}

// Wait blocks until every asynchronous dispatch has finished
func (s *NotificationService) Wait() {
	s.wg.Wait()
}

func (s *NotificationService) dispatch(ctx context.Context, msg Message) {
	log := logger.WithContext(ctx).WithField("title", msg.Title)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("notification dispatch panicked: %v", r)
		}
	}()

	if err := s.deliver(ctx, msg); err != nil {
		log.WithError(err).Error("failed to deliver notification")
	}
}

func (s *NotificationService) deliver(ctx context.Context, msg Message) error {
	recipients, err := s.resolve(msg.Target)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		logger.WithContext(ctx).WithField("target", string(msg.Target.Kind)).Debug("notification has no recipients")
		return nil
	}

	notification := &models.Notification{
		BaseModel:   models.BaseModel{CreatedBy: "system"},
		Title:       msg.Title,
		Message:     msg.Message,
		FullMessage: msg.FullMessage,
		TargetKind:  msg.Target.Kind,
		TargetValue: targetValue(msg.Target),
	}
	if err := s.notifications.Create(notification, recipients); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	if err := s.publisher.Publish(ctx, notification, recipients); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

func (s *NotificationService) resolve(target Target) ([]uuid.UUID, error) {
	switch target.Kind {
	case models.TargetKindUser:
		if target.UserID == uuid.Nil {
			return nil, nil
		}
		return []uuid.UUID{target.UserID}, nil
	case models.TargetKindRole:
		users, err := s.users.GetActiveByRole(target.Role)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve role recipients: %w", err)
		}
		return userIDs(users), nil
	case models.TargetKindBroadcast:
		users, err := s.users.GetAllActive()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve broadcast recipients: %w", err)
		}
		return userIDs(users), nil
	}
	return nil, fmt.Errorf("unknown notification target %q", target.Kind)
}

func targetValue(target Target) string {
	switch target.Kind {
	case models.TargetKindUser:
		return target.UserID.String()
	case models.TargetKindRole:
		return string(target.Role)
	}
	return ""
}

func userIDs(users []models.AppUser) []uuid.UUID {
	ids := make([]uuid.UUID, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	return ids
}

// ListForUser retrieves the notifications of the actor, newest first
func (s *NotificationService) ListForUser(actor Actor, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error) {
	if actor.UserID == uuid.Nil {
		return nil, apperrors.ErrMissingActor
	}
	limit, offset, page, pageSize := normalizePagination(page, pageSize)

	rows, total, err := s.notifications.GetForUser(actor.UserID, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	responses := make([]NotificationResponse, len(rows))
	for i := range rows {
		responses[i] = NotificationResponse{
			ID:             rows[i].ID,
			NotificationID: rows[i].NotificationID,
			Title:          rows[i].Notification.Title,
			Message:        rows[i].Notification.Message,
			FullMessage:    rows[i].Notification.FullMessage,
			ReadAt:         rows[i].ReadAt,
			CreatedAt:      rows[i].CreatedAt.Format(time.RFC3339),
		}
	}

	return &NotificationListResponse{
		Notifications: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// MarkRead marks one notification of the actor as read
func (s *NotificationService) MarkRead(actor Actor, id uuid.UUID) error {
	if actor.UserID == uuid.Nil {
		return apperrors.ErrMissingActor
	}
	affected, err := s.notifications.MarkRead(id, actor.UserID, s.now())
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks every unread notification of the actor as read
func (s *NotificationService) MarkAllRead(actor Actor) (int64, error) {
	if actor.UserID == uuid.Nil {
		return 0, apperrors.ErrMissingActor
	}
	affected, err := s.notifications.MarkAllRead(actor.UserID, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return affected, nil
}
