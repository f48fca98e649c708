package service

import (
	"context"
	"log/slog"

	"github.com/forgo/clubhub/api/internal/model"
)

// NotificationRepository defines the interface for notification storage
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListForUser(ctx context.Context, userID string) ([]*model.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID string) (*model.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, notificationID, userID string) (*model.Notification, error)
}

// NotificationService creates notifications for workflow events and serves
// the per-user notification feed.
type NotificationService struct {
	repo   NotificationRepository
	logger *slog.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo NotificationRepository, logger *slog.Logger) *NotificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{repo: repo, logger: logger}
}

// Dispatch fans a notification out to each recipient. Delivery is best
// effort: a failed insert is logged and skipped, never failing the workflow
// operation that triggered it. Duplicate recipients collapse to one delivery.
// Returns the number of notifications created.
func (s *NotificationService) Dispatch(ctx context.Context, notificationType, message string, recipients []string, refs model.NotificationRefs) int {
	created := 0
	for _, userID := range model.DedupIDs(recipients) {
		notification := &model.Notification{
			UserID:       userID,
			Type:         notificationType,
			Message:      message,
			Link:         refs.Link,
			RelatedClub:  refs.Club,
			RelatedEvent: refs.Event,
			RelatedTask:  refs.Task,
		}

		if err := s.repo.Create(ctx, notification); err != nil {
			s.logger.Error("notification delivery failed",
				"type", notificationType,
				"user_id", userID,
				"error", err,
			)
			continue
		}
		created++
	}
	return created
}

// List returns all notifications for the user, newest first
func (s *NotificationService) List(ctx context.Context, userID string) ([]*model.Notification, error) {
	return s.repo.ListForUser(ctx, userID)
}

// MarkRead marks one of the user's notifications as read. A notification id
// owned by another user reads as not found.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID string) (*model.Notification, error) {
	notification, err := s.repo.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}
	return notification, nil
}

// MarkAllRead marks every unread notification for the user as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}

// Delete removes one of the user's notifications from their feed. A
// notification id owned by another user reads as not found.
func (s *NotificationService) Delete(ctx context.Context, notificationID, userID string) error {
	notification, err := s.repo.Delete(ctx, notificationID, userID)
	if err != nil {
		return err
	}
	if notification == nil {
		return ErrNotificationNotFound
	}
	return nil
}
