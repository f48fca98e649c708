package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/clubhub/api/internal/database"
	"github.com/forgo/clubhub/api/internal/model"
)

// NotificationRepository handles notification data access
type NotificationRepository struct {
	db database.Database
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db database.Database) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new unread notification
func (r *NotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	query := `
		CREATE notification CONTENT {
			user: $user,
			type: $type,
			message: $message,
			link: IF $link IS NOT NULL THEN $link ELSE NONE END,
			related_club: IF $related_club IS NOT NULL THEN $related_club ELSE NONE END,
			related_event: IF $related_event IS NOT NULL THEN $related_event ELSE NONE END,
			related_task: IF $related_task IS NOT NULL THEN $related_task ELSE NONE END,
			read: false,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"user":          fullRecordID("user", notification.UserID),
		"type":          notification.Type,
		"message":       notification.Message,
		"link":          nilIfEmpty(notification.Link),
		"related_club":  nilIfEmpty(notification.RelatedClub),
		"related_event": nilIfEmpty(notification.RelatedEvent),
		"related_task":  nilIfEmpty(notification.RelatedTask),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	notification.ID = created.ID
	notification.CreatedOn = created.CreatedOn
	notification.Read = false
	return nil
}

// ListForUser retrieves all notifications for the user, newest first
func (r *NotificationRepository) ListForUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	query := `SELECT * FROM notification WHERE user = $user ORDER BY created_on DESC`
	vars := map[string]interface{}{"user": fullRecordID("user", userID)}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Notification{}, nil
	}

	notifications := make([]*model.Notification, 0, len(records))
	for _, record := range records {
		notification, err := parseNotificationResult(record)
		if err != nil {
			return nil, err
		}
		if notification != nil {
			notifications = append(notifications, notification)
		}
	}
	return notifications, nil
}

// MarkRead flips the read flag on the user's own notification. The WHERE pins
// ownership, so another user's notification id reads as absent. Returns nil
// when no record matched.
func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID, userID string) (*model.Notification, error) {
	query := `
		UPDATE type::record($notification_id)
		SET read = true
		WHERE user = $user
		RETURN AFTER
	`
	vars := map[string]interface{}{
		"notification_id": notificationID,
		"user":            fullRecordID("user", userID),
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseNotificationResult(result)
}

// Delete removes the user's own notification. The WHERE pins ownership the
// same way MarkRead does. Returns nil when no record matched.
func (r *NotificationRepository) Delete(ctx context.Context, notificationID, userID string) (*model.Notification, error) {
	query := `
		DELETE type::record($notification_id)
		WHERE user = $user
		RETURN BEFORE
	`
	vars := map[string]interface{}{
		"notification_id": notificationID,
		"user":            fullRecordID("user", userID),
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseNotificationResult(result)
}

// MarkAllRead flips the read flag on every unread notification for the user
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	query := `UPDATE notification SET read = true WHERE user = $user AND read = false`
	vars := map[string]interface{}{"user": fullRecordID("user", userID)}
	return r.db.Execute(ctx, query, vars)
}

func parseNotificationResult(result interface{}) (*model.Notification, error) {
	data, err := unwrapSingleResult(result)
	if err != nil {
		return nil, fmt.Errorf("notification: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	notification := &model.Notification{
		ID:           convertSurrealID(data["id"]),
		UserID:       convertSurrealID(data["user"]),
		Type:         getString(data, "type"),
		Message:      getString(data, "message"),
		Link:         getString(data, "link"),
		RelatedClub:  convertSurrealID(data["related_club"]),
		RelatedEvent: convertSurrealID(data["related_event"]),
		RelatedTask:  convertSurrealID(data["related_task"]),
		CreatedOn:    getTime(data, "created_on"),
		Read:         getBool(data, "read"),
	}
	return notification, nil
}
