package service

import (
	"context"
	"errors"
	"testing"

	"github.com/forgo/clubhub/api/internal/model"
)

func TestNotificationService_Dispatch_CreatesPerRecipient(t *testing.T) {
	t.Parallel()

	svc, sent := recordingNotifier()

	count := svc.Dispatch(context.Background(), model.NotificationTypeTaskAssigned,
		"You have been assigned a new task",
		[]string{"user:aaa", "user:bbb"},
		model.NotificationRefs{Club: "club:robotics", Task: "task:one"},
	)

	if count != 2 {
		t.Errorf("expected 2 deliveries, got %d", count)
	}
	if len(*sent) != 2 {
		t.Fatalf("expected 2 notifications created, got %d", len(*sent))
	}
	first := (*sent)[0]
	if first.Type != model.NotificationTypeTaskAssigned {
		t.Errorf("unexpected type %q", first.Type)
	}
	if first.RelatedClub != "club:robotics" || first.RelatedTask != "task:one" {
		t.Errorf("unexpected refs: %+v", first)
	}
}

func TestNotificationService_Dispatch_DedupsRecipients(t *testing.T) {
	t.Parallel()

	svc, sent := recordingNotifier()

	count := svc.Dispatch(context.Background(), model.NotificationTypeEventEdited,
		"The event has been updated",
		[]string{"user:aaa", "aaa", "user:aaa"},
		model.NotificationRefs{},
	)

	if count != 1 {
		t.Errorf("expected duplicate recipients to collapse to 1 delivery, got %d", count)
	}
	if len(*sent) != 1 {
		t.Errorf("expected 1 notification created, got %d", len(*sent))
	}
}

func TestNotificationService_Dispatch_ContinuesPastFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	repo := &mockNotificationRepo{
		createFunc: func(ctx context.Context, notification *model.Notification) error {
			calls++
			if notification.UserID == "user:broken" {
				return errors.New("insert failed")
			}
			return nil
		},
	}
	svc := NewNotificationService(repo, nil)

	count := svc.Dispatch(context.Background(), model.NotificationTypeEventReminder,
		"Reminder",
		[]string{"user:aaa", "user:broken", "user:bbb"},
		model.NotificationRefs{},
	)

	if calls != 3 {
		t.Errorf("expected all 3 recipients attempted, got %d", calls)
	}
	if count != 2 {
		t.Errorf("expected 2 successful deliveries, got %d", count)
	}
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockNotificationRepo{
		markReadFunc: func(ctx context.Context, notificationID, userID string) (*model.Notification, error) {
			return nil, nil
		},
	}
	svc := NewNotificationService(repo, nil)

	_, err := svc.MarkRead(context.Background(), "notification:other", "user:aaa")
	if !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestNotificationService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockNotificationRepo{
		deleteFunc: func(ctx context.Context, notificationID, userID string) (*model.Notification, error) {
			// Owner-pinned delete matched nothing.
			return nil, nil
		},
	}
	svc := NewNotificationService(repo, nil)

	err := svc.Delete(context.Background(), "notification:other", "user:aaa")
	if !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestNotificationService_Delete_RemovesOwn(t *testing.T) {
	t.Parallel()

	var gotID, gotUser string
	repo := &mockNotificationRepo{
		deleteFunc: func(ctx context.Context, notificationID, userID string) (*model.Notification, error) {
			gotID, gotUser = notificationID, userID
			return &model.Notification{ID: notificationID, UserID: userID}, nil
		},
	}
	svc := NewNotificationService(repo, nil)

	if err := svc.Delete(context.Background(), "notification:one", "user:aaa"); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if gotID != "notification:one" || gotUser != "user:aaa" {
		t.Errorf("delete called with %q %q", gotID, gotUser)
	}
}

func TestNotificationService_MarkRead_ReturnsUpdated(t *testing.T) {
	t.Parallel()

	repo := &mockNotificationRepo{
		markReadFunc: func(ctx context.Context, notificationID, userID string) (*model.Notification, error) {
			return &model.Notification{ID: notificationID, UserID: userID, Read: true}, nil
		},
	}
	svc := NewNotificationService(repo, nil)

	notification, err := svc.MarkRead(context.Background(), "notification:one", "user:aaa")
	if err != nil {
		t.Fatalf("expected mark read to succeed, got %v", err)
	}
	if !notification.Read {
		t.Error("expected notification to be marked read")
	}
}
