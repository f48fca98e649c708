package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/forgo/clubhub/api/internal/model"
)

func TestReminderService_Scan_NotifiesAttendees(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	eventRepo := &mockEventRepo{
		getByDayFunc: func(ctx context.Context, d time.Time) ([]*model.Event, error) {
			if !d.Equal(day) {
				t.Errorf("unexpected scan day: %v", d)
			}
			return []*model.Event{
				{
					ID:        "event:morning",
					Title:     "Morning Meetup",
					ClubID:    "club:robotics",
					Attendees: []string{"user:aaa", "user:bbb"},
				},
				{
					ID:        "event:evening",
					Title:     "Evening Social",
					ClubID:    "club:chess",
					Attendees: []string{"user:ccc"},
				},
			}, nil
		},
	}
	notifier, sent := recordingNotifier()
	svc := NewReminderService(ReminderServiceConfig{
		EventRepo:    eventRepo,
		Notification: notifier,
	})

	count, err := svc.Scan(context.Background(), day)
	if err != nil {
		t.Fatalf("expected scan to succeed, got %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 reminders, got %d", count)
	}
	for _, notification := range *sent {
		if notification.Type != model.NotificationTypeEventReminder {
			t.Errorf("unexpected type %q", notification.Type)
		}
		if notification.RelatedEvent == "" {
			t.Errorf("expected event reference on reminder: %+v", notification)
		}
	}
}

func TestReminderService_Scan_SkipsEventsWithoutAttendees(t *testing.T) {
	t.Parallel()

	eventRepo := &mockEventRepo{
		getByDayFunc: func(ctx context.Context, d time.Time) ([]*model.Event, error) {
			return []*model.Event{
				{ID: "event:empty", Title: "Quiet Event", Attendees: nil},
			}, nil
		},
	}
	notifier, sent := recordingNotifier()
	svc := NewReminderService(ReminderServiceConfig{
		EventRepo:    eventRepo,
		Notification: notifier,
	})

	count, err := svc.Scan(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("expected scan to succeed, got %v", err)
	}
	if count != 0 || len(*sent) != 0 {
		t.Errorf("expected no reminders, got count=%d sent=%d", count, len(*sent))
	}
}

func TestReminderService_Scan_PropagatesRepoError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("query failed")
	eventRepo := &mockEventRepo{
		getByDayFunc: func(ctx context.Context, d time.Time) ([]*model.Event, error) {
			return nil, repoErr
		},
	}
	notifier, _ := recordingNotifier()
	svc := NewReminderService(ReminderServiceConfig{
		EventRepo:    eventRepo,
		Notification: notifier,
	})

	_, err := svc.Scan(context.Background(), time.Now())
	if !errors.Is(err, repoErr) {
		t.Errorf("expected wrapped repo error, got %v", err)
	}
}

func TestReminderService_Scan_CountsOnlyDeliveries(t *testing.T) {
	t.Parallel()

	eventRepo := &mockEventRepo{
		getByDayFunc: func(ctx context.Context, d time.Time) ([]*model.Event, error) {
			return []*model.Event{
				{ID: "event:one", Title: "Event One", Attendees: []string{"user:aaa", "user:broken"}},
			}, nil
		},
	}
	repo := &mockNotificationRepo{
		createFunc: func(ctx context.Context, notification *model.Notification) error {
			if notification.UserID == "user:broken" {
				return errors.New("insert failed")
			}
			return nil
		},
	}
	svc := NewReminderService(ReminderServiceConfig{
		EventRepo:    eventRepo,
		Notification: NewNotificationService(repo, nil),
	})

	count, err := svc.Scan(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("expected scan to succeed, got %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 successful delivery, got %d", count)
	}
}
