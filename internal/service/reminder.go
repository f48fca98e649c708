package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/forgo/clubhub/api/internal/model"
)

// ReminderService sends same-day event reminders to attendees. It is driven
// by the daily reminder job but can also be invoked directly.
type ReminderService struct {
	eventRepo    EventRepository
	notification *NotificationService
	logger       *slog.Logger
}

// ReminderServiceConfig holds configuration for the reminder service
type ReminderServiceConfig struct {
	EventRepo    EventRepository
	Notification *NotificationService
	Logger       *slog.Logger
}

// NewReminderService creates a new reminder service
func NewReminderService(cfg ReminderServiceConfig) *ReminderService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ReminderService{
		eventRepo:    cfg.EventRepo,
		notification: cfg.Notification,
		logger:       logger,
	}
}

// Scan finds every event falling on the given calendar day and dispatches a
// reminder to each attendee. The scan is not idempotent across invocations:
// running it twice on the same day re-sends reminders. Returns the number of
// reminder notifications created.
func (s *ReminderService) Scan(ctx context.Context, day time.Time) (int, error) {
	events, err := s.eventRepo.GetByDay(ctx, day)
	if err != nil {
		return 0, fmt.Errorf("events for day: %w", err)
	}

	sent := 0
	for _, event := range events {
		if len(event.Attendees) == 0 {
			continue
		}

		count := s.notification.Dispatch(ctx, model.NotificationTypeEventReminder,
			fmt.Sprintf("Reminder: %q is happening today", event.Title),
			event.Attendees,
			model.NotificationRefs{Club: event.ClubID, Event: event.ID},
		)
		sent += count

		s.logger.Info("event reminders dispatched",
			"event_id", event.ID,
			"attendees", len(event.Attendees),
			"delivered", count,
		)
	}
	return sent, nil
}
