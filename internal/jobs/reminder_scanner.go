package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/forgo/clubhub/api/internal/service"
)

// ReminderScanner runs the daily event reminder scan
type ReminderScanner struct {
	reminderService *service.ReminderService
	interval        time.Duration
	logger          *slog.Logger
	stopCh          chan struct{}
	wg              sync.WaitGroup
	running         bool
	mu              sync.Mutex
}

// NewReminderScanner creates a new reminder scanner job
func NewReminderScanner(reminderService *service.ReminderService, interval time.Duration, logger *slog.Logger) *ReminderScanner {
	if interval == 0 {
		interval = 24 * time.Hour // Default daily scan
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReminderScanner{
		reminderService: reminderService,
		interval:        interval,
		logger:          logger,
		stopCh:          make(chan struct{}),
	}
}

// Start begins the reminder scanner job
func (s *ReminderScanner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	s.logger.Info("reminder scanner started", "interval", s.interval)
}

// Stop gracefully stops the reminder scanner job
func (s *ReminderScanner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	s.logger.Info("reminder scanner stopped")
}

// run is the main loop
func (s *ReminderScanner) run() {
	defer s.wg.Done()

	// Run immediately on start (but with a short delay to let services initialize)
	time.Sleep(5 * time.Second)
	s.scan()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.scan()
		case <-s.stopCh:
			return
		}
	}
}

// scan dispatches reminders for today's events
func (s *ReminderScanner) scan() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sent, err := s.reminderService.Scan(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("reminder scan failed", "error", err)
		return
	}
	s.logger.Info("reminder scan complete", "reminders_sent", sent)
}

// RunOnce runs the reminder scan once (for testing or manual trigger)
func (s *ReminderScanner) RunOnce(ctx context.Context, day time.Time) (int, error) {
	return s.reminderService.Scan(ctx, day)
}

// IsRunning returns whether the scanner is running
func (s *ReminderScanner) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
