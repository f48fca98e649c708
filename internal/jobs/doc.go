// Package jobs implements background job processing for the ClubHub API.
//
// The jobs package contains scheduled tasks that run independently of HTTP
// request handling.
//
// # Job Types
//
// Available background jobs:
//
//   - ReminderScanner: Daily same-day event reminder fan-out
//
// # Lifecycle
//
// Jobs expose Start/Stop and are wired in the server entrypoint:
//
//	scanner := jobs.NewReminderScanner(reminderService, 24*time.Hour)
//	scanner.Start()
//	defer scanner.Stop()
//
// # Error Handling
//
// Jobs log errors but don't crash the application. A failed scan is retried
// on the next tick.
package jobs
