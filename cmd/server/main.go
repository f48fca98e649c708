package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/clubhub/api/internal/config"
	"github.com/forgo/clubhub/api/internal/database"
	"github.com/forgo/clubhub/api/internal/handler"
	"github.com/forgo/clubhub/api/internal/jobs"
	"github.com/forgo/clubhub/api/internal/middleware"
	"github.com/forgo/clubhub/api/internal/repository"
	"github.com/forgo/clubhub/api/internal/service"
	"github.com/forgo/clubhub/api/pkg/jwt"
)

// tokenValidator adapts the JWT service to the auth middleware interface
type tokenValidator struct {
	jwt *jwt.Service
}

func (v *tokenValidator) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return v.jwt.Validate(token)
}

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	clubRepo := repository.NewClubRepository(db)
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	sponsorshipRepo := repository.NewSponsorshipRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	guard := service.NewGuard(clubRepo, logger)
	notificationService := service.NewNotificationService(notificationRepo, logger)

	eventService := service.NewEventService(service.EventServiceConfig{
		EventRepo:    eventRepo,
		ClubRepo:     clubRepo,
		UserRepo:     userRepo,
		Guard:        guard,
		Notification: notificationService,
	})

	taskService := service.NewTaskService(service.TaskServiceConfig{
		TaskRepo:     taskRepo,
		UserRepo:     userRepo,
		Guard:        guard,
		Notification: notificationService,
	})

	sponsorshipService := service.NewSponsorshipService(service.SponsorshipServiceConfig{
		SponsorshipRepo: sponsorshipRepo,
		EventRepo:       eventRepo,
		UserRepo:        userRepo,
		Guard:           guard,
		Notification:    notificationService,
	})

	feedbackService := service.NewFeedbackService(service.FeedbackServiceConfig{
		FeedbackRepo: feedbackRepo,
		UserRepo:     userRepo,
		Guard:        guard,
	})

	reminderService := service.NewReminderService(service.ReminderServiceConfig{
		EventRepo:    eventRepo,
		Notification: notificationService,
		Logger:       logger,
	})

	// Seed demo data in development
	if cfg.IsDevelopment() && os.Getenv("SEED_DEMO") == "true" {
		seederService := service.NewSeederService(db)
		if _, err := seederService.SeedDemo(ctx, os.Getenv("SEED_DEMO_PASSWORD")); err != nil {
			slog.Warn("demo seed failed", slog.String("error", err.Error()))
		}
	}

	// Start background jobs
	var reminderScanner *jobs.ReminderScanner
	if cfg.Reminder.Enabled {
		reminderScanner = jobs.NewReminderScanner(reminderService, cfg.Reminder.Interval, logger)
		reminderScanner.Start()
		defer reminderScanner.Stop()
	}

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	eventHandler := handler.NewEventHandler(eventService)
	taskHandler := handler.NewTaskHandler(taskService)
	sponsorshipHandler := handler.NewSponsorshipHandler(sponsorshipService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Public event reads, no token required
	mux.HandleFunc("GET /v1/events", eventHandler.List)
	mux.HandleFunc("GET /v1/events/{eventId}", eventHandler.Get)
	mux.HandleFunc("GET /v1/events/{eventId}/gallery", eventHandler.Gallery)

	// Protected endpoints
	authMiddleware := middleware.Auth(&tokenValidator{jwt: jwtService})

	// Event endpoints
	mux.Handle("POST /v1/events", authMiddleware(http.HandlerFunc(eventHandler.Create)))
	mux.Handle("GET /v1/events/mine", authMiddleware(http.HandlerFunc(eventHandler.ListMine)))
	mux.Handle("GET /v1/events/joined", authMiddleware(http.HandlerFunc(eventHandler.ListJoined)))
	mux.Handle("PATCH /v1/events/{eventId}", authMiddleware(http.HandlerFunc(eventHandler.Update)))
	mux.Handle("DELETE /v1/events/{eventId}", authMiddleware(http.HandlerFunc(eventHandler.Delete)))
	mux.Handle("POST /v1/events/{eventId}/rsvp", authMiddleware(http.HandlerFunc(eventHandler.RSVP)))
	mux.Handle("GET /v1/events/{eventId}/attendees", authMiddleware(http.HandlerFunc(eventHandler.Attendees)))
	mux.Handle("POST /v1/events/{eventId}/gallery", authMiddleware(http.HandlerFunc(eventHandler.UploadGalleryPhoto)))
	mux.Handle("DELETE /v1/events/{eventId}/gallery/{photoId}", authMiddleware(http.HandlerFunc(eventHandler.DeleteGalleryPhoto)))
	mux.Handle("GET /v1/clubs/{clubId}/events", authMiddleware(http.HandlerFunc(eventHandler.ListByClub)))

	// Task endpoints
	mux.Handle("POST /v1/clubs/{clubId}/tasks", authMiddleware(http.HandlerFunc(taskHandler.Assign)))
	mux.Handle("GET /v1/clubs/{clubId}/tasks", authMiddleware(http.HandlerFunc(taskHandler.ListByClub)))
	mux.Handle("GET /v1/tasks/mine", authMiddleware(http.HandlerFunc(taskHandler.ListMine)))
	mux.Handle("PATCH /v1/tasks/{taskId}/progress", authMiddleware(http.HandlerFunc(taskHandler.UpdateProgress)))
	mux.Handle("POST /v1/tasks/{taskId}/complete", authMiddleware(http.HandlerFunc(taskHandler.Complete)))

	// Sponsorship endpoints
	mux.Handle("POST /v1/events/{eventId}/sponsorships", authMiddleware(http.HandlerFunc(sponsorshipHandler.Submit)))
	mux.Handle("GET /v1/events/{eventId}/sponsorships", authMiddleware(http.HandlerFunc(sponsorshipHandler.ListByEvent)))
	mux.Handle("GET /v1/sponsorships/mine", authMiddleware(http.HandlerFunc(sponsorshipHandler.ListMine)))
	mux.Handle("PATCH /v1/sponsorships/{requestId}/status", authMiddleware(http.HandlerFunc(sponsorshipHandler.Resolve)))

	// Feedback endpoints
	mux.Handle("POST /v1/clubs/{clubId}/feedback", authMiddleware(http.HandlerFunc(feedbackHandler.Submit)))
	mux.Handle("GET /v1/clubs/{clubId}/feedback", authMiddleware(http.HandlerFunc(feedbackHandler.ListByClub)))
	mux.Handle("GET /v1/clubs/{clubId}/feedback/mine", authMiddleware(http.HandlerFunc(feedbackHandler.ListMine)))
	mux.Handle("PATCH /v1/clubs/{clubId}/feedback/{feedbackId}", authMiddleware(http.HandlerFunc(feedbackHandler.Update)))

	// Notification endpoints
	mux.Handle("GET /v1/notifications", authMiddleware(http.HandlerFunc(notificationHandler.List)))
	mux.Handle("POST /v1/notifications/{notificationId}/read", authMiddleware(http.HandlerFunc(notificationHandler.MarkRead)))
	mux.Handle("POST /v1/notifications/read-all", authMiddleware(http.HandlerFunc(notificationHandler.MarkAllRead)))
	mux.Handle("DELETE /v1/notifications/{notificationId}", authMiddleware(http.HandlerFunc(notificationHandler.Delete)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
