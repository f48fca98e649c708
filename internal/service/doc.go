// Package service implements the business logic layer for the ClubHub API.
//
// The service package contains all domain logic, authorization rules, and
// orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Authorization
//
// Workflow services resolve the club first and check the actor against its
// member or officer set through the Guard before touching any resource.
// Authorization failures are reported before validation failures.
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrClubNotFound   = errors.New("club not found")
//	    ErrNotClubMember  = errors.New("not a member of this club")
//	)
//
// # Example Usage
//
//	service := NewEventService(EventServiceConfig{
//	    EventRepo:    eventRepository,
//	    ClubRepo:     clubRepository,
//	    UserRepo:     userRepository,
//	    Notification: notificationService,
//	})
//	event, err := service.Create(ctx, userID, model.CreateEventRequest{...})
package service
