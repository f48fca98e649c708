package handler

import (
	"errors"

	"github.com/forgo/clubhub/api/internal/model"
	"github.com/forgo/clubhub/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// Validation errors already carry their own ProblemDetails.
	var pd *model.ProblemDetails
	if errors.As(err, &pd) {
		return pd
	}

	switch {
	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotClubMember),
		errors.Is(err, service.ErrNotClubOfficer),
		errors.Is(err, service.ErrNotTaskAssignee),
		errors.Is(err, service.ErrNotEventAttendee):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrClubNotFound):
		return model.NewNotFoundError("club")
	case errors.Is(err, service.ErrEventNotFound):
		return model.NewNotFoundError("event")
	case errors.Is(err, service.ErrPhotoNotFound):
		return model.NewNotFoundError("gallery photo")
	case errors.Is(err, service.ErrTaskNotFound):
		return model.NewNotFoundError("task")
	case errors.Is(err, service.ErrSponsorshipNotFound):
		return model.NewNotFoundError("sponsorship request")
	case errors.Is(err, service.ErrFeedbackNotFound):
		return model.NewNotFoundError("feedback")
	case errors.Is(err, service.ErrNotificationNotFound):
		return model.NewNotFoundError("notification")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrAlreadyRSVPd),
		errors.Is(err, service.ErrTaskCompleted),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrSponsorshipResolved):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrInvalidAssignee):
		return model.NewValidationError([]model.FieldError{{Field: "member_id", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidFeedback):
		return model.NewValidationError([]model.FieldError{{Field: "message", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidResolution):
		return model.NewValidationError([]model.FieldError{{Field: "status", Message: err.Error()}})
	case errors.Is(err, service.ErrPhotoRequired):
		return model.NewValidationError([]model.FieldError{{Field: "photo_url", Message: err.Error()}})

	// ===== Bad Request Errors → 400 =====
	case errors.Is(err, service.ErrEmptyUpdate):
		return model.NewBadRequestError(err.Error())

	// ===== Dangling References → 404 =====
	// The club behind the event is gone; treat the event as unreachable.
	case errors.Is(err, service.ErrEventClubGone):
		return model.NewNotFoundError("event")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails
// response with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
