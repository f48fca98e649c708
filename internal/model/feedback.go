package model

import (
	"strings"
	"time"
)

// Feedback represents member-submitted feedback for a club. Only the
// original submitter may edit it; there is no delete operation.
type Feedback struct {
	ID          string    `json:"id"`
	ClubID      string    `json:"club_id"`
	SubmittedBy string    `json:"submitted_by"`
	Message     string    `json:"message"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// FeedbackWithSender is feedback enriched with submitter display data for
// officer listings.
type FeedbackWithSender struct {
	Feedback Feedback     `json:"feedback"`
	Sender   *DisplayInfo `json:"sender,omitempty"`
}

// Constraints
const (
	MinFeedbackMessageLength = 1
	MaxFeedbackMessageLength = 2000
)

// ValidFeedbackMessage trims the message and reports whether the trimmed
// form is within bounds. The trimmed message is returned so callers persist
// exactly what was validated.
func ValidFeedbackMessage(message string) (string, bool) {
	trimmed := strings.TrimSpace(message)
	if len(trimmed) < MinFeedbackMessageLength || len(trimmed) > MaxFeedbackMessageLength {
		return trimmed, false
	}
	return trimmed, true
}

// SubmitFeedbackRequest represents a member's feedback submission
type SubmitFeedbackRequest struct {
	Message string `json:"message"`
}

// UpdateFeedbackRequest represents a member editing their own feedback
type UpdateFeedbackRequest struct {
	Message string `json:"message"`
}
