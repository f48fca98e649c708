package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Club Errors =====
var (
	ErrClubNotFound   = errors.New("club not found")
	ErrNotClubMember  = errors.New("not a member of this club")
	ErrNotClubOfficer = errors.New("not an officer of this club")
)

// ===== User Errors =====
var (
	ErrUserNotFound = errors.New("user not found")
)

// ===== Event Errors =====
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrAlreadyRSVPd     = errors.New("already attending this event")
	ErrEmptyUpdate      = errors.New("no fields to update")
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrPhotoRequired    = errors.New("photo_url is required")
	ErrNotEventAttendee = errors.New("not an attendee of this event")
	ErrEventClubGone    = errors.New("club for this event no longer exists")
)

// ===== Task Errors =====
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrNotTaskAssignee   = errors.New("not the assignee of this task")
	ErrTaskCompleted     = errors.New("task is already completed")
	ErrInvalidAssignee   = errors.New("assignee is not a member of this club")
	ErrInvalidTransition = errors.New("invalid task status transition")
)

// ===== Sponsorship Errors =====
var (
	ErrSponsorshipNotFound = errors.New("sponsorship request not found")
	ErrSponsorshipResolved = errors.New("sponsorship request already resolved")
	ErrInvalidResolution   = errors.New("status must be approved or rejected")
)

// ===== Feedback Errors =====
var (
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrInvalidFeedback  = errors.New("feedback message is empty or too long")
)

// ===== Notification Errors =====
var (
	ErrNotificationNotFound = errors.New("notification not found")
)
