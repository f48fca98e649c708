package model

import "time"

// NotificationType tags what a notification is about. The set is open-ended;
// these are the types the workflows emit today.
const (
	NotificationTypeInvitation          = "invitation"
	NotificationTypeEventEdited         = "event-edited"
	NotificationTypeGalleryPhoto        = "gallery-photo"
	NotificationTypeTaskAssigned        = "task-assigned"
	NotificationTypeTaskCompleted       = "task-completed"
	NotificationTypeSponsorshipRequest  = "sponsorship-request"
	NotificationTypeSponsorshipResponse = "sponsorship-response"
	NotificationTypeEventReminder       = "event-reminder"
)

// Notification is an in-system notification record. Records are created only
// by the dispatcher; the read flag is flipped later through the notification
// endpoints.
type Notification struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"type"`
	Message      string    `json:"message"`
	Link         string    `json:"link,omitempty"`
	RelatedClub  string    `json:"related_club,omitempty"`
	RelatedEvent string    `json:"related_event,omitempty"`
	RelatedTask  string    `json:"related_task,omitempty"`
	CreatedOn    time.Time `json:"created_on"`
	Read         bool      `json:"read"`
}

// NotificationRefs carries the optional entity references attached to a
// dispatched notification.
type NotificationRefs struct {
	Link  string
	Club  string
	Event string
	Task  string
}
