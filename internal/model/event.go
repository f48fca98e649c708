package model

import "time"

// Event represents a scheduled club activity
type Event struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Date        time.Time      `json:"date"`
	Location    string         `json:"location"`
	ClubID      string         `json:"club_id"`
	CreatedBy   string         `json:"created_by"`
	Attendees   []string       `json:"attendees"`
	Gallery     []GalleryEntry `json:"gallery"`
	CreatedOn   time.Time      `json:"created_on"`
	UpdatedOn   time.Time      `json:"updated_on"`
}

// GalleryEntry represents one uploaded photo in an event gallery. PhotoURL is
// an opaque locator issued by the external resource store.
type GalleryEntry struct {
	ID         string    `json:"id"`
	Uploader   string    `json:"uploader"`
	PhotoURL   string    `json:"photo_url"`
	UploadedOn time.Time `json:"uploaded_on"`
}

// Matches reports whether the entry is identified by ref: exact id match
// when the entry carries an id, locator equality as a fallback for legacy
// entries stored without one.
func (g *GalleryEntry) Matches(ref string) bool {
	if g.ID != "" {
		return SameID(g.ID, ref)
	}
	return g.PhotoURL == ref
}

// IsAttendee reports whether userID has RSVP'd to the event.
func (e *Event) IsAttendee(userID string) bool {
	return ContainsID(e.Attendees, userID)
}

// OccursOn reports whether the event falls on the given calendar day,
// ignoring the time component.
func (e *Event) OccursOn(day time.Time) bool {
	y1, m1, d1 := e.Date.UTC().Date()
	y2, m2, d2 := day.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Constraints
const (
	MaxEventTitleLength       = 100
	MaxEventDescriptionLength = 2000
	MaxEventLocationLength    = 200
)

// CreateEventRequest represents a request to create an event
type CreateEventRequest struct {
	ClubID      string    `json:"club_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
}

// Validate returns field errors for missing or out-of-range inputs.
func (r *CreateEventRequest) Validate() []FieldError {
	var errs []FieldError
	if r.ClubID == "" {
		errs = append(errs, FieldError{Field: "club_id", Message: "club_id is required"})
	}
	if r.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > MaxEventTitleLength {
		errs = append(errs, FieldError{Field: "title", Message: "title exceeds maximum length"})
	}
	if len(r.Description) > MaxEventDescriptionLength {
		errs = append(errs, FieldError{Field: "description", Message: "description exceeds maximum length"})
	}
	if r.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "date is required"})
	}
	if r.Location == "" {
		errs = append(errs, FieldError{Field: "location", Message: "location is required"})
	} else if len(r.Location) > MaxEventLocationLength {
		errs = append(errs, FieldError{Field: "location", Message: "location exceeds maximum length"})
	}
	return errs
}

// UpdateEventRequest represents a request to update an event. Only the four
// fields listed here are patchable; club, creator, attendees and gallery can
// never be rewritten through an edit.
type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Location    *string    `json:"location,omitempty"`
}

// IsEmpty reports whether the patch carries no changes.
func (r *UpdateEventRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Date == nil && r.Location == nil
}

// UploadGalleryPhotoRequest carries the locator of an already-stored photo.
type UploadGalleryPhotoRequest struct {
	PhotoURL string `json:"photo_url"`
}

// AttendeeInfo is an attendee id enriched with directory display data.
type AttendeeInfo struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
