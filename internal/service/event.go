package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/forgo/clubhub/api/internal/model"
)

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Get(ctx context.Context, id string) (*model.Event, error)
	Update(ctx context.Context, eventID string, req *model.UpdateEventRequest) (*model.Event, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]*model.Event, error)
	GetByClub(ctx context.Context, clubID string) ([]*model.Event, error)
	GetByCreator(ctx context.Context, userID string) ([]*model.Event, error)
	GetByClubs(ctx context.Context, clubIDs []string) ([]*model.Event, error)
	GetByDay(ctx context.Context, day time.Time) ([]*model.Event, error)
	AddAttendee(ctx context.Context, eventID, userID string) (*model.Event, error)
	AddGalleryEntry(ctx context.Context, eventID string, entry model.GalleryEntry) (*model.Event, error)
	SetGallery(ctx context.Context, eventID string, gallery []model.GalleryEntry) (*model.Event, error)
}

// EventService handles event workflows: scheduling, edits, RSVPs and the
// photo gallery.
type EventService struct {
	eventRepo    EventRepository
	clubRepo     ClubRepository
	userRepo     UserRepository
	guard        *Guard
	notification *NotificationService
}

// EventServiceConfig holds configuration for the event service
type EventServiceConfig struct {
	EventRepo    EventRepository
	ClubRepo     ClubRepository
	UserRepo     UserRepository
	Guard        *Guard
	Notification *NotificationService
}

// NewEventService creates a new event service
func NewEventService(cfg EventServiceConfig) *EventService {
	return &EventService{
		eventRepo:    cfg.EventRepo,
		clubRepo:     cfg.ClubRepo,
		userRepo:     cfg.UserRepo,
		guard:        cfg.Guard,
		notification: cfg.Notification,
	}
}

// Create schedules a new event. Only officers of the club may create events.
func (s *EventService) Create(ctx context.Context, userID string, req model.CreateEventRequest) (*model.Event, error) {
	if _, err := s.guard.OfficerClub(ctx, req.ClubID, userID); err != nil {
		return nil, err
	}

	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		ClubID:      req.ClubID,
		CreatedBy:   userID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// Get retrieves an event. Event details are a public read.
func (s *EventService) Get(ctx context.Context, eventID string) (*model.Event, error) {
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// ListAll retrieves every event. The listing is a public read.
func (s *EventService) ListAll(ctx context.Context) ([]*model.Event, error) {
	return s.eventRepo.GetAll(ctx)
}

// Gallery retrieves an event's photo gallery. The gallery is a public read.
func (s *EventService) Gallery(ctx context.Context, eventID string) ([]model.GalleryEntry, error) {
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if event.Gallery == nil {
		return []model.GalleryEntry{}, nil
	}
	return event.Gallery, nil
}

// ListByClub retrieves a club's events for one of its members.
func (s *EventService) ListByClub(ctx context.Context, userID, clubID string) ([]*model.Event, error) {
	if _, err := s.guard.MemberClub(ctx, clubID, userID); err != nil {
		return nil, err
	}
	return s.eventRepo.GetByClub(ctx, clubID)
}

// ListMine retrieves events created by the user.
func (s *EventService) ListMine(ctx context.Context, userID string) ([]*model.Event, error) {
	return s.eventRepo.GetByCreator(ctx, userID)
}

// ListJoined retrieves events across every club the user belongs to.
func (s *EventService) ListJoined(ctx context.Context, userID string) ([]*model.Event, error) {
	clubs, err := s.clubRepo.GetByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list joined clubs: %w", err)
	}

	clubIDs := make([]string, 0, len(clubs))
	for _, club := range clubs {
		clubIDs = append(clubIDs, club.ID)
	}
	return s.eventRepo.GetByClubs(ctx, clubIDs)
}

// Update applies a partial edit to an event and notifies attendees. Only
// officers of the owning club may edit; the patchable fields are fixed and
// everything else on the record is untouchable.
func (s *EventService) Update(ctx context.Context, userID, eventID string, req model.UpdateEventRequest) (*model.Event, error) {
	_, club, err := s.resolveEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.RequireOfficer(club, userID); err != nil {
		return nil, err
	}

	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	if errs := validateEventPatch(req); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	updated, err := s.eventRepo.Update(ctx, eventID, &req)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	if updated == nil {
		return nil, ErrEventNotFound
	}

	s.notification.Dispatch(ctx, model.NotificationTypeEventEdited,
		fmt.Sprintf("The event %q has been updated", updated.Title),
		updated.Attendees,
		model.NotificationRefs{Club: updated.ClubID, Event: updated.ID},
	)

	return updated, nil
}

// Delete removes an event. Only officers of the owning club may delete.
// Sponsorship requests for the event survive as historical records.
func (s *EventService) Delete(ctx context.Context, userID, eventID string) error {
	_, club, err := s.resolveEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.guard.RequireOfficer(club, userID); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, eventID)
}

// RSVP adds the user to the attendee set. Any authenticated user may RSVP;
// a repeated RSVP is a conflict.
func (s *EventService) RSVP(ctx context.Context, userID, eventID string) (*model.Event, error) {
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if event.IsAttendee(userID) {
		return nil, ErrAlreadyRSVPd
	}

	updated, err := s.eventRepo.AddAttendee(ctx, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("add attendee: %w", err)
	}
	if updated == nil {
		// Conditional write rejected: a concurrent RSVP won the race.
		return nil, ErrAlreadyRSVPd
	}
	return updated, nil
}

// Attendees lists the event's attendees with directory display data. Only
// officers of the owning club may view the list.
func (s *EventService) Attendees(ctx context.Context, userID, eventID string) ([]model.AttendeeInfo, error) {
	event, club, err := s.resolveEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.RequireOfficer(club, userID); err != nil {
		return nil, err
	}

	info, err := s.userRepo.GetDisplayInfo(ctx, event.Attendees)
	if err != nil {
		return nil, fmt.Errorf("attendee display info: %w", err)
	}

	attendees := make([]model.AttendeeInfo, 0, len(event.Attendees))
	for _, attendeeID := range event.Attendees {
		attendee := model.AttendeeInfo{UserID: attendeeID}
		if display, ok := info[model.CanonicalID(attendeeID)]; ok {
			attendee.Name = display.Name
			attendee.Email = display.Email
		}
		attendees = append(attendees, attendee)
	}
	return attendees, nil
}

// UploadGalleryPhoto records an already-stored photo in the event gallery and
// notifies the attendees and the event creator. Only attendees may upload.
func (s *EventService) UploadGalleryPhoto(ctx context.Context, userID, eventID string, req model.UploadGalleryPhotoRequest) (*model.Event, error) {
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if !event.IsAttendee(userID) {
		return nil, ErrNotEventAttendee
	}
	if req.PhotoURL == "" {
		return nil, ErrPhotoRequired
	}

	entry := model.GalleryEntry{
		ID:         uuid.New().String(),
		Uploader:   userID,
		PhotoURL:   req.PhotoURL,
		UploadedOn: time.Now().UTC(),
	}

	updated, err := s.eventRepo.AddGalleryEntry(ctx, eventID, entry)
	if err != nil {
		return nil, fmt.Errorf("add gallery entry: %w", err)
	}
	if updated == nil {
		return nil, ErrEventNotFound
	}

	// Every attendee plus the creator hears about new photos, the uploader
	// included. Dispatch collapses the overlap.
	recipients := append(append([]string{}, updated.Attendees...), updated.CreatedBy)
	s.notification.Dispatch(ctx, model.NotificationTypeGalleryPhoto,
		fmt.Sprintf("A new photo was added to %q", updated.Title),
		recipients,
		model.NotificationRefs{Club: updated.ClubID, Event: updated.ID},
	)

	return updated, nil
}

// DeleteGalleryPhoto removes a photo from the event gallery. Only officers of
// the owning club may remove photos. The reference is an entry id, with
// locator equality as a fallback for legacy entries stored without one.
func (s *EventService) DeleteGalleryPhoto(ctx context.Context, userID, eventID, photoRef string) (*model.Event, error) {
	event, club, err := s.resolveEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.RequireOfficer(club, userID); err != nil {
		return nil, err
	}

	surviving := make([]model.GalleryEntry, 0, len(event.Gallery))
	for _, entry := range event.Gallery {
		if entry.Matches(photoRef) {
			continue
		}
		surviving = append(surviving, entry)
	}
	if len(surviving) == len(event.Gallery) {
		return nil, ErrPhotoNotFound
	}

	updated, err := s.eventRepo.SetGallery(ctx, eventID, surviving)
	if err != nil {
		return nil, fmt.Errorf("set gallery: %w", err)
	}
	if updated == nil {
		return nil, ErrEventNotFound
	}
	return updated, nil
}

// resolveEvent loads an event and its owning club. A dangling club reference
// is surfaced as an internal inconsistency rather than a plain not-found.
func (s *EventService) resolveEvent(ctx context.Context, eventID string) (*model.Event, *model.Club, error) {
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, nil, ErrEventNotFound
	}

	club, err := s.clubRepo.Get(ctx, event.ClubID)
	if err != nil {
		return nil, nil, fmt.Errorf("get club: %w", err)
	}
	if club == nil {
		return nil, nil, ErrEventClubGone
	}
	return event, club, nil
}

func validateEventPatch(req model.UpdateEventRequest) []model.FieldError {
	var errs []model.FieldError
	if req.Title != nil {
		if *req.Title == "" {
			errs = append(errs, model.FieldError{Field: "title", Message: "title cannot be empty"})
		} else if len(*req.Title) > model.MaxEventTitleLength {
			errs = append(errs, model.FieldError{Field: "title", Message: "title exceeds maximum length"})
		}
	}
	if req.Description != nil && len(*req.Description) > model.MaxEventDescriptionLength {
		errs = append(errs, model.FieldError{Field: "description", Message: "description exceeds maximum length"})
	}
	if req.Date != nil && req.Date.IsZero() {
		errs = append(errs, model.FieldError{Field: "date", Message: "date cannot be empty"})
	}
	if req.Location != nil {
		if *req.Location == "" {
			errs = append(errs, model.FieldError{Field: "location", Message: "location cannot be empty"})
		} else if len(*req.Location) > model.MaxEventLocationLength {
			errs = append(errs, model.FieldError{Field: "location", Message: "location exceeds maximum length"})
		}
	}
	return errs
}
