package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/forgo/clubhub/api/internal/database"
	"github.com/forgo/clubhub/api/internal/model"
)

// EventRepository handles event data access, including the embedded attendee
// and gallery arrays.
type EventRepository struct {
	db database.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `
		CREATE event CONTENT {
			title: $title,
			description: IF $description IS NOT NULL THEN $description ELSE NONE END,
			date: <datetime> $date,
			location: $location,
			club: $club,
			created_by: $created_by,
			attendees: [],
			gallery: [],
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"title":       event.Title,
		"description": nilIfEmpty(event.Description),
		"date":        event.Date.UTC().Format(time.RFC3339),
		"location":    event.Location,
		"club":        fullRecordID("club", event.ClubID),
		"created_by":  fullRecordID("user", event.CreatedBy),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	event.ID = created.ID
	event.CreatedOn = created.CreatedOn
	event.UpdatedOn = created.UpdatedOn
	event.Attendees = []string{}
	event.Gallery = []model.GalleryEntry{}
	return nil
}

// Get retrieves an event by ID. Returns nil when the event does not exist.
func (r *EventRepository) Get(ctx context.Context, id string) (*model.Event, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseEventResult(result)
}

// Update applies a partial edit. Only the allow-listed fields in the request
// are written; club, creator, attendees and gallery are never touched here.
func (r *EventRepository) Update(ctx context.Context, eventID string, req *model.UpdateEventRequest) (*model.Event, error) {
	query := `UPDATE type::record($event_id) SET updated_on = time::now()`
	vars := map[string]interface{}{"event_id": eventID}

	if req.Title != nil {
		query += `, title = $title`
		vars["title"] = *req.Title
	}
	if req.Description != nil {
		query += `, description = $description`
		vars["description"] = *req.Description
	}
	if req.Date != nil {
		query += `, date = <datetime> $date`
		vars["date"] = req.Date.UTC().Format(time.RFC3339)
	}
	if req.Location != nil {
		query += `, location = $location`
		vars["location"] = *req.Location
	}

	query += ` RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseEventResult(result)
}

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}
	return r.db.Execute(ctx, query, vars)
}

// GetAll retrieves every event, soonest first
func (r *EventRepository) GetAll(ctx context.Context) ([]*model.Event, error) {
	query := `SELECT * FROM event ORDER BY date ASC`
	return r.queryEvents(ctx, query, map[string]interface{}{})
}

// GetByClub retrieves all events for a club, soonest first
func (r *EventRepository) GetByClub(ctx context.Context, clubID string) ([]*model.Event, error) {
	query := `SELECT * FROM event WHERE club = $club ORDER BY date ASC`
	vars := map[string]interface{}{"club": fullRecordID("club", clubID)}
	return r.queryEvents(ctx, query, vars)
}

// GetByCreator retrieves all events created by the user
func (r *EventRepository) GetByCreator(ctx context.Context, userID string) ([]*model.Event, error) {
	query := `SELECT * FROM event WHERE created_by = $created_by ORDER BY date ASC`
	vars := map[string]interface{}{"created_by": fullRecordID("user", userID)}
	return r.queryEvents(ctx, query, vars)
}

// GetByClubs retrieves all events belonging to any of the given clubs
func (r *EventRepository) GetByClubs(ctx context.Context, clubIDs []string) ([]*model.Event, error) {
	if len(clubIDs) == 0 {
		return []*model.Event{}, nil
	}

	records := make([]string, 0, len(clubIDs))
	for _, id := range model.DedupIDs(clubIDs) {
		records = append(records, fullRecordID("club", id))
	}

	query := `SELECT * FROM event WHERE club IN $clubs ORDER BY date ASC`
	vars := map[string]interface{}{"clubs": records}
	return r.queryEvents(ctx, query, vars)
}

// GetByDay retrieves all events falling on the given calendar day
func (r *EventRepository) GetByDay(ctx context.Context, day time.Time) ([]*model.Event, error) {
	start := time.Date(day.UTC().Year(), day.UTC().Month(), day.UTC().Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	query := `SELECT * FROM event WHERE date >= <datetime> $start AND date < <datetime> $end ORDER BY date ASC`
	vars := map[string]interface{}{
		"start": start.Format(time.RFC3339),
		"end":   end.Format(time.RFC3339),
	}
	return r.queryEvents(ctx, query, vars)
}

// AddAttendee appends the user to the attendee set. The WHERE guard makes the
// write conditional so two concurrent RSVPs cannot double-insert. Returns the
// updated event, or nil when the guard rejected the write.
func (r *EventRepository) AddAttendee(ctx context.Context, eventID, userID string) (*model.Event, error) {
	query := `
		UPDATE type::record($event_id)
		SET attendees += $user_id, updated_on = time::now()
		WHERE attendees CONTAINSNOT $user_id
		RETURN AFTER
	`
	vars := map[string]interface{}{
		"event_id": eventID,
		"user_id":  fullRecordID("user", userID),
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseEventResult(result)
}

// AddGalleryEntry appends a photo entry to the event gallery
func (r *EventRepository) AddGalleryEntry(ctx context.Context, eventID string, entry model.GalleryEntry) (*model.Event, error) {
	query := `
		UPDATE type::record($event_id)
		SET gallery += $entry, updated_on = time::now()
		RETURN AFTER
	`
	vars := map[string]interface{}{
		"event_id": eventID,
		"entry": map[string]interface{}{
			"id":          entry.ID,
			"uploader":    fullRecordID("user", entry.Uploader),
			"photo_url":   entry.PhotoURL,
			"uploaded_on": entry.UploadedOn.UTC().Format(time.RFC3339),
		},
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseEventResult(result)
}

// SetGallery replaces the event gallery wholesale. Used for photo removal,
// where the surviving entries are computed by the caller.
func (r *EventRepository) SetGallery(ctx context.Context, eventID string, gallery []model.GalleryEntry) (*model.Event, error) {
	entries := make([]map[string]interface{}, 0, len(gallery))
	for _, entry := range gallery {
		entries = append(entries, map[string]interface{}{
			"id":          entry.ID,
			"uploader":    entry.Uploader,
			"photo_url":   entry.PhotoURL,
			"uploaded_on": entry.UploadedOn.UTC().Format(time.RFC3339),
		})
	}

	query := `
		UPDATE type::record($event_id)
		SET gallery = $gallery, updated_on = time::now()
		RETURN AFTER
	`
	vars := map[string]interface{}{
		"event_id": eventID,
		"gallery":  entries,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseEventResult(result)
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, vars map[string]interface{}) ([]*model.Event, error) {
	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Event{}, nil
	}

	events := make([]*model.Event, 0, len(records))
	for _, record := range records {
		event, err := parseEventResult(record)
		if err != nil {
			return nil, err
		}
		if event != nil {
			events = append(events, event)
		}
	}
	return events, nil
}

func parseEventResult(result interface{}) (*model.Event, error) {
	data, err := unwrapSingleResult(result)
	if err != nil {
		return nil, fmt.Errorf("event: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	event := &model.Event{
		ID:          convertSurrealID(data["id"]),
		Title:       getString(data, "title"),
		Description: getString(data, "description"),
		Date:        getTime(data, "date"),
		Location:    getString(data, "location"),
		ClubID:      convertSurrealID(data["club"]),
		CreatedBy:   convertSurrealID(data["created_by"]),
		Attendees:   getIDSlice(data, "attendees"),
		Gallery:     parseGalleryEntries(data["gallery"]),
		CreatedOn:   getTime(data, "created_on"),
		UpdatedOn:   getTime(data, "updated_on"),
	}
	if event.Attendees == nil {
		event.Attendees = []string{}
	}
	return event, nil
}

func parseGalleryEntries(raw interface{}) []model.GalleryEntry {
	entries := []model.GalleryEntry{}
	items, ok := raw.([]interface{})
	if !ok {
		return entries
	}

	for _, item := range items {
		data, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		entries = append(entries, model.GalleryEntry{
			ID:         convertSurrealID(data["id"]),
			Uploader:   convertSurrealID(data["uploader"]),
			PhotoURL:   getString(data, "photo_url"),
			UploadedOn: getTime(data, "uploaded_on"),
		})
	}
	return entries
}
