package handler

import (
	"net/http"

	"github.com/forgo/clubhub/api/internal/middleware"
	"github.com/forgo/clubhub/api/internal/model"
	"github.com/forgo/clubhub/api/internal/service"
)

// EventHandler handles event HTTP requests
type EventHandler struct {
	svc *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// Create handles POST /v1/events - create a new event
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	event, err := h.svc.Create(ctx, userID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, event, nil)
}

// List handles GET /v1/events - list all events. Public, no authentication.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListAll(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteCollection(w, http.StatusOK, events, nil, nil)
}

// Get handles GET /v1/events/{eventId} - get event details. Public, no
// authentication.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	event, err := h.svc.Get(r.Context(), eventID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, event, nil)
}

// Gallery handles GET /v1/events/{eventId}/gallery - list the event's photos.
// Public, no authentication.
func (h *EventHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	gallery, err := h.svc.Gallery(r.Context(), eventID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteCollection(w, http.StatusOK, gallery, nil, nil)
}

// Update handles PATCH /v1/events/{eventId} - edit an event
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	var req model.UpdateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	event, err := h.svc.Update(ctx, userID, eventID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, event, nil)
}

// Delete handles DELETE /v1/events/{eventId} - delete an event
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	if err := h.svc.Delete(ctx, userID, eventID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// ListByClub handles GET /v1/clubs/{clubId}/events - list a club's events
func (h *EventHandler) ListByClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	if clubID == "" {
		WriteError(w, model.NewBadRequestError("club ID required"))
		return
	}

	events, err := h.svc.ListByClub(ctx, userID, clubID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteCollection(w, http.StatusOK, events, nil, nil)
}

// ListMine handles GET /v1/events/mine - list events created by the caller
func (h *EventHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	events, err := h.svc.ListMine(ctx, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteCollection(w, http.StatusOK, events, nil, nil)
}

// ListJoined handles GET /v1/events/joined - list events across the caller's clubs
func (h *EventHandler) ListJoined(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	events, err := h.svc.ListJoined(ctx, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteCollection(w, http.StatusOK, events, nil, nil)
}

// RSVP handles POST /v1/events/{eventId}/rsvp - join an event's attendee list
func (h *EventHandler) RSVP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	event, err := h.svc.RSVP(ctx, userID, eventID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, event, nil)
}

// Attendees handles GET /v1/events/{eventId}/attendees - list attendees with display info
func (h *EventHandler) Attendees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	attendees, err := h.svc.Attendees(ctx, userID, eventID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteCollection(w, http.StatusOK, attendees, nil, nil)
}

// UploadGalleryPhoto handles POST /v1/events/{eventId}/gallery - add a photo
func (h *EventHandler) UploadGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	var req model.UploadGalleryPhotoRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	event, err := h.svc.UploadGalleryPhoto(ctx, userID, eventID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, event, nil)
}

// DeleteGalleryPhoto handles DELETE /v1/events/{eventId}/gallery/{photoId} - remove a photo
func (h *EventHandler) DeleteGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	eventID := r.PathValue("eventId")
	photoID := r.PathValue("photoId")
	if eventID == "" || photoID == "" {
		WriteError(w, model.NewBadRequestError("event ID and photo ID required"))
		return
	}

	event, err := h.svc.DeleteGalleryPhoto(ctx, userID, eventID, photoID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, event, nil)
}

func (h *EventHandler) handleError(w http.ResponseWriter, err error) {
	WriteError(w, MapServiceError(err))
}
