package handler

import (
	"net/http"

	"github.com/forgo/clubhub/api/internal/middleware"
	"github.com/forgo/clubhub/api/internal/model"
	"github.com/forgo/clubhub/api/internal/service"
)

// SponsorshipHandler handles sponsorship request HTTP requests
type SponsorshipHandler struct {
	svc *service.SponsorshipService
}

// NewSponsorshipHandler creates a new sponsorship handler
func NewSponsorshipHandler(svc *service.SponsorshipService) *SponsorshipHandler {
	return &SponsorshipHandler{svc: svc}
}

// Submit handles POST /v1/events/{eventId}/sponsorships - submit a request
func (h *SponsorshipHandler) Submit(w http.ResponseWriter, r *http.Request) {
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

	var req model.SubmitSponsorshipRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	request, err := h.svc.Submit(ctx, userID, eventID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, request, nil)
}

// ListByEvent handles GET /v1/events/{eventId}/sponsorships - officer review list
func (h *SponsorshipHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
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

	requests, err := h.svc.ListByEvent(ctx, userID, eventID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteCollection(w, http.StatusOK, requests, nil, nil)
}

// ListMine handles GET /v1/sponsorships/mine - list the caller's submissions
func (h *SponsorshipHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	requests, err := h.svc.ListMine(ctx, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteCollection(w, http.StatusOK, requests, nil, nil)
}

// Resolve handles PATCH /v1/sponsorships/{requestId}/status - approve or reject
func (h *SponsorshipHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	requestID := r.PathValue("requestId")
	if requestID == "" {
		WriteError(w, model.NewBadRequestError("request ID required"))
		return
	}

	var req model.UpdateSponsorshipStatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	request, err := h.svc.Resolve(ctx, userID, requestID, req.Status)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, request, nil)
}

func (h *SponsorshipHandler) handleError(w http.ResponseWriter, err error) {
	WriteError(w, MapServiceError(err))
}
