package handler

import (
	"net/http"

	"github.com/forgo/clubhub/api/internal/middleware"
	"github.com/forgo/clubhub/api/internal/model"
	"github.com/forgo/clubhub/api/internal/service"
)

// FeedbackHandler handles club feedback HTTP requests
type FeedbackHandler struct {
	svc *service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(svc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

// Submit handles POST /v1/clubs/{clubId}/feedback - submit feedback
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
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

	var req model.SubmitFeedbackRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	feedback, err := h.svc.Submit(ctx, userID, clubID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, feedback, nil)
}

// ListByClub handles GET /v1/clubs/{clubId}/feedback - officer review list
func (h *FeedbackHandler) ListByClub(w http.ResponseWriter, r *http.Request) {
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

	feedback, err := h.svc.ListByClub(ctx, userID, clubID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteCollection(w, http.StatusOK, feedback, nil, nil)
}

// ListMine handles GET /v1/clubs/{clubId}/feedback/mine - the caller's own feedback
func (h *FeedbackHandler) ListMine(w http.ResponseWriter, r *http.Request) {
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

	feedback, err := h.svc.ListMine(ctx, userID, clubID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteCollection(w, http.StatusOK, feedback, nil, nil)
}

// Update handles PATCH /v1/clubs/{clubId}/feedback/{feedbackId} - edit own feedback
func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	feedbackID := r.PathValue("feedbackId")
	if clubID == "" || feedbackID == "" {
		WriteError(w, model.NewBadRequestError("club ID and feedback ID required"))
		return
	}

	var req model.UpdateFeedbackRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	feedback, err := h.svc.Update(ctx, userID, clubID, feedbackID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, feedback, nil)
}

func (h *FeedbackHandler) handleError(w http.ResponseWriter, err error) {
	WriteError(w, MapServiceError(err))
}
