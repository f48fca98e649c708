package handler

import (
	"net/http"

	"github.com/forgo/clubhub/api/internal/middleware"
	"github.com/forgo/clubhub/api/internal/model"
	"github.com/forgo/clubhub/api/internal/service"
)

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	svc *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List handles GET /v1/notifications - list the caller's notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	notifications, err := h.svc.List(ctx, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteCollection(w, http.StatusOK, notifications, nil, nil)
}

// MarkRead handles POST /v1/notifications/{notificationId}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	notificationID := r.PathValue("notificationId")
	if notificationID == "" {
		WriteError(w, model.NewBadRequestError("notification ID required"))
		return
	}

	notification, err := h.svc.MarkRead(ctx, notificationID, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, notification, nil)
}

// MarkAllRead handles POST /v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	if err := h.svc.MarkAllRead(ctx, userID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// Delete handles DELETE /v1/notifications/{notificationId}
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	notificationID := r.PathValue("notificationId")
	if notificationID == "" {
		WriteError(w, model.NewBadRequestError("notification ID required"))
		return
	}

	if err := h.svc.Delete(ctx, notificationID, userID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

func (h *NotificationHandler) handleError(w http.ResponseWriter, err error) {
	WriteError(w, MapServiceError(err))
}
