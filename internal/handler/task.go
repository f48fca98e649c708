package handler

import (
	"net/http"

	"github.com/forgo/clubhub/api/internal/middleware"
	"github.com/forgo/clubhub/api/internal/model"
	"github.com/forgo/clubhub/api/internal/service"
)

// TaskHandler handles task HTTP requests
type TaskHandler struct {
	svc *service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// Assign handles POST /v1/clubs/{clubId}/tasks - assign a task to a member
func (h *TaskHandler) Assign(w http.ResponseWriter, r *http.Request) {
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

	var req model.AssignTaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	task, err := h.svc.Assign(ctx, userID, clubID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, task, nil)
}

// ListByClub handles GET /v1/clubs/{clubId}/tasks - list a club's tasks
func (h *TaskHandler) ListByClub(w http.ResponseWriter, r *http.Request) {
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

	tasks, err := h.svc.ListByClub(ctx, userID, clubID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteCollection(w, http.StatusOK, tasks, nil, nil)
}

// ListMine handles GET /v1/tasks/mine - list tasks assigned to the caller
func (h *TaskHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	tasks, err := h.svc.ListMine(ctx, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteCollection(w, http.StatusOK, tasks, nil, nil)
}

// UpdateProgress handles PATCH /v1/tasks/{taskId}/progress - update a progress note
func (h *TaskHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	taskID := r.PathValue("taskId")
	if taskID == "" {
		WriteError(w, model.NewBadRequestError("task ID required"))
		return
	}

	var req model.UpdateTaskProgressRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	task, err := h.svc.UpdateProgress(ctx, userID, taskID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, task, nil)
}

// Complete handles POST /v1/tasks/{taskId}/complete - mark a task done
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	taskID := r.PathValue("taskId")
	if taskID == "" {
		WriteError(w, model.NewBadRequestError("task ID required"))
		return
	}

	task, err := h.svc.Complete(ctx, userID, taskID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, task, nil)
}

func (h *TaskHandler) handleError(w http.ResponseWriter, err error) {
	WriteError(w, MapServiceError(err))
}
