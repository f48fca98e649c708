package service

import (
	"context"
	"fmt"

	"github.com/forgo/clubhub/api/internal/model"
)

// TaskRepository defines the interface for task storage
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	Get(ctx context.Context, id string) (*model.Task, error)
	GetByClub(ctx context.Context, clubID string) ([]*model.Task, error)
	GetByAssignee(ctx context.Context, userID string) ([]*model.Task, error)
	UpdateProgress(ctx context.Context, taskID, progress string, from, to model.TaskStatus) (*model.Task, error)
	Complete(ctx context.Context, taskID string) (*model.Task, error)
}

// TaskService handles the task workflow: officer assignment, assignee
// progress updates and completion.
type TaskService struct {
	taskRepo     TaskRepository
	userRepo     UserRepository
	guard        *Guard
	notification *NotificationService
}

// TaskServiceConfig holds configuration for the task service
type TaskServiceConfig struct {
	TaskRepo     TaskRepository
	UserRepo     UserRepository
	Guard        *Guard
	Notification *NotificationService
}

// NewTaskService creates a new task service
func NewTaskService(cfg TaskServiceConfig) *TaskService {
	return &TaskService{
		taskRepo:     cfg.TaskRepo,
		userRepo:     cfg.UserRepo,
		guard:        cfg.Guard,
		notification: cfg.Notification,
	}
}

// Assign creates a pending task for a club member and notifies them. Only
// officers may assign, and the assignee must belong to the club's member set.
func (s *TaskService) Assign(ctx context.Context, userID, clubID string, req model.AssignTaskRequest) (*model.Task, error) {
	club, err := s.guard.OfficerClub(ctx, clubID, userID)
	if err != nil {
		return nil, err
	}

	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}
	if !club.IsMember(req.MemberID) {
		return nil, ErrInvalidAssignee
	}

	task := &model.Task{
		ClubID:      clubID,
		AssignedTo:  req.MemberID,
		AssignedBy:  userID,
		Description: req.Description,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.notification.Dispatch(ctx, model.NotificationTypeTaskAssigned,
		"You have been assigned a new task",
		[]string{task.AssignedTo},
		model.NotificationRefs{Club: clubID, Task: task.ID},
	)

	return task, nil
}

// ListByClub retrieves a club's tasks with assignee and assigner display
// data. Only officers may view the club's task board.
func (s *TaskService) ListByClub(ctx context.Context, userID, clubID string) ([]model.TaskWithMembers, error) {
	if _, err := s.guard.OfficerClub(ctx, clubID, userID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.GetByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return s.enrichTasks(ctx, tasks)
}

// ListMine retrieves the user's assigned tasks
func (s *TaskService) ListMine(ctx context.Context, userID string) ([]*model.Task, error) {
	return s.taskRepo.GetByAssignee(ctx, userID)
}

// UpdateProgress writes a progress note from the assignee. A pending task
// moves to in-progress; a completed task can never be regressed and the
// update is rejected as a conflict.
func (s *TaskService) UpdateProgress(ctx context.Context, userID, taskID string, req model.UpdateTaskProgressRequest) (*model.Task, error) {
	task, err := s.taskRepo.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if !model.SameID(task.AssignedTo, userID) {
		return nil, ErrNotTaskAssignee
	}
	if task.Status == model.TaskStatusCompleted {
		return nil, ErrTaskCompleted
	}
	if !task.Status.CanTransition(model.TaskStatusInProgress) {
		return nil, ErrInvalidTransition
	}

	updated, err := s.taskRepo.UpdateProgress(ctx, taskID, req.Progress, task.Status, model.TaskStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("update progress: %w", err)
	}
	if updated == nil {
		// Conditional write rejected: the task completed concurrently.
		return nil, ErrTaskCompleted
	}
	return updated, nil
}

// Complete moves the task to its terminal state and notifies the assignee.
// Only officers of the owning club may mark tasks complete; completing twice
// is a conflict. A pending task may be completed directly without a progress
// update in between.
func (s *TaskService) Complete(ctx context.Context, userID, taskID string) (*model.Task, error) {
	task, err := s.taskRepo.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if _, err := s.guard.OfficerClub(ctx, task.ClubID, userID); err != nil {
		return nil, err
	}
	if task.Status == model.TaskStatusCompleted {
		return nil, ErrTaskCompleted
	}

	updated, err := s.taskRepo.Complete(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}
	if updated == nil {
		// Conditional write rejected: a concurrent completion won the race.
		return nil, ErrTaskCompleted
	}

	s.notification.Dispatch(ctx, model.NotificationTypeTaskCompleted,
		"Your task has been marked complete",
		[]string{updated.AssignedTo},
		model.NotificationRefs{Club: updated.ClubID, Task: updated.ID},
	)

	return updated, nil
}

func (s *TaskService) enrichTasks(ctx context.Context, tasks []*model.Task) ([]model.TaskWithMembers, error) {
	ids := make([]string, 0, len(tasks)*2)
	for _, task := range tasks {
		ids = append(ids, task.AssignedTo, task.AssignedBy)
	}

	info, err := s.userRepo.GetDisplayInfo(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("task display info: %w", err)
	}

	enriched := make([]model.TaskWithMembers, 0, len(tasks))
	for _, task := range tasks {
		item := model.TaskWithMembers{Task: *task}
		if display, ok := info[model.CanonicalID(task.AssignedTo)]; ok {
			d := display
			item.AssignedTo = &d
		}
		if display, ok := info[model.CanonicalID(task.AssignedBy)]; ok {
			d := display
			item.AssignedBy = &d
		}
		enriched = append(enriched, item)
	}
	return enriched, nil
}
