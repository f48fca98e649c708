package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/clubhub/api/internal/database"
	"github.com/forgo/clubhub/api/internal/model"
)

// TaskRepository handles task data access
type TaskRepository struct {
	db database.Database
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db database.Database) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task in the pending state
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `
		CREATE task CONTENT {
			club: $club,
			assigned_to: $assigned_to,
			assigned_by: $assigned_by,
			description: $description,
			progress: "",
			status: $status,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"club":        fullRecordID("club", task.ClubID),
		"assigned_to": fullRecordID("user", task.AssignedTo),
		"assigned_by": fullRecordID("user", task.AssignedBy),
		"description": task.Description,
		"status":      string(model.TaskStatusPending),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	task.ID = created.ID
	task.Status = model.TaskStatusPending
	task.CreatedOn = created.CreatedOn
	task.UpdatedOn = created.UpdatedOn
	return nil
}

// Get retrieves a task by ID. Returns nil when the task does not exist.
func (r *TaskRepository) Get(ctx context.Context, id string) (*model.Task, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseTaskResult(result)
}

// GetByClub retrieves all tasks for a club, newest first
func (r *TaskRepository) GetByClub(ctx context.Context, clubID string) ([]*model.Task, error) {
	query := `SELECT * FROM task WHERE club = $club ORDER BY created_on DESC`
	vars := map[string]interface{}{"club": fullRecordID("club", clubID)}
	return r.queryTasks(ctx, query, vars)
}

// GetByAssignee retrieves all tasks assigned to the user, newest first
func (r *TaskRepository) GetByAssignee(ctx context.Context, userID string) ([]*model.Task, error) {
	query := `SELECT * FROM task WHERE assigned_to = $assigned_to ORDER BY created_on DESC`
	vars := map[string]interface{}{"assigned_to": fullRecordID("user", userID)}
	return r.queryTasks(ctx, query, vars)
}

// UpdateProgress writes a progress note and moves the task to the given
// status. The WHERE guard pins the expected current status so a concurrent
// completion cannot be overwritten. Returns nil when the guard rejected the
// write.
func (r *TaskRepository) UpdateProgress(ctx context.Context, taskID, progress string, from, to model.TaskStatus) (*model.Task, error) {
	query := `
		UPDATE type::record($task_id)
		SET progress = $progress, status = $to, updated_on = time::now()
		WHERE status = $from
		RETURN AFTER
	`
	vars := map[string]interface{}{
		"task_id":  taskID,
		"progress": progress,
		"from":     string(from),
		"to":       string(to),
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseTaskResult(result)
}

// Complete moves the task to completed. The WHERE guard rejects the write if
// the task already completed, so completion fires its notification once.
// Returns nil when the guard rejected the write.
func (r *TaskRepository) Complete(ctx context.Context, taskID string) (*model.Task, error) {
	query := `
		UPDATE type::record($task_id)
		SET status = $completed, updated_on = time::now()
		WHERE status != $completed
		RETURN AFTER
	`
	vars := map[string]interface{}{
		"task_id":   taskID,
		"completed": string(model.TaskStatusCompleted),
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseTaskResult(result)
}

func (r *TaskRepository) queryTasks(ctx context.Context, query string, vars map[string]interface{}) ([]*model.Task, error) {
	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Task{}, nil
	}

	tasks := make([]*model.Task, 0, len(records))
	for _, record := range records {
		task, err := parseTaskResult(record)
		if err != nil {
			return nil, err
		}
		if task != nil {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func parseTaskResult(result interface{}) (*model.Task, error) {
	data, err := unwrapSingleResult(result)
	if err != nil {
		return nil, fmt.Errorf("task: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	task := &model.Task{
		ID:          convertSurrealID(data["id"]),
		ClubID:      convertSurrealID(data["club"]),
		AssignedTo:  convertSurrealID(data["assigned_to"]),
		AssignedBy:  convertSurrealID(data["assigned_by"]),
		Description: getString(data, "description"),
		Progress:    getString(data, "progress"),
		Status:      model.TaskStatus(getString(data, "status")),
		CreatedOn:   getTime(data, "created_on"),
		UpdatedOn:   getTime(data, "updated_on"),
	}
	return task, nil
}
