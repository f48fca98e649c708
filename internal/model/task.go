package model

import "time"

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// IsValid returns true if the status is a known task status
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// taskTransitions is the allowed edge set of the task state machine.
// Completed is terminal: no edge leaves it, so a finished task can never be
// regressed by a late progress update.
var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusPending:    {TaskStatusInProgress, TaskStatusCompleted},
	TaskStatusInProgress: {TaskStatusCompleted},
	TaskStatusCompleted:  {},
}

// CanTransition reports whether the edge from → to exists in the task state
// machine. A self-transition is allowed so repeated progress updates on an
// in-progress task remain legal.
func (s TaskStatus) CanTransition(to TaskStatus) bool {
	if s == to && s != TaskStatusCompleted {
		return true
	}
	for _, next := range taskTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Task represents a work item assigned by a club officer to a member
type Task struct {
	ID          string     `json:"id"`
	ClubID      string     `json:"club_id"`
	AssignedTo  string     `json:"assigned_to"`
	AssignedBy  string     `json:"assigned_by"`
	Description string     `json:"description"`
	Progress    string     `json:"progress"`
	Status      TaskStatus `json:"status"`
	CreatedOn   time.Time  `json:"created_on"`
	UpdatedOn   time.Time  `json:"updated_on"`
}

// TaskWithMembers is a task enriched with assignee/assigner display data.
type TaskWithMembers struct {
	Task       Task         `json:"task"`
	AssignedTo *DisplayInfo `json:"assigned_to,omitempty"`
	AssignedBy *DisplayInfo `json:"assigned_by,omitempty"`
}

// Constraints
const MaxTaskDescriptionLength = 1000

// AssignTaskRequest represents a request to assign a task to a club member
type AssignTaskRequest struct {
	MemberID    string `json:"member_id"`
	Description string `json:"description"`
}

// Validate returns field errors for missing or out-of-range inputs.
func (r *AssignTaskRequest) Validate() []FieldError {
	var errs []FieldError
	if r.MemberID == "" {
		errs = append(errs, FieldError{Field: "member_id", Message: "member_id is required"})
	}
	if r.Description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description is required"})
	} else if len(r.Description) > MaxTaskDescriptionLength {
		errs = append(errs, FieldError{Field: "description", Message: "description exceeds maximum length"})
	}
	return errs
}

// UpdateTaskProgressRequest carries a free-text progress note from the assignee
type UpdateTaskProgressRequest struct {
	Progress string `json:"progress"`
}
