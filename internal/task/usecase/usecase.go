package usecase

import (
	"mba-copilot-backend/internal/task/domain"
)

// TaskUpdateRequest holds the fields of a full-record task edit. Nil fields
// are left untouched.
type TaskUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Deadline    *string  `json:"deadline"`
	EffortHours *float64 `json:"effort_hours"`
	Status      *string  `json:"status"`
}

// TaskStats carries the dashboard counters derived from a user's task list
type TaskStats struct {
	Total            int     `json:"total"`
	Completed        int     `json:"completed"`
	Remaining        int     `json:"remaining"`
	TotalEffortHours float64 `json:"total_effort_hours"`
}

// TaskUsecase defines the business logic for task management
type TaskUsecase interface {
	// CreateTask creates a task owned by userID. Title must be non-empty;
	// deadline, when present, must be a YYYY-MM-DD date.
	CreateTask(userID, title, description, category, deadline string, effortHours float64) (*domain.Task, error)

	// GetTaskByID returns a task, enforcing ownership
	GetTaskByID(userID, taskID string) (*domain.Task, error)

	// GetUserTasks returns the user's tasks ordered by deadline ascending,
	// unscheduled tasks last
	GetUserTasks(userID string) ([]*domain.Task, error)

	// UpdateTask applies a full-record edit
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// UpdateStatus toggles only the status field
	UpdateStatus(userID, taskID, status string) (*domain.Task, error)

	// DeleteTask deletes a task, enforcing ownership
	DeleteTask(userID, taskID string) error

	// Stats computes the dashboard counters for a user
	Stats(userID string) (*TaskStats, error)
}
