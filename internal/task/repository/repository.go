package repository

import (
	"mba-copilot-backend/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID
	FindByID(id string) (*domain.Task, error)

	// FindByUserID returns all tasks for a user ordered by deadline
	// ascending, unscheduled tasks last
	FindByUserID(userID string) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// UpdateStatus updates only the status field of a task
	UpdateStatus(id string, status domain.TaskStatus) error

	// Delete deletes a task by ID
	Delete(id string) error
}
