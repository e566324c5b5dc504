package usecase

import (
	"errors"
	"strings"
	"time"

	"mba-copilot-backend/internal/task/domain"
	"mba-copilot-backend/internal/task/repository"
)

const deadlineLayout = "2006-01-02"

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) CreateTask(userID, title, description, category, deadline string, effortHours float64) (*domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("title is required")
	}
	if deadline != "" {
		if _, err := time.Parse(deadlineLayout, deadline); err != nil {
			return nil, errors.New("invalid deadline, expected YYYY-MM-DD")
		}
	}
	if effortHours < 0 {
		return nil, errors.New("effort_hours must be positive")
	}

	task := &domain.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Category:    parseCategory(category),
		Deadline:    deadline,
		EffortHours: effortHours,
		Status:      domain.TaskStatusInProgress,
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) GetTaskByID(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.New("task not found")
	}
	if task.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return task, nil
}

func (u *taskUsecase) GetUserTasks(userID string) ([]*domain.Task, error) {
	return u.taskRepo.FindByUserID(userID)
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		if strings.TrimSpace(*updates.Title) == "" {
			return nil, errors.New("title is required")
		}
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Category != nil {
		task.Category = parseCategory(*updates.Category)
	}
	if updates.Deadline != nil {
		if *updates.Deadline != "" {
			if _, err := time.Parse(deadlineLayout, *updates.Deadline); err != nil {
				return nil, errors.New("invalid deadline, expected YYYY-MM-DD")
			}
		}
		task.Deadline = *updates.Deadline
	}
	if updates.EffortHours != nil {
		if *updates.EffortHours < 0 {
			return nil, errors.New("effort_hours must be positive")
		}
		task.EffortHours = *updates.EffortHours
	}
	if updates.Status != nil {
		status, err := parseStatus(*updates.Status)
		if err != nil {
			return nil, err
		}
		task.Status = status
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) UpdateStatus(userID, taskID, status string) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	parsed, err := parseStatus(status)
	if err != nil {
		return nil, err
	}

	if err := u.taskRepo.UpdateStatus(task.ID, parsed); err != nil {
		return nil, err
	}

	task.Status = parsed
	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return err
	}
	return u.taskRepo.Delete(task.ID)
}

func (u *taskUsecase) Stats(userID string) (*TaskStats, error) {
	tasks, err := u.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	stats := &TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == domain.TaskStatusCompleted {
			stats.Completed++
		}
		stats.TotalEffortHours += t.EffortHours
	}
	stats.Remaining = stats.Total - stats.Completed
	return stats, nil
}

// parseCategory defaults empty input to academics, mirroring the form default.
// Unknown values are stored as-is and fall back to the raw value on display.
func parseCategory(c string) domain.Category {
	if c == "" {
		return domain.CategoryAcademics
	}
	return domain.Category(c)
}

func parseStatus(s string) (domain.TaskStatus, error) {
	switch domain.TaskStatus(s) {
	case domain.TaskStatusInProgress, domain.TaskStatusCompleted:
		return domain.TaskStatus(s), nil
	default:
		return "", errors.New("invalid status")
	}
}
