package delivery

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mba-copilot-backend/internal/schedule"
	"mba-copilot-backend/internal/task/domain"
	"mba-copilot-backend/internal/task/usecase"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Deadline    string  `json:"deadline"`
	EffortHours float64 `json:"effort_hours"`
}

// GetTasks returns all tasks for the authenticated user, deadline ascending
// with unscheduled tasks last
// GET /api/tasks
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	tasks, err := h.taskUsecase.GetUserTasks(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Return empty array instead of null
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"total": len(tasks),
	})
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(userID, req.Title, req.Description, req.Category, req.Deadline, req.EffortHours)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask applies a full-record edit to an existing task
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(userID, taskID, updates)
	if err != nil {
		c.JSON(taskErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus toggles only the status field
// PATCH /api/tasks/:id/status
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateStatus(userID, taskID, req.Status)
	if err != nil {
		c.JSON(taskErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.DeleteTask(userID, taskID); err != nil {
		c.JSON(taskErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// GetStats returns the dashboard counters
// GET /api/tasks/stats
func (h *TaskHandler) GetStats(c *gin.Context) {
	userID := c.GetString("userID")

	stats, err := h.taskUsecase.Stats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// calendarDay is one rendered cell of the month grid; tasks are already
// truncated to the display cap
type calendarDay struct {
	Day      int            `json:"day"`
	Date     string         `json:"date"`
	Tasks    []calendarTask `json:"tasks"`
	Overflow int            `json:"overflow"`
}

type calendarTask struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Label    string `json:"label"`
	Status   string `json:"status"`
}

// GetCalendar projects the user's tasks onto a month grid
// GET /api/calendar?year=2024&month=10  (month is zero-based, defaults to now)
func (h *TaskHandler) GetCalendar(c *gin.Context) {
	userID := c.GetString("userID")

	now := time.Now()
	year := now.Year()
	month := int(now.Month()) - 1
	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = parsed
	}
	if m := c.Query("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 0 || parsed > 11 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected 0-11"})
			return
		}
		month = parsed
	}

	tasks, err := h.taskUsecase.GetUserTasks(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	flat := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		flat = append(flat, *t)
	}

	grid := schedule.Project(flat, year, month)

	days := make([]calendarDay, 0, len(grid.Days))
	for _, entry := range grid.Days {
		days = append(days, calendarDay{
			Day:      entry.Day,
			Date:     entry.Date,
			Tasks:    toCalendarTasks(entry.Visible()),
			Overflow: entry.Overflow(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"year":        year,
		"month":       month,
		"today":       schedule.DateKey(now.Year(), int(now.Month())-1, now.Day()),
		"days":        days,
		"unscheduled": toCalendarTasks(grid.Unscheduled),
	})
}

func toCalendarTasks(tasks []domain.Task) []calendarTask {
	out := make([]calendarTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, calendarTask{
			ID:       t.ID,
			Title:    t.Title,
			Category: string(t.Category),
			Label:    t.Category.Label(),
			Status:   string(t.Status),
		})
	}
	return out
}

// taskErrorStatus maps usecase errors onto HTTP status codes
func taskErrorStatus(err error) int {
	switch err.Error() {
	case "task not found":
		return http.StatusNotFound
	case "unauthorized":
		return http.StatusForbidden
	case "invalid status", "title is required", "invalid deadline, expected YYYY-MM-DD", "effort_hours must be positive":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
