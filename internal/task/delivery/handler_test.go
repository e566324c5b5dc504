package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"mba-copilot-backend/internal/task/domain"
	"mba-copilot-backend/internal/task/usecase"
)

type mockTaskUsecase struct {
	tasks []*domain.Task
	err   error
}

func (m *mockTaskUsecase) CreateTask(userID, title, description, category, deadline string, effortHours float64) (*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Task{ID: "new", UserID: userID, Title: title}, nil
}

func (m *mockTaskUsecase) GetTaskByID(userID, taskID string) (*domain.Task, error) {
	return nil, m.err
}

func (m *mockTaskUsecase) GetUserTasks(userID string) ([]*domain.Task, error) {
	return m.tasks, m.err
}

func (m *mockTaskUsecase) UpdateTask(userID, taskID string, updates usecase.TaskUpdateRequest) (*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Task{ID: taskID, UserID: userID}, nil
}

func (m *mockTaskUsecase) UpdateStatus(userID, taskID, status string) (*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Task{ID: taskID, UserID: userID, Status: domain.TaskStatus(status)}, nil
}

func (m *mockTaskUsecase) DeleteTask(userID, taskID string) error {
	return m.err
}

func (m *mockTaskUsecase) Stats(userID string) (*usecase.TaskStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &usecase.TaskStats{Total: len(m.tasks)}, nil
}

func newTestRouter(uc usecase.TaskUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTaskHandler(uc)
	router := gin.New()
	// Stand-in for the auth middleware
	router.Use(func(c *gin.Context) {
		c.Set("userID", "u1")
	})
	router.GET("/api/tasks", handler.GetTasks)
	router.PATCH("/api/tasks/:id/status", handler.UpdateTaskStatus)
	router.DELETE("/api/tasks/:id", handler.DeleteTask)
	router.GET("/api/calendar", handler.GetCalendar)
	return router
}

func TestGetCalendarTruncatesPerDay(t *testing.T) {
	uc := &mockTaskUsecase{tasks: []*domain.Task{
		{ID: "1", Title: "A", Deadline: "2024-11-05", Category: domain.CategoryAcademics},
		{ID: "2", Title: "B", Deadline: "2024-11-05", Category: domain.CategoryCareer},
		{ID: "3", Title: "C", Deadline: "2024-11-05", Category: domain.CategoryPersonal},
		{ID: "4", Title: "D", Deadline: "2024-11-05", Category: domain.CategoryCaseCompetition},
		{ID: "5", Title: "Backlog"},
	}}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/calendar?year=2024&month=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Year  int    `json:"year"`
		Month int    `json:"month"`
		Today string `json:"today"`
		Days  []struct {
			Day      int    `json:"day"`
			Date     string `json:"date"`
			Tasks    []any  `json:"tasks"`
			Overflow int    `json:"overflow"`
		} `json:"days"`
		Unscheduled []struct {
			ID string `json:"id"`
		} `json:"unscheduled"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Year != 2024 || resp.Month != 10 {
		t.Fatalf("unexpected year/month: %d/%d", resp.Year, resp.Month)
	}
	if len(resp.Days) != 30 {
		t.Fatalf("expected 30 days for November, got %d", len(resp.Days))
	}
	day5 := resp.Days[4]
	if day5.Date != "2024-11-05" {
		t.Fatalf("expected 2024-11-05, got %s", day5.Date)
	}
	if len(day5.Tasks) != 3 || day5.Overflow != 1 {
		t.Fatalf("expected 3 visible + overflow 1, got %d visible, overflow %d", len(day5.Tasks), day5.Overflow)
	}
	if len(resp.Unscheduled) != 1 || resp.Unscheduled[0].ID != "5" {
		t.Fatalf("expected task 5 unscheduled, got %+v", resp.Unscheduled)
	}
	if len(resp.Today) != len("2006-01-02") {
		t.Fatalf("expected today as a date key, got %q", resp.Today)
	}
}

func TestGetCalendarRejectsBadMonth(t *testing.T) {
	router := newTestRouter(&mockTaskUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/calendar?year=2024&month=12", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range month, got %d", rec.Code)
	}
}

func TestGetTasksReturnsEmptyArray(t *testing.T) {
	router := newTestRouter(&mockTaskUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"tasks":[]`) {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestStatusAndDeleteFailuresAreSurfaced(t *testing.T) {
	router := newTestRouter(&mockTaskUsecase{err: errors.New("task not found")})

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/nope/status", strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 surfaced to the caller, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/tasks/nope", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 surfaced to the caller, got %d", rec.Code)
	}
}
