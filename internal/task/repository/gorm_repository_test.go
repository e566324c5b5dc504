package repository

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mba-copilot-backend/internal/task/domain"
)

func newTestRepo(t *testing.T) TaskRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewGormTaskRepository(db)
}

func TestCreateAssignsID(t *testing.T) {
	repo := newTestRepo(t)

	task := &domain.Task{UserID: "u1", Title: "Essay", Category: domain.CategoryAcademics, Status: domain.TaskStatusInProgress}
	if err := repo.Create(task); err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.ID == "" {
		t.Fatal("expected server-assigned id")
	}

	found, err := repo.FindByID(task.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.Title != "Essay" {
		t.Fatalf("unexpected task: %+v", found)
	}
}

func TestFindByIDMissing(t *testing.T) {
	repo := newTestRepo(t)

	found, err := repo.FindByID("nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != nil {
		t.Fatalf("expected nil for missing id, got %+v", found)
	}
}

func TestFindByUserIDOrdering(t *testing.T) {
	repo := newTestRepo(t)

	seed := []*domain.Task{
		{UserID: "u1", Title: "unscheduled", Status: domain.TaskStatusInProgress},
		{UserID: "u1", Title: "late", Deadline: "2024-12-01", Status: domain.TaskStatusInProgress},
		{UserID: "u1", Title: "early", Deadline: "2024-11-05", Status: domain.TaskStatusInProgress},
		{UserID: "u2", Title: "other user", Deadline: "2024-01-01", Status: domain.TaskStatusInProgress},
	}
	for _, task := range seed {
		if err := repo.Create(task); err != nil {
			t.Fatalf("create: %v", err)
		}
		time.Sleep(time.Millisecond)
	}

	tasks, err := repo.FindByUserID("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks (owner-scoped), got %d", len(tasks))
	}
	if tasks[0].Title != "early" || tasks[1].Title != "late" {
		t.Fatalf("expected deadline-ascending order, got %q then %q", tasks[0].Title, tasks[1].Title)
	}
	if tasks[2].Title != "unscheduled" {
		t.Fatalf("expected unscheduled last, got %q", tasks[2].Title)
	}
}

func TestUpdateStatusTouchesOnlyStatus(t *testing.T) {
	repo := newTestRepo(t)

	task := &domain.Task{UserID: "u1", Title: "Essay", Description: "draft", Deadline: "2024-11-05", Status: domain.TaskStatusInProgress}
	if err := repo.Create(task); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UpdateStatus(task.ID, domain.TaskStatusCompleted); err != nil {
		t.Fatalf("update status: %v", err)
	}

	found, _ := repo.FindByID(task.ID)
	if found.Status != domain.TaskStatusCompleted {
		t.Fatalf("expected completed, got %s", found.Status)
	}
	if found.Title != "Essay" || found.Description != "draft" || found.Deadline != "2024-11-05" {
		t.Fatalf("status update must leave other fields intact: %+v", found)
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)

	task := &domain.Task{UserID: "u1", Title: "Essay", Status: domain.TaskStatusInProgress}
	if err := repo.Create(task); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	found, err := repo.FindByID(task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != nil {
		t.Fatal("expected task gone after delete")
	}
}
