package domain

import (
	"log"
	"time"
)

// Category represents the focus area a task belongs to
type Category string

const (
	CategoryAcademics       Category = "academics"
	CategoryCareer          Category = "career"
	CategoryCaseCompetition Category = "case_competition"
	CategoryPersonal        Category = "personal"
)

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// categoryLabels maps category values to their display labels
var categoryLabels = map[Category]string{
	CategoryAcademics:       "Academics",
	CategoryCareer:          "Career Prep",
	CategoryCaseCompetition: "Case Competitions",
	CategoryPersonal:        "Personal / Wellness",
}

// Label returns the display label for a category. Unrecognized values fall
// back to the raw string and are logged as a data-integrity warning.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	log.Printf("[Task] unrecognized category %q, using raw value", string(c))
	return string(c)
}

// Valid reports whether the category is one of the four known values
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Task represents a unit of work owned by a student. Deadline is a plain
// YYYY-MM-DD date; empty means unscheduled. EffortHours of zero means
// unestimated.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	Category    Category   `json:"category" gorm:"default:academics"`
	Deadline    string     `json:"deadline,omitempty"`
	EffortHours float64    `json:"effort_hours,omitempty"`
	Status      TaskStatus `json:"status" gorm:"default:in_progress"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Scheduled reports whether the task has a deadline
func (t Task) Scheduled() bool {
	return t.Deadline != ""
}
