// Package schedule projects a flat task list onto a month grid keyed by
// deadline date. It is pure: no clock, no store, no mutation of input.
package schedule

import (
	"fmt"
	"time"

	"mba-copilot-backend/internal/task/domain"
)

// MaxVisibleTasks is the per-day display cap; days with more tasks report
// the rest as an overflow count.
const MaxVisibleTasks = 3

// DayEntry is one calendar day of the grid. Tasks holds the full per-day
// list in input order; truncation is a presentation concern layered on top.
type DayEntry struct {
	Day   int
	Date  string
	Tasks []domain.Task
}

// Visible returns at most MaxVisibleTasks tasks for display
func (e DayEntry) Visible() []domain.Task {
	if len(e.Tasks) > MaxVisibleTasks {
		return e.Tasks[:MaxVisibleTasks]
	}
	return e.Tasks
}

// Overflow returns how many tasks are hidden by the display cap
func (e DayEntry) Overflow() int {
	if len(e.Tasks) > MaxVisibleTasks {
		return len(e.Tasks) - MaxVisibleTasks
	}
	return 0
}

// MonthGrid is the projection of a task list onto one calendar month.
// Unscheduled holds tasks without a deadline, in input order.
type MonthGrid struct {
	Year        int
	Month       int
	Days        []DayEntry
	Unscheduled []domain.Task
}

// DateKey formats a date as YYYY-MM-DD with zero padding. Month is the
// zero-based month index. Grouping and "today" marking both use this key.
func DateKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month+1, day)
}

// DaysInMonth returns the day count of the given month (zero-based index),
// leap years included.
func DaysInMonth(year, month int) int {
	// Day zero of the following month is the last day of this one
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// Project groups tasks by exact deadline key onto the grid of the given
// month (zero-based index). Tasks whose deadline falls outside the month
// simply match no day. Order within a day follows input order.
func Project(tasks []domain.Task, year, month int) MonthGrid {
	byDate := make(map[string][]domain.Task)
	var unscheduled []domain.Task
	for _, t := range tasks {
		if !t.Scheduled() {
			unscheduled = append(unscheduled, t)
			continue
		}
		byDate[t.Deadline] = append(byDate[t.Deadline], t)
	}

	days := make([]DayEntry, 0, DaysInMonth(year, month))
	for day := 1; day <= DaysInMonth(year, month); day++ {
		key := DateKey(year, month, day)
		days = append(days, DayEntry{
			Day:   day,
			Date:  key,
			Tasks: byDate[key],
		})
	}

	return MonthGrid{
		Year:        year,
		Month:       month,
		Days:        days,
		Unscheduled: unscheduled,
	}
}
