package task

import (
	"strings"
	"time"

	"voice-task-assistant/internal/model"
)

const (
	// DefaultReminderMinutes is used when a reminder is requested without a lead time.
	DefaultReminderMinutes = 30

	// ReminderWindow is how far ahead a deadline may be to need a reminder.
	ReminderWindow = time.Hour
)

// Period is a named time window used to select tasks by deadline.
type Period string

const (
	PeriodAll     Period = ""
	PeriodToday   Period = "today"
	PeriodWeek    Period = "week"
	PeriodOverdue Period = "overdue"
	PeriodDaily   Period = "daily"
)

// ParsePeriod maps user text to a Period.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "none":
		return PeriodAll, nil
	case "today":
		return PeriodToday, nil
	case "week", "this week":
		return PeriodWeek, nil
	case "overdue":
		return PeriodOverdue, nil
	case "daily":
		return PeriodDaily, nil
	default:
		return PeriodAll, ErrInvalidPeriod
	}
}

// AddInput is the input for creating a task.
type AddInput struct {
	Title    string `json:"title"`
	Deadline string `json:"deadline"` // free text, e.g. "tomorrow 5pm"
	Priority string `json:"priority"` // free text, normalized on write
}

// Statistics aggregates the whole task collection.
type Statistics struct {
	Total          int                    `json:"total"`
	Completed      int                    `json:"completed"`
	Pending        int                    `json:"pending"`
	Overdue        int                    `json:"overdue"`
	CompletionRate float64                `json:"completion_rate"` // percent, one decimal
	ByPriority     map[model.Priority]int `json:"by_priority"`     // pending tasks only
}
