package model

import (
	"strings"
	"time"
)

// Priority is the urgency of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// NormalizePriority maps free text to a Priority. Unrecognized input is normal.
func NormalizePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "urgent", "priority high":
		return PriorityHigh
	case "low", "priority low":
		return PriorityLow
	default:
		return PriorityNormal
	}
}

// Task is one persisted to-do item.
type Task struct {
	ID              int64
	Title           string
	Priority        Priority
	Deadline        *time.Time // nil when the task has no deadline
	Completed       bool
	CompletedAt     *time.Time // set exactly when Completed flips to true
	CreatedAt       time.Time
	Category        string // lower-cased, empty when uncategorized
	ReminderMinutes int
	ReminderSet     bool
}

// TitleMatches reports whether the task title equals query, ignoring case and
// surrounding whitespace.
func (t Task) TitleMatches(query string) bool {
	return strings.EqualFold(strings.TrimSpace(t.Title), strings.TrimSpace(query))
}

// IsOverdue reports whether an incomplete task's deadline is strictly before now.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.Deadline != nil && t.Deadline.Before(now)
}
