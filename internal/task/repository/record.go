package repository

import (
	"fmt"
	"strings"
	"time"

	"voice-task-assistant/internal/model"
)

// TimeLayout is the persisted timestamp format: local wall clock, no offset,
// fractional seconds only when non-zero.
const TimeLayout = "2006-01-02T15:04:05.999999"

var parseLayouts = []string{
	TimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Record is the serialized form of a task shared by the storage backends.
// Field order follows the on-disk layout.
type Record struct {
	ID              int64   `json:"id" yaml:"id"`
	Title           string  `json:"title" yaml:"title"`
	Priority        string  `json:"priority" yaml:"priority"`
	Deadline        *string `json:"deadline" yaml:"deadline"`
	Completed       bool    `json:"completed" yaml:"completed"`
	CreatedAt       string  `json:"created_at" yaml:"created_at"`
	CompletedAt     *string `json:"completed_at" yaml:"completed_at"`
	Category        string  `json:"category,omitempty" yaml:"category,omitempty"`
	ReminderMinutes int     `json:"reminder_minutes,omitempty" yaml:"reminder_minutes,omitempty"`
	ReminderSet     bool    `json:"reminder_set,omitempty" yaml:"reminder_set,omitempty"`
}

// FormatTime renders t as a wall-clock string in loc.
func FormatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(TimeLayout)
}

// ParseTime reads a wall-clock string written by FormatTime (or by hand) in loc.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// NewRecord converts a task to its serialized form.
func NewRecord(t model.Task, loc *time.Location) Record {
	r := Record{
		ID:              t.ID,
		Title:           t.Title,
		Priority:        string(model.NormalizePriority(string(t.Priority))),
		Completed:       t.Completed,
		CreatedAt:       FormatTime(t.CreatedAt, loc),
		Category:        t.Category,
		ReminderMinutes: t.ReminderMinutes,
		ReminderSet:     t.ReminderSet,
	}
	if t.Deadline != nil {
		s := FormatTime(*t.Deadline, loc)
		r.Deadline = &s
	}
	if t.CompletedAt != nil {
		s := FormatTime(*t.CompletedAt, loc)
		r.CompletedAt = &s
	}
	return r
}

// Task converts a record back to a task. A malformed timestamp is an error.
func (r Record) Task(loc *time.Location) (model.Task, error) {
	t := model.Task{
		ID:              r.ID,
		Title:           r.Title,
		Priority:        model.NormalizePriority(r.Priority),
		Completed:       r.Completed,
		Category:        r.Category,
		ReminderMinutes: r.ReminderMinutes,
		ReminderSet:     r.ReminderSet,
	}

	if r.CreatedAt != "" {
		created, err := ParseTime(r.CreatedAt, loc)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %d created_at: %w", r.ID, err)
		}
		t.CreatedAt = created
	}
	if r.Deadline != nil && *r.Deadline != "" {
		deadline, err := ParseTime(*r.Deadline, loc)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %d deadline: %w", r.ID, err)
		}
		t.Deadline = &deadline
	}
	if r.CompletedAt != nil && *r.CompletedAt != "" {
		completedAt, err := ParseTime(*r.CompletedAt, loc)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %d completed_at: %w", r.ID, err)
		}
		t.CompletedAt = &completedAt
	}
	return t, nil
}

// NewRecords converts a collection, never returning nil.
func NewRecords(tasks []model.Task, loc *time.Location) []Record {
	records := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, NewRecord(t, loc))
	}
	return records
}

// Tasks converts a collection, failing on the first malformed record.
func Tasks(records []Record, loc *time.Location) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(records))
	for _, r := range records {
		t, err := r.Task(loc)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
