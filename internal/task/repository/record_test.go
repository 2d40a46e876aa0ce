package repository_test

import (
	"testing"
	"time"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task/repository"
)

func TestRecordRoundTrip(t *testing.T) {
	loc := time.UTC
	deadline := time.Date(2024, 1, 2, 17, 0, 0, 0, loc)
	completedAt := time.Date(2024, 1, 2, 16, 30, 12, 345678000, loc)
	task := model.Task{
		ID:              1704103200000,
		Title:           "buy milk",
		Priority:        model.PriorityHigh,
		Deadline:        &deadline,
		Completed:       true,
		CompletedAt:     &completedAt,
		CreatedAt:       time.Date(2024, 1, 1, 10, 0, 0, 0, loc),
		Category:        "shopping",
		ReminderMinutes: 30,
		ReminderSet:     true,
	}

	r := repository.NewRecord(task, loc)
	if *r.Deadline != "2024-01-02T17:00:00" {
		t.Errorf("deadline serialized as %q", *r.Deadline)
	}
	if *r.CompletedAt != "2024-01-02T16:30:12.345678" {
		t.Errorf("completed_at serialized as %q", *r.CompletedAt)
	}

	got, err := r.Task(loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != task.ID || got.Title != task.Title || got.Priority != task.Priority {
		t.Errorf("identity fields differ: %+v", got)
	}
	if !got.Deadline.Equal(deadline) || !got.CompletedAt.Equal(completedAt) || !got.CreatedAt.Equal(task.CreatedAt) {
		t.Errorf("timestamps differ: %+v", got)
	}
	if got.Category != "shopping" || got.ReminderMinutes != 30 || !got.ReminderSet {
		t.Errorf("optional fields differ: %+v", got)
	}
}

func TestRecordNilTimes(t *testing.T) {
	r := repository.NewRecord(model.Task{ID: 1, Title: "x", CreatedAt: time.Now()}, time.UTC)
	if r.Deadline != nil || r.CompletedAt != nil {
		t.Errorf("expected nil deadline and completed_at, got %v %v", r.Deadline, r.CompletedAt)
	}
	if r.Priority != "normal" {
		t.Errorf("expected empty priority to normalize to normal, got %q", r.Priority)
	}
}

func TestRecordMalformedTimestamp(t *testing.T) {
	bad := "next tuesday"
	r := repository.Record{ID: 1, Title: "x", CreatedAt: "2024-01-01T10:00:00", Deadline: &bad}
	if _, err := r.Task(time.UTC); err == nil {
		t.Error("expected error for malformed deadline")
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2024-01-02T17:00:00", want: time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)},
		{in: "2024-01-02T17:00:00.5", want: time.Date(2024, 1, 2, 17, 0, 0, 500000000, time.UTC)},
		{in: "2024-01-02 17:00", want: time.Time{}},
		{in: "2024-01-02 17:00:00", want: time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)},
		{in: "2024-01-02", want: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := repository.ParseTime(tt.in, time.UTC)
		if tt.want.IsZero() {
			if err == nil {
				t.Errorf("ParseTime(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTime(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
