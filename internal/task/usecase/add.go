package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/pkg/gcalendar"
)

const calendarEventDuration = time.Hour

// Add validates the title, resolves the deadline and appends the new task.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input task.AddInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	now := uc.clock()
	uc.mu.Lock()
	tasks := uc.load(ctx)

	t := model.Task{
		ID:        nextID(tasks, now),
		Title:     title,
		Priority:  model.NormalizePriority(input.Priority),
		CreatedAt: now,
	}
	if deadline, ok := uc.dateMath.Parse(input.Deadline, now); ok {
		t.Deadline = &deadline
	}

	tasks = append(tasks, t)
	err := uc.save(ctx, tasks)
	uc.mu.Unlock()
	if err != nil {
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task.usecase.Add: user=%s id=%d title=%q", sc.UserID, t.ID, t.Title)
	uc.tryCreateCalendarEvent(ctx, t)

	return t, nil
}

// tryCreateCalendarEvent mirrors a deadline to the calendar.
// Returns the event HTML link, or empty string on failure.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil || t.Deadline == nil {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:         t.Title,
		Description:     fmt.Sprintf("Priority: %s", t.Priority),
		StartTime:       *t.Deadline,
		EndTime:         t.Deadline.Add(calendarEventDuration),
		Timezone:        uc.dateMath.Location().String(),
		ReminderMinutes: task.DefaultReminderMinutes,
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.Add: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	return event.HtmlLink
}
