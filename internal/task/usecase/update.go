package usecase

import (
	"context"
	"strings"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
)

// Complete marks the first matching incomplete task as done. A task that is
// already done is never re-stamped.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, title string) (*model.Task, error) {
	now := uc.clock()
	t, err := uc.mutate(ctx, title, isIncomplete, func(t *model.Task) {
		t.Completed = true
		completedAt := now
		t.CompletedAt = &completedAt
	})
	if err == nil && t != nil {
		uc.l.Infof(ctx, "task.usecase.Complete: user=%s id=%d", sc.UserID, t.ID)
	}
	return t, err
}

// SetPriority normalizes priority and applies it to the first matching task.
func (uc *implUseCase) SetPriority(ctx context.Context, sc model.Scope, title string, priority string) (*model.Task, error) {
	p := model.NormalizePriority(priority)
	return uc.mutate(ctx, title, nil, func(t *model.Task) {
		t.Priority = p
	})
}

// SetCategory files the first matching task under a lower-cased category.
func (uc *implUseCase) SetCategory(ctx context.Context, sc model.Scope, title string, category string) (*model.Task, error) {
	category = normalizeCategory(category)
	if category == "" {
		return nil, task.ErrEmptyCategory
	}
	return uc.mutate(ctx, title, nil, func(t *model.Task) {
		t.Category = category
	})
}

// SetReminder arms a reminder on the first matching incomplete task.
func (uc *implUseCase) SetReminder(ctx context.Context, sc model.Scope, title string, minutes int) (*model.Task, error) {
	if minutes <= 0 {
		minutes = task.DefaultReminderMinutes
	}
	return uc.mutate(ctx, title, isIncomplete, func(t *model.Task) {
		t.ReminderMinutes = minutes
		t.ReminderSet = true
	})
}

// MarkReminded records that the reminder for task id was delivered.
func (uc *implUseCase) MarkReminded(ctx context.Context, sc model.Scope, id int64) (*model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	tasks := uc.load(ctx)
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].ReminderSet = true
		if err := uc.save(ctx, tasks); err != nil {
			return nil, err
		}
		updated := tasks[i]
		return &updated, nil
	}
	return nil, nil
}

// Delete removes the first matching task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, title string) (*model.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	tasks := uc.load(ctx)
	i := findIndex(tasks, title, nil)
	if i < 0 {
		return nil, nil
	}

	removed := tasks[i]
	tasks = append(tasks[:i], tasks[i+1:]...)
	if err := uc.save(ctx, tasks); err != nil {
		return nil, err
	}

	uc.l.Infof(ctx, "task.usecase.Delete: user=%s id=%d", sc.UserID, removed.ID)
	return &removed, nil
}
