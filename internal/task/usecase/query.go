package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
)

// List returns incomplete tasks due within today or this week (Monday start).
// PeriodAll returns every task unfiltered.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, period task.Period) ([]model.Task, error) {
	tasks := uc.load(ctx)

	switch period {
	case task.PeriodAll:
		return tasks, nil
	case task.PeriodOverdue:
		return uc.overdue(tasks), nil
	case task.PeriodToday, task.PeriodWeek:
	default:
		return nil, task.ErrInvalidPeriod
	}

	start, end := uc.window(period, uc.clock())
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if t.Completed || t.Deadline == nil {
			continue
		}
		if !t.Deadline.Before(start) && t.Deadline.Before(end) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Overdue returns incomplete tasks whose deadline is strictly before now.
func (uc *implUseCase) Overdue(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	return uc.overdue(uc.load(ctx)), nil
}

func (uc *implUseCase) overdue(tasks []model.Task) []model.Task {
	now := uc.clock()
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if t.IsOverdue(now) {
			out = append(out, t)
		}
	}
	return out
}

// Search returns every task whose title contains query, ignoring case.
func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, query string) ([]model.Task, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, task.ErrEmptyQuery
	}

	out := make([]model.Task, 0)
	for _, t := range uc.load(ctx) {
		if strings.Contains(strings.ToLower(t.Title), query) {
			out = append(out, t)
		}
	}
	return out, nil
}

// ListByCategory returns the tasks filed under category.
func (uc *implUseCase) ListByCategory(ctx context.Context, sc model.Scope, category string) ([]model.Task, error) {
	category = normalizeCategory(category)
	if category == "" {
		return nil, task.ErrEmptyCategory
	}

	out := make([]model.Task, 0)
	for _, t := range uc.load(ctx) {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out, nil
}

// Categories returns the distinct categories in use, sorted.
func (uc *implUseCase) Categories(ctx context.Context, sc model.Scope) ([]string, error) {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, t := range uc.load(ctx) {
		if t.Category == "" {
			continue
		}
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	sort.Strings(out)
	return out, nil
}

// NeedingReminders returns incomplete tasks due within the next hour that have
// not been reminded yet.
func (uc *implUseCase) NeedingReminders(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	now := uc.clock()
	out := make([]model.Task, 0)
	for _, t := range uc.load(ctx) {
		if t.Completed || t.ReminderSet || t.Deadline == nil {
			continue
		}
		until := t.Deadline.Sub(now)
		if until >= 0 && until <= task.ReminderWindow {
			out = append(out, t)
		}
	}
	return out, nil
}

// DueScheduledReminders returns incomplete tasks whose reminder lead time has
// started and whose deadline is still ahead.
func (uc *implUseCase) DueScheduledReminders(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	now := uc.clock()
	out := make([]model.Task, 0)
	for _, t := range uc.load(ctx) {
		if t.Completed || !t.ReminderSet || t.ReminderMinutes <= 0 || t.Deadline == nil {
			continue
		}
		remindAt := t.Deadline.Add(-time.Duration(t.ReminderMinutes) * time.Minute)
		if !now.Before(remindAt) && now.Before(*t.Deadline) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Statistics aggregates the collection. CompletionRate is 0 for an empty store.
func (uc *implUseCase) Statistics(ctx context.Context, sc model.Scope) (task.Statistics, error) {
	return uc.statistics(uc.load(ctx)), nil
}

func (uc *implUseCase) statistics(tasks []model.Task) task.Statistics {
	now := uc.clock()
	stats := task.Statistics{
		Total: len(tasks),
		ByPriority: map[model.Priority]int{
			model.PriorityHigh:   0,
			model.PriorityNormal: 0,
			model.PriorityLow:    0,
		},
	}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
			continue
		}
		stats.Pending++
		stats.ByPriority[model.NormalizePriority(string(t.Priority))]++
		if t.IsOverdue(now) {
			stats.Overdue++
		}
	}
	if stats.Total > 0 {
		rate := float64(stats.Completed) / float64(stats.Total) * 100
		stats.CompletionRate = math.Round(rate*10) / 10
	}
	return stats
}

// Ping checks that the store medium is reachable.
func (uc *implUseCase) Ping(ctx context.Context) error {
	if _, err := uc.repo.Load(ctx); err != nil {
		return fmt.Errorf("ping task store: %w", err)
	}
	return nil
}
