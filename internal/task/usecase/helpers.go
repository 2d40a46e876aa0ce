package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
)

func (uc *implUseCase) clock() time.Time {
	return uc.now().In(uc.dateMath.Location())
}

// load never fails: an unreachable store is logged and treated as empty.
func (uc *implUseCase) load(ctx context.Context) []model.Task {
	tasks, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.load: %v", err)
		return []model.Task{}
	}
	return tasks
}

func (uc *implUseCase) save(ctx context.Context, tasks []model.Task) error {
	if err := uc.repo.Save(ctx, tasks); err != nil {
		uc.l.Errorf(ctx, "task.usecase.save: %v", err)
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// findIndex returns the first task matching title that also satisfies accept.
func findIndex(tasks []model.Task, title string, accept func(model.Task) bool) int {
	for i, t := range tasks {
		if t.TitleMatches(title) && (accept == nil || accept(t)) {
			return i
		}
	}
	return -1
}

// mutate applies fn to the first matching task and saves. A miss returns nil, nil
// without touching the store.
func (uc *implUseCase) mutate(ctx context.Context, title string, accept func(model.Task) bool, fn func(*model.Task)) (*model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	tasks := uc.load(ctx)
	i := findIndex(tasks, title, accept)
	if i < 0 {
		return nil, nil
	}
	fn(&tasks[i])
	if err := uc.save(ctx, tasks); err != nil {
		return nil, err
	}
	updated := tasks[i]
	return &updated, nil
}

// nextID keeps ids roughly equal to the creation millisecond while staying unique.
func nextID(tasks []model.Task, now time.Time) int64 {
	id := now.UnixMilli()
	for _, t := range tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

func isIncomplete(t model.Task) bool {
	return !t.Completed
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// window returns the [start, end) range of a list period.
func (uc *implUseCase) window(period task.Period, now time.Time) (time.Time, time.Time) {
	switch period {
	case task.PeriodWeek:
		start := uc.dateMath.StartOfWeek(now)
		return start, start.AddDate(0, 0, 7)
	default:
		start := uc.dateMath.StartOfDay(now)
		return start, start.AddDate(0, 0, 1)
	}
}
