package usecase

import (
	"context"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/internal/task/format"
)

// Summary renders the spoken summary of a period.
func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope, period task.Period) (string, error) {
	switch period {
	case task.PeriodToday, task.PeriodWeek, task.PeriodOverdue:
		tasks, err := uc.List(ctx, sc, period)
		if err != nil {
			return "", err
		}
		return format.Summary(period, tasks), nil

	case task.PeriodDaily:
		today, err := uc.List(ctx, sc, task.PeriodToday)
		if err != nil {
			return "", err
		}
		all := uc.load(ctx)
		return format.Daily(today, uc.overdue(all), uc.statistics(all)), nil

	default:
		return "", task.ErrInvalidPeriod
	}
}
