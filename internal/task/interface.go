package task

import (
	"context"

	"voice-task-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Title lookups are case-insensitive and act on the first match in storage order;
// a lookup that matches nothing returns a nil task and a nil error.
type UseCase interface {
	// Add validates the title, resolves the deadline text and appends a new task.
	Add(ctx context.Context, sc model.Scope, input AddInput) (model.Task, error)

	// List returns incomplete tasks due in the period, or every task for PeriodAll.
	List(ctx context.Context, sc model.Scope, period Period) ([]model.Task, error)
	Overdue(ctx context.Context, sc model.Scope) ([]model.Task, error)
	Search(ctx context.Context, sc model.Scope, query string) ([]model.Task, error)

	Complete(ctx context.Context, sc model.Scope, title string) (*model.Task, error)
	SetPriority(ctx context.Context, sc model.Scope, title string, priority string) (*model.Task, error)
	Delete(ctx context.Context, sc model.Scope, title string) (*model.Task, error)

	SetCategory(ctx context.Context, sc model.Scope, title string, category string) (*model.Task, error)
	ListByCategory(ctx context.Context, sc model.Scope, category string) ([]model.Task, error)
	Categories(ctx context.Context, sc model.Scope) ([]string, error)

	// SetReminder only applies to incomplete tasks. minutes <= 0 means DefaultReminderMinutes.
	SetReminder(ctx context.Context, sc model.Scope, title string, minutes int) (*model.Task, error)
	NeedingReminders(ctx context.Context, sc model.Scope) ([]model.Task, error)
	MarkReminded(ctx context.Context, sc model.Scope, id int64) (*model.Task, error)
	// DueScheduledReminders returns incomplete tasks with an armed reminder whose
	// lead time has started but whose deadline has not passed.
	DueScheduledReminders(ctx context.Context, sc model.Scope) ([]model.Task, error)

	Statistics(ctx context.Context, sc model.Scope) (Statistics, error)

	// Ping fails with ErrStorage when the store cannot be prepared. Unlike the
	// other reads it does not treat an unreachable store as empty.
	Ping(ctx context.Context) error

	// Summary renders the spoken summary for today, week, overdue or daily.
	Summary(ctx context.Context, sc model.Scope, period Period) (string, error)
}
