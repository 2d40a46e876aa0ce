// Package app assembles the task domain shared by the API server and the
// voice assistant binaries.
package app

import (
	"context"
	"fmt"
	"time"

	"voice-task-assistant/config"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/internal/task/repository"
	"voice-task-assistant/internal/task/repository/file"
	"voice-task-assistant/internal/task/repository/sqlite"
	"voice-task-assistant/internal/task/usecase"
	"voice-task-assistant/pkg/datemath"
	"voice-task-assistant/pkg/gcalendar"
	"voice-task-assistant/pkg/log"
)

// TaskDomain is the wired task use case plus what it needs released on exit.
type TaskDomain struct {
	UseCase   task.UseCase
	StorePath string
	close     func() error
}

// NewTaskDomain builds the deadline parser, the configured store backend and
// the task use case. Google Calendar is optional and never fatal.
func NewTaskDomain(ctx context.Context, l log.Logger, cfg *config.Config) (*TaskDomain, error) {
	parser, err := datemath.NewParser(cfg.Task.Timezone,
		datemath.WithDateOrder(datemath.ParseDateOrder(cfg.Task.DateOrder)),
		datemath.WithDefaultTime(cfg.Task.DefaultHour, cfg.Task.DefaultMinute),
	)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Task.Timezone, err)
		parser, err = datemath.NewParser("UTC",
			datemath.WithDateOrder(datemath.ParseDateOrder(cfg.Task.DateOrder)),
			datemath.WithDefaultTime(cfg.Task.DefaultHour, cfg.Task.DefaultMinute),
		)
		if err != nil {
			return nil, err
		}
	}

	repo, closeRepo, err := newRepository(l, cfg.Task, parser.Location())
	if err != nil {
		return nil, err
	}

	var opts []usecase.Option
	if cfg.GoogleCalendar.Enabled {
		calendarClient, calErr := gcalendar.New(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
			CalendarID:      cfg.GoogleCalendar.CalendarID,
		})
		if calErr != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			opts = append(opts, usecase.WithCalendar(calendarClient))
			l.Info(ctx, "Google Calendar initialized")
		}
	}

	l.Infof(ctx, "Task store: driver=%s path=%s timezone=%s", cfg.Task.StorageDriver, cfg.Task.TaskStorePath(), parser.Location())

	return &TaskDomain{
		UseCase:   usecase.New(l, repo, parser, opts...),
		StorePath: cfg.Task.TaskStorePath(),
		close:     closeRepo,
	}, nil
}

// Close releases the store.
func (d *TaskDomain) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

func newRepository(l log.Logger, cfg config.TaskConfig, loc *time.Location) (repository.Repository, func() error, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverSQLite:
		repo, err := sqlite.New(l, sqlite.Config{Path: cfg.SQLitePath, Location: loc})
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite task store: %w", err)
		}
		return repo, repo.Close, nil
	default:
		repo, err := file.New(l, file.Config{Path: cfg.FilePath, Format: cfg.Format, Location: loc})
		if err != nil {
			return nil, nil, fmt.Errorf("open file task store: %w", err)
		}
		return repo, nil, nil
	}
}
