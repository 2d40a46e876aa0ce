// Package reminder announces tasks whose deadline is close.
package reminder

import (
	"context"
	"time"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
	pkgLog "voice-task-assistant/pkg/log"
)

const (
	DefaultInterval = time.Minute
	DefaultDebounce = 200 * time.Millisecond
)

// Notifier delivers one reminder sentence.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// NotifierFunc adapts a plain function, such as speech.Speaker.Speak, to Notifier.
type NotifierFunc func(ctx context.Context, text string) error

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, text string) error {
	return f(ctx, text)
}

// Config tunes the worker.
type Config struct {
	Interval time.Duration
	// WatchPath is the task store file. Changes to it trigger an early check.
	WatchPath string
	Debounce  time.Duration
}

// Worker polls the task store and delivers reminders.
type Worker struct {
	l         pkgLog.Logger
	uc        task.UseCase
	notifiers []Notifier
	cfg       Config
	sc        model.Scope
	now       func() time.Time

	// announced holds ids of tasks with an armed reminder already delivered in
	// this process.
	announced map[int64]struct{}
}

// New creates a reminder worker. Every reminder goes to each notifier.
func New(l pkgLog.Logger, uc task.UseCase, cfg Config, notifiers ...Notifier) *Worker {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	return &Worker{
		l:         l,
		uc:        uc,
		notifiers: notifiers,
		cfg:       cfg,
		sc:        model.VoiceScope,
		now:       time.Now,
		announced: make(map[int64]struct{}),
	}
}

// SetClock replaces time.Now for reminder wording.
func (w *Worker) SetClock(now func() time.Time) {
	w.now = now
}
