package reminder

import (
	"context"
	"time"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task/format"
)

// Run checks once immediately, then on every tick and on store changes, until
// ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	changes, stopWatch := w.watch(ctx)
	defer stopWatch()

	w.l.Infof(ctx, "reminder.Worker.Run: started interval=%s watch=%q", w.cfg.Interval, w.cfg.WatchPath)
	w.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			w.l.Info(ctx, "reminder.Worker.Run: stopped")
			return nil
		case <-ticker.C:
			w.Check(ctx)
		case <-changes:
			w.Check(ctx)
		}
	}
}

// Check delivers reminders due now and returns how many were sent.
// Armed reminders are announced once per process; tasks within the hour that
// have no reminder are announced and then marked.
func (w *Worker) Check(ctx context.Context) int {
	sent := 0

	scheduled, err := w.uc.DueScheduledReminders(ctx, w.sc)
	if err != nil {
		w.l.Errorf(ctx, "reminder.Worker.Check: scheduled reminders: %v", err)
	}
	for _, t := range scheduled {
		if _, ok := w.announced[t.ID]; ok {
			continue
		}
		if w.deliver(ctx, t) {
			w.announced[t.ID] = struct{}{}
			sent++
		}
	}

	needing, err := w.uc.NeedingReminders(ctx, w.sc)
	if err != nil {
		w.l.Errorf(ctx, "reminder.Worker.Check: needing reminders: %v", err)
		return sent
	}
	for _, t := range needing {
		if !w.deliver(ctx, t) {
			continue
		}
		sent++
		if _, err := w.uc.MarkReminded(ctx, w.sc, t.ID); err != nil {
			w.l.Errorf(ctx, "reminder.Worker.Check: mark id=%d: %v", t.ID, err)
		}
	}
	return sent
}

// deliver reports whether at least one notifier accepted the reminder.
func (w *Worker) deliver(ctx context.Context, t model.Task) bool {
	text := format.Reminder(t, w.now())
	ok := false
	for _, n := range w.notifiers {
		if err := n.Notify(ctx, text); err != nil {
			w.l.Warnf(ctx, "reminder.Worker.deliver: id=%d: %v", t.ID, err)
			continue
		}
		ok = true
	}
	return ok
}
