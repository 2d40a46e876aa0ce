package reminder_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/reminder"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/internal/task/repository/file"
	"voice-task-assistant/internal/task/usecase"
	"voice-task-assistant/pkg/datemath"
	pkgLog "voice-task-assistant/pkg/log"
)

var monday = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

type recorder struct {
	mu    sync.Mutex
	texts []string
	ch    chan string
	err   error
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan string, 16)}
}

func (r *recorder) Notify(ctx context.Context, text string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	r.texts = append(r.texts, text)
	r.mu.Unlock()
	r.ch <- text
	return nil
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.texts...)
}

func setup(t *testing.T) (task.UseCase, string) {
	t.Helper()
	l := pkgLog.NewNop()
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo, err := file.New(l, file.Config{Path: path, Location: time.UTC})
	require.NoError(t, err)
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	uc := usecase.New(l, repo, parser, usecase.WithClock(func() time.Time { return monday }))
	return uc, path
}

func newWorker(uc task.UseCase, cfg reminder.Config, n ...reminder.Notifier) *reminder.Worker {
	w := reminder.New(pkgLog.NewNop(), uc, cfg, n...)
	w.SetClock(func() time.Time { return monday })
	return w
}

func TestCheck_AnnouncesUpcomingTaskOnce(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup(t)
	_, err := uc.Add(ctx, model.VoiceScope, task.AddInput{Title: "buy milk", Deadline: "in 30 minutes"})
	require.NoError(t, err)
	_, err = uc.Add(ctx, model.VoiceScope, task.AddInput{Title: "file taxes", Deadline: "next week"})
	require.NoError(t, err)

	rec := newRecorder()
	w := newWorker(uc, reminder.Config{}, rec)

	assert.Equal(t, 1, w.Check(ctx))
	assert.Equal(t, []string{"Reminder: buy milk is due in 30 minutes, at 10:30 AM."}, rec.all())

	assert.Equal(t, 0, w.Check(ctx), "marked tasks are not announced again")

	needing, err := uc.NeedingReminders(ctx, model.VoiceScope)
	require.NoError(t, err)
	assert.Empty(t, needing)
}

func TestCheck_ArmedReminder(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup(t)
	_, err := uc.Add(ctx, model.VoiceScope, task.AddInput{Title: "dentist", Deadline: "in 2 hours"})
	require.NoError(t, err)
	_, err = uc.SetReminder(ctx, model.VoiceScope, "dentist", 150)
	require.NoError(t, err)

	rec := newRecorder()
	w := newWorker(uc, reminder.Config{}, rec)

	assert.Equal(t, 1, w.Check(ctx))
	assert.Equal(t, []string{"Reminder: dentist is due in 120 minutes, at 12:00 PM."}, rec.all())
	assert.Equal(t, 0, w.Check(ctx), "armed reminders fire once per process")
}

func TestCheck_FailedDeliveryIsRetried(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup(t)
	_, err := uc.Add(ctx, model.VoiceScope, task.AddInput{Title: "buy milk", Deadline: "in 10 minutes"})
	require.NoError(t, err)

	failing := newRecorder()
	failing.err = errors.New("speaker unplugged")
	w := newWorker(uc, reminder.Config{}, failing)
	assert.Equal(t, 0, w.Check(ctx))

	rec := newRecorder()
	w = newWorker(uc, reminder.Config{}, failing, rec)
	assert.Equal(t, 1, w.Check(ctx), "one working notifier is enough")
	assert.Len(t, rec.all(), 1)
}

func TestNotifierFunc(t *testing.T) {
	var got string
	n := reminder.NotifierFunc(func(ctx context.Context, text string) error {
		got = text
		return nil
	})
	require.NoError(t, n.Notify(context.Background(), "hello"))
	assert.Equal(t, "hello", got)
}

func TestRun_WakesOnStoreChange(t *testing.T) {
	uc, path := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := uc.Add(ctx, model.VoiceScope, task.AddInput{Title: "first", Deadline: "in 20 minutes"})
	require.NoError(t, err)

	rec := newRecorder()
	w := newWorker(uc, reminder.Config{
		Interval:  time.Hour,
		WatchPath: path,
		Debounce:  20 * time.Millisecond,
	}, rec)

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case text := <-rec.ch:
		assert.Contains(t, text, "first")
	case <-time.After(2 * time.Second):
		t.Fatal("initial check did not run")
	}

	_, err = uc.Add(ctx, model.VoiceScope, task.AddInput{Title: "second", Deadline: "in 40 minutes"})
	require.NoError(t, err)

	select {
	case text := <-rec.ch:
		assert.Contains(t, text, "second")
	case <-time.After(5 * time.Second):
		t.Fatal("store change did not trigger a check")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
