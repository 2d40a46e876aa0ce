package reminder

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watch emits on the returned channel after the task file settles following a
// write. The directory is watched so atomic renames are seen. With no
// WatchPath, or when the watcher cannot start, the channel never fires.
func (w *Worker) watch(ctx context.Context) (<-chan struct{}, func()) {
	out := make(chan struct{}, 1)
	if w.cfg.WatchPath == "" {
		return out, func() {}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.l.Warnf(ctx, "reminder.Worker.watch: create watcher: %v", err)
		return out, func() {}
	}
	dir := filepath.Dir(w.cfg.WatchPath)
	if err := fsw.Add(dir); err != nil {
		w.l.Warnf(ctx, "reminder.Worker.watch: watch %s: %v", dir, err)
		fsw.Close()
		return out, func() {}
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go w.watchLoop(ctx, fsw, out, stop, done)

	return out, func() {
		close(stop)
		<-done
		fsw.Close()
	}
}

func (w *Worker) watchLoop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- struct{}, stop, done chan struct{}) {
	defer close(done)

	target := filepath.Clean(w.cfg.WatchPath)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-stop:
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.cfg.Debounce)
			} else {
				timer.Reset(w.cfg.Debounce)
			}
			fire = timer.C
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.l.Warnf(ctx, "reminder.Worker.watch: %v", err)
		case <-fire:
			fire = nil
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}
}
