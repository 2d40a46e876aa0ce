package usecase

import (
	"time"

	"voice-task-assistant/internal/router"
	"voice-task-assistant/internal/task"
	pkgLog "voice-task-assistant/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	router router.Router
	taskUC task.UseCase
	name   string
	now    func() time.Time
}

// New creates the assistant use case. name is how the assistant introduces itself.
func New(l pkgLog.Logger, r router.Router, taskUC task.UseCase, name string) *implUseCase {
	return &implUseCase{
		l:      l,
		router: r,
		taskUC: taskUC,
		name:   name,
		now:    time.Now,
	}
}

// SetClock replaces time.Now for greetings.
func (uc *implUseCase) SetClock(now func() time.Time) {
	uc.now = now
}
