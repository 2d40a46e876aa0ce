package usecase

import (
	"context"
	"sync"
	"time"

	"voice-task-assistant/internal/task/repository"
	"voice-task-assistant/pkg/datemath"
	"voice-task-assistant/pkg/gcalendar"
	pkgLog "voice-task-assistant/pkg/log"
)

// Calendar mirrors task deadlines to an external calendar. *gcalendar.Client
// satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	calendar Calendar
	now      func() time.Time

	// mu serializes load-mutate-save cycles between the voice loop, HTTP and
	// the reminder worker.
	mu sync.Mutex
}

// Option customizes the use case.
type Option func(*implUseCase)

// WithCalendar mirrors tasks with deadlines to cal. Calendar failures never fail Add.
func WithCalendar(cal Calendar) Option {
	return func(uc *implUseCase) {
		uc.calendar = cal
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
	opts ...Option,
) *implUseCase {
	uc := &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
