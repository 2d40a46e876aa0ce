package assistant

import (
	"context"

	"voice-task-assistant/internal/model"
)

// UseCase turns one free-text command into a reply.
type UseCase interface {
	// Handle classifies text and runs the matching task operation. User mistakes
	// and missing tasks are answered in the reply; the error is non-nil only when
	// a change could not be persisted, and the reply then explains that too.
	Handle(ctx context.Context, sc model.Scope, text string) (Reply, error)
}
