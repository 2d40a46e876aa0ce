package http

import (
	"voice-task-assistant/internal/assistant"
	"voice-task-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
