package router

import (
	"context"

	"voice-task-assistant/pkg/log"
)

// Router is the interface for command routing
type Router interface {
	Classify(ctx context.Context, message string) RouterOutput
}

// PatternRouter classifies commands with an ordered table of regular expressions.
type PatternRouter struct {
	l     log.Logger
	rules []rule
}

// Ensure PatternRouter implements Router interface
var _ Router = (*PatternRouter)(nil)

// New creates a new PatternRouter
func New(l log.Logger) *PatternRouter {
	return &PatternRouter{
		l:     l,
		rules: defaultRules(),
	}
}
