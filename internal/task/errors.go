package task

import (
	"errors"
	"fmt"

	"voice-task-assistant/internal/task/repository"
)

// Domain-specific errors for the task package.
var (
	ErrValidation = errors.New("invalid task input")

	ErrEmptyTitle    = fmt.Errorf("%w: title is empty", ErrValidation)
	ErrEmptyCategory = fmt.Errorf("%w: category is empty", ErrValidation)
	ErrEmptyQuery    = fmt.Errorf("%w: search query is empty", ErrValidation)
	ErrInvalidPeriod = fmt.Errorf("%w: unknown period", ErrValidation)

	// ErrStorage is returned when a mutation could not be persisted.
	ErrStorage = repository.ErrStorage
)
