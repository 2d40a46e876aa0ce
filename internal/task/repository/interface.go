package repository

import (
	"context"

	"voice-task-assistant/internal/model"
)

// Repository persists the whole ordered task collection. Every use case
// operation loads the full collection, mutates it in memory and saves it back.
type Repository interface {
	// Load returns the stored tasks in storage order. It fails with ErrStorage only
	// when the storage medium itself cannot be prepared; unreadable or corrupt
	// content yields an empty collection.
	Load(ctx context.Context) ([]model.Task, error)

	// Save replaces the stored collection. Failures wrap ErrStorage.
	Save(ctx context.Context, tasks []model.Task) error
}
