package repository

import "errors"

// ErrStorage marks a durable-storage failure.
var ErrStorage = errors.New("task storage failure")
