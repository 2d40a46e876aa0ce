package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"voice-task-assistant/internal/task/repository"
	pkgLog "voice-task-assistant/pkg/log"
)

// Config configures the SQLite-backed task repository.
type Config struct {
	Path     string // e.g. data/tasks.db
	Location *time.Location
}

type implRepository struct {
	l   pkgLog.Logger
	db  *sql.DB
	loc *time.Location
}

var _ repository.Repository = (*implRepository)(nil)

// New opens (creating if needed) the SQLite task database.
func New(l pkgLog.Logger, cfg Config) (*implRepository, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// single writer; avoids "database is locked" between pooled connections
	db.SetMaxOpenConns(1)

	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	return &implRepository{l: l, db: db, loc: loc}, nil
}

// Close releases the database handle.
func (r *implRepository) Close() error {
	return r.db.Close()
}
