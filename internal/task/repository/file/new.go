package file

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"voice-task-assistant/internal/task/repository"
	pkgLog "voice-task-assistant/pkg/log"
)

const lockSuffix = ".lock"

// Config configures the file-backed task repository.
type Config struct {
	Path     string         // e.g. data/tasks.json
	Format   string         // repository.FormatJSON or repository.FormatYAML
	Location *time.Location // wall clock used for persisted timestamps
}

type implRepository struct {
	l      pkgLog.Logger
	path   string
	format string
	loc    *time.Location
	lock   *flock.Flock
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a file-backed task repository. The file is created lazily on first Load.
func New(l pkgLog.Logger, cfg Config) (*implRepository, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("task file path is required")
	}

	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = formatFromExt(cfg.Path)
	}
	if format != repository.FormatJSON && format != repository.FormatYAML {
		return nil, fmt.Errorf("unsupported task file format %q", cfg.Format)
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	return &implRepository{
		l:      l,
		path:   cfg.Path,
		format: format,
		loc:    loc,
		lock:   flock.New(cfg.Path + lockSuffix),
	}, nil
}

// Path returns the data file location.
func (r *implRepository) Path() string {
	return r.path
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return repository.FormatYAML
	default:
		return repository.FormatJSON
	}
}
