package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task/repository"
)

// Load reads the task collection. A missing file is created empty first; a file
// that cannot be read or decoded is logged and treated as empty.
func (r *implRepository) Load(ctx context.Context) ([]model.Task, error) {
	if err := r.ensure(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrStorage, err)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		r.l.Warnf(ctx, "file.Load: cannot read %s, using empty task list: %v", r.path, err)
		return []model.Task{}, nil
	}

	records, err := r.decode(data)
	if err != nil {
		r.l.Warnf(ctx, "file.Load: corrupt task file %s, using empty task list: %v", r.path, err)
		return []model.Task{}, nil
	}

	tasks, err := repository.Tasks(records, r.loc)
	if err != nil {
		r.l.Warnf(ctx, "file.Load: malformed record in %s, using empty task list: %v", r.path, err)
		return []model.Task{}, nil
	}
	return tasks, nil
}

// Save replaces the task file atomically (write temp file, then rename) while
// holding the lock file.
func (r *implRepository) Save(ctx context.Context, tasks []model.Task) error {
	data, err := r.encode(repository.NewRecords(tasks, r.loc))
	if err != nil {
		return fmt.Errorf("%w: encode tasks: %v", repository.ErrStorage, err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("%w: create data dir: %v", repository.ErrStorage, err)
	}

	if err := r.lock.Lock(); err != nil {
		return fmt.Errorf("%w: lock %s: %v", repository.ErrStorage, r.path, err)
	}
	defer func() {
		if err := r.lock.Unlock(); err != nil {
			r.l.Warnf(ctx, "file.Save: unlock %s: %v", r.path, err)
		}
	}()

	if err := writeAtomic(r.path, data); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrStorage, err)
	}
	r.l.Debugf(ctx, "file.Save: wrote %d tasks to %s", len(tasks), r.path)
	return nil
}

// ensure creates the data directory and an empty collection when absent.
func (r *implRepository) ensure() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	_, err := os.Stat(r.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", r.path, err)
	}

	data, err := r.encode([]repository.Record{})
	if err != nil {
		return err
	}
	return writeAtomic(r.path, data)
}

func (r *implRepository) encode(records []repository.Record) ([]byte, error) {
	if r.format == repository.FormatYAML {
		return yaml.Marshal(records)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *implRepository) decode(data []byte) ([]repository.Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []repository.Record
	var err error
	if r.format == repository.FormatYAML {
		err = yaml.Unmarshal(data, &records)
	} else {
		err = json.Unmarshal(data, &records)
	}
	return records, err
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
