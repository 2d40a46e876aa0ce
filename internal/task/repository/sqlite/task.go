package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	position         INTEGER PRIMARY KEY,
	id               INTEGER NOT NULL,
	title            TEXT    NOT NULL,
	priority         TEXT    NOT NULL,
	deadline         TEXT,
	completed        INTEGER NOT NULL DEFAULT 0,
	created_at       TEXT    NOT NULL,
	completed_at     TEXT,
	category         TEXT    NOT NULL DEFAULT '',
	reminder_minutes INTEGER NOT NULL DEFAULT 0,
	reminder_set     INTEGER NOT NULL DEFAULT 0
)`

// Load reads every task ordered by storage position. Query or scan failures are
// logged and yield an empty collection.
func (r *implRepository) Load(ctx context.Context) ([]model.Task, error) {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("%w: ensure schema: %v", repository.ErrStorage, err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, priority, deadline, completed, created_at, completed_at,
		       category, reminder_minutes, reminder_set
		FROM tasks ORDER BY position`)
	if err != nil {
		r.l.Warnf(ctx, "sqlite.Load: query failed, using empty task list: %v", err)
		return []model.Task{}, nil
	}
	defer rows.Close()

	records := make([]repository.Record, 0)
	for rows.Next() {
		var (
			rec         repository.Record
			deadline    sql.NullString
			completedAt sql.NullString
		)
		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Priority, &deadline, &rec.Completed, &rec.CreatedAt,
			&completedAt, &rec.Category, &rec.ReminderMinutes, &rec.ReminderSet,
		); err != nil {
			r.l.Warnf(ctx, "sqlite.Load: scan failed, using empty task list: %v", err)
			return []model.Task{}, nil
		}
		rec.Deadline = nullableString(deadline)
		rec.CompletedAt = nullableString(completedAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		r.l.Warnf(ctx, "sqlite.Load: iteration failed, using empty task list: %v", err)
		return []model.Task{}, nil
	}

	tasks, err := repository.Tasks(records, r.loc)
	if err != nil {
		r.l.Warnf(ctx, "sqlite.Load: malformed record, using empty task list: %v", err)
		return []model.Task{}, nil
	}
	return tasks, nil
}

// Save replaces the whole collection in one transaction.
func (r *implRepository) Save(ctx context.Context, tasks []model.Task) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: ensure schema: %v", repository.ErrStorage, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", repository.ErrStorage, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("%w: clear tasks: %v", repository.ErrStorage, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (position, id, title, priority, deadline, completed, created_at,
		                   completed_at, category, reminder_minutes, reminder_set)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare insert: %v", repository.ErrStorage, err)
	}
	defer stmt.Close()

	for i, rec := range repository.NewRecords(tasks, r.loc) {
		if _, err := stmt.ExecContext(ctx,
			i, rec.ID, rec.Title, rec.Priority, rec.Deadline, rec.Completed, rec.CreatedAt,
			rec.CompletedAt, rec.Category, rec.ReminderMinutes, rec.ReminderSet,
		); err != nil {
			return fmt.Errorf("%w: insert task %d: %v", repository.ErrStorage, rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", repository.ErrStorage, err)
	}
	return nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
