package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task/repository/sqlite"
	pkgLog "voice-task-assistant/pkg/log"
)

func TestSQLiteSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	repo, err := sqlite.New(pkgLog.NewNop(), sqlite.Config{Path: path, Location: time.UTC})
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	empty, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	deadline := time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)
	completedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: 2, Title: "second inserted first", Priority: model.PriorityLow, CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{ID: 1, Title: "buy milk", Priority: model.PriorityHigh, Deadline: &deadline, Completed: true, CompletedAt: &completedAt,
			CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), Category: "shopping", ReminderMinutes: 15, ReminderSet: true},
	}
	require.NoError(t, repo.Save(ctx, tasks))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID, "storage order must be preserved")
	assert.Equal(t, "buy milk", got[1].Title)
	assert.True(t, got[1].Completed)
	assert.True(t, got[1].Deadline.Equal(deadline))
	assert.True(t, got[1].CompletedAt.Equal(completedAt))
	assert.Equal(t, "shopping", got[1].Category)
	assert.Equal(t, 15, got[1].ReminderMinutes)
	assert.True(t, got[1].ReminderSet)
	assert.Nil(t, got[0].Deadline)

	require.NoError(t, repo.Save(ctx, got[:1]))
	again, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, got[:1], again)
}
