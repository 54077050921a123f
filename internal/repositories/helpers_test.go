package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	config "todo-lists.com/todo-lists/internal/configs"
	model "todo-lists.com/todo-lists/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.NewDatabaseClient("sqlite", ":memory:", false)
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	t.Cleanup(func() { _ = config.CloseDatabase(db) })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()

	user := &model.User{ID: uuid.NewString(), Name: name, Email: fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8])}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedList(t *testing.T, db *gorm.DB, ownerID, name string) *model.TaskList {
	t.Helper()

	list := &model.TaskList{ID: uuid.NewString(), Name: name, UserID: ownerID}
	require.NoError(t, NewListRepository(db).Create(context.Background(), list))
	return list
}

// seedTask inserts a task whose created_at is offset from a fixed base so
// ordering is deterministic.
func seedTask(t *testing.T, db *gorm.DB, listID, title string, description *string, completed bool, offset time.Duration) *model.Task {
	t.Helper()

	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		IsCompleted: completed,
		ListID:      listID,
		CreatedAt:   base.Add(offset),
		UpdatedAt:   base.Add(offset),
	}
	require.NoError(t, NewTaskRepository(db).Create(context.Background(), task))
	return task
}

func strPtr(s string) *string {
	return &s
}
