package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	config "todo-lists.com/todo-lists/internal/configs"
	model "todo-lists.com/todo-lists/internal/models"
	repository "todo-lists.com/todo-lists/internal/repositories"
)

type fixture struct {
	db    *gorm.DB
	lists *ListService
	tasks *TaskService
	users *UserService
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.NewDatabaseClient("sqlite", ":memory:", false)
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	t.Cleanup(func() { _ = config.CloseDatabase(db) })
	return db
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := setupTestDB(t)
	logger := zap.NewNop()
	listRepo := repository.NewListRepository(db)

	return &fixture{
		db:    db,
		lists: NewListService(listRepo, logger),
		tasks: NewTaskService(repository.NewTaskRepository(db), listRepo, logger),
		users: NewUserService(repository.NewUserRepository(db), logger),
	}
}

func (f *fixture) user(t *testing.T, name string) *model.User {
	t.Helper()

	user, err := f.users.CreateUser(context.Background(), UserInput{
		Name:  name,
		Email: fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]),
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) list(t *testing.T, ownerID, name string) *model.TaskList {
	t.Helper()

	list, err := f.lists.CreateList(context.Background(), ownerID, ListInput{Name: name})
	require.NoError(t, err)
	return list
}

func (f *fixture) task(t *testing.T, ownerID, listID, title string) *model.Task {
	t.Helper()

	task, err := f.tasks.CreateTask(context.Background(), ownerID, TaskInput{
		Title:       title,
		ListID:      listID,
		IsCompleted: boolPtr(false),
	})
	require.NoError(t, err)
	return task
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
