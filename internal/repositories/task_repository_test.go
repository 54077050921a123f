package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todo-lists.com/todo-lists/internal/errors"
	model "todo-lists.com/todo-lists/internal/models"
)

func TestTaskRepository_UpdateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	home := seedList(t, db, owner.ID, "Home")
	work := seedList(t, db, owner.ID, "Work")
	task := seedTask(t, db, home.ID, "Draft", nil, false, time.Minute)

	due, err := model.ParseDate("2026-03-15")
	require.NoError(t, err)

	task.Title = "Final"
	task.DueDate = &due
	task.IsCompleted = true
	task.ListID = work.ID
	require.NoError(t, repo.Update(ctx, task))

	found, err := repo.FindOwned(ctx, task.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", found.Title)
	assert.True(t, found.IsCompleted)
	assert.Equal(t, work.ID, found.ListID)
	require.NotNil(t, found.DueDate)
	assert.Equal(t, "2026-03-15", found.DueDate.String())
	require.NotNil(t, found.List)
	assert.Equal(t, "Work", found.List.Name)

	task.DueDate = nil
	require.NoError(t, repo.Update(ctx, task))
	found, err = repo.FindOwned(ctx, task.ID, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, found.DueDate)
}

func TestTaskRepository_DeleteOwned(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	list := seedList(t, db, alice.ID, "Home")
	task := seedTask(t, db, list.ID, "Dust", nil, false, time.Minute)

	assert.ErrorIs(t, repo.DeleteOwned(ctx, task.ID, bob.ID), apperrors.ErrTaskNotFound)
	require.NoError(t, repo.DeleteOwned(ctx, task.ID, alice.ID))
	assert.ErrorIs(t, repo.DeleteOwned(ctx, task.ID, alice.ID), apperrors.ErrTaskNotFound)
}
