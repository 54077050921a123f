package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todo-lists.com/todo-lists/internal/errors"
	model "todo-lists.com/todo-lists/internal/models"
)

func TestListRepository_FindOwned(t *testing.T) {
	db := setupTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	list := seedList(t, db, alice.ID, "Home")

	found, err := repo.FindOwned(ctx, list.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Home", found.Name)

	_, err = repo.FindOwned(ctx, list.ID, bob.ID)
	assert.ErrorIs(t, err, apperrors.ErrListNotFound)

	_, err = repo.FindOwned(ctx, uuid.NewString(), alice.ID)
	assert.ErrorIs(t, err, apperrors.ErrListNotFound)
}

func TestListRepository_UpdateKeepsOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	list := seedList(t, db, alice.ID, "Home")

	list.Name = "House"
	list.Description = strPtr("weekend jobs")
	require.NoError(t, repo.Update(ctx, list))

	found, err := repo.FindOwned(ctx, list.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "House", found.Name)
	require.NotNil(t, found.Description)
	assert.Equal(t, "weekend jobs", *found.Description)
	assert.Equal(t, alice.ID, found.UserID)

	foreign := *list
	foreign.UserID = uuid.NewString()
	assert.ErrorIs(t, repo.Update(ctx, &foreign), apperrors.ErrListNotFound)
}

func TestListRepository_ListByOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	home := seedList(t, db, alice.ID, "Home")
	seedList(t, db, bob.ID, "Work")
	seedTask(t, db, home.ID, "Water plants", nil, false, time.Minute)

	lists, err := repo.ListByOwner(ctx, alice.ID, true)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, home.ID, lists[0].ID)
	assert.Len(t, lists[0].Tasks, 1)

	lists, err = repo.ListByOwner(ctx, alice.ID, false)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Empty(t, lists[0].Tasks)
}

func TestListRepository_DeleteCascade(t *testing.T) {
	db := setupTestDB(t)
	repo := NewListRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	list := seedList(t, db, alice.ID, "Home")
	other := seedList(t, db, alice.ID, "Garden")

	var ids []string
	for i := 0; i < 4; i++ {
		ids = append(ids, seedTask(t, db, list.ID, "chore", nil, false, time.Duration(i)*time.Minute).ID)
	}
	kept := seedTask(t, db, other.ID, "mow", nil, false, time.Hour)

	_, err := repo.DeleteCascade(ctx, list.ID, bob.ID)
	assert.ErrorIs(t, err, apperrors.ErrListNotFound)

	deleted, err := repo.DeleteCascade(ctx, list.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)

	for _, id := range ids {
		for _, owner := range []string{alice.ID, bob.ID} {
			_, err := tasks.FindOwned(ctx, id, owner)
			assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
		}
	}

	var remaining int64
	require.NoError(t, db.Model(&model.Task{}).Where("list_id = ?", list.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)

	_, err = tasks.FindOwned(ctx, kept.ID, alice.ID)
	assert.NoError(t, err)
}

func TestListRepository_DeleteCascadeRollsBack(t *testing.T) {
	db := setupTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	list := seedList(t, db, alice.ID, "Home")
	seedTask(t, db, list.ID, "chore", nil, false, time.Minute)

	// A trigger that aborts the list delete makes the second statement of
	// the transaction fail after the tasks were already removed.
	require.NoError(t, db.Exec(`CREATE TRIGGER block_list_delete BEFORE DELETE ON lists
BEGIN SELECT RAISE(ABORT, 'list delete blocked'); END`).Error)

	_, err := repo.DeleteCascade(ctx, list.ID, alice.ID)
	require.Error(t, err)
	assert.False(t, apperrors.IsUserFacing(err))

	var count int64
	require.NoError(t, db.Model(&model.Task{}).Where("list_id = ?", list.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTaskRepository_ForeignKeyEnforced(t *testing.T) {
	db := setupTestDB(t)

	err := NewTaskRepository(db).Create(context.Background(), &model.Task{Title: "orphan", ListID: uuid.NewString()})
	assert.Error(t, err)
}
