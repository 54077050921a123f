package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "todo-lists.com/todo-lists/internal/errors"
	model "todo-lists.com/todo-lists/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// owned scopes a task query to tasks whose parent list belongs to ownerID.
func owned(ownerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN lists ON lists.id = tasks.list_id AND lists.user_id = ?", ownerID)
	}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindOwned(ctx context.Context, id, ownerID string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Scopes(owned(ownerID)).
		Preload("List", selectListSummary).
		Where("tasks.id = ?", id).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// Update replaces every mutable column of the task.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	now := r.db.NowFunc()
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":        task.Title,
			"description":  task.Description,
			"due_date":     task.DueDate,
			"is_completed": task.IsCompleted,
			"list_id":      task.ListID,
			"updated_at":   now,
		})

	if res.Error != nil {
		return fmt.Errorf("failed to update task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}

	task.UpdatedAt = now
	return nil
}

func (r *TaskRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	ownedLists := r.db.Model(&model.TaskList{}).Select("id").Where("user_id = ?", ownerID)

	res := r.db.WithContext(ctx).
		Where("id = ? AND list_id IN (?)", id, ownedLists).
		Delete(&model.Task{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

func selectListSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}
