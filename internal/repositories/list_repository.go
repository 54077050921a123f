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

type ListRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(ctx context.Context, list *model.TaskList) error {
	if list.ID == "" {
		list.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(list).Error; err != nil {
		return fmt.Errorf("failed to create list: %w", err)
	}
	return nil
}

// FindByID looks a list up regardless of its owner. Only used to tell a
// dangling list reference apart from a foreign one.
func (r *ListRepository) FindByID(ctx context.Context, id string) (*model.TaskList, error) {
	var list model.TaskList
	err := r.db.WithContext(ctx).First(&list, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListNotFound
		}
		return nil, fmt.Errorf("failed to find list: %w", err)
	}
	return &list, nil
}

func (r *ListRepository) FindOwned(ctx context.Context, id, ownerID string) (*model.TaskList, error) {
	var list model.TaskList
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListNotFound
		}
		return nil, fmt.Errorf("failed to find list: %w", err)
	}
	return &list, nil
}

func (r *ListRepository) ListByOwner(ctx context.Context, ownerID string, withTasks bool) ([]model.TaskList, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at asc").Order("id asc")

	if withTasks {
		query = query.Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc").Order("id desc")
		})
	}

	lists := make([]model.TaskList, 0)
	if err := query.Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	return lists, nil
}

// Update writes name and description back; the owner column is never touched.
func (r *ListRepository) Update(ctx context.Context, list *model.TaskList) error {
	now := r.db.NowFunc()
	res := r.db.WithContext(ctx).Model(&model.TaskList{}).
		Where("id = ? AND user_id = ?", list.ID, list.UserID).
		Updates(map[string]interface{}{
			"name":        list.Name,
			"description": list.Description,
			"updated_at":  now,
		})

	if res.Error != nil {
		return fmt.Errorf("failed to update list: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrListNotFound
	}

	list.UpdatedAt = now
	return nil
}

// DeleteCascade removes an owned list and all of its tasks in one
// transaction; either both are gone or neither is.
func (r *ListRepository) DeleteCascade(ctx context.Context, id, ownerID string) (int64, error) {
	var deletedTasks int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list model.TaskList
		err := tx.Where("id = ? AND user_id = ?", id, ownerID).
			First(&list).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrListNotFound
			}
			return err
		}

		res := tx.Where("list_id = ?", list.ID).Delete(&model.Task{})
		if res.Error != nil {
			return res.Error
		}
		deletedTasks = res.RowsAffected

		res = tx.Delete(&model.TaskList{}, "id = ?", list.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrListNotFound
		}
		return nil
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to delete list: %w", err)
	}

	return deletedTasks, nil
}
