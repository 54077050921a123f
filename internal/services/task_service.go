package services

import (
	"context"

	"go.uber.org/zap"

	apperrors "todo-lists.com/todo-lists/internal/errors"
	model "todo-lists.com/todo-lists/internal/models"
	repository "todo-lists.com/todo-lists/internal/repositories"
	"todo-lists.com/todo-lists/internal/validators"
)

type TaskService struct {
	tasks  *repository.TaskRepository
	lists  *repository.ListRepository
	logger *zap.Logger
}

func NewTaskService(
	tasks *repository.TaskRepository,
	lists *repository.ListRepository,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		tasks:  tasks,
		lists:  lists,
		logger: logger.Named("tasks"),
	}
}

func (s *TaskService) ListTasks(ctx context.Context, filter repository.TaskFilter) (*repository.TaskPage, error) {
	return s.tasks.Paginate(ctx, filter)
}

func (s *TaskService) GetTask(ctx context.Context, taskID, ownerID string) (*model.Task, error) {
	return s.tasks.FindOwned(ctx, taskID, ownerID)
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, in TaskInput) (*model.Task, error) {
	task, err := s.buildTask(in)
	if err != nil {
		return nil, err
	}

	if err := s.checkListAccess(ctx, task.ListID, ownerID); err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task", zap.String("list_id", task.ListID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("created task",
		zap.String("task_id", task.ID),
		zap.String("list_id", task.ListID),
		zap.String("owner_id", ownerID),
	)
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID, ownerID string, in TaskInput) (*model.Task, error) {
	current, err := s.tasks.FindOwned(ctx, taskID, ownerID)
	if err != nil {
		s.logger.Warn("task not found", zap.String("task_id", taskID), zap.String("owner_id", ownerID))
		return nil, err
	}

	task, err := s.buildTask(in)
	if err != nil {
		return nil, err
	}

	if task.ListID != current.ListID {
		if err := s.checkListAccess(ctx, task.ListID, ownerID); err != nil {
			return nil, err
		}
	}

	task.ID = current.ID
	task.CreatedAt = current.CreatedAt
	if err := s.tasks.Update(ctx, task); err != nil {
		s.logger.Error("failed to update task", zap.String("task_id", taskID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("updated task",
		zap.String("task_id", task.ID),
		zap.String("list_id", task.ListID),
		zap.String("owner_id", ownerID),
	)
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID, ownerID string) error {
	if err := s.tasks.DeleteOwned(ctx, taskID, ownerID); err != nil {
		s.logger.Warn("failed to delete task",
			zap.String("task_id", taskID),
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("deleted task", zap.String("task_id", taskID), zap.String("owner_id", ownerID))
	return nil
}

func (s *TaskService) buildTask(in TaskInput) (*model.Task, error) {
	in.normalize()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	task := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		IsCompleted: *in.IsCompleted,
		ListID:      in.ListID,
	}

	if in.DueDate != nil {
		due, err := model.ParseDate(*in.DueDate)
		if err != nil {
			return nil, apperrors.NewValidation(map[string]string{
				"due_date": validators.Message("due_date", "datetime", ""),
			}, []string{"due_date"})
		}
		task.DueDate = &due
	}

	return task, nil
}

// checkListAccess tells a missing list (reference error) apart from a list
// owned by someone else (not found).
func (s *TaskService) checkListAccess(ctx context.Context, listID, ownerID string) error {
	list, err := s.lists.FindByID(ctx, listID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.ErrInvalidListReference
		}
		return err
	}

	if list.UserID != ownerID {
		s.logger.Warn("list belongs to another owner", zap.String("list_id", listID), zap.String("owner_id", ownerID))
		return apperrors.ErrListNotFound
	}
	return nil
}
