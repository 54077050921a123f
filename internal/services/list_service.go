package services

import (
	"context"

	"go.uber.org/zap"

	model "todo-lists.com/todo-lists/internal/models"
	repository "todo-lists.com/todo-lists/internal/repositories"
	"todo-lists.com/todo-lists/internal/validators"
)

type ListService struct {
	repo   *repository.ListRepository
	logger *zap.Logger
}

func NewListService(repo *repository.ListRepository, logger *zap.Logger) *ListService {
	return &ListService{
		repo:   repo,
		logger: logger.Named("lists"),
	}
}

func (s *ListService) CreateList(ctx context.Context, ownerID string, in ListInput) (*model.TaskList, error) {
	in.normalize()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	list := &model.TaskList{
		Name:        in.Name,
		Description: in.Description,
		UserID:      ownerID,
	}
	if err := s.repo.Create(ctx, list); err != nil {
		s.logger.Error("failed to create list", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("created list", zap.String("list_id", list.ID), zap.String("owner_id", ownerID))
	return list, nil
}

// UpdateList checks ownership before it validates, so a foreign list id
// never reports field errors.
func (s *ListService) UpdateList(ctx context.Context, listID, ownerID string, in ListInput) (*model.TaskList, error) {
	list, err := s.repo.FindOwned(ctx, listID, ownerID)
	if err != nil {
		s.logger.Warn("list not found", zap.String("list_id", listID), zap.String("owner_id", ownerID))
		return nil, err
	}

	in.normalize()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	list.Name = in.Name
	list.Description = in.Description
	if err := s.repo.Update(ctx, list); err != nil {
		s.logger.Error("failed to update list", zap.String("list_id", listID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("updated list", zap.String("list_id", list.ID), zap.String("owner_id", ownerID))
	return list, nil
}

func (s *ListService) DeleteList(ctx context.Context, listID, ownerID string) error {
	deletedTasks, err := s.repo.DeleteCascade(ctx, listID, ownerID)
	if err != nil {
		s.logger.Warn("failed to delete list",
			zap.String("list_id", listID),
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("deleted list",
		zap.String("list_id", listID),
		zap.String("owner_id", ownerID),
		zap.Int64("deleted_tasks", deletedTasks),
	)
	return nil
}

func (s *ListService) GetList(ctx context.Context, listID, ownerID string) (*model.TaskList, error) {
	return s.repo.FindOwned(ctx, listID, ownerID)
}

func (s *ListService) ListsForOwner(ctx context.Context, ownerID string, withTasks bool) ([]model.TaskList, error) {
	return s.repo.ListByOwner(ctx, ownerID, withTasks)
}
