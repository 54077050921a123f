package services

import (
	"context"

	"go.uber.org/zap"

	model "todo-lists.com/todo-lists/internal/models"
	repository "todo-lists.com/todo-lists/internal/repositories"
	"todo-lists.com/todo-lists/internal/validators"
)

// UserService backs the identity collaborator: it only creates users and
// resolves ids handed in by the caller.
type UserService struct {
	repo   *repository.UserRepository
	logger *zap.Logger
}

func NewUserService(repo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger.Named("users"),
	}
}

func (s *UserService) CreateUser(ctx context.Context, in UserInput) (*model.User, error) {
	in.normalize()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	user := &model.User{Name: in.Name, Email: in.Email}
	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}

	s.logger.Info("created user", zap.String("user_id", user.ID))
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}
