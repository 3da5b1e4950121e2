package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/pkg/models"
)

type UsersService struct {
	users  UserStore
	logger *logrus.Logger
}

func NewUsersService(users UserStore, logger *logrus.Logger) *UsersService {
	return &UsersService{
		users:  users,
		logger: logger,
	}
}

func (s *UsersService) CreateUser(ctx context.Context, name string) (models.User, error) {
	user, err := s.users.Create(ctx, name)
	if err != nil {
		return models.User{}, err
	}

	s.logger.WithField("user_id", user.UserID).Info("User created")
	return user, nil
}

func (s *UsersService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.FindOne(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %d", ErrUserNotFound, userID)
	}

	return user, nil
}
