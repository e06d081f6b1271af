package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/internal/store"
	"github.com/MKhiriev/exercise-tracker/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) CreateOrFetchUser(ctx context.Context, req models.CreateUserRequest) (models.UserSummary, error) {
	user, err := s.userRepository.FindOrCreateUser(ctx, req.Username)
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("find or create user: %w", err)
	}

	return user.Summary(), nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	return summaries, nil
}
