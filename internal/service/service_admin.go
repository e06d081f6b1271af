package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/internal/store"
)

type adminService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewAdminService(userRepository store.UserRepository, logger *logger.Logger) AdminService {
	return &adminService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *adminService) Reset(ctx context.Context) (int64, error) {
	deleted, err := s.userRepository.DeleteAllUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all users: %w", err)
	}

	logger.FromContext(ctx).Warn().
		Str("func", "*adminService.Reset").
		Int64("deleted", deleted).
		Msg("database cleared")

	return deleted, nil
}
