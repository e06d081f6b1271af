package service

import (
	"fmt"

	"github.com/MKhiriev/exercise-tracker/internal/config"
	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/internal/store"
)

type Services struct {
	UserService     UserService
	ExerciseService ExerciseService
	AdminService    AdminService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	logger = logger.WithComponent("service")

	appInfo, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	return &Services{
		UserService:     NewUserValidationService().Wrap(NewUserService(storages.UserRepository, logger)),
		ExerciseService: NewExerciseValidationService().Wrap(NewExerciseService(storages.UserRepository, logger)),
		AdminService:    NewAdminService(storages.UserRepository, logger),
		AppInfoService:  appInfo,
	}, nil
}
