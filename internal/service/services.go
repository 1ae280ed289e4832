package service

import (
	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

type Services struct {
	AuthService    AuthService
	DiaryService   DiaryService
	AdminService   AdminService
	AppInfoService AppInfoService
}

// NewServices wires every service on top of storages. DiaryService is
// wrapped with request validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	diaryService := NewDiaryValidationService().Wrap(NewDiaryService(storages.DiaryStorage, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		DiaryService:   diaryService,
		AdminService:   NewAdminService(storages.UserRepository, storages.DiaryStorage, cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
