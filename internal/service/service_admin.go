package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
)

type adminService struct {
	userRepository store.UserRepository
	diaryStorage   store.DiaryStorage
	validator      validators.Validator
	bcryptCost     int

	logger *logger.Logger
}

func NewAdminService(userRepository store.UserRepository, diaryStorage store.DiaryStorage, cfg config.App, logger *logger.Logger) AdminService {
	return &adminService{
		userRepository: userRepository,
		diaryStorage:   diaryStorage,
		validator:      validators.NewAuthValidator(),
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

func (s *adminService) CreateAdmin(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("invalid admin data: %w", err)
	}

	_, err := s.userRepository.FindUserByEmail(ctx, request.Email)
	if err == nil {
		return models.User{}, ErrAdminAlreadyExists
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := utils.HashPassword(request.Password, s.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	admin, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, ErrAdminAlreadyExists
	}
	if err != nil {
		return models.User{}, fmt.Errorf("admin creation ended with error: %w", err)
	}

	log.Info().Int64("id", admin.ID).Str("email", admin.Email).Msg("admin user created")
	return admin, nil
}

func (s *adminService) ResetPassword(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	request := models.RegisterRequest{Username: username, Password: password}
	if err := s.validator.Validate(ctx, request, validators.FieldUsername, validators.FieldPassword, validators.FieldPasswordLength); err != nil {
		return fmt.Errorf("invalid password reset data: %w", err)
	}

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("user search by username failed: %w", err)
	}

	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, user.ID, hash); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Int64("id", user.ID).Str("username", username).Msg("password reset")
	return nil
}

// ListUsers reads every diary document, so it is meant for the admin tool
// rather than for request handling.
func (s *adminService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		summary := models.UserSummary{User: user}

		summary.HasDiary, err = s.diaryStorage.Exists(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("checking diary of user %d failed: %w", user.ID, err)
		}

		if summary.HasDiary {
			diary, err := s.diaryStorage.Get(ctx, user.ID)
			if err != nil {
				return nil, fmt.Errorf("reading diary of user %d failed: %w", user.ID, err)
			}
			summary.EntriesCount = len(diary.Entries)
			summary.CategoriesCount = len(diary.Categories)
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}
