package services

import (
	"context"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
)

// AuthService - аутентификация админа и сид первого аккаунта.
type AuthService struct {
	repo repositories.AdminRepository
}

func NewAuthService(repo repositories.AdminRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Login проверяет креды одним ответом на оба случая: по ошибке нельзя
// понять, email неверен или пароль.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Admin, error) {
	admin, err := s.repo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(password, admin.PasswordHash) {
		logger.CtxWarn(ctx, "failed admin login attempt", "admin_id", admin.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	logger.CtxInfo(ctx, "admin logged in", "admin_id", admin.ID)
	return admin, nil
}

// SeedFirstAdmin создает дефолтный аккаунт при пустой таблице.
// Публичного пути создания админа нет.
func (s *AuthService) SeedFirstAdmin(email, password, name string) error {
	count, err := s.repo.CountAll()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}
	if err := s.repo.Create(admin); err != nil {
		return err
	}

	logger.Info("default admin created", "email", email)
	return nil
}
