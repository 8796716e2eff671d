package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"taskvault.com/taskvault/internal/auth"
	"taskvault.com/taskvault/internal/constants"
	apperrors "taskvault.com/taskvault/internal/errors"
	model "taskvault.com/taskvault/internal/models"
	repository "taskvault.com/taskvault/internal/repositories"
)

type AuthService struct {
	users  *repository.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users *repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Register stores the user with a one-way password hash and issues a
// session token. The plaintext password is never persisted.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role constants.Role) (*model.User, string, error) {
	email = normalizeEmail(email)

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", apperrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.Create(ctx, strings.TrimSpace(name), email, hash, role)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, "", err
	}

	if !auth.CheckPasswordHash(password, user.Password) {
		return nil, "", apperrors.ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
