package service

import (
	"context"

	"github.com/omsai/pos-backend/internal/domain/repository"
	"github.com/omsai/pos-backend/pkg/apperror"
	"github.com/omsai/pos-backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles the admin credential check and session tokens
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Login verifies the credentials and returns a session token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperror.ErrInvalidCredentials
	}

	return s.jwtManager.GenerateToken(user.ID, user.Username)
}
