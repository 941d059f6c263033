package service

import (
	"context"
	"errors"
	"fmt"

	"locallibrary/internal/config"
	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"
	"locallibrary/internal/middleware/auth"
)

// dummy credentials used to spend the same PBKDF2 time on unknown usernames
const (
	dummySalt = "c0ffee"
	dummyHash = "00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"
)

// SignupInput carries already validated and sanitised signup fields.
type SignupInput struct {
	Username  string
	Password  string
	AdminCode string
}

type AuthService interface {
	Register(ctx context.Context, in SignupInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Identify(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	adminCode string
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		adminCode: cfg.AdminCode,
	}
}

// Register creates a user unless the username is taken ignoring case.
// The lookup is only a fast path; the database index settles races.
func (s *authService) Register(ctx context.Context, in SignupInput) (*models.User, error) {
	existing, err := s.userRepo.FindByUsernameFold(ctx, in.Username)
	if err == nil && existing != nil {
		return nil, ErrNameInUse
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, salt, err := auth.Derive(in.Password, "")
	if err != nil {
		return nil, fmt.Errorf("derive credentials: %w", err)
	}

	user := &models.User{
		Username:     in.Username,
		PasswordHash: hash,
		PasswordSalt: salt,
		IsAdmin:      s.adminCode != "" && in.AdminCode == s.adminCode,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrNameInUse
		}
		return nil, err
	}
	return user, nil
}

// Login checks username (exact match) and password. Unknown users and wrong
// passwords both return ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			auth.Verify(password, dummyHash, dummySalt)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.Verify(password, user.PasswordHash, user.PasswordSalt) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Identify loads the user a session points at.
func (s *authService) Identify(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
