package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"fitlog/internal/auth"
	"fitlog/internal/domain"
	"fitlog/internal/repository"
)

var (
	// ErrInvalidInput indicates a required field was missing or empty.
	ErrInvalidInput = errors.New("username and password required")
	// ErrUserExists is returned when registering an already-taken username.
	ErrUserExists = errors.New("user exists")
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService describes account lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	users  repository.UserRepository
	logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, logger *logrus.Logger) AuthService {
	return &authService{users: users, logger: logger}
}

// Register creates a new account. It does not establish a session; the
// client logs in separately.
func (s *authService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrInvalidInput
	}

	salt, digest, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := &domain.User{
		Username:     username,
		Salt:         salt,
		PasswordHash: digest,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUserExists
		}
		return err
	}

	s.logger.Infof("registered new user: %s", username)
	return nil
}

// Login checks the credentials and returns the authenticated username.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidInput
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warnf("login failed for user (not found): %s", username)
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.VerifyPassword(password, user.Salt, user.PasswordHash) {
		s.logger.Warnf("login failed (bad password) for: %s", username)
		return "", ErrInvalidCredentials
	}

	s.logger.Infof("login successful for: %s", username)
	return user.Username, nil
}
