package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/app/models/dto"
	"github.com/yigit/stit/internal/app/repositories"
	"github.com/yigit/stit/internal/pkg/apperrors"
	pkgauth "github.com/yigit/stit/internal/pkg/auth"
)

// AuthService handles registration and credential checks
type AuthService interface {
	SignUp(ctx context.Context, req dto.SignupRequest) (*models.User, error)
	LogIn(ctx context.Context, req dto.LoginRequest) (*models.User, error)
}

type authServiceImpl struct {
	users  repositories.UserStore
	hasher pkgauth.Hasher
	logger zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users repositories.UserStore, hasher pkgauth.Hasher, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// SignUp creates a user with a hashed password. Returns ErrDuplicateUsername if the name is taken.
func (s *authServiceImpl) SignUp(ctx context.Context, req dto.SignupRequest) (*models.User, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("Username and password are required.")
	}
	if !req.Role.Valid() {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidRole, "Role must be student or faculty.")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: hash,
		Role:     req.Role,
		Batch:    req.Batch,
		Semester: req.Semester,
		Course:   req.Course,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return user, nil
}

// LogIn checks credentials. Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *authServiceImpl) LogIn(ctx context.Context, req dto.LoginRequest) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Debug().Str("username", req.Username).Msg("Login for unknown username")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Check(user.Password, req.Password) {
		s.logger.Debug().Int64("userID", user.ID).Msg("Login with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
