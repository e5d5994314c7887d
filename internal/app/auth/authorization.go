package auth

import (
	"context"
	"errors"

	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/app/repositories"
	"github.com/yigit/stit/internal/pkg/apperrors"
	"github.com/yigit/stit/internal/pkg/logger"
)

// AuthorizationService turns a session's user id into capability values
type AuthorizationService struct {
	users repositories.UserStore
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(users repositories.UserStore) *AuthorizationService {
	return &AuthorizationService{users: users}
}

// Resolve loads the session user. A user that no longer exists yields ErrStaleSession.
func (s *AuthorizationService) Resolve(ctx context.Context, userID int64) (Identity, error) {
	if userID == 0 {
		return Identity{}, apperrors.ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Warn().Int64("userID", userID).Msg("Session refers to a user that no longer exists")
			return Identity{}, apperrors.ErrStaleSession
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error resolving session user")
		return Identity{}, err
	}
	return NewIdentity(user)
}

// RequireRole resolves the session user and checks it holds role
func (s *AuthorizationService) RequireRole(ctx context.Context, userID int64, role models.RoleType) (Identity, error) {
	id, err := s.Resolve(ctx, userID)
	if err != nil {
		return Identity{}, err
	}
	if id.Role() != role {
		return Identity{}, apperrors.ErrUnauthorizedRole
	}
	return id, nil
}

// RequireStudent resolves the session user as a Student
func (s *AuthorizationService) RequireStudent(ctx context.Context, userID int64) (Student, error) {
	id, err := s.RequireRole(ctx, userID, models.RoleStudent)
	if err != nil {
		return Student{}, err
	}
	u := id.User()
	return NewStudent(&u)
}

// RequireFaculty resolves the session user as Faculty
func (s *AuthorizationService) RequireFaculty(ctx context.Context, userID int64) (Faculty, error) {
	id, err := s.RequireRole(ctx, userID, models.RoleFaculty)
	if err != nil {
		return Faculty{}, err
	}
	u := id.User()
	return NewFaculty(&u)
}
