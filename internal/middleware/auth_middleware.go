package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/stit/internal/app/auth"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/pkg/apperrors"
)

// AuthMiddleware gates handlers on the session user and role
type AuthMiddleware struct {
	authz *auth.AuthorizationService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authz *auth.AuthorizationService) *AuthMiddleware {
	return &AuthMiddleware{authz: authz}
}

// sessionFor returns the session user id if the session's role satisfies want ("" accepts any role)
func sessionFor(c *gin.Context, want models.RoleType) (int64, error) {
	userID := SessionUserID(c)
	if userID == 0 {
		return 0, apperrors.ErrUnauthenticated
	}
	if want != "" && SessionRole(c) != want {
		return 0, apperrors.ErrUnauthorizedRole
	}
	return userID, nil
}

// Authenticated runs h with the re-resolved session identity
func (m *AuthMiddleware) Authenticated(h func(*gin.Context, auth.Identity)) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := sessionFor(c, "")
		if err != nil {
			HandleWebError(c, err)
			return
		}
		id, err := m.authz.Resolve(c.Request.Context(), userID)
		if err != nil {
			HandleWebError(c, err)
			return
		}
		h(c, id)
	}
}

// Student runs h only for a session holding the student role
func (m *AuthMiddleware) Student(h func(*gin.Context, auth.Student)) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := sessionFor(c, models.RoleStudent)
		if err != nil {
			HandleWebError(c, err)
			return
		}
		s, err := m.authz.RequireStudent(c.Request.Context(), userID)
		if err != nil {
			HandleWebError(c, err)
			return
		}
		h(c, s)
	}
}

// Faculty runs h only for a session holding the faculty role
func (m *AuthMiddleware) Faculty(h func(*gin.Context, auth.Faculty)) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := sessionFor(c, models.RoleFaculty)
		if err != nil {
			HandleWebError(c, err)
			return
		}
		f, err := m.authz.RequireFaculty(c.Request.Context(), userID)
		if err != nil {
			HandleWebError(c, err)
			return
		}
		h(c, f)
	}
}
