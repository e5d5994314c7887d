package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/stit/internal/pkg/apperrors"
	"github.com/yigit/stit/internal/pkg/logger"
)

const (
	msgStaleSession       = "User not found. Please log in again."
	msgDuplicateUsername  = "Username already exists!"
	msgInvalidCredentials = "Invalid credentials!"
)

// HandleWebError turns an error into a flash notice and redirect.
// Unexpected errors are logged and answered with 500.
func HandleWebError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStaleSession):
		ClearWithFlash(c, FlashError, msgStaleSession)
		Redirect(c, "/login")

	case apperrors.Is(err, apperrors.ErrUnauthenticated, apperrors.ErrUnauthorizedRole):
		Redirect(c, "/login")

	case errors.Is(err, apperrors.ErrDuplicateUsername):
		AddFlash(c, FlashError, msgDuplicateUsername)
		Redirect(c, "/signup")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		AddFlash(c, FlashError, msgInvalidCredentials)
		Redirect(c, "/login")

	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrInvalidRole):
		msg, ok := apperrors.UserMessage(err)
		if !ok {
			msg = "Please check the form and try again."
		}
		AddFlash(c, FlashError, msg)
		Redirect(c, c.Request.URL.Path)

	case errors.Is(err, apperrors.ErrInvalidRecordKind):
		c.AbortWithStatus(http.StatusNotFound)

	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", RequestIDFrom(c)).
			Msg("Unhandled request error")
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
