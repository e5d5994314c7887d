package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/stit/internal/pkg/apperrors"
	"github.com/yigit/stit/internal/pkg/validation"
)

// BindForm binds the request form (query string for GET) into obj and validates its binding tags.
// Validation failures come back as apperrors.ErrValidationFailed with a readable message.
func BindForm(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBind(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperrors.NewValidationError(formatValidationError(verrs[0]))
		}
		return apperrors.NewValidationError("Invalid form submission.")
	}
	return nil
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case validation.TagUsername:
		return e.Field() + " may only contain letters, digits, '.', '_' and '-'"
	case validation.TagWebLink:
		return e.Field() + " must be an http(s) URL"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
