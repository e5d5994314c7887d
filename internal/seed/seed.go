package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/app/models/dto"
	"github.com/yigit/stit/internal/app/services"
	"github.com/yigit/stit/internal/pkg/apperrors"
)

// FacultyAccount creates the configured faculty login if it does not exist yet.
// An empty username disables seeding.
func FacultyAccount(ctx context.Context, authService services.AuthService, username, password string, lgr zerolog.Logger) error {
	if username == "" {
		return nil
	}

	user, err := authService.SignUp(ctx, dto.SignupRequest{
		Username: username,
		Password: password,
		Role:     models.RoleFaculty,
	})
	if errors.Is(err, apperrors.ErrDuplicateUsername) {
		lgr.Debug().Str("username", username).Msg("Seed faculty account already exists")
		return nil
	}
	if err != nil {
		lgr.Error().Err(err).Str("username", username).Msg("Error creating seed faculty account")
		return err
	}

	lgr.Info().Int64("userID", user.ID).Str("username", username).Msg("Seed faculty account created")
	return nil
}
