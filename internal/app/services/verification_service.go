package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/stit/internal/app/auth"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/app/repositories"
	"github.com/yigit/stit/internal/pkg/apperrors"
)

// VerifyAction is the only action that marks a record Verified
const VerifyAction = "verify"

// ResolveStatus maps a route action to a status: "verify" gives Verified, anything else Pending
func ResolveStatus(action string) models.RecordStatus {
	if action == VerifyAction {
		return models.StatusVerified
	}
	return models.StatusPending
}

// VerificationService changes record status on behalf of faculty
type VerificationService interface {
	// SetStatus applies the action to the record. A missing record is not an error:
	// applied is false and the store is unchanged.
	SetStatus(ctx context.Context, faculty auth.Faculty, kind models.RecordKind, id int64, action string) (applied bool, err error)
}

type verificationServiceImpl struct {
	internships repositories.InternshipStore
	projects    repositories.ProjectStore
	logger      zerolog.Logger
}

// NewVerificationService creates a new VerificationService
func NewVerificationService(internships repositories.InternshipStore, projects repositories.ProjectStore, logger zerolog.Logger) VerificationService {
	return &verificationServiceImpl{
		internships: internships,
		projects:    projects,
		logger:      logger,
	}
}

func (s *verificationServiceImpl) SetStatus(ctx context.Context, faculty auth.Faculty, kind models.RecordKind, id int64, action string) (bool, error) {
	status := ResolveStatus(action)

	var err error
	switch kind {
	case models.KindInternship:
		err = s.internships.UpdateStatus(ctx, id, status)
	case models.KindProject:
		err = s.projects.UpdateStatus(ctx, id, status)
	default:
		return false, apperrors.ErrInvalidRecordKind
	}

	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			s.logger.Debug().Str("kind", string(kind)).Int64("id", id).Msg("Status change for missing record ignored")
			return false, nil
		}
		return false, fmt.Errorf("update %s status: %w", kind, err)
	}

	s.logger.Info().
		Str("kind", string(kind)).
		Int64("id", id).
		Str("status", string(status)).
		Int64("facultyID", faculty.ID()).
		Msg("Record status changed")
	return true, nil
}
