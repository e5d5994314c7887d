package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/yigit/stit/internal/app/auth"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/app/models/dto"
	"github.com/yigit/stit/internal/app/repositories"
	"github.com/yigit/stit/internal/pkg/apperrors"
	"github.com/yigit/stit/internal/pkg/filestorage"
)

// SubmissionService creates student records
type SubmissionService interface {
	// AddInternship stores an optional certificate and creates a Pending internship
	AddInternship(ctx context.Context, student auth.Student, req dto.InternshipRequest, certificate *multipart.FileHeader) (*models.Internship, error)
	// AddProject creates a Pending project
	AddProject(ctx context.Context, student auth.Student, req dto.ProjectRequest) (*models.Project, error)
}

type submissionServiceImpl struct {
	internships repositories.InternshipStore
	projects    repositories.ProjectStore
	storage     filestorage.FileStorage
	opts        Options
	logger      zerolog.Logger
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(
	internships repositories.InternshipStore,
	projects repositories.ProjectStore,
	storage filestorage.FileStorage,
	opts Options,
	logger zerolog.Logger,
) SubmissionService {
	return &submissionServiceImpl{
		internships: internships,
		projects:    projects,
		storage:     storage,
		opts:        opts,
		logger:      logger,
	}
}

func (s *submissionServiceImpl) AddInternship(ctx context.Context, student auth.Student, req dto.InternshipRequest, certificate *multipart.FileHeader) (*models.Internship, error) {
	in := &models.Internship{
		UserID:   student.ID(),
		Title:    req.Title,
		Company:  req.Company,
		Duration: req.Duration,
		Status:   models.StatusPending,
	}
	if s.opts.DataScience {
		in.Domain = req.Domain
	}

	replaced := false
	if certificate != nil && certificate.Filename != "" {
		replaced = s.storage.Exists(certificate.Filename)
		name, err := s.storage.SaveFile(certificate)
		if errors.Is(err, filestorage.ErrInvalidFilename) {
			return nil, apperrors.NewValidationError("Certificate file name is not valid.")
		}
		if err != nil {
			return nil, fmt.Errorf("save certificate: %w", err)
		}
		in.CertificatePath = name
	}

	if err := s.internships.Create(ctx, in); err != nil {
		// a file that overwrote an existing one may still back another record
		if in.CertificatePath != "" && !replaced {
			if delErr := s.storage.DeleteFile(in.CertificatePath); delErr != nil {
				s.logger.Warn().Err(delErr).Str("filename", in.CertificatePath).Msg("Failed to remove orphaned certificate")
			}
		}
		return nil, fmt.Errorf("create internship: %w", err)
	}

	s.logger.Info().Int64("internshipID", in.ID).Int64("userID", in.UserID).Bool("certificate", in.CertificatePath != "").Msg("Internship submitted")
	return in, nil
}

func (s *submissionServiceImpl) AddProject(ctx context.Context, student auth.Student, req dto.ProjectRequest) (*models.Project, error) {
	p := &models.Project{
		UserID:      student.ID(),
		Title:       req.Title,
		Tools:       req.Tools,
		Description: req.Description,
		GithubLink:  req.GithubLink,
		Status:      models.StatusPending,
	}
	if s.opts.DataScience {
		p.DatasetUsed = req.DatasetUsed
	}

	if err := s.projects.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.logger.Info().Int64("projectID", p.ID).Int64("userID", p.UserID).Msg("Project submitted")
	return p, nil
}
