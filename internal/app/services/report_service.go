package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/stit/internal/app/auth"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/app/models/dto"
	"github.com/yigit/stit/internal/app/repositories"
	"github.com/yigit/stit/internal/pkg/apperrors"
	"github.com/yigit/stit/internal/pkg/report"
)

// ReportService produces downloadable documents over all records
type ReportService interface {
	PDF(ctx context.Context, faculty auth.Faculty) (*dto.FileDownload, error)
	CSV(ctx context.Context, faculty auth.Faculty, kind models.RecordKind) (*dto.FileDownload, error)
}

type reportServiceImpl struct {
	repos  *repositories.Repositories
	opts   Options
	logger zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(repos *repositories.Repositories, opts Options, logger zerolog.Logger) ReportService {
	return &reportServiceImpl{
		repos:  repos,
		opts:   opts,
		logger: logger,
	}
}

func (s *reportServiceImpl) input(ctx context.Context) (report.Input, error) {
	internships, err := s.repos.Internships.ListAll(ctx)
	if err != nil {
		return report.Input{}, fmt.Errorf("list internships: %w", err)
	}
	projects, err := s.repos.Projects.ListAll(ctx)
	if err != nil {
		return report.Input{}, fmt.Errorf("list projects: %w", err)
	}
	names, err := s.repos.Users.UsernamesByID(ctx, ownerIDs(internships, projects))
	if err != nil {
		return report.Input{}, fmt.Errorf("resolve owners: %w", err)
	}

	return report.Input{
		Internships: internships,
		Projects:    projects,
		Usernames:   names,
		DataScience: s.opts.DataScience,
	}, nil
}

func (s *reportServiceImpl) PDF(ctx context.Context, faculty auth.Faculty) (*dto.FileDownload, error) {
	in, err := s.input(ctx)
	if err != nil {
		return nil, err
	}

	data, err := report.PDF(in)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to render report")
		return nil, err
	}

	s.logger.Info().Int64("facultyID", faculty.ID()).Int("bytes", len(data)).Msg("Report generated")
	return &dto.FileDownload{
		Filename:    in.Filename(),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func (s *reportServiceImpl) CSV(ctx context.Context, faculty auth.Faculty, kind models.RecordKind) (*dto.FileDownload, error) {
	if kind != models.KindInternship && kind != models.KindProject {
		return nil, apperrors.ErrInvalidRecordKind
	}

	in, err := s.input(ctx)
	if err != nil {
		return nil, err
	}

	data, err := report.CSV(in, kind)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("facultyID", faculty.ID()).Str("kind", string(kind)).Msg("CSV exported")
	return &dto.FileDownload{
		Filename:    string(kind) + "s.csv",
		ContentType: "text/csv; charset=utf-8",
		Data:        data,
	}, nil
}
