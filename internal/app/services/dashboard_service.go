package services

import (
	"context"
	"fmt"
	"html/template"

	"github.com/rs/zerolog"
	"github.com/yigit/stit/internal/app/auth"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/app/models/dto"
	"github.com/yigit/stit/internal/app/repositories"
	"github.com/yigit/stit/internal/pkg/analytics"
	"github.com/yigit/stit/internal/pkg/charts"
)

// DashboardService assembles the student and faculty dashboards
type DashboardService interface {
	// Student returns only the records owned by the student
	Student(ctx context.Context, student auth.Student) (*dto.StudentDashboard, error)
	// Faculty returns every student and record with aggregates over all records
	Faculty(ctx context.Context, faculty auth.Faculty) (*dto.FacultyDashboard, error)
	// FilterStudents narrows the faculty dashboard to matching students; aggregates cover the subset only
	FilterStudents(ctx context.Context, faculty auth.Faculty, filter dto.StudentFilterRequest) (*dto.FacultyDashboard, error)
}

type dashboardServiceImpl struct {
	repos  *repositories.Repositories
	opts   Options
	logger zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(repos *repositories.Repositories, opts Options, logger zerolog.Logger) DashboardService {
	return &dashboardServiceImpl{
		repos:  repos,
		opts:   opts,
		logger: logger,
	}
}

func (s *dashboardServiceImpl) Student(ctx context.Context, student auth.Student) (*dto.StudentDashboard, error) {
	owner := []int64{student.ID()}

	internships, err := s.repos.Internships.ListByOwners(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list internships: %w", err)
	}
	projects, err := s.repos.Projects.ListByOwners(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return &dto.StudentDashboard{
		User:        student.User(),
		Internships: internships,
		Projects:    projects,
	}, nil
}

func (s *dashboardServiceImpl) Faculty(ctx context.Context, faculty auth.Faculty) (*dto.FacultyDashboard, error) {
	students, err := s.repos.Users.ListStudents(ctx, models.StudentFilter{})
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	internships, err := s.repos.Internships.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list internships: %w", err)
	}
	projects, err := s.repos.Projects.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return s.build(ctx, students, internships, projects)
}

func (s *dashboardServiceImpl) FilterStudents(ctx context.Context, faculty auth.Faculty, filter dto.StudentFilterRequest) (*dto.FacultyDashboard, error) {
	students, err := s.repos.Users.ListStudents(ctx, filter.ToFilter())
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	ids := make([]int64, 0, len(students))
	for _, u := range students {
		ids = append(ids, u.ID)
	}

	internships, err := s.repos.Internships.ListByOwners(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list internships: %w", err)
	}
	projects, err := s.repos.Projects.ListByOwners(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	d, err := s.build(ctx, students, internships, projects)
	if err != nil {
		return nil, err
	}
	d.Filter = filter
	d.Filtered = !filter.ToFilter().IsEmpty()

	s.logger.Debug().
		Str("batch", filter.Batch).Str("semester", filter.Semester).Str("course", filter.Course).
		Int("students", len(students)).
		Msg("Filtered faculty dashboard")
	return d, nil
}

func (s *dashboardServiceImpl) build(ctx context.Context, students []models.User, internships []models.Internship, projects []models.Project) (*dto.FacultyDashboard, error) {
	names, err := s.repos.Users.UsernamesByID(ctx, ownerIDs(internships, projects))
	if err != nil {
		return nil, fmt.Errorf("resolve owners: %w", err)
	}

	d := &dto.FacultyDashboard{
		Students:    students,
		Internships: make([]dto.InternshipView, 0, len(internships)),
		Projects:    make([]dto.ProjectView, 0, len(projects)),
		Summary:     analytics.Compute(internships, projects),
	}
	for _, in := range internships {
		d.Internships = append(d.Internships, dto.InternshipView{Internship: in, Owner: ownerName(names, in.UserID)})
	}
	for _, p := range projects {
		d.Projects = append(d.Projects, dto.ProjectView{Project: p, Owner: ownerName(names, p.UserID)})
	}

	if s.opts.DataScience {
		d.Charts = s.renderCharts(d.Summary)
	}
	return d, nil
}

// renderCharts draws every non-skipped component; a failed chart is logged and left empty
func (s *dashboardServiceImpl) renderCharts(summary analytics.Summary) *dto.ChartImages {
	images := &dto.ChartImages{}
	draw := func(title string, counts []analytics.Count) template.URL {
		if len(counts) == 0 {
			return ""
		}
		png, err := charts.BarChartPNG(title, counts)
		if err != nil {
			s.logger.Warn().Err(err).Str("chart", title).Msg("Chart rendering failed")
			return ""
		}
		return charts.DataURL(png)
	}

	images.Status = draw("Internship Status", summary.StatusCounts)
	images.Domain = draw("Internships by Domain", summary.DomainCounts)
	images.Tools = draw("Tools Used in Projects", summary.ToolCounts)
	return images
}

func ownerIDs(internships []models.Internship, projects []models.Project) []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	add := func(id int64) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, in := range internships {
		add(in.UserID)
	}
	for _, p := range projects {
		add(p.UserID)
	}
	return ids
}

func ownerName(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Unknown"
}
