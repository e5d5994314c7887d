package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/pkg/apperrors"
	"github.com/yigit/stit/internal/pkg/dberrors"
	"github.com/yigit/stit/internal/pkg/logger"
)

var projectColumns = []string{"id", "user_id", "title", "tools", "description", "github_link", "dataset_used", "status", "created_at"}

// ProjectRepository handles project database operations
type ProjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Tools, &p.Description, &p.GithubLink, &p.DatasetUsed, &p.Status, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a project
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	if p.Status == "" {
		p.Status = models.StatusPending
	}

	sql, args, err := r.sb.Insert("projects").
		Columns("user_id", "title", "tools", "description", "github_link", "dataset_used", "status").
		Values(p.UserID, p.Title, p.Tools, p.Description, p.GithubLink, p.DatasetUsed, p.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create project SQL")
		return fmt.Errorf("failed to build create project query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", p.UserID).Msg("Error executing create project query")
		return fmt.Errorf("error creating project: %w", err)
	}

	logger.Info().Int64("projectID", p.ID).Int64("userID", p.UserID).Msg("Project created successfully")
	return nil
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	sql, args, err := r.sb.Select(projectColumns...).From("projects").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get project query: %w", err)
	}

	p, err := scanProject(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}
	return p, nil
}

// ListAll lists every project ordered by id
func (r *ProjectRepository) ListAll(ctx context.Context) ([]models.Project, error) {
	return r.list(ctx, r.sb.Select(projectColumns...).From("projects").OrderBy("id"))
}

// ListByOwners lists the projects owned by any of the given users
func (r *ProjectRepository) ListByOwners(ctx context.Context, userIDs []int64) ([]models.Project, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, r.sb.Select(projectColumns...).From("projects").
		Where(squirrel.Eq{"user_id": userIDs}).
		OrderBy("id"))
}

func (r *ProjectRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]models.Project, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list projects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing projects")
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	defer rows.Close()

	var out []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning project row: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// UpdateStatus sets the verification status of a project
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id int64, status models.RecordStatus) error {
	sql, args, err := r.sb.Update("projects").Set("status", status).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update project status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("projectID", id).Msg("Error updating project status")
		return fmt.Errorf("error updating project status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRecordNotFound
	}
	return nil
}
