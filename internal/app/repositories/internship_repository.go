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

var internshipColumns = []string{"id", "user_id", "title", "company", "duration", "domain", "certificate_path", "status", "created_at"}

// InternshipRepository handles internship database operations
type InternshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanInternship(row pgx.Row) (*models.Internship, error) {
	var i models.Internship
	err := row.Scan(&i.ID, &i.UserID, &i.Title, &i.Company, &i.Duration, &i.Domain, &i.CertificatePath, &i.Status, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create inserts an internship
func (r *InternshipRepository) Create(ctx context.Context, in *models.Internship) error {
	if in.Status == "" {
		in.Status = models.StatusPending
	}

	sql, args, err := r.sb.Insert("internships").
		Columns("user_id", "title", "company", "duration", "domain", "certificate_path", "status").
		Values(in.UserID, in.Title, in.Company, in.Duration, in.Domain, in.CertificatePath, in.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create internship SQL")
		return fmt.Errorf("failed to build create internship query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&in.ID, &in.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", in.UserID).Msg("Error executing create internship query")
		return fmt.Errorf("error creating internship: %w", err)
	}

	logger.Info().Int64("internshipID", in.ID).Int64("userID", in.UserID).Msg("Internship created successfully")
	return nil
}

// GetByID retrieves an internship by ID
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	sql, args, err := r.sb.Select(internshipColumns...).From("internships").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get internship query: %w", err)
	}

	in, err := scanInternship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("error retrieving internship: %w", err)
	}
	return in, nil
}

// ListAll lists every internship ordered by id
func (r *InternshipRepository) ListAll(ctx context.Context) ([]models.Internship, error) {
	return r.list(ctx, r.sb.Select(internshipColumns...).From("internships").OrderBy("id"))
}

// ListByOwners lists the internships owned by any of the given users
func (r *InternshipRepository) ListByOwners(ctx context.Context, userIDs []int64) ([]models.Internship, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, r.sb.Select(internshipColumns...).From("internships").
		Where(squirrel.Eq{"user_id": userIDs}).
		OrderBy("id"))
}

func (r *InternshipRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]models.Internship, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list internships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing internships")
		return nil, fmt.Errorf("error listing internships: %w", err)
	}
	defer rows.Close()

	var out []models.Internship
	for rows.Next() {
		in, err := scanInternship(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning internship row: %w", err)
		}
		out = append(out, *in)
	}
	return out, rows.Err()
}

// UpdateStatus sets the verification status of an internship
func (r *InternshipRepository) UpdateStatus(ctx context.Context, id int64, status models.RecordStatus) error {
	sql, args, err := r.sb.Update("internships").Set("status", status).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update internship status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("internshipID", id).Msg("Error updating internship status")
		return fmt.Errorf("error updating internship status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRecordNotFound
	}
	return nil
}
