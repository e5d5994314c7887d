package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/stit/internal/app/models"
)

// UserStore is the credential store
type UserStore interface {
	// Create inserts the user and sets its ID and CreatedAt.
	// Returns apperrors.ErrDuplicateUsername if the username is taken.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// ListStudents returns student users matching every non-empty filter field, ordered by id
	ListStudents(ctx context.Context, filter models.StudentFilter) ([]models.User, error)
	// UsernamesByID resolves the given ids; unknown ids are absent from the result
	UsernamesByID(ctx context.Context, ids []int64) (map[int64]string, error)
	Delete(ctx context.Context, id int64) error
}

// InternshipStore persists internship records
type InternshipStore interface {
	// Create inserts the record; returns apperrors.ErrUserNotFound if the owner does not exist
	Create(ctx context.Context, internship *models.Internship) error
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
	ListAll(ctx context.Context) ([]models.Internship, error)
	ListByOwners(ctx context.Context, userIDs []int64) ([]models.Internship, error)
	// UpdateStatus returns apperrors.ErrRecordNotFound if no record has the id
	UpdateStatus(ctx context.Context, id int64, status models.RecordStatus) error
}

// ProjectStore persists project records
type ProjectStore interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	ListAll(ctx context.Context) ([]models.Project, error)
	ListByOwners(ctx context.Context, userIDs []int64) ([]models.Project, error)
	UpdateStatus(ctx context.Context, id int64, status models.RecordStatus) error
}

// Repositories holds all the repository instances
type Repositories struct {
	Users       UserStore
	Internships InternshipStore
	Projects    ProjectStore
}

// NewRepositories initializes the PostgreSQL backed repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(db),
		Internships: NewInternshipRepository(db),
		Projects:    NewProjectRepository(db),
	}
}

// NewMemoryRepositories initializes repositories sharing one in-memory store
func NewMemoryRepositories() *Repositories {
	store := NewMemoryStore()
	return &Repositories{
		Users:       store.Users(),
		Internships: store.Internships(),
		Projects:    store.Projects(),
	}
}
