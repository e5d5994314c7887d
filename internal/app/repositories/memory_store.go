package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/pkg/apperrors"
)

// MemoryStore keeps users and records in process memory. It enforces the same
// uniqueness and ownership rules as the PostgreSQL schema.
type MemoryStore struct {
	mu          sync.RWMutex
	users       map[int64]models.User
	internships map[int64]models.Internship
	projects    map[int64]models.Project
	nextUser    int64
	nextIntern  int64
	nextProject int64
	now         func() time.Time
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[int64]models.User),
		internships: make(map[int64]models.Internship),
		projects:    make(map[int64]models.Project),
		now:         time.Now,
	}
}

// Users returns the store's UserStore view
func (s *MemoryStore) Users() UserStore { return memoryUsers{s} }

// Internships returns the store's InternshipStore view
func (s *MemoryStore) Internships() InternshipStore { return memoryInternships{s} }

// Projects returns the store's ProjectStore view
func (s *MemoryStore) Projects() ProjectStore { return memoryProjects{s} }

type memoryUsers struct{ s *MemoryStore }

func (m memoryUsers) Create(_ context.Context, user *models.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	for _, u := range m.s.users {
		if u.Username == user.Username {
			return apperrors.ErrDuplicateUsername
		}
	}

	m.s.nextUser++
	user.ID = m.s.nextUser
	user.CreatedAt = m.s.now()
	m.s.users[user.ID] = *user
	return nil
}

func (m memoryUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	u, ok := m.s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (m memoryUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	for _, u := range m.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m memoryUsers) ListStudents(_ context.Context, filter models.StudentFilter) ([]models.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	var out []models.User
	for _, u := range m.s.users {
		if filter.Matches(&u) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memoryUsers) UsernamesByID(_ context.Context, ids []int64) (map[int64]string, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	names := make(map[int64]string, len(ids))
	for _, id := range ids {
		if u, ok := m.s.users[id]; ok {
			names[id] = u.Username
		}
	}
	return names, nil
}

func (m memoryUsers) Delete(_ context.Context, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(m.s.users, id)
	for rid, r := range m.s.internships {
		if r.UserID == id {
			delete(m.s.internships, rid)
		}
	}
	for rid, r := range m.s.projects {
		if r.UserID == id {
			delete(m.s.projects, rid)
		}
	}
	return nil
}

type memoryInternships struct{ s *MemoryStore }

func (m memoryInternships) Create(_ context.Context, in *models.Internship) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.users[in.UserID]; !ok {
		return apperrors.ErrUserNotFound
	}
	if in.Status == "" {
		in.Status = models.StatusPending
	}

	m.s.nextIntern++
	in.ID = m.s.nextIntern
	in.CreatedAt = m.s.now()
	m.s.internships[in.ID] = *in
	return nil
}

func (m memoryInternships) GetByID(_ context.Context, id int64) (*models.Internship, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	in, ok := m.s.internships[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	return &in, nil
}

func (m memoryInternships) ListAll(_ context.Context) ([]models.Internship, error) {
	return m.filter(func(models.Internship) bool { return true }), nil
}

func (m memoryInternships) ListByOwners(_ context.Context, userIDs []int64) ([]models.Internship, error) {
	owners := idSet(userIDs)
	return m.filter(func(in models.Internship) bool { return owners[in.UserID] }), nil
}

func (m memoryInternships) filter(keep func(models.Internship) bool) []models.Internship {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	var out []models.Internship
	for _, in := range m.s.internships {
		if keep(in) {
			out = append(out, in)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m memoryInternships) UpdateStatus(_ context.Context, id int64, status models.RecordStatus) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	in, ok := m.s.internships[id]
	if !ok {
		return apperrors.ErrRecordNotFound
	}
	in.Status = status
	m.s.internships[id] = in
	return nil
}

type memoryProjects struct{ s *MemoryStore }

func (m memoryProjects) Create(_ context.Context, p *models.Project) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.users[p.UserID]; !ok {
		return apperrors.ErrUserNotFound
	}
	if p.Status == "" {
		p.Status = models.StatusPending
	}

	m.s.nextProject++
	p.ID = m.s.nextProject
	p.CreatedAt = m.s.now()
	m.s.projects[p.ID] = *p
	return nil
}

func (m memoryProjects) GetByID(_ context.Context, id int64) (*models.Project, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	p, ok := m.s.projects[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	return &p, nil
}

func (m memoryProjects) ListAll(_ context.Context) ([]models.Project, error) {
	return m.filter(func(models.Project) bool { return true }), nil
}

func (m memoryProjects) ListByOwners(_ context.Context, userIDs []int64) ([]models.Project, error) {
	owners := idSet(userIDs)
	return m.filter(func(p models.Project) bool { return owners[p.UserID] }), nil
}

func (m memoryProjects) filter(keep func(models.Project) bool) []models.Project {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	var out []models.Project
	for _, p := range m.s.projects {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m memoryProjects) UpdateStatus(_ context.Context, id int64, status models.RecordStatus) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	p, ok := m.s.projects[id]
	if !ok {
		return apperrors.ErrRecordNotFound
	}
	p.Status = status
	m.s.projects[id] = p
	return nil
}

func idSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
