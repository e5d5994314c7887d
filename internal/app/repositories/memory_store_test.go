package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/pkg/apperrors"
)

func seedUser(t *testing.T, repos *Repositories, name string, role models.RoleType, batch string) *models.User {
	t.Helper()
	u := &models.User{Username: name, Password: "hash", Role: role, Batch: batch}
	require.NoError(t, repos.Users.Create(context.Background(), u))
	return u
}

func TestMemoryUsersUniqueUsername(t *testing.T) {
	repos := NewMemoryRepositories()
	alice := seedUser(t, repos, "alice", models.RoleStudent, "2024")
	assert.Equal(t, int64(1), alice.ID)
	assert.False(t, alice.CreatedAt.IsZero())

	err := repos.Users.Create(context.Background(), &models.User{Username: "alice", Role: models.RoleFaculty})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)

	got, err := repos.Users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	_, err = repos.Users.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestMemoryListStudentsFilter(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()
	seedUser(t, repos, "alice", models.RoleStudent, "2024")
	seedUser(t, repos, "bob", models.RoleFaculty, "2024")
	seedUser(t, repos, "carol", models.RoleStudent, "2023")

	all, err := repos.Users.ListStudents(ctx, models.StudentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alice", all[0].Username)
	assert.Equal(t, "carol", all[1].Username)

	batch, err := repos.Users.ListStudents(ctx, models.StudentFilter{Batch: "2024"})
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, "alice", batch[0].Username)
}

func TestMemoryRecordsRequireOwner(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	err := repos.Internships.Create(ctx, &models.Internship{UserID: 7, Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	err = repos.Projects.Create(ctx, &models.Project{UserID: 7, Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestMemoryInternshipLifecycle(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()
	alice := seedUser(t, repos, "alice", models.RoleStudent, "2024")
	carol := seedUser(t, repos, "carol", models.RoleStudent, "2023")

	in := &models.Internship{UserID: alice.ID, Title: "ML Intern"}
	require.NoError(t, repos.Internships.Create(ctx, in))
	assert.Equal(t, models.StatusPending, in.Status)
	require.NoError(t, repos.Internships.Create(ctx, &models.Internship{UserID: carol.ID, Title: "Other"}))

	require.NoError(t, repos.Internships.UpdateStatus(ctx, in.ID, models.StatusVerified))
	got, err := repos.Internships.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, got.Status)

	assert.ErrorIs(t, repos.Internships.UpdateStatus(ctx, 999, models.StatusVerified), apperrors.ErrRecordNotFound)

	owned, err := repos.Internships.ListByOwners(ctx, []int64{alice.ID})
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "ML Intern", owned[0].Title)

	none, err := repos.Internships.ListByOwners(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repos.Internships.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemoryDeleteUserCascades(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()
	alice := seedUser(t, repos, "alice", models.RoleStudent, "2024")
	require.NoError(t, repos.Projects.Create(ctx, &models.Project{UserID: alice.ID, Title: "p"}))

	names, err := repos.Users.UsernamesByID(ctx, []int64{alice.ID, 99})
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{alice.ID: "alice"}, names)

	require.NoError(t, repos.Users.Delete(ctx, alice.ID))
	assert.ErrorIs(t, repos.Users.Delete(ctx, alice.ID), apperrors.ErrUserNotFound)

	projects, err := repos.Projects.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}
