package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/app/repositories"
	"github.com/yigit/stit/internal/pkg/apperrors"
)

func TestCapabilityConstructors(t *testing.T) {
	student := &models.User{ID: 1, Username: "alice", Role: models.RoleStudent}
	faculty := &models.User{ID: 2, Username: "bob", Role: models.RoleFaculty}

	s, err := NewStudent(student)
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.ID())
	assert.Equal(t, "alice", s.Username())

	_, err = NewStudent(faculty)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedRole)

	f, err := NewFaculty(faculty)
	require.NoError(t, err)
	assert.Equal(t, models.RoleFaculty, f.Role())

	_, err = NewFaculty(student)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedRole)

	_, err = NewFaculty(nil)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthorizationServiceResolve(t *testing.T) {
	ctx := context.Background()
	repos := repositories.NewMemoryRepositories()
	alice := &models.User{Username: "alice", Password: "h", Role: models.RoleStudent}
	require.NoError(t, repos.Users.Create(ctx, alice))

	svc := NewAuthorizationService(repos.Users)

	s, err := svc.RequireStudent(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", s.Username())

	_, err = svc.RequireFaculty(ctx, alice.ID)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedRole)

	_, err = svc.RequireRole(ctx, alice.ID, models.RoleFaculty)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedRole)

	_, err = svc.Resolve(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	require.NoError(t, repos.Users.Delete(ctx, alice.ID))
	_, err = svc.RequireStudent(ctx, alice.ID)
	assert.ErrorIs(t, err, apperrors.ErrStaleSession)
}
