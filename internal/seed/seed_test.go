package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/app/models/dto"
	"github.com/yigit/stit/internal/app/repositories"
	"github.com/yigit/stit/internal/app/services"
	"github.com/yigit/stit/internal/pkg/filestorage"
	"golang.org/x/crypto/bcrypt"
)

func TestFacultyAccountIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := repositories.NewMemoryRepositories()
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := services.NewServices(repos, storage, services.Options{PasswordCost: bcrypt.MinCost}, zerolog.Nop())

	require.NoError(t, FacultyAccount(ctx, svc.Auth, "admin", "secret", zerolog.Nop()))
	require.NoError(t, FacultyAccount(ctx, svc.Auth, "admin", "other", zerolog.Nop()))

	user, err := svc.Auth.LogIn(ctx, dto.LoginRequest{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleFaculty, user.Role)
}

func TestFacultyAccountDisabled(t *testing.T) {
	repos := repositories.NewMemoryRepositories()
	svc := services.NewServices(repos, nil, services.Options{PasswordCost: bcrypt.MinCost}, zerolog.Nop())

	require.NoError(t, FacultyAccount(context.Background(), svc.Auth, "", "", zerolog.Nop()))

	students, err := repos.Users.ListStudents(context.Background(), models.StudentFilter{})
	require.NoError(t, err)
	assert.Empty(t, students)
}
