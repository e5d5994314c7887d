package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/stit/internal/app/auth"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/app/models/dto"
	"github.com/yigit/stit/internal/app/repositories"
	"github.com/yigit/stit/internal/pkg/analytics"
	"github.com/yigit/stit/internal/pkg/apperrors"
	"github.com/yigit/stit/internal/pkg/filestorage"
)

type fixture struct {
	repos   *repositories.Repositories
	storage *filestorage.LocalStorage
	svc     *Services
}

func newFixture(t *testing.T, dataScience bool) *fixture {
	t.Helper()

	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	repos := repositories.NewMemoryRepositories()
	svc := NewServices(repos, storage, Options{DataScience: dataScience, PasswordCost: bcrypt.MinCost}, zerolog.Nop())
	return &fixture{repos: repos, storage: storage, svc: svc}
}

func (f *fixture) signUp(t *testing.T, username string, role models.RoleType, batch string) *models.User {
	t.Helper()
	u, err := f.svc.Auth.SignUp(context.Background(), dto.SignupRequest{
		Username: username, Password: "pw", Role: role, Batch: batch,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) student(t *testing.T, u *models.User) auth.Student {
	t.Helper()
	s, err := auth.NewStudent(u)
	require.NoError(t, err)
	return s
}

func (f *fixture) faculty(t *testing.T, u *models.User) auth.Faculty {
	t.Helper()
	fac, err := auth.NewFaculty(u)
	require.NoError(t, err)
	return fac
}

func certificate(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("certificate", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["certificate"][0]
}

func TestSignUpAndLogIn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	alice := f.signUp(t, "alice", models.RoleStudent, "2024")
	assert.NotEqual(t, "pw", alice.Password)
	assert.Equal(t, "2024", alice.Batch)

	_, err := f.svc.Auth.SignUp(ctx, dto.SignupRequest{Username: "alice", Password: "other", Role: models.RoleFaculty})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)

	got, err := f.svc.Auth.LogIn(ctx, dto.LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	_, err = f.svc.Auth.LogIn(ctx, dto.LoginRequest{Username: "alice", Password: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = f.svc.Auth.LogIn(ctx, dto.LoginRequest{Username: "ghost", Password: "pw"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSignUpRejectsUnknownRole(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.svc.Auth.SignUp(context.Background(), dto.SignupRequest{Username: "eve", Password: "pw", Role: "admin"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)

	_, err = f.svc.Auth.SignUp(context.Background(), dto.SignupRequest{Username: "  ", Password: "pw", Role: models.RoleStudent})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAddInternshipDefaultsToPending(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	s := f.student(t, f.signUp(t, "alice", models.RoleStudent, "2024"))

	in, err := f.svc.Submission.AddInternship(ctx, s, dto.InternshipRequest{
		Title: "ML Intern", Company: "Acme", Duration: "3 months", Domain: "NLP",
	}, certificate(t, "cert.pdf", "data"))
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, in.Status)
	assert.Equal(t, "NLP", in.Domain)
	assert.Equal(t, "cert.pdf", in.CertificatePath)

	content, err := os.ReadFile(f.storage.GetFullPath("cert.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

func TestAddInternshipWithoutDataScience(t *testing.T) {
	f := newFixture(t, false)
	s := f.student(t, f.signUp(t, "alice", models.RoleStudent, ""))

	in, err := f.svc.Submission.AddInternship(context.Background(), s, dto.InternshipRequest{
		Title: "Intern", Company: "Acme", Duration: "1 month", Domain: "NLP",
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, in.Domain)
	assert.Empty(t, in.CertificatePath)

	p, err := f.svc.Submission.AddProject(context.Background(), s, dto.ProjectRequest{
		Title: "P", Tools: "Go", Description: "d", DatasetUsed: "iris",
	})
	require.NoError(t, err)
	assert.Empty(t, p.DatasetUsed)
	assert.Equal(t, models.StatusPending, p.Status)
}

func TestAddInternshipRejectsInvalidCertificateName(t *testing.T) {
	f := newFixture(t, true)
	s := f.student(t, f.signUp(t, "alice", models.RoleStudent, ""))

	_, err := f.svc.Submission.AddInternship(context.Background(), s, dto.InternshipRequest{
		Title: "Intern", Company: "Acme", Duration: "1 month",
	}, certificate(t, "..", "x"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	msg, ok := apperrors.UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Certificate file name is not valid.", msg)

	all, err := f.repos.Internships.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAddInternshipRemovesCertificateWhenCreateFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	alice := f.signUp(t, "alice", models.RoleStudent, "")
	s := f.student(t, alice)

	_, err := f.svc.Submission.AddInternship(ctx, s, dto.InternshipRequest{
		Title: "First", Company: "Acme", Duration: "1 month",
	}, certificate(t, "shared.pdf", "first"))
	require.NoError(t, err)

	require.NoError(t, f.repos.Users.Delete(ctx, alice.ID))

	_, err = f.svc.Submission.AddInternship(ctx, s, dto.InternshipRequest{
		Title: "Orphan", Company: "Acme", Duration: "1 month",
	}, certificate(t, "orphan.pdf", "x"))
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.False(t, f.storage.Exists("orphan.pdf"))

	// an overwritten file is left in place
	_, err = f.svc.Submission.AddInternship(ctx, s, dto.InternshipRequest{
		Title: "Again", Company: "Acme", Duration: "1 month",
	}, certificate(t, "shared.pdf", "second"))
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.True(t, f.storage.Exists("shared.pdf"))
}

func TestResolveStatus(t *testing.T) {
	assert.Equal(t, models.StatusVerified, ResolveStatus("verify"))
	assert.Equal(t, models.StatusPending, ResolveStatus("unverify"))
	assert.Equal(t, models.StatusPending, ResolveStatus("verfy"))
	assert.Equal(t, models.StatusPending, ResolveStatus(""))
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	s := f.student(t, f.signUp(t, "alice", models.RoleStudent, "2024"))
	fac := f.faculty(t, f.signUp(t, "bob", models.RoleFaculty, ""))

	in, err := f.svc.Submission.AddInternship(ctx, s, dto.InternshipRequest{Title: "ML Intern", Company: "Acme", Duration: "3m"}, nil)
	require.NoError(t, err)

	applied, err := f.svc.Verification.SetStatus(ctx, fac, models.KindInternship, in.ID, "verify")
	require.NoError(t, err)
	assert.True(t, applied)
	got, err := f.repos.Internships.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, got.Status)

	applied, err = f.svc.Verification.SetStatus(ctx, fac, models.KindInternship, in.ID, "anything")
	require.NoError(t, err)
	assert.True(t, applied)
	got, err = f.repos.Internships.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)

	applied, err = f.svc.Verification.SetStatus(ctx, fac, models.KindProject, 404, "verify")
	require.NoError(t, err)
	assert.False(t, applied)

	_, err = f.svc.Verification.SetStatus(ctx, fac, models.RecordKind("thesis"), in.ID, "verify")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRecordKind)
}

func TestStudentDashboardOwnRecordsOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	alice := f.student(t, f.signUp(t, "alice", models.RoleStudent, "2024"))
	carol := f.student(t, f.signUp(t, "carol", models.RoleStudent, "2023"))

	_, err := f.svc.Submission.AddProject(ctx, alice, dto.ProjectRequest{Title: "A", Tools: "Go", Description: "d"})
	require.NoError(t, err)
	_, err = f.svc.Submission.AddProject(ctx, carol, dto.ProjectRequest{Title: "C", Tools: "Go", Description: "d"})
	require.NoError(t, err)

	d, err := f.svc.Dashboard.Student(ctx, alice)
	require.NoError(t, err)
	require.Len(t, d.Projects, 1)
	assert.Equal(t, "A", d.Projects[0].Title)
	assert.Empty(t, d.Internships)
	assert.Equal(t, "alice", d.User.Username)
}

func TestFacultyDashboardAndFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	alice := f.student(t, f.signUp(t, "alice", models.RoleStudent, "2024"))
	carol := f.student(t, f.signUp(t, "carol", models.RoleStudent, "2023"))
	fac := f.faculty(t, f.signUp(t, "bob", models.RoleFaculty, ""))

	_, err := f.svc.Submission.AddInternship(ctx, alice, dto.InternshipRequest{Title: "ML Intern", Company: "Acme", Duration: "3m", Domain: "NLP"}, nil)
	require.NoError(t, err)
	_, err = f.svc.Submission.AddInternship(ctx, carol, dto.InternshipRequest{Title: "BI Intern", Company: "Globex", Duration: "2m", Domain: "Analytics"}, nil)
	require.NoError(t, err)
	_, err = f.svc.Submission.AddProject(ctx, alice, dto.ProjectRequest{Title: "Churn", Tools: "Python, SQL, Python", Description: "d"})
	require.NoError(t, err)

	all, err := f.svc.Dashboard.Faculty(ctx, fac)
	require.NoError(t, err)
	assert.Len(t, all.Students, 2)
	assert.Len(t, all.Internships, 2)
	assert.Equal(t, []analytics.Count{{Label: "Pending", Count: 2}}, all.Summary.StatusCounts)
	assert.Equal(t, []analytics.Count{{Label: "Python", Count: 2}, {Label: "SQL", Count: 1}}, all.Summary.ToolCounts)
	require.NotNil(t, all.Charts)
	assert.NotEmpty(t, all.Charts.Status)
	assert.NotEmpty(t, all.Charts.Domain)
	assert.NotEmpty(t, all.Charts.Tools)
	assert.False(t, all.Filtered)

	filtered, err := f.svc.Dashboard.FilterStudents(ctx, fac, dto.StudentFilterRequest{Batch: "2023"})
	require.NoError(t, err)
	require.Len(t, filtered.Students, 1)
	assert.Equal(t, "carol", filtered.Students[0].Username)
	require.Len(t, filtered.Internships, 1)
	assert.Equal(t, "carol", filtered.Internships[0].Owner)
	assert.Empty(t, filtered.Projects)
	assert.Equal(t, []analytics.Count{{Label: "Analytics", Count: 1}}, filtered.Summary.DomainCounts)
	assert.Nil(t, filtered.Summary.ToolCounts)
	assert.Empty(t, filtered.Charts.Tools)
	assert.True(t, filtered.Filtered)

	unfiltered, err := f.svc.Dashboard.FilterStudents(ctx, fac, dto.StudentFilterRequest{})
	require.NoError(t, err)
	assert.False(t, unfiltered.Filtered)
	assert.Len(t, unfiltered.Students, len(all.Students))

	none, err := f.svc.Dashboard.FilterStudents(ctx, fac, dto.StudentFilterRequest{Batch: "1999"})
	require.NoError(t, err)
	assert.Empty(t, none.Students)
	assert.Empty(t, none.Internships)
	assert.True(t, none.Summary.IsEmpty())
}

func TestFacultyDashboardWithoutCharts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	fac := f.faculty(t, f.signUp(t, "bob", models.RoleFaculty, ""))

	d, err := f.svc.Dashboard.Faculty(ctx, fac)
	require.NoError(t, err)
	assert.Nil(t, d.Charts)
}

func TestReportDownloads(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	alice := f.student(t, f.signUp(t, "alice", models.RoleStudent, "2024"))
	fac := f.faculty(t, f.signUp(t, "bob", models.RoleFaculty, ""))

	_, err := f.svc.Submission.AddInternship(ctx, alice, dto.InternshipRequest{Title: "ML Intern", Company: "Acme", Duration: "3m"}, nil)
	require.NoError(t, err)

	pdf, err := f.svc.Report.PDF(ctx, fac)
	require.NoError(t, err)
	assert.Equal(t, "data_science_report.pdf", pdf.Filename)
	assert.Equal(t, "application/pdf", pdf.ContentType)
	assert.True(t, bytes.HasPrefix(pdf.Data, []byte("%PDF-")))

	csv, err := f.svc.Report.CSV(ctx, fac, models.KindInternship)
	require.NoError(t, err)
	assert.Equal(t, "internships.csv", csv.Filename)
	assert.Contains(t, string(csv.Data), "ML Intern")

	_, err = f.svc.Report.CSV(ctx, fac, models.RecordKind("grades"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRecordKind)
}
