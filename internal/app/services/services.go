package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/stit/internal/app/repositories"
	pkgauth "github.com/yigit/stit/internal/pkg/auth"
	"github.com/yigit/stit/internal/pkg/filestorage"
)

// Options are the feature switches shared by the services
type Options struct {
	// DataScience enables the domain/dataset fields, charts and the data science report layout
	DataScience bool
	// PasswordCost is the bcrypt cost; zero selects auth.BcryptCost
	PasswordCost int
}

// Services holds all service instances
type Services struct {
	Auth         AuthService
	Submission   SubmissionService
	Verification VerificationService
	Dashboard    DashboardService
	Report       ReportService
}

// NewServices wires every service over the given repositories
func NewServices(repos *repositories.Repositories, storage filestorage.FileStorage, opts Options, logger zerolog.Logger) *Services {
	return &Services{
		Auth:         NewAuthService(repos.Users, pkgauth.NewHasher(opts.PasswordCost), logger),
		Submission:   NewSubmissionService(repos.Internships, repos.Projects, storage, opts, logger),
		Verification: NewVerificationService(repos.Internships, repos.Projects, logger),
		Dashboard:    NewDashboardService(repos, opts, logger),
		Report:       NewReportService(repos, opts, logger),
	}
}
