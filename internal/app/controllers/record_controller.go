package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/stit/internal/app/auth"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/app/models/dto"
	"github.com/yigit/stit/internal/app/services"
	"github.com/yigit/stit/internal/middleware"
	"github.com/yigit/stit/internal/pkg/filestorage"
)

const (
	msgInternshipAdded = "Internship added successfully!"
	msgProjectAdded    = "Project added successfully!"
)

// RecordController handles internship and project submission, verification and certificates
type RecordController struct {
	submissionService   services.SubmissionService
	verificationService services.VerificationService
	storage             filestorage.FileStorage
	pages               Pages
	logger              zerolog.Logger
}

// NewRecordController creates a new RecordController
func NewRecordController(
	submissionService services.SubmissionService,
	verificationService services.VerificationService,
	storage filestorage.FileStorage,
	pages Pages,
	logger zerolog.Logger,
) *RecordController {
	return &RecordController{
		submissionService:   submissionService,
		verificationService: verificationService,
		storage:             storage,
		pages:               pages,
		logger:              logger,
	}
}

// AddInternshipPage shows the internship form
func (rc *RecordController) AddInternshipPage(c *gin.Context, student auth.Student) {
	user := student.User()
	rc.pages.Render(c, http.StatusOK, "add_internship.html", &user, gin.H{"Title": "Add internship"})
}

// AddInternship stores a new internship and its optional certificate
func (rc *RecordController) AddInternship(c *gin.Context, student auth.Student) {
	var req dto.InternshipRequest
	if err := middleware.BindForm(c, &req); err != nil {
		middleware.HandleWebError(c, err)
		return
	}

	certificate, err := optionalFile(c, "certificate")
	if err != nil {
		rc.logger.Warn().Err(err).Msg("Failed to read certificate upload")
		middleware.HandleWebError(c, err)
		return
	}

	if _, err := rc.submissionService.AddInternship(c.Request.Context(), student, req, certificate); err != nil {
		middleware.HandleWebError(c, err)
		return
	}

	middleware.AddFlash(c, middleware.FlashSuccess, msgInternshipAdded)
	middleware.Redirect(c, "/dashboard")
}

// AddProjectPage shows the project form
func (rc *RecordController) AddProjectPage(c *gin.Context, student auth.Student) {
	user := student.User()
	rc.pages.Render(c, http.StatusOK, "add_project.html", &user, gin.H{"Title": "Add project"})
}

// AddProject stores a new project
func (rc *RecordController) AddProject(c *gin.Context, student auth.Student) {
	var req dto.ProjectRequest
	if err := middleware.BindForm(c, &req); err != nil {
		middleware.HandleWebError(c, err)
		return
	}

	if _, err := rc.submissionService.AddProject(c.Request.Context(), student, req); err != nil {
		middleware.HandleWebError(c, err)
		return
	}

	middleware.AddFlash(c, middleware.FlashSuccess, msgProjectAdded)
	middleware.Redirect(c, "/dashboard")
}

// VerifyInternship sets an internship's status from the route action
func (rc *RecordController) VerifyInternship(c *gin.Context, faculty auth.Faculty) {
	rc.setStatus(c, faculty, models.KindInternship)
}

// VerifyProject sets a project's status from the route action
func (rc *RecordController) VerifyProject(c *gin.Context, faculty auth.Faculty) {
	rc.setStatus(c, faculty, models.KindProject)
}

func (rc *RecordController) setStatus(c *gin.Context, faculty auth.Faculty, kind models.RecordKind) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	action := c.Param("action")
	applied, err := rc.verificationService.SetStatus(c.Request.Context(), faculty, kind, id, action)
	if err != nil {
		middleware.HandleWebError(c, err)
		return
	}

	if applied {
		middleware.AddFlash(c, middleware.FlashSuccess, statusNotice(kind, services.ResolveStatus(action)))
	}
	middleware.Redirect(c, "/dashboard")
}

// Certificate streams a stored certificate file
func (rc *RecordController) Certificate(c *gin.Context, _ auth.Faculty) {
	name := c.Param("name")
	path := rc.storage.GetFullPath(name)
	if path == "" {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	c.FileAttachment(path, info.Name())
}

// statusNotice is the flash shown after a status change, e.g. "Internship marked as Verified."
func statusNotice(kind models.RecordKind, status models.RecordStatus) string {
	label := "Internship"
	if kind == models.KindProject {
		label = "Project"
	}
	return fmt.Sprintf("%s marked as %s.", label, status)
}

// optionalFile returns the uploaded file for field, or nil when none was sent
func optionalFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if fh.Filename == "" {
		return nil, nil
	}
	return fh, nil
}
