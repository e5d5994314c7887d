package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/stit/internal/app/auth"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/app/models/dto"
	"github.com/yigit/stit/internal/app/services"
	"github.com/yigit/stit/internal/middleware"
)

// ReportController serves the generated PDF report and CSV exports
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// DownloadReport sends the PDF report as an attachment
func (rc *ReportController) DownloadReport(c *gin.Context, faculty auth.Faculty) {
	file, err := rc.reportService.PDF(c.Request.Context(), faculty)
	if err != nil {
		middleware.HandleWebError(c, err)
		return
	}
	sendFile(c, file)
}

// ExportCSV sends internships.csv or projects.csv
func (rc *ReportController) ExportCSV(c *gin.Context, faculty auth.Faculty) {
	kind, ok := exportKind(c.Param("file"))
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	file, err := rc.reportService.CSV(c.Request.Context(), faculty, kind)
	if err != nil {
		middleware.HandleWebError(c, err)
		return
	}
	sendFile(c, file)
}

// exportKind maps "internships.csv" and "projects.csv" to their record kind
func exportKind(file string) (models.RecordKind, bool) {
	name, found := strings.CutSuffix(file, ".csv")
	if !found {
		return "", false
	}
	switch name {
	case "internships":
		return models.KindInternship, true
	case "projects":
		return models.KindProject, true
	}
	return "", false
}

func sendFile(c *gin.Context, file *dto.FileDownload) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
