package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/stit/internal/app/controllers"
	"github.com/yigit/stit/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth      *controllers.AuthController
	Dashboard *controllers.DashboardController
	Records   *controllers.RecordController
	Reports   *controllers.ReportController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public routes ---
	router.GET("/", ctrl.Auth.Index)
	router.GET("/signup", ctrl.Auth.SignupPage)
	router.POST("/signup", ctrl.Auth.Signup)
	router.GET("/login", ctrl.Auth.LoginPage)
	router.POST("/login", ctrl.Auth.Login)
	router.GET("/logout", ctrl.Auth.Logout)

	// --- Any logged in user ---
	router.GET("/dashboard", authMiddleware.Authenticated(ctrl.Dashboard.Dashboard))

	// --- Students ---
	router.GET("/add_internship", authMiddleware.Student(ctrl.Records.AddInternshipPage))
	router.POST("/add_internship", authMiddleware.Student(ctrl.Records.AddInternship))
	router.GET("/add_project", authMiddleware.Student(ctrl.Records.AddProjectPage))
	router.POST("/add_project", authMiddleware.Student(ctrl.Records.AddProject))

	// --- Faculty ---
	router.GET("/verify_internship/:id/:action", authMiddleware.Faculty(ctrl.Records.VerifyInternship))
	router.GET("/verify_project/:id/:action", authMiddleware.Faculty(ctrl.Records.VerifyProject))
	router.GET("/filter_students", authMiddleware.Faculty(ctrl.Dashboard.FilterStudents))
	router.POST("/filter_students", authMiddleware.Faculty(ctrl.Dashboard.FilterStudents))
	router.GET("/download_report", authMiddleware.Faculty(ctrl.Reports.DownloadReport))
	router.GET("/export/:file", authMiddleware.Faculty(ctrl.Reports.ExportCSV))
	router.GET("/certificates/:name", authMiddleware.Faculty(ctrl.Records.Certificate))
}
