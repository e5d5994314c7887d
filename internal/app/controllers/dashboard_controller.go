package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/stit/internal/app/auth"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/app/models/dto"
	"github.com/yigit/stit/internal/app/services"
	"github.com/yigit/stit/internal/middleware"
)

// DashboardController renders the role specific dashboards
type DashboardController struct {
	dashboardService services.DashboardService
	pages            Pages
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, pages Pages) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		pages:            pages,
	}
}

// Dashboard dispatches on the session user's role
func (dc *DashboardController) Dashboard(c *gin.Context, id auth.Identity) {
	user := id.User()

	switch id.Role() {
	case models.RoleStudent:
		student, err := auth.NewStudent(&user)
		if err != nil {
			middleware.HandleWebError(c, err)
			return
		}
		board, err := dc.dashboardService.Student(c.Request.Context(), student)
		if err != nil {
			middleware.HandleWebError(c, err)
			return
		}
		dc.pages.Render(c, http.StatusOK, "student_dashboard.html", &user, gin.H{"Title": "Dashboard", "Dashboard": board})

	case models.RoleFaculty:
		faculty, err := auth.NewFaculty(&user)
		if err != nil {
			middleware.HandleWebError(c, err)
			return
		}
		board, err := dc.dashboardService.Faculty(c.Request.Context(), faculty)
		if err != nil {
			middleware.HandleWebError(c, err)
			return
		}
		dc.renderFaculty(c, &user, board)

	default:
		middleware.Redirect(c, "/login")
	}
}

// FilterStudents narrows the faculty dashboard. Query string and form fields are both accepted.
func (dc *DashboardController) FilterStudents(c *gin.Context, faculty auth.Faculty) {
	var req dto.StudentFilterRequest
	if err := middleware.BindForm(c, &req); err != nil {
		middleware.HandleWebError(c, err)
		return
	}

	board, err := dc.dashboardService.FilterStudents(c.Request.Context(), faculty, req)
	if err != nil {
		middleware.HandleWebError(c, err)
		return
	}

	user := faculty.User()
	dc.renderFaculty(c, &user, board)
}

func (dc *DashboardController) renderFaculty(c *gin.Context, user *models.User, board *dto.FacultyDashboard) {
	dc.pages.Render(c, http.StatusOK, "faculty_dashboard.html", user, gin.H{"Title": "Faculty dashboard", "Dashboard": board})
}
