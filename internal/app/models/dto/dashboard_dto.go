package dto

import (
	"html/template"

	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/pkg/analytics"
)

// InternshipView is an internship with its owner's username for display
type InternshipView struct {
	models.Internship
	Owner string
}

// ProjectView is a project with its owner's username for display
type ProjectView struct {
	models.Project
	Owner string
}

// StudentDashboard is what a student sees: only their own records
type StudentDashboard struct {
	User        models.User
	Internships []models.Internship
	Projects    []models.Project
}

// ChartImages holds data URLs of the rendered charts; empty fields were skipped
type ChartImages struct {
	Status template.URL
	Domain template.URL
	Tools  template.URL
}

// FacultyDashboard is the faculty overview, optionally narrowed by a student filter
type FacultyDashboard struct {
	Students    []models.User
	Internships []InternshipView
	Projects    []ProjectView
	Summary     analytics.Summary
	Charts      *ChartImages
	Filter      StudentFilterRequest
	Filtered    bool
}

// FileDownload is a generated file ready to be sent as an attachment
type FileDownload struct {
	Filename    string
	ContentType string
	Data        []byte
}
