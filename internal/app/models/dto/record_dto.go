package dto

import "github.com/yigit/stit/internal/app/models"

// InternshipRequest is the add-internship form; the certificate file is read separately
type InternshipRequest struct {
	Title    string `form:"title" binding:"required,max=100"`
	Company  string `form:"company" binding:"required,max=100"`
	Duration string `form:"duration" binding:"required,max=50"`
	Domain   string `form:"domain" binding:"max=50"`
}

// ProjectRequest is the add-project form
type ProjectRequest struct {
	Title       string `form:"title" binding:"required,max=100"`
	Tools       string `form:"tools" binding:"required,max=200"`
	Description string `form:"description" binding:"required"`
	GithubLink  string `form:"github_link" binding:"max=200,weblink"`
	DatasetUsed string `form:"dataset_used" binding:"max=100"`
}

// StudentFilterRequest carries the optional faculty filter fields
type StudentFilterRequest struct {
	Batch    string `form:"batch" binding:"max=10"`
	Semester string `form:"semester" binding:"max=10"`
	Course   string `form:"course" binding:"max=50"`
}

// ToFilter converts the request into a store filter
func (r StudentFilterRequest) ToFilter() models.StudentFilter {
	return models.StudentFilter{Batch: r.Batch, Semester: r.Semester, Course: r.Course}
}
