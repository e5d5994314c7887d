// Package report renders internship and project records as PDF and CSV documents.
package report

import (
	"strconv"

	"github.com/yigit/stit/internal/app/models"
)

const (
	unknownOwner = "Unknown"
	notAvailable = "N/A"
)

// Input is everything a report needs. Usernames maps user ids to usernames;
// owners missing from it are printed as Unknown.
type Input struct {
	Internships []models.Internship
	Projects    []models.Project
	Usernames   map[int64]string
	DataScience bool
}

// Title returns the document title for the variant
func (in Input) Title() string {
	if in.DataScience {
		return "Data Science Internship & Project Report"
	}
	return "Internship & Project Report"
}

// Filename returns the attachment name for the PDF variant
func (in Input) Filename() string {
	if in.DataScience {
		return "data_science_report.pdf"
	}
	return "internship_project_report.pdf"
}

func (in Input) owner(id int64) string {
	if name, ok := in.Usernames[id]; ok {
		return name
	}
	return unknownOwner
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// InternshipHeader returns the internship table columns
func (in Input) InternshipHeader() []string {
	if in.DataScience {
		return []string{"ID", "Student", "Title", "Company", "Domain", "Duration", "Status"}
	}
	return []string{"ID", "Student", "Title", "Company", "Duration", "Status"}
}

// InternshipRows returns one row per internship in header order
func (in Input) InternshipRows() [][]string {
	rows := make([][]string, 0, len(in.Internships))
	for _, i := range in.Internships {
		row := []string{strconv.FormatInt(i.ID, 10), in.owner(i.UserID), i.Title, i.Company}
		if in.DataScience {
			row = append(row, orNA(i.Domain))
		}
		row = append(row, i.Duration, string(i.Status))
		rows = append(rows, row)
	}
	return rows
}

// ProjectHeader returns the project table columns
func (in Input) ProjectHeader() []string {
	if in.DataScience {
		return []string{"ID", "Student", "Title", "Tools", "Dataset", "Status"}
	}
	return []string{"ID", "Student", "Title", "Tools", "Status"}
}

// ProjectRows returns one row per project in header order
func (in Input) ProjectRows() [][]string {
	rows := make([][]string, 0, len(in.Projects))
	for _, p := range in.Projects {
		row := []string{strconv.FormatInt(p.ID, 10), in.owner(p.UserID), p.Title, p.Tools}
		if in.DataScience {
			row = append(row, orNA(p.DatasetUsed))
		}
		row = append(row, string(p.Status))
		rows = append(rows, row)
	}
	return rows
}
