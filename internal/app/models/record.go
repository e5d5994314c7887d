package models

import "time"

// Internship is a student's internship record
type Internship struct {
	ID              int64        `json:"id" db:"id"`
	UserID          int64        `json:"userId" db:"user_id"`
	Title           string       `json:"title" db:"title"`
	Company         string       `json:"company" db:"company"`
	Duration        string       `json:"duration" db:"duration"`
	Domain          string       `json:"domain,omitempty" db:"domain"`
	CertificatePath string       `json:"certificatePath,omitempty" db:"certificate_path"` // stored file name, empty if none
	Status          RecordStatus `json:"status" db:"status"`
	CreatedAt       time.Time    `json:"createdAt" db:"created_at"`
}

// Project is a student's project record
type Project struct {
	ID          int64        `json:"id" db:"id"`
	UserID      int64        `json:"userId" db:"user_id"`
	Title       string       `json:"title" db:"title"`
	Tools       string       `json:"tools" db:"tools"` // comma separated
	Description string       `json:"description" db:"description"`
	GithubLink  string       `json:"githubLink,omitempty" db:"github_link"`
	DatasetUsed string       `json:"datasetUsed,omitempty" db:"dataset_used"`
	Status      RecordStatus `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
}
