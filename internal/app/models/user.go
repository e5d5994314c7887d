package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"` // bcrypt hash
	Role      RoleType  `json:"role" db:"role"`
	Batch     string    `json:"batch,omitempty" db:"batch"`
	Semester  string    `json:"semester,omitempty" db:"semester"`
	Course    string    `json:"course,omitempty" db:"course"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// IsStudent reports whether the user holds the student role
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// IsFaculty reports whether the user holds the faculty role
func (u *User) IsFaculty() bool {
	return u.Role == RoleFaculty
}

// StudentFilter selects students by their metadata; empty fields match everything
type StudentFilter struct {
	Batch    string
	Semester string
	Course   string
}

// IsEmpty reports whether no criteria are set
func (f StudentFilter) IsEmpty() bool {
	return f.Batch == "" && f.Semester == "" && f.Course == ""
}

// Matches reports whether u is a student satisfying every non-empty criterion
func (f StudentFilter) Matches(u *User) bool {
	if !u.IsStudent() {
		return false
	}
	if f.Batch != "" && u.Batch != f.Batch {
		return false
	}
	if f.Semester != "" && u.Semester != f.Semester {
		return false
	}
	if f.Course != "" && u.Course != f.Course {
		return false
	}
	return true
}
