package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleFaculty RoleType = "faculty"
)

// Valid reports whether r is a known role
func (r RoleType) Valid() bool {
	return r == RoleStudent || r == RoleFaculty
}

// RecordStatus is the verification state of an internship or project
type RecordStatus string

const (
	StatusPending  RecordStatus = "Pending"
	StatusVerified RecordStatus = "Verified"
)

// RecordKind names the two kinds of submitted records
type RecordKind string

const (
	KindInternship RecordKind = "internship"
	KindProject    RecordKind = "project"
)
