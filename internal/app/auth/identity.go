package auth

import (
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/pkg/apperrors"
)

// Identity is any authenticated user, re-resolved from the store for the current request
type Identity struct {
	user models.User
}

// ID returns the user id
func (i Identity) ID() int64 { return i.user.ID }

// Username returns the username
func (i Identity) Username() string { return i.user.Username }

// Role returns the user's role
func (i Identity) Role() models.RoleType { return i.user.Role }

// User returns a copy of the resolved user
func (i Identity) User() models.User { return i.user }

// Student is an Identity proven to hold the student role. The zero value is not usable;
// obtain one through NewStudent.
type Student struct {
	Identity
}

// Faculty is an Identity proven to hold the faculty role
type Faculty struct {
	Identity
}

// NewIdentity wraps a resolved user
func NewIdentity(u *models.User) (Identity, error) {
	if u == nil || u.ID == 0 {
		return Identity{}, apperrors.ErrUnauthenticated
	}
	return Identity{user: *u}, nil
}

// NewStudent returns a Student capability, or ErrUnauthorizedRole if u is not a student
func NewStudent(u *models.User) (Student, error) {
	id, err := NewIdentity(u)
	if err != nil {
		return Student{}, err
	}
	if !u.IsStudent() {
		return Student{}, apperrors.ErrUnauthorizedRole
	}
	return Student{Identity: id}, nil
}

// NewFaculty returns a Faculty capability, or ErrUnauthorizedRole if u is not faculty
func NewFaculty(u *models.User) (Faculty, error) {
	id, err := NewIdentity(u)
	if err != nil {
		return Faculty{}, err
	}
	if !u.IsFaculty() {
		return Faculty{}, apperrors.ErrUnauthorizedRole
	}
	return Faculty{Identity: id}, nil
}
