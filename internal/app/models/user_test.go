package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentFilterMatches(t *testing.T) {
	alice := &User{Username: "alice", Role: RoleStudent, Batch: "2024", Semester: "5", Course: "CS"}
	bob := &User{Username: "bob", Role: RoleFaculty, Batch: "2024"}

	tests := []struct {
		name   string
		filter StudentFilter
		user   *User
		want   bool
	}{
		{"empty filter matches student", StudentFilter{}, alice, true},
		{"faculty never matches", StudentFilter{}, bob, false},
		{"batch match", StudentFilter{Batch: "2024"}, alice, true},
		{"batch mismatch", StudentFilter{Batch: "2023"}, alice, false},
		{"all criteria", StudentFilter{Batch: "2024", Semester: "5", Course: "CS"}, alice, true},
		{"one criterion off", StudentFilter{Batch: "2024", Course: "EE"}, alice, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.user))
		})
	}
}

func TestRoleTypeValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleFaculty.Valid())
	assert.False(t, RoleType("admin").Valid())
}
