package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/stit/internal/app/models"
)

func TestExportKind(t *testing.T) {
	tests := []struct {
		file string
		kind models.RecordKind
		ok   bool
	}{
		{"internships.csv", models.KindInternship, true},
		{"projects.csv", models.KindProject, true},
		{"projects", "", false},
		{"users.csv", "", false},
		{"internship.csv", "", false},
	}

	for _, tt := range tests {
		kind, ok := exportKind(tt.file)
		assert.Equal(t, tt.ok, ok, tt.file)
		assert.Equal(t, tt.kind, kind, tt.file)
	}
}
