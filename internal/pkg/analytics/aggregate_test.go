package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/stit/internal/app/models"
)

func TestToolCountsRepeatedTokens(t *testing.T) {
	projects := []models.Project{{Tools: "Python, SQL, Python"}}

	assert.Equal(t, []Count{{"Python", 2}, {"SQL", 1}}, ToolCounts(projects))
}

func TestToolCountsAcrossProjects(t *testing.T) {
	projects := []models.Project{
		{Tools: "Go,  Docker"},
		{Tools: " ,Docker,,"},
		{Tools: "Ansible, Go"},
	}

	assert.Equal(t, []Count{{"Docker", 2}, {"Go", 2}, {"Ansible", 1}}, ToolCounts(projects))
}

func TestToolCountsSkippedWhenNoTokens(t *testing.T) {
	assert.Nil(t, ToolCounts(nil))
	assert.Nil(t, ToolCounts([]models.Project{{Tools: " , "}}))
}

func TestStatusCountsOrdering(t *testing.T) {
	internships := []models.Internship{
		{Status: models.StatusVerified},
		{Status: models.StatusPending},
		{Status: models.StatusVerified},
	}

	assert.Equal(t, []Count{{"Pending", 1}, {"Verified", 2}}, StatusCounts(internships))
}

func TestStatusCountsOnlyPresent(t *testing.T) {
	internships := []models.Internship{{Status: models.StatusVerified}}

	assert.Equal(t, []Count{{"Verified", 1}}, StatusCounts(internships))
	assert.Nil(t, StatusCounts(nil))
}

func TestDomainCounts(t *testing.T) {
	internships := []models.Internship{
		{Domain: "NLP"},
		{Domain: " Vision "},
		{Domain: ""},
		{Domain: "   "},
		{Domain: "Vision"},
		{Domain: "Analytics"},
	}

	assert.Equal(t, []Count{{"Vision", 2}, {"Analytics", 1}, {"NLP", 1}}, DomainCounts(internships))
	assert.Nil(t, DomainCounts([]models.Internship{{Domain: " "}}))
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil, nil)
	assert.True(t, s.IsEmpty())

	s = Compute([]models.Internship{{Status: models.StatusPending}}, nil)
	assert.False(t, s.IsEmpty())
	assert.Nil(t, s.DomainCounts)
	assert.Nil(t, s.ToolCounts)
}

func TestSplitToolsAndMax(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitTools(" a ,, b ,"))
	assert.Equal(t, 3, MaxCount([]Count{{"x", 1}, {"y", 3}}))
	assert.Equal(t, 0, MaxCount(nil))
}
