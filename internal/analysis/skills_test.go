package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSkills(t *testing.T) {
	result := MatchSkills(
		"Experienced Python developer",
		"Looking for a Python and AWS engineer",
	)

	assert.Equal(t, 50.0, result.Score)
	assert.Equal(t, []string{"python"}, result.Matched)
	assert.Equal(t, []string{"aws"}, result.Missing)
}

func TestMatchSkillsVocabularyOrderPreserved(t *testing.T) {
	// Mention order in the documents is reversed; output keeps
	// vocabulary order.
	result := MatchSkills(
		"docker, aws, react, python everywhere",
		"need python, react, aws and docker",
	)

	assert.Equal(t, []string{"python", "react", "aws", "docker"}, result.Matched)
	assert.Empty(t, result.Missing)
	assert.Equal(t, 100.0, result.Score)
}

func TestMatchSkillsNoneInJD(t *testing.T) {
	result := MatchSkills(
		"python developer",
		"we value kindness and punctuality above all",
	)

	assert.Equal(t, 75.0, result.Score)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
}

func TestMatchSkillsCapped(t *testing.T) {
	jd := "python java javascript react angular vue nodejs typescript " +
		"ruby rust swift kotlin aws azure gcp docker kubernetes jenkins"

	result := MatchSkills("completely unrelated background", jd)

	assert.LessOrEqual(t, len(result.Missing), 10)
	assert.Equal(t, 0.0, result.Score)
}

func TestMatchExperience(t *testing.T) {
	tests := []struct {
		name     string
		resume   string
		jd       string
		expected float64
	}{
		{"no requirement in JD", "10 years of engineering", "great team, flexible hours", 80},
		{"candidate meets requirement", "6 years of backend work", "5+ years required", 100},
		{"candidate close to requirement", "3 years of backend work", "4 years required", 85},
		{"candidate short of requirement", "3 years of experience", "5+ years required", 60},
		{"floor at fifty", "1 year of experience", "10+ years required", 50},
		{"no years on resume", "fresh graduate", "5 years required", 50},
		{"yrs abbreviation", "7 yrs shipping software", "5 yrs minimum", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchExperience(tt.resume, tt.jd))
		})
	}
}

func TestMatchExperienceFirstJDMentionWins(t *testing.T) {
	// The JD mentions 3 years first; the later 10 is ignored.
	score := MatchExperience(
		"4 years of development",
		"3 years required, though 10 years preferred",
	)

	assert.Equal(t, 100.0, score)
}
