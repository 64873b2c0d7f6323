package analysis

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	matcherResume = "Experienced python developer with 5 years building docker " +
		"deployments on aws. Led teams and delivered sql backed services."
	matcherJD = "We need a python developer with 3 years of aws and kubernetes " +
		"experience. Sql knowledge required."
)

func TestJDMatcherEmptyInputs(t *testing.T) {
	matcher := NewJDMatcher(fallbackStub())

	_, err := matcher.Score(context.Background(), "", matcherJD)
	assert.ErrorIs(t, err, ErrEmptyResume)

	_, err = matcher.Score(context.Background(), matcherResume, "  \n")
	assert.ErrorIs(t, err, ErrEmptyJobDescription)
}

func TestJDMatcherBlendMatchesComponents(t *testing.T) {
	matcher := NewJDMatcher(&stubAssessor{match: &MatchAIAnalysis{MatchScore: 82}})

	result, err := matcher.Score(context.Background(), matcherResume, matcherJD)
	require.NoError(t, err)

	skills := MatchSkills(matcherResume, matcherJD)
	composite := 0.30*SemanticSimilarity(matcherResume, matcherJD) +
		0.25*KeywordOverlap(matcherResume, matcherJD) +
		0.25*skills.Score +
		0.20*MatchExperience(matcherResume, matcherJD)
	expected := 0.5*composite + 0.5*82

	assert.InDelta(t, expected, result.MatchScore, 0.06)
	assert.InDelta(t, skills.Score, result.TechnicalSkills, 0.06)
	assert.Equal(t, skills.Matched, result.MatchedSkills)
	assert.Equal(t, skills.Missing, result.MissingSkills)
}

func TestJDMatcherWithoutAIAnalysis(t *testing.T) {
	matcher := NewJDMatcher(&stubAssessor{})

	result, err := matcher.Score(context.Background(), matcherResume, matcherJD)
	require.NoError(t, err)

	skills := MatchSkills(matcherResume, matcherJD)
	composite := 0.30*SemanticSimilarity(matcherResume, matcherJD) +
		0.25*KeywordOverlap(matcherResume, matcherJD) +
		0.25*skills.Score +
		0.20*MatchExperience(matcherResume, matcherJD)

	assert.InDelta(t, composite, result.MatchScore, 0.06)
	assert.Nil(t, result.AIAnalysis)
}

func TestJDMatcherEducationIsFixed(t *testing.T) {
	matcher := NewJDMatcher(fallbackStub())

	result, err := matcher.Score(context.Background(), matcherResume, matcherJD)
	require.NoError(t, err)
	assert.Equal(t, 85.0, result.EducationScore)

	result, err = matcher.Score(context.Background(), "PhD in computer science, python", "python role")
	require.NoError(t, err)
	assert.Equal(t, 85.0, result.EducationScore)
}

func TestJDMatcherRecommendationsFromMissingSkills(t *testing.T) {
	matcher := NewJDMatcher(&stubAssessor{})

	jd := "Looking for python, redis, jenkins, mongodb and kotlin experts"
	result, err := matcher.Score(context.Background(), "python developer", jd)
	require.NoError(t, err)

	// Only the first three missing skills become recommendations, in
	// vocabulary order.
	assert.Contains(t, result.Recommendations,
		"Consider adding 'kotlin' to your skills if you have experience with it")
	assert.Contains(t, result.Recommendations,
		"Consider adding 'jenkins' to your skills if you have experience with it")
	assert.Contains(t, result.Recommendations,
		"Consider adding 'mongodb' to your skills if you have experience with it")
	assert.NotContains(t, result.Recommendations,
		"Consider adding 'redis' to your skills if you have experience with it")
}

func TestJDMatcherRecommendationBands(t *testing.T) {
	matcher := NewJDMatcher(&stubAssessor{match: &MatchAIAnalysis{MatchScore: 10}})

	// Totally disjoint documents pull the blended score under 60.
	result, err := matcher.Score(context.Background(),
		"gardener who enjoys pruning roses", "astrophysics simulation role")
	require.NoError(t, err)
	assert.Contains(t, result.Recommendations,
		"Consider tailoring your resume more closely to this job description")
	assert.NotContains(t, result.Recommendations,
		"Highlight relevant achievements that match job requirements")

	// A mid-band score gets the softer nudge instead.
	matcher = NewJDMatcher(&stubAssessor{match: &MatchAIAnalysis{MatchScore: 70}})
	result, err = matcher.Score(context.Background(), matcherResume, matcherJD)
	require.NoError(t, err)
	if result.MatchScore >= 60 && result.MatchScore < 80 {
		assert.Contains(t, result.Recommendations,
			"Highlight relevant achievements that match job requirements")
	}
}

func TestJDMatcherFallbackRecommendations(t *testing.T) {
	matcher := NewJDMatcher(&stubAssessor{match: &MatchAIAnalysis{MatchScore: 100}})

	// Every JD skill matched and a high blended score: no organic
	// recommendations, so the fixed set is returned.
	resume := "python and aws and sql expert with 10 years experience"
	jd := "python aws sql role, 3 years"
	result, err := matcher.Score(context.Background(), resume, jd)
	require.NoError(t, err)

	require.GreaterOrEqual(t, result.MatchScore, 80.0)
	assert.Equal(t, []string{
		"Quantify your achievements with metrics and numbers",
		"Use keywords from the job description throughout your resume",
		"Highlight relevant projects that demonstrate required skills",
	}, result.Recommendations)
}

func TestJDMatcherRecommendationsCap(t *testing.T) {
	matcher := NewJDMatcher(&stubAssessor{match: &MatchAIAnalysis{
		MatchScore:      40,
		Recommendations: []string{"Rec one", "Rec two", "Rec three", "Rec four"},
	}})

	jd := "Need rust, kotlin, jenkins, mongodb and redis expertise"
	result, err := matcher.Score(context.Background(), "unrelated resume text", jd)
	require.NoError(t, err)

	// 3 missing-skill recs + 3 AI recs already hit the cap; the low-score
	// band suggestion is truncated away.
	assert.Len(t, result.Recommendations, 6)
	assert.NotContains(t, result.Recommendations, "Rec four")
	assert.NotContains(t, result.Recommendations,
		"Consider tailoring your resume more closely to this job description")
}

func TestJDMatcherIdempotent(t *testing.T) {
	matcher := NewJDMatcher(fallbackStub())

	first, err := matcher.Score(context.Background(), matcherResume, matcherJD)
	require.NoError(t, err)
	second, err := matcher.Score(context.Background(), matcherResume, matcherJD)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestJDMatcherScoresWithinBounds(t *testing.T) {
	matcher := NewJDMatcher(fallbackStub())

	pairs := [][2]string{
		{matcherResume, matcherJD},
		{"x", "y"},
		{strings.Repeat("python aws docker kubernetes ", 200), "python role"},
	}

	for _, pair := range pairs {
		result, err := matcher.Score(context.Background(), pair[0], pair[1])
		require.NoError(t, err)

		for name, score := range map[string]float64{
			"match":      result.MatchScore,
			"skills":     result.TechnicalSkills,
			"experience": result.ExperienceScore,
			"keywords":   result.KeywordsScore,
		} {
			assert.GreaterOrEqual(t, score, 0.0, name)
			assert.LessOrEqual(t, score, 100.0, name)
		}
		assert.LessOrEqual(t, len(result.Recommendations), 6)
	}
}
