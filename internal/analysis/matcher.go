package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Component weights of the deterministic match composite.
const (
	matchSemanticWeight   = 0.30
	matchKeywordsWeight   = 0.25
	matchSkillsWeight     = 0.25
	matchExperienceWeight = 0.20

	// Blend between the deterministic composite and the AI match score.
	matchFormulaShare = 0.5
	matchAIShare      = 0.5

	// Education is not scored from the documents; the fixed value is a
	// documented limitation, not a bug.
	educationScorePlaceholder = 85.0

	maxRecommendations = 6
)

// ErrEmptyJobDescription is returned when JD matching is invoked without a
// job description.
var ErrEmptyJobDescription = errors.New("job description is empty")

// MatchResult is the complete outcome of matching a resume against a job
// description. All scores are in [0,100] and rounded to one decimal.
type MatchResult struct {
	MatchScore      float64          `json:"match_score"`
	TechnicalSkills float64          `json:"technical_skills"`
	ExperienceScore float64          `json:"experience_score"`
	EducationScore  float64          `json:"education_score"`
	KeywordsScore   float64          `json:"keywords_score"`
	MatchedSkills   []string         `json:"matched_skills"`
	MissingSkills   []string         `json:"missing_skills"`
	Recommendations []string         `json:"recommendations"`
	AIAnalysis      *MatchAIAnalysis `json:"ai_analysis,omitempty"`
}

// JDMatcher scores how well a resume fits a specific job posting by
// blending lexical, vector-space, skill and experience signals with a
// generative-model assessment.
type JDMatcher struct {
	assessor Assessor
}

func NewJDMatcher(assessor Assessor) *JDMatcher {
	return &JDMatcher{assessor: assessor}
}

// Score computes the match assessment. Deterministic sub-signals run
// concurrently; the single external assessment call happens after they are
// joined. Errors are limited to empty input.
func (m *JDMatcher) Score(ctx context.Context, resumeText, jobDescription string) (*MatchResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyResume
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrEmptyJobDescription
	}

	var (
		semanticScore   float64
		keywordsScore   float64
		skills          SkillMatch
		experienceScore float64
		wg              sync.WaitGroup
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		semanticScore = SemanticSimilarity(resumeText, jobDescription)
	}()
	go func() {
		defer wg.Done()
		keywordsScore = KeywordOverlap(resumeText, jobDescription)
	}()
	go func() {
		defer wg.Done()
		skills = MatchSkills(resumeText, jobDescription)
	}()
	go func() {
		defer wg.Done()
		experienceScore = MatchExperience(resumeText, jobDescription)
	}()
	wg.Wait()

	matchScore := semanticScore*matchSemanticWeight +
		keywordsScore*matchKeywordsWeight +
		skills.Score*matchSkillsWeight +
		experienceScore*matchExperienceWeight

	aiAnalysis := m.assessor.AssessMatch(ctx, resumeText, jobDescription)
	if aiAnalysis != nil {
		matchScore = matchScore*matchFormulaShare + aiAnalysis.MatchScore*matchAIShare
	}

	recommendations := buildRecommendations(skills, aiAnalysis, matchScore)

	return &MatchResult{
		MatchScore:      round1(matchScore),
		TechnicalSkills: round1(skills.Score),
		ExperienceScore: round1(experienceScore),
		EducationScore:  educationScorePlaceholder,
		KeywordsScore:   round1(keywordsScore),
		MatchedSkills:   skills.Matched,
		MissingSkills:   skills.Missing,
		Recommendations: recommendations,
		AIAnalysis:      aiAnalysis,
	}, nil
}

func buildRecommendations(skills SkillMatch, aiAnalysis *MatchAIAnalysis, matchScore float64) []string {
	var recs []string

	for _, skill := range capStrings(skills.Missing, 3) {
		recs = appendUnique(recs, fmt.Sprintf(
			"Consider adding '%s' to your skills if you have experience with it", skill))
	}

	if aiAnalysis != nil {
		for _, rec := range capStrings(aiAnalysis.Recommendations, 3) {
			recs = appendUnique(recs, rec)
		}
	}

	if matchScore < 60 {
		recs = appendUnique(recs, "Consider tailoring your resume more closely to this job description")
	} else if matchScore < 80 {
		recs = appendUnique(recs, "Highlight relevant achievements that match job requirements")
	}

	if len(recs) == 0 {
		recs = []string{
			"Quantify your achievements with metrics and numbers",
			"Use keywords from the job description throughout your resume",
			"Highlight relevant projects that demonstrate required skills",
		}
	}

	return capStrings(recs, maxRecommendations)
}
