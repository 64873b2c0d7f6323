package analysis

import "context"

// ATSAIAnalysis is the constrained JSON shape the generative model must
// return when assessing ATS compatibility.
type ATSAIAnalysis struct {
	Score              float64  `json:"score"`
	FormattingIssues   []string `json:"formatting_issues"`
	MissingSections    []string `json:"missing_sections"`
	KeywordSuggestions []string `json:"keyword_suggestions"`
	Improvements       []string `json:"improvements"`

	// Note carries an advisory when the analysis is a degraded fallback,
	// e.g. because no API key is configured. It never feeds the blended
	// score or the suggestion list.
	Note string `json:"note,omitempty"`
}

// MatchAIAnalysis is the constrained JSON shape for job-description match
// assessment.
type MatchAIAnalysis struct {
	MatchScore          float64  `json:"match_score"`
	MatchedRequirements []string `json:"matched_requirements"`
	MissingRequirements []string `json:"missing_requirements"`
	Recommendations     []string `json:"recommendations"`
	StrengthAreas       []string `json:"strength_areas"`
	ImprovementAreas    []string `json:"improvement_areas"`

	Note string `json:"note,omitempty"`
}

// Assessor is the boundary to the external generative-text service. An
// implementation must be total: any service, transport or parse failure is
// absorbed into a fixed fallback analysis, never an error. Both scorers
// make exactly one assessment call per scoring invocation.
type Assessor interface {
	AssessATS(ctx context.Context, resumeText string) *ATSAIAnalysis
	AssessMatch(ctx context.Context, resumeText, jobDescription string) *MatchAIAnalysis
}
