package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"hirewise/resume-analyzer/internal/analysis"
)

// Fallback scores substituted when the generative assessment is missing,
// malformed or unavailable. They differ by caller context.
const (
	atsFallbackScore   = 75.0
	matchFallbackScore = 70.0

	unconfiguredNote = "Configure GEMINI_API_KEY to enable AI-powered analysis"
)

// aiAssessor is the single boundary to the generative model. It never
// returns an error: every failure mode collapses into a fixed fallback
// assessment so the scoring pipeline always completes.
type aiAssessor struct {
	gemini  GeminiService
	prompts *PromptBuilder
}

// NewAIAssessor builds the assessment boundary. A nil gemini service means
// no credential is configured; every call then short-circuits to the
// fallback without a network attempt.
func NewAIAssessor(gemini GeminiService, prompts *PromptBuilder) analysis.Assessor {
	return &aiAssessor{gemini: gemini, prompts: prompts}
}

// AssessATS implements analysis.Assessor.
func (a *aiAssessor) AssessATS(ctx context.Context, resumeText string) *analysis.ATSAIAnalysis {
	if a.gemini == nil {
		return atsFallback(unconfiguredNote)
	}

	response, err := a.gemini.GenerateText(ctx, a.prompts.BuildATSPrompt(resumeText), 0.3)
	if err != nil {
		log.Printf("⚠️  AI ATS analysis failed: %v\n", err)
		return atsFallback("")
	}

	var raw struct {
		Score              *float64 `json:"score"`
		FormattingIssues   []string `json:"formatting_issues"`
		MissingSections    []string `json:"missing_sections"`
		KeywordSuggestions []string `json:"keyword_suggestions"`
		Improvements       []string `json:"improvements"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(response)), &raw); err != nil || raw.Score == nil {
		log.Printf("⚠️  AI ATS analysis returned malformed JSON: %v\n", err)
		return atsFallback("")
	}

	return &analysis.ATSAIAnalysis{
		Score:              *raw.Score,
		FormattingIssues:   emptyIfNil(raw.FormattingIssues),
		MissingSections:    emptyIfNil(raw.MissingSections),
		KeywordSuggestions: emptyIfNil(raw.KeywordSuggestions),
		Improvements:       emptyIfNil(raw.Improvements),
	}
}

// AssessMatch implements analysis.Assessor.
func (a *aiAssessor) AssessMatch(ctx context.Context, resumeText, jobDescription string) *analysis.MatchAIAnalysis {
	if a.gemini == nil {
		return matchFallback(unconfiguredNote)
	}

	response, err := a.gemini.GenerateText(ctx, a.prompts.BuildMatchPrompt(resumeText, jobDescription), 0.3)
	if err != nil {
		log.Printf("⚠️  AI match analysis failed: %v\n", err)
		return matchFallback("")
	}

	var raw struct {
		MatchScore          *float64 `json:"match_score"`
		MatchedRequirements []string `json:"matched_requirements"`
		MissingRequirements []string `json:"missing_requirements"`
		Recommendations     []string `json:"recommendations"`
		StrengthAreas       []string `json:"strength_areas"`
		ImprovementAreas    []string `json:"improvement_areas"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(response)), &raw); err != nil || raw.MatchScore == nil {
		log.Printf("⚠️  AI match analysis returned malformed JSON: %v\n", err)
		return matchFallback("")
	}

	return &analysis.MatchAIAnalysis{
		MatchScore:          *raw.MatchScore,
		MatchedRequirements: emptyIfNil(raw.MatchedRequirements),
		MissingRequirements: emptyIfNil(raw.MissingRequirements),
		Recommendations:     emptyIfNil(raw.Recommendations),
		StrengthAreas:       emptyIfNil(raw.StrengthAreas),
		ImprovementAreas:    emptyIfNil(raw.ImprovementAreas),
	}
}

func atsFallback(note string) *analysis.ATSAIAnalysis {
	return &analysis.ATSAIAnalysis{
		Score:              atsFallbackScore,
		FormattingIssues:   []string{},
		MissingSections:    []string{},
		KeywordSuggestions: []string{},
		Improvements:       []string{},
		Note:               note,
	}
}

func matchFallback(note string) *analysis.MatchAIAnalysis {
	return &analysis.MatchAIAnalysis{
		MatchScore:          matchFallbackScore,
		MatchedRequirements: []string{},
		MissingRequirements: []string{},
		Recommendations:     []string{},
		StrengthAreas:       []string{},
		ImprovementAreas:    []string{},
		Note:                note,
	}
}

// stripCodeFence removes a surrounding markdown code fence and an optional
// language tag from an LLM reply before decoding.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	if i := strings.LastIndex(text, "```"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
