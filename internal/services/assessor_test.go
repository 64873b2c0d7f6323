package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGemini captures the prompt it receives and replies with a canned
// response or error.
type stubGemini struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (s *stubGemini) GenerateText(_ context.Context, prompt string, _ float32) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	return s.response, s.err
}

func (s *stubGemini) GenerateEmbedding(context.Context, string) ([]float32, error) {
	return nil, errors.New("not implemented")
}

func testPrompts() *PromptBuilder {
	return NewPromptBuilder(3000, 2000, 2000)
}

func TestAssessATSUnconfiguredFallsBack(t *testing.T) {
	assessor := NewAIAssessor(nil, testPrompts())

	result := assessor.AssessATS(context.Background(), "resume text")
	require.NotNil(t, result)
	assert.Equal(t, 75.0, result.Score)
	assert.Equal(t, unconfiguredNote, result.Note)
	assert.NotNil(t, result.Improvements)
	assert.Empty(t, result.Improvements)
}

func TestAssessMatchUnconfiguredFallsBack(t *testing.T) {
	assessor := NewAIAssessor(nil, testPrompts())

	result := assessor.AssessMatch(context.Background(), "resume", "job description")
	require.NotNil(t, result)
	assert.Equal(t, 70.0, result.MatchScore)
	assert.Equal(t, unconfiguredNote, result.Note)
}

func TestAssessATSServiceErrorFallsBack(t *testing.T) {
	gemini := &stubGemini{err: errors.New("quota exceeded")}
	assessor := NewAIAssessor(gemini, testPrompts())

	result := assessor.AssessATS(context.Background(), "resume text")
	require.NotNil(t, result)
	assert.Equal(t, 75.0, result.Score)
	assert.Empty(t, result.Note)
	assert.Equal(t, 1, gemini.calls)
}

func TestAssessATSParsesFencedJSON(t *testing.T) {
	gemini := &stubGemini{response: "```json\n" +
		`{"score": 88, "formatting_issues": ["Dense paragraphs"], "improvements": ["Add metrics"]}` +
		"\n```"}
	assessor := NewAIAssessor(gemini, testPrompts())

	result := assessor.AssessATS(context.Background(), "resume text")
	require.NotNil(t, result)
	assert.Equal(t, 88.0, result.Score)
	assert.Equal(t, []string{"Dense paragraphs"}, result.FormattingIssues)
	assert.Equal(t, []string{"Add metrics"}, result.Improvements)
	assert.Equal(t, []string{}, result.MissingSections)
	assert.Empty(t, result.Note)
}

func TestAssessATSMalformedJSONFallsBack(t *testing.T) {
	gemini := &stubGemini{response: "I think this resume scores about 88 out of 100."}
	assessor := NewAIAssessor(gemini, testPrompts())

	result := assessor.AssessATS(context.Background(), "resume text")
	require.NotNil(t, result)
	assert.Equal(t, 75.0, result.Score)
}

func TestAssessATSMissingScoreFallsBack(t *testing.T) {
	gemini := &stubGemini{response: `{"formatting_issues": ["No dates"]}`}
	assessor := NewAIAssessor(gemini, testPrompts())

	result := assessor.AssessATS(context.Background(), "resume text")
	require.NotNil(t, result)
	assert.Equal(t, 75.0, result.Score)
}

func TestAssessMatchParsesPlainJSON(t *testing.T) {
	gemini := &stubGemini{response: `{
		"match_score": 64,
		"matched_requirements": ["Go experience"],
		"missing_requirements": ["Kubernetes"],
		"recommendations": ["Mention container orchestration work"]
	}`}
	assessor := NewAIAssessor(gemini, testPrompts())

	result := assessor.AssessMatch(context.Background(), "resume", "jd")
	require.NotNil(t, result)
	assert.Equal(t, 64.0, result.MatchScore)
	assert.Equal(t, []string{"Go experience"}, result.MatchedRequirements)
	assert.Equal(t, []string{"Kubernetes"}, result.MissingRequirements)
	assert.Equal(t, []string{}, result.StrengthAreas)
}

func TestAssessMatchMissingScoreFallsBack(t *testing.T) {
	gemini := &stubGemini{response: `{"recommendations": ["Try harder"]}`}
	assessor := NewAIAssessor(gemini, testPrompts())

	result := assessor.AssessMatch(context.Background(), "resume", "jd")
	require.NotNil(t, result)
	assert.Equal(t, 70.0, result.MatchScore)
	assert.Empty(t, result.Recommendations)
}

func TestPromptTruncation(t *testing.T) {
	gemini := &stubGemini{response: `{"score": 80}`}
	assessor := NewAIAssessor(gemini, NewPromptBuilder(100, 2000, 2000))

	long := strings.Repeat("a", 500)
	assessor.AssessATS(context.Background(), long)

	assert.Contains(t, gemini.lastPrompt, strings.Repeat("a", 100))
	assert.NotContains(t, gemini.lastPrompt, strings.Repeat("a", 101))
}

func TestMatchPromptContainsBothDocuments(t *testing.T) {
	gemini := &stubGemini{response: `{"match_score": 50}`}
	assessor := NewAIAssessor(gemini, testPrompts())

	assessor.AssessMatch(context.Background(), "RESUME-BODY", "JD-BODY")

	assert.Contains(t, gemini.lastPrompt, "RESUME-BODY")
	assert.Contains(t, gemini.lastPrompt, "JD-BODY")
	// The job description precedes the resume in the prompt.
	assert.Less(t,
		strings.Index(gemini.lastPrompt, "JD-BODY"),
		strings.Index(gemini.lastPrompt, "RESUME-BODY"))
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"score": 1}`, `{"score": 1}`},
		{"```json\n{\"score\": 1}\n```", `{"score": 1}`},
		{"```\n{\"score\": 1}\n```", `{"score": 1}`},
		{"  ```json\n{}\n```  ", "{}"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, stripCodeFence(tt.in))
	}
}
