package analysis

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
)

// Component weights of the deterministic ATS composite.
const (
	atsFormattingWeight  = 0.25
	atsKeywordsWeight    = 0.30
	atsStructureWeight   = 0.25
	atsReadabilityWeight = 0.20

	// Blend between the deterministic composite and the AI score.
	atsFormulaShare = 0.6
	atsAIShare      = 0.4

	// Keyword score saturates once this many action verbs are present.
	keywordTarget = 15

	maxSuggestions = 8
)

// ErrEmptyResume is returned when a scorer is handed empty input. All
// other failure modes degrade internally.
var ErrEmptyResume = errors.New("resume text is empty")

// ATSResult is the complete outcome of an ATS compatibility scoring run.
// All scores are in [0,100] and rounded to one decimal.
type ATSResult struct {
	OverallScore     float64        `json:"overall_score"`
	FormattingScore  float64        `json:"formatting_score"`
	KeywordsScore    float64        `json:"keywords_score"`
	StructureScore   float64        `json:"structure_score"`
	ReadabilityScore float64        `json:"readability_score"`
	Suggestions      []string       `json:"suggestions"`
	AIAnalysis       *ATSAIAnalysis `json:"ai_analysis,omitempty"`
	FoundKeywords    []string       `json:"found_keywords"`
	SectionsFound    []string       `json:"sections_found"`
}

// ATSScorer blends deterministic text signals with a generative-model
// assessment into a single ATS compatibility score.
type ATSScorer struct {
	assessor Assessor
}

func NewATSScorer(assessor Assessor) *ATSScorer {
	return &ATSScorer{assessor: assessor}
}

// Score computes the ATS assessment for a resume. The deterministic
// sub-signals are independent and run concurrently; the single external
// assessment call happens after they are joined. The only error is empty
// input.
func (s *ATSScorer) Score(ctx context.Context, resumeText string) (*ATSResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyResume
	}

	var (
		formatting FormattingResult
		keywords   []string
		sections   []string
		contact    ContactInfo
		wg         sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		formatting = AssessFormatting(resumeText)
	}()
	go func() {
		defer wg.Done()
		keywords = ExtractActionKeywords(resumeText)
	}()
	go func() {
		defer wg.Done()
		sections = DetectSections(resumeText)
		contact = DetectContactInfo(resumeText)
	}()
	wg.Wait()

	keywordsScore := float64(len(keywords)) / keywordTarget * 100
	if keywordsScore > 100 {
		keywordsScore = 100
	}

	required := []string{"experience", "education", "skills"}
	foundRequired := 0
	for _, sec := range required {
		if HasSection(sections, sec) {
			foundRequired++
		}
	}
	structureScore := float64(foundRequired) / float64(len(required)) * 100
	if contact.HasEmail {
		structureScore = math.Min(structureScore+10, 100)
	}
	if contact.HasPhone {
		structureScore = math.Min(structureScore+10, 100)
	}

	readabilityScore := readability(formatting.WordCount)

	overall := formatting.Score*atsFormattingWeight +
		keywordsScore*atsKeywordsWeight +
		structureScore*atsStructureWeight +
		readabilityScore*atsReadabilityWeight

	aiAnalysis := s.assessor.AssessATS(ctx, resumeText)
	if aiAnalysis != nil {
		overall = overall*atsFormulaShare + aiAnalysis.Score*atsAIShare
	}

	suggestions := buildATSSuggestions(formatting, keywords, sections, contact, aiAnalysis)

	return &ATSResult{
		OverallScore:     round1(overall),
		FormattingScore:  round1(formatting.Score),
		KeywordsScore:    round1(keywordsScore),
		StructureScore:   round1(structureScore),
		ReadabilityScore: round1(readabilityScore),
		Suggestions:      suggestions,
		AIAnalysis:       aiAnalysis,
		FoundKeywords:    keywords,
		SectionsFound:    sections,
	}, nil
}

// readability scores resume length: 300-800 words is ideal, shorter ramps
// down linearly, longer decays slowly with a floor of 60.
func readability(wordCount int) float64 {
	switch {
	case wordCount >= 300 && wordCount <= 800:
		return 100
	case wordCount < 300:
		return float64(wordCount) / 300 * 100
	default:
		return math.Max(100-float64(wordCount-800)/20, 60)
	}
}

func buildATSSuggestions(
	formatting FormattingResult,
	keywords []string,
	sections []string,
	contact ContactInfo,
	aiAnalysis *ATSAIAnalysis,
) []string {
	var suggestions []string

	for _, issue := range formatting.Issues {
		suggestions = appendUnique(suggestions, issue)
	}

	if !HasSection(sections, "experience") {
		suggestions = appendUnique(suggestions, "Add a Work Experience section with detailed descriptions")
	}
	if !HasSection(sections, "education") {
		suggestions = appendUnique(suggestions, "Include an Education section with degrees and institutions")
	}
	if !HasSection(sections, "skills") {
		suggestions = appendUnique(suggestions, "Add a Skills section highlighting technical and soft skills")
	}

	if !contact.HasEmail {
		suggestions = appendUnique(suggestions, "Include your email address in the header")
	}
	if !contact.HasPhone {
		suggestions = appendUnique(suggestions, "Add your phone number for easy contact")
	}

	if len(keywords) < 10 {
		suggestions = appendUnique(suggestions, "Use more action verbs (managed, developed, led, achieved)")
	}

	if formatting.WordCount < 300 {
		suggestions = appendUnique(suggestions, "Expand your resume with more details about achievements")
	} else if formatting.WordCount > 1000 {
		suggestions = appendUnique(suggestions, "Condense content to keep it within 2 pages")
	}

	if aiAnalysis != nil {
		for _, imp := range capStrings(aiAnalysis.Improvements, 3) {
			suggestions = appendUnique(suggestions, imp)
		}
	}

	return capStrings(suggestions, maxSuggestions)
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
