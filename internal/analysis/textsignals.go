package analysis

import (
	"regexp"
	"strings"
)

// sectionOrder fixes the reporting order of detected sections so repeated
// runs over the same resume always produce the same output.
var sectionOrder = []string{
	"contact", "summary", "experience", "education",
	"skills", "certifications", "projects",
}

var sectionPatterns = map[string]*regexp.Regexp{
	"contact":        regexp.MustCompile(`(email|phone|mobile|address)`),
	"summary":        regexp.MustCompile(`(summary|objective|profile)`),
	"experience":     regexp.MustCompile(`(experience|employment|work history)`),
	"education":      regexp.MustCompile(`(education|academic|qualification)`),
	"skills":         regexp.MustCompile(`(skills|technical skills|competencies)`),
	"certifications": regexp.MustCompile(`(certification|certificate|licenses)`),
	"projects":       regexp.MustCompile(`(projects|portfolio)`),
}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\b\d{10}\b|\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`)
	// Month abbreviations are matched case-sensitively, the same way the
	// heuristic has always behaved.
	datePattern = regexp.MustCompile(`\b(19|20)\d{2}\b|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`)
)

// actionKeywords is the action-verb vocabulary scanned for in resumes.
// Order matters: found keywords are reported in this order.
var actionKeywords = []string{
	"managed", "developed", "led", "created", "improved", "achieved",
	"analyzed", "designed", "implemented", "coordinated", "executed",
	"delivered", "optimized", "increased", "decreased", "generated",
	"built", "established", "launched", "streamlined", "collaborated",
}

const bulletGlyphs = "•-*○▪"

// ContactInfo reports which contact fields were detected in the resume.
type ContactInfo struct {
	HasEmail bool `json:"has_email"`
	HasPhone bool `json:"has_phone"`
}

// FormattingResult holds the formatting quality assessment of a resume.
type FormattingResult struct {
	Score      float64  `json:"score"`
	HasBullets bool     `json:"has_bullets"`
	WordCount  int      `json:"word_count"`
	Issues     []string `json:"issues"`
}

// DetectSections returns the resume sections whose marker pattern appears
// anywhere in the text, in a fixed order.
func DetectSections(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, name := range sectionOrder {
		if sectionPatterns[name].MatchString(lower) {
			found = append(found, name)
		}
	}
	return found
}

// HasSection reports whether a section name is present in a DetectSections
// result.
func HasSection(sections []string, name string) bool {
	for _, s := range sections {
		if s == name {
			return true
		}
	}
	return false
}

// DetectContactInfo checks the resume for an email address and a phone
// number (bare 10 digits or a 3-3-4 grouping).
func DetectContactInfo(text string) ContactInfo {
	return ContactInfo{
		HasEmail: emailPattern.MatchString(text),
		HasPhone: phonePattern.MatchString(text),
	}
}

// ExtractActionKeywords returns the action verbs present in the text, in
// vocabulary order.
func ExtractActionKeywords(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, kw := range actionKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// AssessFormatting scores formatting quality starting from 100 and
// deducting for missing bullets, bad length and missing dates. Each
// deduction records a human-readable issue.
func AssessFormatting(text string) FormattingResult {
	score := 100.0
	var issues []string

	hasBullets := strings.ContainsAny(text, bulletGlyphs)
	if !hasBullets {
		issues = append(issues, "No bullet points found. Use bullets for listing achievements.")
		score -= 10
	}

	wordCount := len(strings.Fields(text))
	if wordCount < 300 {
		issues = append(issues, "Resume is too short. Aim for 300-800 words.")
		score -= 15
	} else if wordCount > 1000 {
		issues = append(issues, "Resume is too long. Keep it concise (max 2 pages).")
		score -= 10
	}

	if !datePattern.MatchString(text) {
		issues = append(issues, "No dates found. Include dates for experience and education.")
		score -= 10
	}

	if score < 0 {
		score = 0
	}

	return FormattingResult{
		Score:      score,
		HasBullets: hasBullets,
		WordCount:  wordCount,
		Issues:     issues,
	}
}
