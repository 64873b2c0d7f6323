package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// skillVocabulary is the fixed technical skill list matched against both
// documents. Order matters: matched and missing skills are reported in
// this order so results are reproducible.
var skillVocabulary = []string{
	"python", "java", "javascript", "react", "angular", "vue", "nodejs",
	"typescript", "c++", "c#", "ruby", "go", "rust", "swift", "kotlin",
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins",
	"sql", "mongodb", "postgresql", "mysql", "redis",
	"git", "github", "gitlab", "jira", "agile", "scrum",
	"machine learning", "data analysis", "deep learning", "tensorflow",
	"pytorch", "pandas", "numpy", "scikit-learn",
	"rest api", "graphql", "microservices", "ci/cd",
}

const (
	// Skill score when the job description names no known skills.
	defaultSkillScore = 75.0

	// Experience score when the job description states no year requirement.
	noRequirementExperienceScore = 80.0

	maxReportedSkills = 10
)

var yearsPattern = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)`)

// SkillMatch is the outcome of matching the skill vocabulary against a
// resume and a job description.
type SkillMatch struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// MatchSkills scans the skill vocabulary against both documents. The score
// is the fraction of JD skills the resume also mentions; matched and
// missing skill lists are capped and keep vocabulary order.
func MatchSkills(resume, jd string) SkillMatch {
	resumeLower := strings.ToLower(resume)
	jdLower := strings.ToLower(jd)

	var jdSkills, matched, missing []string
	for _, skill := range skillVocabulary {
		if !strings.Contains(jdLower, skill) {
			continue
		}
		jdSkills = append(jdSkills, skill)
		if strings.Contains(resumeLower, skill) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	score := defaultSkillScore
	if len(jdSkills) > 0 {
		score = float64(len(matched)) / float64(len(jdSkills)) * 100
	}

	return SkillMatch{
		Score:   score,
		Matched: capStrings(matched, maxReportedSkills),
		Missing: capStrings(missing, maxReportedSkills),
	}
}

// MatchExperience compares the first year requirement stated in the job
// description with the largest year count claimed by the resume. A JD with
// no explicit requirement scores neutral-positive; a shortfall is floored
// at 50 no matter how large the gap.
func MatchExperience(resume, jd string) float64 {
	jdYears := extractYears(jd)
	if len(jdYears) == 0 {
		return noRequirementExperienceScore
	}

	required := jdYears[0]
	candidate := 0
	for _, y := range extractYears(resume) {
		if y > candidate {
			candidate = y
		}
	}

	switch {
	case candidate >= required:
		return 100
	case float64(candidate) >= 0.75*float64(required):
		return 85
	default:
		score := float64(candidate) / float64(required) * 100
		if score < 50 {
			return 50
		}
		return score
	}
}

func extractYears(text string) []int {
	var years []int
	for _, m := range yearsPattern.FindAllStringSubmatch(strings.ToLower(text), -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			years = append(years, n)
		}
	}
	return years
}

func capStrings(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
