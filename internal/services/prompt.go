package services

import "fmt"

// PromptBuilder assembles the prompts sent to the generative model. The
// truncation limits exist to stay inside the service's input-size limits
// and are part of the assessment contract.
type PromptBuilder struct {
	atsResumeLimit int
	matchResume    int
	matchJD        int
}

func NewPromptBuilder(atsResumeLimit, matchResumeLimit, matchJDLimit int) *PromptBuilder {
	return &PromptBuilder{
		atsResumeLimit: atsResumeLimit,
		matchResume:    matchResumeLimit,
		matchJD:        matchJDLimit,
	}
}

// BuildATSPrompt creates the prompt for ATS compatibility assessment.
func (pb *PromptBuilder) BuildATSPrompt(resumeText string) string {
	return fmt.Sprintf(`Analyze this resume for ATS (Applicant Tracking System) compatibility.
Provide a detailed analysis in JSON format with:
1. Overall ATS compatibility score (0-100)
2. Specific formatting issues
3. Missing critical sections
4. Keyword optimization suggestions
5. Specific improvements needed

Resume:
%s

Return ONLY valid JSON in this exact format:
{
    "score": 85,
    "formatting_issues": ["list of issues"],
    "missing_sections": ["list of missing sections"],
    "keyword_suggestions": ["list of keywords to add"],
    "improvements": ["list of specific improvements"]
}`, truncate(resumeText, pb.atsResumeLimit))
}

// BuildMatchPrompt creates the prompt for resume-to-job-description match
// assessment.
func (pb *PromptBuilder) BuildMatchPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Compare this resume with the job description and provide a detailed match analysis.

Job Description:
%s

Resume:
%s

Return ONLY valid JSON in this exact format:
{
    "match_score": 75,
    "matched_requirements": ["list of matching qualifications"],
    "missing_requirements": ["list of gaps"],
    "recommendations": ["specific actions to improve match"],
    "strength_areas": ["areas where candidate excels"],
    "improvement_areas": ["areas needing improvement"]
}`, truncate(jobDescription, pb.matchJD), truncate(resumeText, pb.matchResume))
}

func truncate(s string, limit int) string {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
