package models

import "hirewise/resume-analyzer/internal/services"

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

type ATSMetrics struct {
	Formatting  float64 `json:"formatting"`
	Keywords    float64 `json:"keywords"`
	Readability float64 `json:"readability"`
	Structure   float64 `json:"structure"`
}

type ATSReport struct {
	ResumeID      string      `json:"resumeId"`
	OverallScore  float64     `json:"overallScore"`
	Metrics       ATSMetrics  `json:"metrics"`
	Suggestions   []string    `json:"suggestions"`
	FoundKeywords []string    `json:"foundKeywords"`
	SectionsFound []string    `json:"sectionsFound"`
	AIAnalysis    interface{} `json:"aiAnalysis,omitempty"`
}

type MatchBreakdown struct {
	TechnicalSkills float64 `json:"technicalSkills"`
	Experience      float64 `json:"experience"`
	Education       float64 `json:"education"`
	Keywords        float64 `json:"keywords"`
}

type MatchReport struct {
	ResumeID        string         `json:"resumeId"`
	MatchScore      float64        `json:"matchScore"`
	Analysis        MatchBreakdown `json:"analysis"`
	MatchedSkills   []string       `json:"matchedSkills"`
	MissingSkills   []string       `json:"missingSkills"`
	Recommendations []string       `json:"recommendations"`
	AIAnalysis      interface{}    `json:"aiAnalysis,omitempty"`
}

type ResumeSummary struct {
	ResumeID   string   `json:"resumeId"`
	FileName   string   `json:"fileName"`
	UploadedAt string   `json:"uploadedAt"`
	ATSScore   *float64 `json:"atsScore,omitempty"`
}

type SearchRequest struct {
	Query  string `json:"query"`
	UserID string `json:"user_id"`
	Limit  int    `json:"limit"`
}

type SearchResponse struct {
	Results []services.ResumeHit `json:"results"`
}
