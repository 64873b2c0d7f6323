package models

import (
	"time"

	"github.com/google/uuid"
)

type ATSAnalysis struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID           string    `gorm:"type:text;index" json:"user_id"`
	ResumeID         uuid.UUID `gorm:"type:uuid;not null" json:"resume_id"`
	OverallScore     float64   `gorm:"type:decimal(4,1)" json:"overall_score"`
	FormattingScore  float64   `gorm:"type:decimal(4,1)" json:"formatting_score"`
	KeywordsScore    float64   `gorm:"type:decimal(4,1)" json:"keywords_score"`
	StructureScore   float64   `gorm:"type:decimal(4,1)" json:"structure_score"`
	ReadabilityScore float64   `gorm:"type:decimal(4,1)" json:"readability_score"`
	Suggestions      []string  `gorm:"serializer:json" json:"suggestions"`
	AIAnalysis       string    `gorm:"type:text" json:"-"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`

	Resume Resume `gorm:"foreignKey:ResumeID" json:"-"`
}

func (ATSAnalysis) TableName() string {
	return "ats_analyses"
}

type MatchAnalysis struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          string    `gorm:"type:text;index" json:"user_id"`
	ResumeID        uuid.UUID `gorm:"type:uuid;not null" json:"resume_id"`
	JobTitle        string    `gorm:"type:text" json:"job_title"`
	JobDescription  string    `gorm:"type:text" json:"-"`
	MatchScore      float64   `gorm:"type:decimal(4,1)" json:"match_score"`
	TechnicalSkills float64   `gorm:"type:decimal(4,1)" json:"technical_skills"`
	ExperienceScore float64   `gorm:"type:decimal(4,1)" json:"experience_score"`
	EducationScore  float64   `gorm:"type:decimal(4,1)" json:"education_score"`
	KeywordsScore   float64   `gorm:"type:decimal(4,1)" json:"keywords_score"`
	MatchedSkills   []string  `gorm:"serializer:json" json:"matched_skills"`
	MissingSkills   []string  `gorm:"serializer:json" json:"missing_skills"`
	Recommendations []string  `gorm:"serializer:json" json:"recommendations"`
	AIAnalysis      string    `gorm:"type:text" json:"-"`
	CreatedAt       time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`

	Resume Resume `gorm:"foreignKey:ResumeID" json:"-"`
}

func (MatchAnalysis) TableName() string {
	return "match_analyses"
}
