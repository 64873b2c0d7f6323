package models

import (
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        string    `gorm:"type:text;index" json:"user_id"`
	FileName      string    `gorm:"type:text" json:"file_name"`
	FilePath      string    `gorm:"type:text" json:"file_path"`
	ExtractedText string    `gorm:"type:text" json:"-"`
	ATSScore      *float64  `gorm:"type:decimal(4,1)" json:"ats_score,omitempty"`
	UploadedAt    time.Time `gorm:"type:timestamp;default:now()" json:"uploaded_at"`
}

func (Resume) TableName() string {
	return "resumes"
}
