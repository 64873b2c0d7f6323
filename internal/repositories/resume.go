package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"hirewise/resume-analyzer/internal/models"
)

type ResumeRepository interface {
	Create(resume *models.Resume) error
	ListByUser(userID string) ([]models.Resume, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(resume *models.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

// ListByUser implements ResumeRepository.
func (r *resumeRepository) ListByUser(userID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return resumes, nil
}
