package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"hirewise/resume-analyzer/internal/models"
)

// AnalysisRepository persists finished scoring results. The scoring engine
// only ever writes here; nothing in the pipeline reads results back.
type AnalysisRepository interface {
	CreateATS(result *models.ATSAnalysis) error
	CreateMatch(result *models.MatchAnalysis) error
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// CreateATS implements AnalysisRepository.
func (r *analysisRepository) CreateATS(result *models.ATSAnalysis) error {
	if err := r.db.Create(result).Error; err != nil {
		return fmt.Errorf("failed to create ats analysis: %w", err)
	}
	return nil
}

// CreateMatch implements AnalysisRepository.
func (r *analysisRepository) CreateMatch(result *models.MatchAnalysis) error {
	if err := r.db.Create(result).Error; err != nil {
		return fmt.Errorf("failed to create match analysis: %w", err)
	}
	return nil
}
