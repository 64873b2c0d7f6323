package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hirewise/resume-analyzer/internal/analysis"
	"hirewise/resume-analyzer/internal/models"
	"hirewise/resume-analyzer/internal/repositories"
	"hirewise/resume-analyzer/internal/services"
)

type MatchHandler struct {
	matcher      *analysis.JDMatcher
	pdfParser    services.PDFParserService
	storage      services.StorageService
	resumeRepo   repositories.ResumeRepository
	analysisRepo repositories.AnalysisRepository
	indexer      services.Indexer
	maxFileSize  int64
}

func NewMatchHandler(
	matcher *analysis.JDMatcher,
	pdfParser services.PDFParserService,
	storage services.StorageService,
	resumeRepo repositories.ResumeRepository,
	analysisRepo repositories.AnalysisRepository,
	indexer services.Indexer,
	maxFileSize int64,
) *MatchHandler {
	return &MatchHandler{
		matcher:      matcher,
		pdfParser:    pdfParser,
		storage:      storage,
		resumeRepo:   resumeRepo,
		analysisRepo: analysisRepo,
		indexer:      indexer,
		maxFileSize:  maxFileSize,
	}
}

// HandleAnalyze handles POST /api/v1/match/analyze
func (h *MatchHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	jobDescription := c.FormValue("job_description")
	if len(jobDescription) < minTextLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description is too short",
		})
	}

	jobTitle := c.FormValue("job_title")
	if jobTitle == "" {
		jobTitle = "Position"
	}

	filename, filePath, err := h.storage.SaveResume(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	resumeText, err := h.pdfParser.ExtractText(filePath)
	if err != nil || len(resumeText) < minTextLength {
		h.storage.DeleteFile(filename)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not extract text from PDF",
		})
	}

	result, err := h.matcher.Score(c.UserContext(), resumeText, jobDescription)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	userID := c.FormValue("user_id")

	resume := &models.Resume{
		ID:            uuid.New(),
		UserID:        userID,
		FileName:      file.Filename,
		FilePath:      filePath,
		ExtractedText: excerpt(resumeText, storedTextLimit),
		UploadedAt:    time.Now(),
	}
	if err := h.resumeRepo.Create(resume); err != nil {
		h.storage.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save resume record",
		})
	}

	record := &models.MatchAnalysis{
		ID:              uuid.New(),
		UserID:          userID,
		ResumeID:        resume.ID,
		JobTitle:        jobTitle,
		JobDescription:  jobDescription,
		MatchScore:      result.MatchScore,
		TechnicalSkills: result.TechnicalSkills,
		ExperienceScore: result.ExperienceScore,
		EducationScore:  result.EducationScore,
		KeywordsScore:   result.KeywordsScore,
		MatchedSkills:   result.MatchedSkills,
		MissingSkills:   result.MissingSkills,
		Recommendations: result.Recommendations,
		AIAnalysis:      marshalAnalysis(result.AIAnalysis),
		CreatedAt:       time.Now(),
	}
	if err := h.analysisRepo.CreateMatch(record); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save analysis result",
		})
	}

	if h.indexer != nil {
		h.indexer.Enqueue(services.IndexJob{
			ResumeID: resume.ID,
			UserID:   userID,
			Text:     resumeText,
		})
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Data: models.MatchReport{
			ResumeID:   resume.ID.String(),
			MatchScore: result.MatchScore,
			Analysis: models.MatchBreakdown{
				TechnicalSkills: result.TechnicalSkills,
				Experience:      result.ExperienceScore,
				Education:       result.EducationScore,
				Keywords:        result.KeywordsScore,
			},
			MatchedSkills:   result.MatchedSkills,
			MissingSkills:   result.MissingSkills,
			Recommendations: result.Recommendations,
			AIAnalysis:      result.AIAnalysis,
		},
		Message: "Job match analysis complete",
	})
}
