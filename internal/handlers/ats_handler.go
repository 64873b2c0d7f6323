package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hirewise/resume-analyzer/internal/analysis"
	"hirewise/resume-analyzer/internal/models"
	"hirewise/resume-analyzer/internal/repositories"
	"hirewise/resume-analyzer/internal/services"
)

// Callers must supply at least this much extracted text before scoring.
const minTextLength = 50

// Only an excerpt of the extracted text is stored on the resume row.
const storedTextLimit = 5000

type ATSHandler struct {
	scorer       *analysis.ATSScorer
	pdfParser    services.PDFParserService
	storage      services.StorageService
	resumeRepo   repositories.ResumeRepository
	analysisRepo repositories.AnalysisRepository
	indexer      services.Indexer
	maxFileSize  int64
}

func NewATSHandler(
	scorer *analysis.ATSScorer,
	pdfParser services.PDFParserService,
	storage services.StorageService,
	resumeRepo repositories.ResumeRepository,
	analysisRepo repositories.AnalysisRepository,
	indexer services.Indexer,
	maxFileSize int64,
) *ATSHandler {
	return &ATSHandler{
		scorer:       scorer,
		pdfParser:    pdfParser,
		storage:      storage,
		resumeRepo:   resumeRepo,
		analysisRepo: analysisRepo,
		indexer:      indexer,
		maxFileSize:  maxFileSize,
	}
}

// HandleAnalyze handles POST /api/v1/ats/analyze
func (h *ATSHandler) HandleAnalyze(c *fiber.Ctx) error {
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

	result, err := h.scorer.Score(c.UserContext(), resumeText)
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
		ATSScore:      &result.OverallScore,
		UploadedAt:    time.Now(),
	}
	if err := h.resumeRepo.Create(resume); err != nil {
		h.storage.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save resume record",
		})
	}

	record := &models.ATSAnalysis{
		ID:               uuid.New(),
		UserID:           userID,
		ResumeID:         resume.ID,
		OverallScore:     result.OverallScore,
		FormattingScore:  result.FormattingScore,
		KeywordsScore:    result.KeywordsScore,
		StructureScore:   result.StructureScore,
		ReadabilityScore: result.ReadabilityScore,
		Suggestions:      result.Suggestions,
		AIAnalysis:       marshalAnalysis(result.AIAnalysis),
		CreatedAt:        time.Now(),
	}
	if err := h.analysisRepo.CreateATS(record); err != nil {
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
		Data: models.ATSReport{
			ResumeID:     resume.ID.String(),
			OverallScore: result.OverallScore,
			Metrics: models.ATSMetrics{
				Formatting:  result.FormattingScore,
				Keywords:    result.KeywordsScore,
				Readability: result.ReadabilityScore,
				Structure:   result.StructureScore,
			},
			Suggestions:   result.Suggestions,
			FoundKeywords: result.FoundKeywords,
			SectionsFound: result.SectionsFound,
			AIAnalysis:    result.AIAnalysis,
		},
		Message: "ATS analysis complete",
	})
}

func excerpt(text string, limit int) string {
	if len(text) > limit {
		return text[:limit]
	}
	return text
}

func marshalAnalysis(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
