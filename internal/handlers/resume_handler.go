package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"hirewise/resume-analyzer/internal/models"
	"hirewise/resume-analyzer/internal/repositories"
	"hirewise/resume-analyzer/internal/services"
)

type ResumeHandler struct {
	resumeRepo  repositories.ResumeRepository
	gemini      services.GeminiService
	vectorStore services.VectorStore
}

func NewResumeHandler(
	resumeRepo repositories.ResumeRepository,
	gemini services.GeminiService,
	vectorStore services.VectorStore,
) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo:  resumeRepo,
		gemini:      gemini,
		vectorStore: vectorStore,
	}
}

// HandleList handles GET /api/v1/resumes/:user_id
func (h *ResumeHandler) HandleList(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id is required",
		})
	}

	resumes, err := h.resumeRepo.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch resumes",
		})
	}

	summaries := make([]models.ResumeSummary, 0, len(resumes))
	for _, r := range resumes {
		summaries = append(summaries, models.ResumeSummary{
			ResumeID:   r.ID.String(),
			FileName:   r.FileName,
			UploadedAt: r.UploadedAt.Format(time.RFC3339),
			ATSScore:   r.ATSScore,
		})
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Data:    summaries,
		Message: "Resumes fetched",
	})
}

// HandleSearch handles POST /api/v1/resumes/search
func (h *ResumeHandler) HandleSearch(c *fiber.Ctx) error {
	if h.gemini == nil || h.vectorStore == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Semantic search is not configured",
		})
	}

	var req models.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "query is required",
		})
	}
	if req.Limit <= 0 {
		req.Limit = 5
	}

	embedding, err := h.gemini.GenerateEmbedding(c.UserContext(), req.Query)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to embed search query",
		})
	}

	hits, err := h.vectorStore.SearchResumes(c.UserContext(), embedding, req.UserID, req.Limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Search failed",
		})
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Data:    models.SearchResponse{Results: hits},
		Message: "Search complete",
	})
}
