package delivery

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mba-copilot-backend/internal/plan/dto"
	"mba-copilot-backend/internal/plan/usecase"
	"mba-copilot-backend/pkg/gemini"
)

// PlanHandler handles AI weekly-plan HTTP requests
type PlanHandler struct {
	planUsecase usecase.PlanUsecase
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planUsecase usecase.PlanUsecase) *PlanHandler {
	return &PlanHandler{
		planUsecase: planUsecase,
	}
}

// GeneratePlan resolves a task list snapshot into exactly one of: plan text,
// or a user-facing error message under the same "plan" key.
// POST /api/ai-plan
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var req dto.PlanRequest
	// A malformed body degrades to an empty task list; this is a
	// pass-through utility endpoint, not a validated form
	_ = c.ShouldBindJSON(&req)

	plan, err := h.planUsecase.GeneratePlan(c.Request.Context(), req.Tasks)
	if err != nil {
		status, message := planError(err)
		log.Printf("[Plan] generation failed: %v", err)
		c.JSON(status, dto.PlanResponse{Plan: message})
		return
	}

	c.JSON(http.StatusOK, dto.PlanResponse{Plan: plan})
}

// planError maps each failure mode to its status code and message. Upstream
// errors keep their own status; an empty generation is distinct from a
// transport failure.
func planError(err error) (int, string) {
	var statusErr *gemini.StatusError
	switch {
	case errors.Is(err, usecase.ErrMissingAPIKey):
		return http.StatusInternalServerError, "GEMINI_API_KEY is missing."
	case errors.As(err, &statusErr):
		message := statusErr.Message
		if message == "" {
			message = "Gemini request failed."
		}
		return statusErr.Code, "Gemini error: " + message
	case errors.Is(err, gemini.ErrEmptyResponse):
		return http.StatusBadGateway, "No plan generated: Gemini returned an empty response."
	default:
		return http.StatusInternalServerError, "Error generating plan."
	}
}
