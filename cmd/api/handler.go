package api

import (
	"log"

	"github.com/gin-gonic/gin"

	authUsecase "mba-copilot-backend/internal/auth/usecase"
	planDelivery "mba-copilot-backend/internal/plan/delivery"
	planUsecasePkg "mba-copilot-backend/internal/plan/usecase"
	taskDelivery "mba-copilot-backend/internal/task/delivery"
	taskUsecasePkg "mba-copilot-backend/internal/task/usecase"
	"mba-copilot-backend/pkg/config"
	"mba-copilot-backend/pkg/gemini"
)

type Handler struct {
	router *gin.Engine
}

// NewHandler wires usecases into HTTP handlers and builds the router
func NewHandler(authUc authUsecase.AuthUsecase, taskUc taskUsecasePkg.TaskUsecase, cfg *config.Config) *Handler {
	if cfg.GeminiAPIKey == "" {
		log.Println("[API] Warning: GEMINI_API_KEY not set, plan generation will report the missing credential")
	}
	geminiService := gemini.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	planUc := planUsecasePkg.NewPlanUsecase(geminiService, cfg.GeminiAPIKey)

	taskHandler := taskDelivery.NewTaskHandler(taskUc)
	planHandler := planDelivery.NewPlanHandler(planUc)

	router := gin.Default()
	SetupRoutes(router, authUc, taskHandler, planHandler)

	return &Handler{router: router}
}

// Start runs the HTTP server on the given address
func (h *Handler) Start(addr string) error {
	return h.router.Run(addr)
}
