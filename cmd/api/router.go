package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mba-copilot-backend/internal/auth/delivery"
	authUsecase "mba-copilot-backend/internal/auth/usecase"
	planDelivery "mba-copilot-backend/internal/plan/delivery"
	taskDelivery "mba-copilot-backend/internal/task/delivery"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, taskHandler *taskDelivery.TaskHandler, planHandler *planDelivery.PlanHandler) {
	authHandler := delivery.NewAuthHandler(authUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(delivery.AuthMiddleware(authUc))
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/stats", taskHandler.GetStats)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Calendar projection (protected)
		api.GET("/calendar", delivery.AuthMiddleware(authUc), taskHandler.GetCalendar)

		// AI weekly plan - pass-through utility endpoint, no auth enforced
		api.POST("/ai-plan", planHandler.GeneratePlan)
	}
}
