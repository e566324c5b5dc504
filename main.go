package main

import (
	"log"

	api "mba-copilot-backend/cmd/api"
	authdomain "mba-copilot-backend/internal/auth/domain"
	authRepo "mba-copilot-backend/internal/auth/repository"
	"mba-copilot-backend/internal/auth/scheduler"
	authUsecase "mba-copilot-backend/internal/auth/usecase"
	taskdomain "mba-copilot-backend/internal/task/domain"
	taskRepo "mba-copilot-backend/internal/task/repository"
	taskUsecase "mba-copilot-backend/internal/task/usecase"
	"mba-copilot-backend/pkg/config"
	"mba-copilot-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &taskdomain.Task{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)

	// Sweep expired sessions in the background
	janitor := scheduler.NewSessionJanitor(userRepository)
	janitor.Start()
	defer janitor.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
