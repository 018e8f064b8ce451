package main

import (
	"log"

	"quiz-builder-backend/internal/config"
	"quiz-builder-backend/internal/database"
	"quiz-builder-backend/internal/routes"
	"quiz-builder-backend/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	quizService := services.NewQuizService(db)
	choiceService := services.NewChoiceService(db)
	scoreService := services.NewScoreService(db)

	r := routes.Setup(authService, quizService, choiceService, scoreService)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
