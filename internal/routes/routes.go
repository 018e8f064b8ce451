package routes

import (
	"quiz-builder-backend/internal/handlers"
	"quiz-builder-backend/internal/middleware"
	"quiz-builder-backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup wires every handler onto a fresh engine. Kept separate from main so
// tests can stand up the full route table against their own database.
func Setup(
	authService *services.AuthService,
	quizService *services.QuizService,
	choiceService *services.ChoiceService,
	scoreService *services.ScoreService,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)
	choiceHandler := handlers.NewChoiceHandler(choiceService)
	scoreHandler := handlers.NewScoreHandler(scoreService)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.JWTAuth(authService), authHandler.Me)
	}

	quiz := r.Group("/quiz")
	quiz.Use(middleware.JWTAuth(authService))
	{
		quiz.POST("/new", quizHandler.CreateQuiz)
		quiz.GET("/all", quizHandler.ListQuizzes)
		quiz.GET("/mine", quizHandler.ListMyQuizzes)
		quiz.GET("/:id", quizHandler.GetQuiz)
		quiz.DELETE("/delete-quiz/:id", quizHandler.DeleteQuiz)
		quiz.POST("/add-question/:id", quizHandler.AddQuestion)
		quiz.DELETE("/delete-question/:id", quizHandler.DeleteQuestion)
		quiz.PUT("/update/quiz/:id", quizHandler.UpdateQuiz)
		quiz.PUT("/update/question/:id", quizHandler.UpdateQuestion)
	}

	choice := r.Group("/choice")
	choice.Use(middleware.JWTAuth(authService))
	{
		choice.POST("/new", choiceHandler.CreateChoice)
		choice.GET("/:id", choiceHandler.GetChoice)
		choice.PUT("/update/:id", choiceHandler.UpdateChoice)
		choice.DELETE("/delete/:id", choiceHandler.DeleteChoice)
	}

	quizscore := r.Group("/quizscore")
	quizscore.Use(middleware.JWTAuth(authService))
	{
		quizscore.POST("/create", scoreHandler.CreateScore)
		quizscore.GET("/mine", scoreHandler.ListMyScores)
	}

	return r
}
