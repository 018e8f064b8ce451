package handlers

import (
	"net/http"

	"quiz-builder-backend/internal/serializer"
	"quiz-builder-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ScoreHandler struct {
	scoreService *services.ScoreService
}

func NewScoreHandler(scoreService *services.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// Score is optional and defaults to 0.
type CreateScoreRequest struct {
	UserID string `json:"user_id" binding:"required"`
	QuizID string `json:"quiz_id" binding:"required"`
	Score  int    `json:"score"`
}

type ScoreCreatedResponse struct {
	Message     string `json:"message"`
	QuizscoreID string `json:"quizscore_id"`
}

type ScoreListEnvelope struct {
	Message    string                     `json:"message"`
	Quizscores []serializer.ScoreResponse `json:"quizscores"`
}

// CreateScore godoc
// @Summary      Record a quiz score
// @Tags         quizscores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateScoreRequest true "Score data"
// @Success      201 {object} ScoreCreatedResponse
// @Failure      400 {object} MessageResponse
// @Router       /quizscore/create [post]
func (h *ScoreHandler) CreateScore(c *gin.Context) {
	var req CreateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "user_id, quiz_id, and score are required"})
		return
	}

	record, err := h.scoreService.Create(req.UserID, req.QuizID, req.Score)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ScoreCreatedResponse{
		Message:     "quiz score created",
		QuizscoreID: record.ID,
	})
}

// ListMyScores godoc
// @Summary      List the caller's recorded scores
// @Tags         quizscores
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ScoreListEnvelope
// @Router       /quizscore/mine [get]
func (h *ScoreHandler) ListMyScores(c *gin.Context) {
	userID := c.GetString("user_id")

	scores, err := h.scoreService.ListByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ScoreListEnvelope{
		Message:    "quizscores retrieved",
		Quizscores: serializer.Scores(scores),
	})
}
