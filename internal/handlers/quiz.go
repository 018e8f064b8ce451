package handlers

import (
	"errors"
	"net/http"

	"quiz-builder-backend/internal/serializer"
	"quiz-builder-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type CreateQuizRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=64" example:"Capitals of Europe"`
	Description string `json:"description" binding:"required" example:"Ten questions on European capitals"`
}

type QuizEnvelope struct {
	Message string                  `json:"message"`
	Quiz    serializer.QuizResponse `json:"quiz"`
}

type QuizListEnvelope struct {
	Message string                    `json:"message"`
	Quizzes []serializer.QuizResponse `json:"quizzes"`
}

type QuestionEnvelope struct {
	Message  string                      `json:"message"`
	Question serializer.QuestionResponse `json:"question"`
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateQuizRequest true "Quiz data"
// @Success      201 {object} QuizEnvelope
// @Failure      400 {object} MessageResponse
// @Router       /quiz/new [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid request"})
		return
	}

	quiz, err := h.quizService.Create(userID, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, QuizEnvelope{
		Message: "successfully created quiz",
		Quiz:    serializer.Quiz(quiz),
	})
}

// ListQuizzes godoc
// @Summary      List all quizzes
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} QuizListEnvelope
// @Router       /quiz/all [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuizListEnvelope{
		Message: "quizzes retrieved",
		Quizzes: serializer.Quizzes(quizzes),
	})
}

// ListMyQuizzes godoc
// @Summary      List the caller's quizzes
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} QuizListEnvelope
// @Router       /quiz/mine [get]
func (h *QuizHandler) ListMyQuizzes(c *gin.Context) {
	userID := c.GetString("user_id")

	quizzes, err := h.quizService.ListByAuthor(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuizListEnvelope{
		Message: "quizzes retrieved",
		Quizzes: serializer.Quizzes(quizzes),
	})
}

// GetQuiz godoc
// @Summary      Get a quiz with its questions
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Success      200 {object} QuizEnvelope
// @Failure      404 {object} MessageResponse
// @Router       /quiz/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.quizService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuizEnvelope{
		Message: "quiz found",
		Quiz:    serializer.Quiz(quiz),
	})
}

// DeleteQuiz godoc
// @Summary      Delete a quiz and everything under it
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Success      200 {object} MessageResponse
// @Failure      401 {object} MessageResponse
// @Failure      404 {object} MessageResponse
// @Router       /quiz/delete-quiz/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	userID := c.GetString("user_id")
	quizID := c.Param("id")

	if err := h.quizService.Delete(quizID, userID); err != nil {
		if errors.Is(err, services.ErrNotQuizOwner) {
			c.JSON(http.StatusUnauthorized, MessageResponse{Message: "you cannot delete someone else's quiz"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "quiz " + quizID + " deleted"})
}

// AddQuestion godoc
// @Summary      Add a question to a quiz
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Param        request body services.QuestionInput true "Question data"
// @Success      201 {object} QuizEnvelope
// @Failure      400 {object} MessageResponse
// @Failure      401 {object} MessageResponse
// @Failure      404 {object} MessageResponse
// @Router       /quiz/add-question/{id} [post]
func (h *QuizHandler) AddQuestion(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Prompt      string `json:"prompt" binding:"required"`
		OptionOne   string `json:"option_one" binding:"required"`
		OptionTwo   string `json:"option_two" binding:"required"`
		OptionThree string `json:"option_three" binding:"required"`
		Answer      string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid request"})
		return
	}

	quiz, err := h.quizService.AddQuestion(c.Param("id"), userID, services.QuestionInput{
		Prompt:      req.Prompt,
		OptionOne:   req.OptionOne,
		OptionTwo:   req.OptionTwo,
		OptionThree: req.OptionThree,
		Answer:      req.Answer,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotQuizOwner) {
			c.JSON(http.StatusUnauthorized, MessageResponse{Message: "you cannot add questions to someone else's quiz"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, QuizEnvelope{
		Message: "question added",
		Quiz:    serializer.Quiz(quiz),
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Question ID"
// @Success      200 {object} QuizEnvelope
// @Failure      401 {object} MessageResponse
// @Failure      404 {object} MessageResponse
// @Router       /quiz/delete-question/{id} [delete]
func (h *QuizHandler) DeleteQuestion(c *gin.Context) {
	userID := c.GetString("user_id")

	quiz, err := h.quizService.DeleteQuestion(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuizEnvelope{
		Message: "question deleted",
		Quiz:    serializer.Quiz(quiz),
	})
}

// UpdateQuiz godoc
// @Summary      Partially update a quiz
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Param        request body services.UpdateQuizInput true "Fields to change"
// @Success      200 {object} QuizEnvelope
// @Failure      401 {object} MessageResponse
// @Failure      404 {object} MessageResponse
// @Router       /quiz/update/quiz/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	userID := c.GetString("user_id")

	var input services.UpdateQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid request"})
		return
	}

	quiz, err := h.quizService.Update(c.Param("id"), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuizEnvelope{
		Message: "quiz updated",
		Quiz:    serializer.Quiz(quiz),
	})
}

// UpdateQuestion godoc
// @Summary      Partially update a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Question ID"
// @Param        request body services.UpdateQuestionInput true "Fields to change"
// @Success      200 {object} QuestionEnvelope
// @Failure      401 {object} MessageResponse
// @Failure      404 {object} MessageResponse
// @Router       /quiz/update/question/{id} [put]
func (h *QuizHandler) UpdateQuestion(c *gin.Context) {
	userID := c.GetString("user_id")

	var input services.UpdateQuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid request"})
		return
	}

	question, err := h.quizService.UpdateQuestion(c.Param("id"), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionEnvelope{
		Message:  "question updated",
		Question: serializer.Question(question),
	})
}
