package handlers

import (
	"net/http"

	"quiz-builder-backend/internal/serializer"
	"quiz-builder-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ChoiceHandler struct {
	choiceService *services.ChoiceService
}

func NewChoiceHandler(choiceService *services.ChoiceService) *ChoiceHandler {
	return &ChoiceHandler{choiceService: choiceService}
}

type CreateChoiceRequest struct {
	Text       string `json:"text" binding:"required" example:"Paris"`
	IsCorrect  *bool  `json:"is_correct" binding:"required" example:"true"`
	QuestionID string `json:"question_id" binding:"required"`
}

type ChoiceEnvelope struct {
	Message string                    `json:"message"`
	Choice  serializer.ChoiceResponse `json:"choice"`
}

// CreateChoice godoc
// @Summary      Create a choice for a question
// @Tags         choices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateChoiceRequest true "Choice data"
// @Success      201 {object} ChoiceEnvelope
// @Failure      400 {object} MessageResponse
// @Failure      404 {object} MessageResponse
// @Router       /choice/new [post]
func (h *ChoiceHandler) CreateChoice(c *gin.Context) {
	var req CreateChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid request"})
		return
	}

	choice, err := h.choiceService.Create(req.Text, *req.IsCorrect, req.QuestionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ChoiceEnvelope{
		Message: "choice created",
		Choice:  serializer.Choice(choice),
	})
}

// GetChoice godoc
// @Summary      Get a choice
// @Tags         choices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Choice ID"
// @Success      200 {object} ChoiceEnvelope
// @Failure      404 {object} MessageResponse
// @Router       /choice/{id} [get]
func (h *ChoiceHandler) GetChoice(c *gin.Context) {
	choice, err := h.choiceService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChoiceEnvelope{
		Message: "choice found",
		Choice:  serializer.Choice(choice),
	})
}

// UpdateChoice godoc
// @Summary      Partially update a choice
// @Tags         choices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Choice ID"
// @Param        request body services.UpdateChoiceInput true "Fields to change"
// @Success      200 {object} ChoiceEnvelope
// @Failure      404 {object} MessageResponse
// @Router       /choice/update/{id} [put]
func (h *ChoiceHandler) UpdateChoice(c *gin.Context) {
	var input services.UpdateChoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid request"})
		return
	}

	choice, err := h.choiceService.Update(c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChoiceEnvelope{
		Message: "choice updated",
		Choice:  serializer.Choice(choice),
	})
}

// DeleteChoice godoc
// @Summary      Delete a choice
// @Tags         choices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Choice ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} MessageResponse
// @Router       /choice/delete/{id} [delete]
func (h *ChoiceHandler) DeleteChoice(c *gin.Context) {
	choiceID := c.Param("id")

	if err := h.choiceService.Delete(choiceID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "choice " + choiceID + " deleted"})
}
