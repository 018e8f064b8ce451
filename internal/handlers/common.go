package handlers

import (
	"errors"
	"net/http"

	"quiz-builder-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// respondError maps service errors onto the statuses the API promises:
// missing rows are 404, ownership failures 401, uniqueness conflicts 400.
// Handlers override the ownership message per entity before falling back
// here.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrQuizNotFound),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrChoiceNotFound),
		errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, MessageResponse{Message: err.Error()})
	case errors.Is(err, services.ErrNotQuizOwner):
		c.JSON(http.StatusUnauthorized, MessageResponse{Message: err.Error()})
	case errors.Is(err, services.ErrTitleTaken),
		errors.Is(err, services.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: err.Error()})
	}
}
