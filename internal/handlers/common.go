package handlers

import (
	"net/http"
	"strconv"

	"quiz-bank-backend/internal/middleware"
	"quiz-bank-backend/internal/models"
	"quiz-bank-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Question = models.Question
type Quiz = models.Quiz
type QuestionView = models.QuestionView
type Response = models.Response

// statusFor maps a service error to the HTTP status category it belongs to.
func statusFor(err error) int {
	switch {
	case services.IsNotFound(err):
		return http.StatusNotFound
	case services.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err for the client. Storage failures are logged and
// replaced by publicMsg so driver details never reach the caller.
func respondError(c *gin.Context, err error, publicMsg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		middleware.Logger(c).WithError(err).Error(publicMsg)
		_ = c.Error(err)
		c.JSON(status, ErrorResponse{Error: publicMsg})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func parseID(c *gin.Context, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + what + " id"})
		return 0, false
	}
	return uint(id), true
}
