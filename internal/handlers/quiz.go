package handlers

import (
	"fmt"
	"net/http"

	"quiz-bank-backend/internal/middleware"
	"quiz-bank-backend/internal/models"
	"quiz-bank-backend/internal/services"
	"quiz-bank-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type QuizHandler struct {
	quizService *services.QuizService
	hub         *ws.Hub
}

func NewQuizHandler(quizService *services.QuizService, hub *ws.Hub) *QuizHandler {
	return &QuizHandler{quizService: quizService, hub: hub}
}

type CreateQuizRequest struct {
	Category string `form:"category" binding:"required" example:"Java"`
	NumQ     int    `form:"numQ" binding:"required,min=1" example:"10"`
	Title    string `form:"title" binding:"required,max=255" example:"Java Expert Challenge"`
}

type CreateQuizResponse struct {
	Message       string `json:"message" example:"quiz created successfully"`
	ID            uint   `json:"id" example:"1"`
	QuestionCount int    `json:"question_count" example:"10"`
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Samples up to numQ random questions from category. A smaller category yields a shorter quiz.
// @Tags         quizzes
// @Produce      json
// @Param        category query string true "Category"
// @Param        numQ query int true "Number of questions"
// @Param        title query string true "Quiz title"
// @Success      201 {object} CreateQuizResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /admin/quiz/create [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req CreateQuizRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.quizService.CreateQuiz(c.Request.Context(), req.Category, req.NumQ, req.Title)
	if err != nil {
		respondError(c, err, "failed to create quiz")
		return
	}

	h.hub.Broadcast(ws.TopicQuizzes, ws.WSMessage{
		Type: "quiz.created",
		Data: gin.H{"id": quiz.ID, "title": quiz.Title, "question_count": len(quiz.Questions)},
	})
	c.JSON(http.StatusCreated, CreateQuizResponse{
		Message:       "quiz created successfully",
		ID:            quiz.ID,
		QuestionCount: len(quiz.Questions),
	})
}

// ListQuizzes godoc
// @Summary      List all quizzes
// @Tags         quizzes
// @Produce      json
// @Success      200 {array} Quiz
// @Failure      500 {array} Quiz
// @Router       /user/quiz/all [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes(c.Request.Context())
	if err != nil {
		middleware.Logger(c).WithError(err).Error("failed to list quizzes")
		c.JSON(http.StatusInternalServerError, quizzes)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary      Get a quiz with answers
// @Tags         quizzes
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Success      200 {object} Quiz
// @Failure      404 {object} ErrorResponse
// @Router       /admin/quiz/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID, ok := parseID(c, "quiz")
	if !ok {
		return
	}

	quiz, err := h.quizService.GetQuiz(c.Request.Context(), quizID)
	if err != nil {
		respondError(c, err, "failed to get quiz")
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// GetQuizQuestions godoc
// @Summary      Take a quiz
// @Description  Quiz questions in order, without right answers
// @Tags         quizzes
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Success      200 {array} QuestionView
// @Failure      404 {object} ErrorResponse
// @Router       /user/quiz/get/{id} [get]
func (h *QuizHandler) GetQuizQuestions(c *gin.Context) {
	quizID, ok := parseID(c, "quiz")
	if !ok {
		return
	}

	views, err := h.quizService.GetQuizQuestions(c.Request.Context(), quizID)
	if err != nil {
		respondError(c, err, "failed to get quiz questions")
		return
	}
	c.JSON(http.StatusOK, views)
}

// SubmitQuiz godoc
// @Summary      Submit answers
// @Description  The i-th response is graded against the i-th question; responds with the number of right answers
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Param        request body []Response true "Responses in question order"
// @Success      200 {integer} int
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /user/quiz/submit/{id} [post]
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	quizID, ok := parseID(c, "quiz")
	if !ok {
		return
	}

	var responses []models.Response
	if err := c.ShouldBindJSON(&responses); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.quizService.SubmitQuiz(c.Request.Context(), quizID, responses)
	if err != nil {
		respondError(c, err, "failed to score quiz")
		return
	}

	if result.Mismatched() {
		middleware.Logger(c).WithFields(logrus.Fields{
			"quiz_id":   quizID,
			"questions": result.QuestionCount,
			"responses": result.ResponseCount,
		}).Warn("response count does not match question count")
	}

	h.hub.Broadcast(ws.TopicQuizzes, ws.WSMessage{
		Type: "quiz.submitted",
		Data: gin.H{"id": quizID, "score": result.Score, "question_count": result.QuestionCount},
	})
	c.JSON(http.StatusOK, result.Score)
}

// DeleteQuiz godoc
// @Summary      Delete a quiz
// @Tags         quizzes
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /admin/quiz/delete/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	quizID, ok := parseID(c, "quiz")
	if !ok {
		return
	}

	if err := h.quizService.DeleteQuiz(c.Request.Context(), quizID); err != nil {
		if services.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("quiz not found with id: %d", quizID)})
			return
		}
		respondError(c, err, "error deleting quiz")
		return
	}

	h.hub.Broadcast(ws.TopicQuizzes, ws.WSMessage{Type: "quiz.deleted", Data: gin.H{"id": quizID}})
	c.JSON(http.StatusOK, MessageResponse{Message: "quiz deleted successfully"})
}

// DeleteAllQuizzes godoc
// @Summary      Delete every quiz
// @Tags         quizzes
// @Produce      json
// @Success      200 {object} MessageResponse
// @Failure      500 {object} ErrorResponse
// @Router       /admin/quiz/delete/all [delete]
func (h *QuizHandler) DeleteAllQuizzes(c *gin.Context) {
	deleted, err := h.quizService.DeleteAllQuizzes(c.Request.Context())
	if err != nil {
		respondError(c, err, "error deleting all quizzes")
		return
	}

	if deleted == 0 {
		c.JSON(http.StatusOK, MessageResponse{Message: "no quizzes found to delete"})
		return
	}

	h.hub.Broadcast(ws.TopicQuizzes, ws.WSMessage{Type: "quizzes.cleared", Data: gin.H{"deleted": deleted}})
	c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("all %d quizzes deleted successfully", deleted)})
}
