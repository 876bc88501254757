package handlers

import (
	"net/http"

	"quiz-bank-backend/internal/middleware"
	"quiz-bank-backend/internal/models"
	"quiz-bank-backend/internal/services"
	"quiz-bank-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	hub             *ws.Hub
}

func NewQuestionHandler(questionService *services.QuestionService, hub *ws.Hub) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, hub: hub}
}

type QuestionRequest struct {
	QuestionTitle   string `json:"question_title" binding:"required" example:"What is the main method in Java?"`
	Option1         string `json:"option1" binding:"required,max=500" example:"public static void main(String[] args)"`
	Option2         string `json:"option2" binding:"required,max=500" example:"public void main(String[] args)"`
	Option3         string `json:"option3" binding:"required,max=500" example:"static void main(String[] args)"`
	Option4         string `json:"option4" binding:"required,max=500" example:"void main(String[] args)"`
	RightAnswer     string `json:"right_answer" binding:"required,oneof_option" example:"public static void main(String[] args)"`
	Category        string `json:"category" binding:"required,max=100" example:"Java"`
	DifficultyLevel string `json:"difficultylevel" binding:"max=50" example:"Easy"`
}

func (r QuestionRequest) toModel() models.Question {
	return models.Question{
		QuestionTitle:   r.QuestionTitle,
		Option1:         r.Option1,
		Option2:         r.Option2,
		Option3:         r.Option3,
		Option4:         r.Option4,
		RightAnswer:     r.RightAnswer,
		Category:        r.Category,
		DifficultyLevel: r.DifficultyLevel,
	}
}

type CreatedResponse struct {
	Message string `json:"message" example:"question added successfully"`
	ID      uint   `json:"id" example:"1"`
}

// ListQuestions godoc
// @Summary      List all questions
// @Description  Every question in the bank, right answers included
// @Tags         questions
// @Produce      json
// @Success      200 {array} Question
// @Failure      500 {array} Question
// @Router       /admin/question/allQuestions [get]
// @Router       /user/question/allQuestions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questionService.ListAll(c.Request.Context())
	if err != nil {
		middleware.Logger(c).WithError(err).Error("failed to list questions")
		c.JSON(http.StatusInternalServerError, questions)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// ListCategories godoc
// @Summary      List categories
// @Tags         questions
// @Produce      json
// @Success      200 {array} string
// @Failure      500 {object} ErrorResponse
// @Router       /admin/question/categories [get]
func (h *QuestionHandler) ListCategories(c *gin.Context) {
	categories, err := h.questionService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CategorySummary godoc
// @Summary      Count questions per category
// @Tags         questions
// @Produce      json
// @Success      200 {array} services.CategoryCount
// @Failure      500 {object} ErrorResponse
// @Router       /admin/question/categories/summary [get]
func (h *QuestionHandler) CategorySummary(c *gin.Context) {
	counts, err := h.questionService.CountByCategory(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to count categories")
		return
	}
	c.JSON(http.StatusOK, counts)
}

// ListByCategory godoc
// @Summary      List questions in a category
// @Description  Category matching is exact and case-sensitive
// @Tags         questions
// @Produce      json
// @Param        category path string true "Category"
// @Success      200 {array} Question
// @Failure      500 {object} ErrorResponse
// @Router       /admin/question/category/{category} [get]
// @Router       /user/question/category/{category} [get]
func (h *QuestionHandler) ListByCategory(c *gin.Context) {
	questions, err := h.questionService.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err, "failed to list questions")
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary      Get a question
// @Description  Responds with null when the question does not exist
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} Question
// @Failure      400 {object} ErrorResponse
// @Router       /admin/question/id/{id} [get]
// @Router       /user/question/id/{id} [get]
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, ok := parseID(c, "question")
	if !ok {
		return
	}

	question, found, err := h.questionService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get question")
		return
	}
	if !found {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, question)
}

// CreateQuestion godoc
// @Summary      Add a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body QuestionRequest true "Question data"
// @Success      201 {object} CreatedResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /admin/question/addQuestions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), req.toModel())
	if err != nil {
		respondError(c, err, services.ErrQuestionNotCreated.Error())
		return
	}

	h.hub.Broadcast(ws.TopicQuestions, ws.WSMessage{Type: "question.created", Data: question})
	c.JSON(http.StatusCreated, CreatedResponse{Message: "question added successfully", ID: question.ID})
}

// UpdateQuestion godoc
// @Summary      Update a question
// @Description  Replaces every field; the id in the body is ignored
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id path int true "Question ID"
// @Param        request body QuestionRequest true "Question data"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /admin/question/update/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, ok := parseID(c, "question")
	if !ok {
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.questionService.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondError(c, err, "error updating question")
		return
	}

	h.hub.Broadcast(ws.TopicQuestions, ws.WSMessage{Type: "question.updated", Data: question})
	c.JSON(http.StatusOK, MessageResponse{Message: "question updated successfully"})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Description  Quizzes already composed keep their copy of the question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /admin/question/delete/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := parseID(c, "question")
	if !ok {
		return
	}

	if err := h.questionService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "error deleting question")
		return
	}

	h.hub.Broadcast(ws.TopicQuestions, ws.WSMessage{Type: "question.deleted", Data: gin.H{"id": id}})
	c.JSON(http.StatusOK, MessageResponse{Message: "question deleted successfully"})
}
