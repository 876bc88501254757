package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"quiz-bank-backend/internal/models"
	"quiz-bank-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type ExportQuestion struct {
	QuestionTitle   string   `json:"question_title"`
	Options         []string `json:"options"`
	RightAnswer     string   `json:"right_answer"`
	DifficultyLevel string   `json:"difficultylevel,omitempty"`
}

type ExportCategory struct {
	Category  string           `json:"category"`
	Questions []ExportQuestion `json:"questions"`
}

type ExportData struct {
	Categories []ExportCategory `json:"categories"`
}

type ImportResponse struct {
	ImportedQuestions int `json:"imported_questions" example:"12"`
}

var csvHeader = []string{"category", "question", "option1", "option2", "option3", "option4", "correct", "difficulty"}

// ExportQuestions godoc
// @Summary      Export the question bank
// @Description  JSON grouped by category, or CSV with the right answer given as its option number
// @Tags         questions
// @Produce      json
// @Produce      text/csv
// @Param        category query string false "Only this category"
// @Param        format query string false "json or csv" default(json)
// @Success      200 {object} ExportData
// @Failure      500 {object} ErrorResponse
// @Router       /admin/question/export [get]
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	category := c.Query("category")
	questions, err := h.questionService.Export(c.Request.Context(), category)
	if err != nil {
		respondError(c, err, "failed to export questions")
		return
	}

	filename := "questions"
	if category != "" {
		filename = strings.ReplaceAll(category, " ", "_")
	}

	if c.DefaultQuery("format", "json") == "csv" {
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
		c.Status(http.StatusOK)

		w := csv.NewWriter(c.Writer)
		_ = w.Write(csvHeader)
		for _, q := range questions {
			correct := ""
			for i, opt := range q.Options() {
				if opt == q.RightAnswer {
					correct = strconv.Itoa(i + 1)
					break
				}
			}
			_ = w.Write([]string{
				q.Category, q.QuestionTitle,
				q.Option1, q.Option2, q.Option3, q.Option4,
				correct, q.DifficultyLevel,
			})
		}
		w.Flush()
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.json\"", filename))
	c.JSON(http.StatusOK, toExportData(questions))
}

// ImportQuestions godoc
// @Summary      Import questions
// @Description  Accepts a .csv or .json file in the export format. Nothing is stored if any row is invalid.
// @Tags         questions
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Export file"
// @Success      201 {object} ImportResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /admin/question/import [post]
func (h *QuestionHandler) ImportQuestions(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file required"})
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read file"})
		return
	}

	var questions []models.Question
	if strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		questions, err = parseCSV(body)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	} else {
		var data ExportData
		if err := json.Unmarshal(body, &data); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON: " + err.Error()})
			return
		}
		questions = fromExportData(data)
	}

	imported, err := h.questionService.Import(c.Request.Context(), questions)
	if err != nil {
		respondError(c, err, "failed to import questions")
		return
	}

	h.hub.Broadcast(ws.TopicQuestions, ws.WSMessage{Type: "question.imported", Data: gin.H{"count": len(imported)}})
	c.JSON(http.StatusCreated, ImportResponse{ImportedQuestions: len(imported)})
}

func toExportData(questions []models.Question) ExportData {
	data := ExportData{Categories: []ExportCategory{}}
	index := make(map[string]int)
	for _, q := range questions {
		i, ok := index[q.Category]
		if !ok {
			i = len(data.Categories)
			index[q.Category] = i
			data.Categories = append(data.Categories, ExportCategory{Category: q.Category})
		}
		opts := q.Options()
		data.Categories[i].Questions = append(data.Categories[i].Questions, ExportQuestion{
			QuestionTitle:   q.QuestionTitle,
			Options:         opts[:],
			RightAnswer:     q.RightAnswer,
			DifficultyLevel: q.DifficultyLevel,
		})
	}
	return data
}

// fromExportData leaves missing options blank so validation reports them.
func fromExportData(data ExportData) []models.Question {
	var out []models.Question
	for _, cat := range data.Categories {
		for _, eq := range cat.Questions {
			var opts [4]string
			copy(opts[:], eq.Options)
			out = append(out, models.Question{
				QuestionTitle:   eq.QuestionTitle,
				Option1:         opts[0],
				Option2:         opts[1],
				Option3:         opts[2],
				Option4:         opts[3],
				RightAnswer:     eq.RightAnswer,
				Category:        cat.Category,
				DifficultyLevel: eq.DifficultyLevel,
			})
		}
	}
	return out
}

func parseCSV(data []byte) ([]models.Question, error) {
	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("CSV must have header + at least 1 row")
	}

	var out []models.Question
	for n, row := range records[1:] {
		if len(row) < 7 {
			return nil, fmt.Errorf("CSV row %d: expected at least 7 columns, got %d", n+1, len(row))
		}

		q := models.Question{
			Category:      strings.TrimSpace(row[0]),
			QuestionTitle: strings.TrimSpace(row[1]),
			Option1:       row[2],
			Option2:       row[3],
			Option3:       row[4],
			Option4:       row[5],
		}
		// The right answer is stored by value; an unknown index leaves it blank.
		if idx, err := strconv.Atoi(strings.TrimSpace(row[6])); err == nil && idx >= 1 && idx <= 4 {
			q.RightAnswer = q.Options()[idx-1]
		}
		if len(row) > 7 {
			q.DifficultyLevel = strings.TrimSpace(row[7])
		}
		out = append(out, q)
	}
	return out, nil
}
