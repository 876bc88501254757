package services

import (
	"testing"

	"quiz-bank-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func quizQuestions(answers ...string) []models.QuizQuestion {
	out := make([]models.QuizQuestion, 0, len(answers))
	for i, a := range answers {
		out = append(out, models.QuizQuestion{Position: i, QuestionID: uint(i + 1), RightAnswer: a})
	}
	return out
}

func responses(answers ...string) []models.Response {
	out := make([]models.Response, 0, len(answers))
	for _, a := range answers {
		out = append(out, models.Response{Response: a})
	}
	return out
}

func TestScore(t *testing.T) {
	scorer := NewScoringService()

	tests := []struct {
		name      string
		questions []models.QuizQuestion
		responses []models.Response
		want      ScoreResult
	}{
		{
			name:      "positional match",
			questions: quizQuestions("A", "B", "C"),
			responses: responses("A", "X", "C"),
			want:      ScoreResult{Score: 2, QuestionCount: 3, ResponseCount: 3},
		},
		{
			name:      "all correct",
			questions: quizQuestions("A", "B"),
			responses: responses("A", "B"),
			want:      ScoreResult{Score: 2, QuestionCount: 2, ResponseCount: 2},
		},
		{
			name:      "shorter responses grade the prefix",
			questions: quizQuestions("A", "B", "C"),
			responses: responses("A"),
			want:      ScoreResult{Score: 1, QuestionCount: 3, ResponseCount: 1},
		},
		{
			name:      "excess responses ignored",
			questions: quizQuestions("A"),
			responses: responses("A", "A", "A"),
			want:      ScoreResult{Score: 1, QuestionCount: 1, ResponseCount: 3},
		},
		{
			name:      "case sensitive",
			questions: quizQuestions("Paris"),
			responses: responses("paris"),
			want:      ScoreResult{Score: 0, QuestionCount: 1, ResponseCount: 1},
		},
		{
			name:      "no trimming",
			questions: quizQuestions("Paris"),
			responses: responses("Paris "),
			want:      ScoreResult{Score: 0, QuestionCount: 1, ResponseCount: 1},
		},
		{
			name:      "order matters",
			questions: quizQuestions("A", "B"),
			responses: responses("B", "A"),
			want:      ScoreResult{Score: 0, QuestionCount: 2, ResponseCount: 2},
		},
		{
			name:      "empty",
			questions: quizQuestions("A"),
			responses: nil,
			want:      ScoreResult{Score: 0, QuestionCount: 1, ResponseCount: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.questions, tt.responses)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreIgnoresResponseIDs(t *testing.T) {
	questions := quizQuestions("A", "B")
	submitted := []models.Response{
		{ID: 2, Response: "A"},
		{ID: 1, Response: "B"},
	}

	got := NewScoringService().Score(questions, submitted)
	assert.Equal(t, 2, got.Score)
}

func TestPresentQuestionsDropsAnswer(t *testing.T) {
	questions := []models.QuizQuestion{
		{QuestionID: 3, QuestionTitle: "t3", Option1: "a", Option2: "b", Option3: "c", Option4: "d", RightAnswer: "d"},
		{QuestionID: 1, QuestionTitle: "t1", Option1: "w", Option2: "x", Option3: "y", Option4: "z", RightAnswer: "w"},
	}

	views := PresentQuestions(questions)
	assert.Equal(t, []models.QuestionView{
		{ID: 3, QuestionTitle: "t3", Option1: "a", Option2: "b", Option3: "c", Option4: "d"},
		{ID: 1, QuestionTitle: "t1", Option1: "w", Option2: "x", Option3: "y", Option4: "z"},
	}, views)

	assert.NotNil(t, PresentQuestions(nil))
}
