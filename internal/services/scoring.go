package services

import (
	"quiz-bank-backend/internal/models"
)

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

type ScoreResult struct {
	Score         int `json:"score"`
	QuestionCount int `json:"question_count"`
	ResponseCount int `json:"response_count"`
}

// Mismatched reports whether the submission did not line up one-to-one with
// the quiz questions.
func (r ScoreResult) Mismatched() bool {
	return r.QuestionCount != r.ResponseCount
}

// Score grades responses[i] against questions[i]. Only the overlapping prefix
// is graded; a response counts when it equals the right answer byte for byte.
func (s *ScoringService) Score(questions []models.QuizQuestion, responses []models.Response) ScoreResult {
	result := ScoreResult{
		QuestionCount: len(questions),
		ResponseCount: len(responses),
	}

	n := len(responses)
	if len(questions) < n {
		n = len(questions)
	}

	for i := 0; i < n; i++ {
		if responses[i].Response == questions[i].RightAnswer {
			result.Score++
		}
	}

	return result
}
