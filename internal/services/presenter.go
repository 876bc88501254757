package services

import "quiz-bank-backend/internal/models"

// PresentQuestions strips the right answer from each question, keeping order.
func PresentQuestions(questions []models.QuizQuestion) []models.QuestionView {
	views := make([]models.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, models.QuestionView{
			ID:            q.QuestionID,
			QuestionTitle: q.QuestionTitle,
			Option1:       q.Option1,
			Option2:       q.Option2,
			Option3:       q.Option3,
			Option4:       q.Option4,
		})
	}
	return views
}
