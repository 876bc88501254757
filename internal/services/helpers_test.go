package services

import (
	"fmt"
	"testing"

	"quiz-bank-backend/internal/database"
	"quiz-bank-backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newQuestion(category string, n int) models.Question {
	return models.Question{
		QuestionTitle:   fmt.Sprintf("%s question %d", category, n),
		Option1:         fmt.Sprintf("a%d", n),
		Option2:         fmt.Sprintf("b%d", n),
		Option3:         fmt.Sprintf("c%d", n),
		Option4:         fmt.Sprintf("d%d", n),
		RightAnswer:     fmt.Sprintf("b%d", n),
		Category:        category,
		DifficultyLevel: "Easy",
	}
}

func seedQuestions(t *testing.T, db *gorm.DB, category string, count int) []models.Question {
	t.Helper()
	out := make([]models.Question, 0, count)
	for i := 0; i < count; i++ {
		q := newQuestion(category, i)
		require.NoError(t, db.Create(&q).Error)
		out = append(out, q)
	}
	return out
}
