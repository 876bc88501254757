package services

import (
	"context"
	"testing"

	"quiz-bank-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuizService(db *gorm.DB) *QuizService {
	return NewQuizService(db, NewScoringService())
}

func TestCreateQuizSamplesFromCategory(t *testing.T) {
	db := newTestDB(t)
	java := seedQuestions(t, db, "Java", 6)
	seedQuestions(t, db, "Python", 6)
	svc := newQuizService(db)

	javaIDs := make(map[uint]bool, len(java))
	for _, q := range java {
		javaIDs[q.ID] = true
	}

	quiz, err := svc.CreateQuiz(context.Background(), "Java", 4, "Java basics")
	require.NoError(t, err)
	assert.NotZero(t, quiz.ID)
	assert.Equal(t, "Java basics", quiz.Title)
	require.Len(t, quiz.Questions, 4)

	seen := make(map[uint]bool)
	for i, q := range quiz.Questions {
		assert.Equal(t, i, q.Position)
		assert.Equal(t, "Java", q.Category)
		assert.True(t, javaIDs[q.QuestionID], "question %d is not from the category", q.QuestionID)
		assert.False(t, seen[q.QuestionID], "question %d sampled twice", q.QuestionID)
		seen[q.QuestionID] = true
	}

	stored, err := svc.GetQuiz(context.Background(), quiz.ID)
	require.NoError(t, err)
	require.Len(t, stored.Questions, 4)
	for i := range stored.Questions {
		assert.Equal(t, quiz.Questions[i].QuestionID, stored.Questions[i].QuestionID)
	}
}

func TestCreateQuizShortCategoryReturnsAvailable(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "Java", 3)
	svc := newQuizService(db)

	quiz, err := svc.CreateQuiz(context.Background(), "Java", 10, "All Java")
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 3)
}

func TestCreateQuizEmptyCategoryPersistsNothing(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "Java", 3)
	svc := newQuizService(db)

	for _, category := range []string{"Go", "java"} {
		_, err := svc.CreateQuiz(context.Background(), category, 2, "Nothing")
		assert.ErrorIs(t, err, ErrNoQuestionsForCategory)
		assert.True(t, IsClientError(err))
		assert.EqualError(t, err, `category "`+category+`": no questions found`)
	}

	var count int64
	require.NoError(t, db.Model(&models.Quiz{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateQuizRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "Java", 3)
	svc := newQuizService(db)

	_, err := svc.CreateQuiz(context.Background(), "Java", 0, "t")
	assert.ErrorIs(t, err, ErrInvalidQuestionCount)

	_, err = svc.CreateQuiz(context.Background(), "Java", 2, "  ")
	assert.ErrorIs(t, err, ErrInvalidQuizTitle)
}

func TestCreateQuizRepeatedCallsAreEachValid(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "Java", 10)
	svc := newQuizService(db)

	for i := 0; i < 5; i++ {
		quiz, err := svc.CreateQuiz(context.Background(), "Java", 3, "Round")
		require.NoError(t, err)
		assert.Len(t, quiz.Questions, 3)
	}
}

func TestQuizSnapshotSurvivesQuestionChanges(t *testing.T) {
	db := newTestDB(t)
	seeded := seedQuestions(t, db, "Java", 1)
	svc := newQuizService(db)
	questions := NewQuestionService(db)
	ctx := context.Background()

	quiz, err := svc.CreateQuiz(ctx, "Java", 1, "Snapshot")
	require.NoError(t, err)

	edit := newQuestion("Java", 5)
	_, err = questions.Update(ctx, seeded[0].ID, edit)
	require.NoError(t, err)

	stored, err := svc.GetQuiz(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded[0].RightAnswer, stored.Questions[0].RightAnswer)

	require.NoError(t, questions.Delete(ctx, seeded[0].ID))
	stored, err = svc.GetQuiz(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Questions, 1)
}

func TestGetQuizQuestionsHidesAnswers(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "Java", 3)
	svc := newQuizService(db)
	ctx := context.Background()

	quiz, err := svc.CreateQuiz(ctx, "Java", 3, "Views")
	require.NoError(t, err)

	views, err := svc.GetQuizQuestions(ctx, quiz.ID)
	require.NoError(t, err)
	require.Len(t, views, 3)
	for i, view := range views {
		assert.Equal(t, quiz.Questions[i].QuestionID, view.ID)
		assert.Equal(t, quiz.Questions[i].QuestionTitle, view.QuestionTitle)
	}
}

func TestGetQuizQuestionsNotFound(t *testing.T) {
	svc := newQuizService(newTestDB(t))

	_, err := svc.GetQuizQuestions(context.Background(), 404)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestSubmitQuiz(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "Java", 3)
	svc := newQuizService(db)
	ctx := context.Background()

	quiz, err := svc.CreateQuiz(ctx, "Java", 3, "Submit")
	require.NoError(t, err)

	responses := []models.Response{
		{ID: quiz.Questions[0].QuestionID, Response: quiz.Questions[0].RightAnswer},
		{ID: quiz.Questions[1].QuestionID, Response: "wrong"},
		{ID: quiz.Questions[2].QuestionID, Response: quiz.Questions[2].RightAnswer},
	}
	result, err := svc.SubmitQuiz(ctx, quiz.ID, responses)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)
	assert.False(t, result.Mismatched())

	result, err = svc.SubmitQuiz(ctx, quiz.ID, responses[:1])
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.True(t, result.Mismatched())

	result, err = svc.SubmitQuiz(ctx, quiz.ID, []models.Response{})
	require.NoError(t, err)
	assert.Zero(t, result.Score)
}

func TestSubmitQuizErrors(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "Java", 1)
	svc := newQuizService(db)
	ctx := context.Background()

	quiz, err := svc.CreateQuiz(ctx, "Java", 1, "Errors")
	require.NoError(t, err)

	_, err = svc.SubmitQuiz(ctx, quiz.ID, nil)
	assert.ErrorIs(t, err, ErrMissingResponses)

	_, err = svc.SubmitQuiz(ctx, quiz.ID+100, []models.Response{{Response: "x"}})
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestListQuizzes(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "Java", 4)
	svc := newQuizService(db)
	ctx := context.Background()

	empty, err := svc.ListQuizzes(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	first, err := svc.CreateQuiz(ctx, "Java", 2, "First")
	require.NoError(t, err)
	second, err := svc.CreateQuiz(ctx, "Java", 3, "Second")
	require.NoError(t, err)

	quizzes, err := svc.ListQuizzes(ctx)
	require.NoError(t, err)
	require.Len(t, quizzes, 2)

	byID := map[uint]models.Quiz{}
	for _, q := range quizzes {
		byID[q.ID] = q
	}
	assert.Len(t, byID[first.ID].Questions, 2)
	assert.Len(t, byID[second.ID].Questions, 3)
}

func TestDeleteQuiz(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "Java", 2)
	svc := newQuizService(db)
	ctx := context.Background()

	quiz, err := svc.CreateQuiz(ctx, "Java", 2, "Doomed")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQuiz(ctx, quiz.ID))
	assert.ErrorIs(t, svc.DeleteQuiz(ctx, quiz.ID), ErrQuizNotFound)

	var rows int64
	require.NoError(t, db.Model(&models.QuizQuestion{}).Where("quiz_id = ?", quiz.ID).Count(&rows).Error)
	assert.Zero(t, rows)

	var questions int64
	require.NoError(t, db.Model(&models.Question{}).Count(&questions).Error)
	assert.Equal(t, int64(2), questions)
}

func TestDeleteQuizHonoursForeignKeys(t *testing.T) {
	db := newTestDB(t)
	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	require.Equal(t, 1, enabled)

	seedQuestions(t, db, "Java", 3)
	svc := newQuizService(db)
	ctx := context.Background()

	quiz, err := svc.CreateQuiz(ctx, "Java", 2, "Constrained")
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 2)

	require.NoError(t, svc.DeleteQuiz(ctx, quiz.ID))

	var rows int64
	require.NoError(t, db.Model(&models.QuizQuestion{}).Count(&rows).Error)
	assert.Zero(t, rows)

	_, err = svc.GetQuiz(ctx, quiz.ID)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestDeleteAllQuizzes(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "Java", 2)
	svc := newQuizService(db)
	ctx := context.Background()

	deleted, err := svc.DeleteAllQuizzes(ctx)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateQuiz(ctx, "Java", 2, "Bulk")
		require.NoError(t, err)
	}

	deleted, err = svc.DeleteAllQuizzes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	quizzes, err := svc.ListQuizzes(ctx)
	require.NoError(t, err)
	assert.Empty(t, quizzes)

	var rows int64
	require.NoError(t, db.Model(&models.QuizQuestion{}).Count(&rows).Error)
	assert.Zero(t, rows)
}
