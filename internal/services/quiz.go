package services

import (
	"context"
	"strings"

	"quiz-bank-backend/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type QuizService struct {
	db      *gorm.DB
	scoring *ScoringService
}

func NewQuizService(db *gorm.DB, scoring *ScoringService) *QuizService {
	return &QuizService{db: db, scoring: scoring}
}

func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// CreateQuiz composes a quiz from up to count questions drawn at random from
// category. A category with fewer questions yields a shorter quiz.
func (s *QuizService) CreateQuiz(ctx context.Context, category string, count int, title string) (*models.Quiz, error) {
	if count < 1 {
		return nil, ErrInvalidQuestionCount
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidQuizTitle
	}

	var sampled []models.Question
	err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order("RANDOM()").
		Limit(count).
		Find(&sampled).Error
	if err != nil {
		return nil, errors.Wrapf(err, "sample questions from %q", category)
	}
	if len(sampled) == 0 {
		return nil, errors.WithMessagef(ErrNoQuestionsForCategory, "category %q", category)
	}

	quiz := models.Quiz{
		Title:     title,
		Questions: make([]models.QuizQuestion, 0, len(sampled)),
	}
	for i, q := range sampled {
		quiz.Questions = append(quiz.Questions, models.SnapshotQuestion(q, i))
	}

	// Create writes the quiz and its snapshot rows in one transaction.
	if err := s.db.WithContext(ctx).Create(&quiz).Error; err != nil {
		return nil, errors.Wrap(err, "create quiz")
	}
	return &quiz, nil
}

// ListQuizzes never returns a nil slice, even alongside an error.
func (s *QuizService) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	quizzes := []models.Quiz{}
	err := s.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Order("created_at DESC").
		Order("id DESC").
		Find(&quizzes).Error
	if err != nil {
		return []models.Quiz{}, errors.Wrap(err, "list quizzes")
	}
	return quizzes, nil
}

func (s *QuizService) GetQuiz(ctx context.Context, quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		First(&quiz, quizID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get quiz %d", quizID)
	}
	return &quiz, nil
}

// GetQuizQuestions returns the quiz questions as quiz takers see them.
func (s *QuizService) GetQuizQuestions(ctx context.Context, quizID uint) ([]models.QuestionView, error) {
	quiz, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return PresentQuestions(quiz.Questions), nil
}

// SubmitQuiz grades responses positionally against the quiz questions.
func (s *QuizService) SubmitQuiz(ctx context.Context, quizID uint, responses []models.Response) (ScoreResult, error) {
	if responses == nil {
		return ScoreResult{}, ErrMissingResponses
	}

	quiz, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return ScoreResult{}, err
	}
	return s.scoring.Score(quiz.Questions, responses), nil
}

func (s *QuizService) DeleteQuiz(ctx context.Context, quizID uint) error {
	// Snapshot rows go first: quiz_questions.quiz_id references quizzes.id.
	// A missing quiz rolls the transaction back.
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quizID).Delete(&models.QuizQuestion{}).Error; err != nil {
			return errors.Wrapf(err, "delete questions of quiz %d", quizID)
		}
		result := tx.Delete(&models.Quiz{}, quizID)
		if result.Error != nil {
			return errors.Wrapf(result.Error, "delete quiz %d", quizID)
		}
		if result.RowsAffected == 0 {
			return ErrQuizNotFound
		}
		return nil
	})
}

// DeleteAllQuizzes removes every quiz and returns how many there were.
func (s *QuizService) DeleteAllQuizzes(ctx context.Context) (int64, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.QuizQuestion{}).Error; err != nil {
			return errors.Wrap(err, "delete quiz questions")
		}
		result := tx.Where("1 = 1").Delete(&models.Quiz{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "delete quizzes")
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
