package services

import (
	"context"

	"quiz-bank-backend/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// ListAll never returns a nil slice, even alongside an error.
func (s *QuestionService) ListAll(ctx context.Context) ([]models.Question, error) {
	questions := []models.Question{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return []models.Question{}, errors.Wrap(err, "list questions")
	}
	return questions, nil
}

func (s *QuestionService) ListCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := s.db.WithContext(ctx).Model(&models.Question{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return []string{}, errors.Wrap(err, "list categories")
	}
	return categories, nil
}

func (s *QuestionService) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	counts := []CategoryCount{}
	err := s.db.WithContext(ctx).Model(&models.Question{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("category ASC").
		Scan(&counts).Error
	if err != nil {
		return []CategoryCount{}, errors.Wrap(err, "count questions by category")
	}
	return counts, nil
}

// ListByCategory matches the category exactly; "java" and "Java" are
// different categories.
func (s *QuestionService) ListByCategory(ctx context.Context, category string) ([]models.Question, error) {
	questions := []models.Question{}
	err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return []models.Question{}, errors.Wrapf(err, "list questions in category %q", category)
	}
	return questions, nil
}

func (s *QuestionService) GetByID(ctx context.Context, id uint) (*models.Question, bool, error) {
	var question models.Question
	err := s.db.WithContext(ctx).First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "get question %d", id)
	}
	return &question, true, nil
}

func (s *QuestionService) Create(ctx context.Context, input models.Question) (*models.Question, error) {
	if err := input.Validate(); err != nil {
		return nil, invalid(err)
	}

	question := input
	question.ID = 0
	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, errors.WithMessage(ErrQuestionNotCreated, err.Error())
	}
	return &question, nil
}

// Update replaces every field of question id with input. The id in input
// is ignored.
func (s *QuestionService) Update(ctx context.Context, id uint, input models.Question) (*models.Question, error) {
	if err := input.Validate(); err != nil {
		return nil, invalid(err)
	}

	question := input
	question.ID = id
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Updates never falls back to an insert, unlike Save.
		result := tx.Model(&models.Question{ID: id}).
			Select("*").
			Omit("id", "created_at").
			Updates(&question)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrQuestionNotFound
		}
		return tx.First(&question, id).Error
	})
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "update question %d", id)
	}
	return &question, nil
}

// Delete removes question id. Quizzes already composed keep their copy.
func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "delete question %d", id)
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// Import validates every question before writing any of them, then inserts
// the batch in one transaction. A single invalid row rejects the whole batch.
func (s *QuestionService) Import(ctx context.Context, inputs []models.Question) ([]models.Question, error) {
	if len(inputs) == 0 {
		return nil, invalid(errors.New("no questions to import"))
	}

	questions := make([]models.Question, len(inputs))
	for i, input := range inputs {
		if err := input.Validate(); err != nil {
			return nil, invalid(errors.Wrapf(err, "row %d", i+1))
		}
		questions[i] = input
		questions[i].ID = 0
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&questions, 100).Error
	})
	if err != nil {
		return nil, errors.WithMessage(ErrQuestionNotCreated, err.Error())
	}
	return questions, nil
}

// Export returns the bank, or one category of it when category is not empty.
func (s *QuestionService) Export(ctx context.Context, category string) ([]models.Question, error) {
	if category == "" {
		return s.ListAll(ctx)
	}
	return s.ListByCategory(ctx, category)
}
