package models

import (
	"errors"
	"strings"
	"time"
)

var (
	errBlankTitle    = errors.New("question_title is required")
	errBlankOption   = errors.New("all four options are required")
	errBlankCategory = errors.New("category is required")
	errAnswerOption  = errors.New("right_answer must match one of the four options")
)

type Question struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	QuestionTitle   string    `gorm:"type:text;not null" json:"question_title"`
	Option1         string    `gorm:"size:500;not null" json:"option1"`
	Option2         string    `gorm:"size:500;not null" json:"option2"`
	Option3         string    `gorm:"size:500;not null" json:"option3"`
	Option4         string    `gorm:"size:500;not null" json:"option4"`
	RightAnswer     string    `gorm:"size:500;not null" json:"right_answer"`
	Category        string    `gorm:"size:100;not null;index" json:"category"`
	DifficultyLevel string    `gorm:"size:50" json:"difficultylevel"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewQuestion returns a question whose right answer is one of its options.
func NewQuestion(title string, options [4]string, rightAnswer, category, difficulty string) (Question, error) {
	q := Question{
		QuestionTitle:   title,
		Option1:         options[0],
		Option2:         options[1],
		Option3:         options[2],
		Option4:         options[3],
		RightAnswer:     rightAnswer,
		Category:        category,
		DifficultyLevel: difficulty,
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

func (q Question) Options() [4]string {
	return [4]string{q.Option1, q.Option2, q.Option3, q.Option4}
}

// Validate checks the payload fields. Matching is exact, the same comparison
// the scorer applies to submitted responses.
func (q Question) Validate() error {
	if strings.TrimSpace(q.QuestionTitle) == "" {
		return errBlankTitle
	}
	if strings.TrimSpace(q.Category) == "" {
		return errBlankCategory
	}
	matched := false
	for _, opt := range q.Options() {
		if strings.TrimSpace(opt) == "" {
			return errBlankOption
		}
		if opt == q.RightAnswer {
			matched = true
		}
	}
	if !matched {
		return errAnswerOption
	}
	return nil
}
