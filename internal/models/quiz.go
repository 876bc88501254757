package models

import "time"

type Quiz struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Questions []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions"`
	CreatedAt time.Time      `json:"created_at"`
}

// QuizQuestion is a copy of a question taken when the quiz was composed.
// Later edits or deletes of the source question do not reach it.
type QuizQuestion struct {
	ID              uint   `gorm:"primaryKey" json:"-"`
	QuizID          uint   `gorm:"not null;index:idx_quiz_position,unique" json:"-"`
	Position        int    `gorm:"not null;index:idx_quiz_position,unique" json:"position"`
	QuestionID      uint   `gorm:"not null;index" json:"id"`
	QuestionTitle   string `gorm:"type:text;not null" json:"question_title"`
	Option1         string `gorm:"size:500;not null" json:"option1"`
	Option2         string `gorm:"size:500;not null" json:"option2"`
	Option3         string `gorm:"size:500;not null" json:"option3"`
	Option4         string `gorm:"size:500;not null" json:"option4"`
	RightAnswer     string `gorm:"size:500;not null" json:"right_answer"`
	Category        string `gorm:"size:100;not null" json:"category"`
	DifficultyLevel string `gorm:"size:50" json:"difficultylevel"`
}

func SnapshotQuestion(q Question, position int) QuizQuestion {
	return QuizQuestion{
		Position:        position,
		QuestionID:      q.ID,
		QuestionTitle:   q.QuestionTitle,
		Option1:         q.Option1,
		Option2:         q.Option2,
		Option3:         q.Option3,
		Option4:         q.Option4,
		RightAnswer:     q.RightAnswer,
		Category:        q.Category,
		DifficultyLevel: q.DifficultyLevel,
	}
}
