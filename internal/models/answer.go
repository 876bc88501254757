package models

// Response is one submitted answer. ID carries the question the client meant
// to answer, but grading is positional and never reads it.
type Response struct {
	ID       uint   `json:"id"`
	Response string `json:"response"`
}

// QuestionView is what a quiz taker sees: no right answer.
type QuestionView struct {
	ID            uint   `json:"id"`
	QuestionTitle string `json:"question_title"`
	Option1       string `json:"option1"`
	Option2       string `json:"option2"`
	Option3       string `json:"option3"`
	Option4       string `json:"option4"`
}
