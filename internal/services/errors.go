package services

import "github.com/pkg/errors"

var (
	ErrQuestionNotFound       = errors.New("question not found")
	ErrQuestionNotCreated     = errors.New("question can't be created")
	ErrInvalidQuestion        = errors.New("invalid question")
	ErrQuizNotFound           = errors.New("quiz not found")
	ErrNoQuestionsForCategory = errors.New("no questions found")
	ErrInvalidQuestionCount   = errors.New("number of questions must be at least 1")
	ErrInvalidQuizTitle       = errors.New("quiz title is required")
	ErrMissingResponses       = errors.New("responses are required")
)

// IsClientError reports whether err was caused by the caller's input rather
// than by storage.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrInvalidQuestion,
		ErrNoQuestionsForCategory,
		ErrInvalidQuestionCount,
		ErrInvalidQuizTitle,
		ErrMissingResponses,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrQuestionNotFound) || errors.Is(err, ErrQuizNotFound)
}

// invalid wraps a validation failure so it matches ErrInvalidQuestion while
// keeping the specific reason in the message.
func invalid(cause error) error {
	return &validationError{cause: cause}
}

type validationError struct {
	cause error
}

func (e *validationError) Error() string {
	return ErrInvalidQuestion.Error() + ": " + e.cause.Error()
}

func (e *validationError) Is(target error) bool {
	return target == ErrInvalidQuestion
}

func (e *validationError) Unwrap() error {
	return e.cause
}
