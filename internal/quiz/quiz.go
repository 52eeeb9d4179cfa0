package quiz

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const maxTitleLen = 200

// NewQuiz builds a quiz with an empty question list. The title must be
// non-blank and at most 200 characters.
func NewQuiz(id int64, title string) (*Quiz, error) {
	if strings.TrimSpace(title) == "" {
		return nil, newValidationError("quiz title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return nil, newValidationError(fmt.Sprintf("quiz title cannot exceed %d characters", maxTitleLen))
	}
	return &Quiz{
		ID:        id,
		Title:     title,
		CreatedAt: time.Now(),
		Questions: []Question{},
	}, nil
}

// AddQuestion appends an already-validated question.
func (q *Quiz) AddQuestion(question Question) {
	q.Questions = append(q.Questions, question)
}

// Question finds one of this quiz's questions by id.
func (q *Quiz) Question(questionID int64) (Question, bool) {
	for i := range q.Questions {
		if q.Questions[i].ID == questionID {
			return q.Questions[i], true
		}
	}
	return Question{}, false
}

// QuestionsForTaking projects the questions for a quiz taker. Correct answers
// never appear here, for any question type.
func (q *Quiz) QuestionsForTaking() []TakingQuestion {
	out := make([]TakingQuestion, len(q.Questions))
	for i, question := range q.Questions {
		out[i] = TakingQuestion{
			ID:        question.ID,
			Text:      question.Text,
			Type:      question.Type,
			Options:   question.Options,
			WordLimit: question.WordLimit,
		}
	}
	return out
}
