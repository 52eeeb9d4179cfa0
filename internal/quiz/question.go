package quiz

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxQuestionTextLen = 1000
	maxTextAnswerLen   = 300
	maxWordLimit       = 300
)

// QuestionInput is the caller-supplied part of a question; ids and the
// creation timestamp are assigned here.
type QuestionInput struct {
	Text           string       `json:"text"`
	Type           QuestionType `json:"type"`
	Options        []Option     `json:"options"`
	CorrectAnswers []string     `json:"correctAnswers"`
	WordLimit      *int         `json:"wordLimit,omitempty"`
}

// NewQuestion builds and validates a question. Validation happens exactly once
// here; a returned question is well-formed for its entire lifetime. All
// violated rules are reported together in a single *ValidationError.
func NewQuestion(id, quizID int64, in QuestionInput) (Question, error) {
	var details []string

	if strings.TrimSpace(in.Text) == "" {
		details = append(details, "question text is required")
	} else if utf8.RuneCountInString(in.Text) > maxQuestionTextLen {
		details = append(details, fmt.Sprintf("question text cannot exceed %d characters", maxQuestionTextLen))
	}

	if !in.Type.valid() {
		details = append(details, "invalid question type: must be single-choice, multiple-choice, or text")
		return Question{}, newValidationError(details...)
	}

	if in.Type == TypeText {
		details = append(details, validateTextQuestion(in)...)
	} else {
		details = append(details, validateChoiceQuestion(in)...)
	}

	if len(details) > 0 {
		return Question{}, newValidationError(details...)
	}

	q := Question{
		ID:             id,
		QuizID:         quizID,
		Text:           in.Text,
		Type:           in.Type,
		Options:        in.Options,
		CorrectAnswers: in.CorrectAnswers,
		WordLimit:      in.WordLimit,
		CreatedAt:      time.Now(),
	}
	if q.Options == nil {
		q.Options = []Option{}
	}
	return q, nil
}

func validateTextQuestion(in QuestionInput) []string {
	var details []string
	if in.WordLimit != nil {
		if *in.WordLimit <= 0 {
			details = append(details, "word limit must be a positive integer")
		} else if *in.WordLimit > maxWordLimit {
			details = append(details, fmt.Sprintf("word limit for text questions cannot exceed %d characters", maxWordLimit))
		}
	}
	if len(in.Options) > 0 {
		details = append(details, "text questions cannot have options")
	}
	if len(in.CorrectAnswers) == 0 {
		details = append(details, "text questions must have at least one correct answer")
	}
	for _, a := range in.CorrectAnswers {
		if utf8.RuneCountInString(a) > maxTextAnswerLen {
			details = append(details, fmt.Sprintf("correct answers for text questions cannot exceed %d characters", maxTextAnswerLen))
			break
		}
	}
	return details
}

func validateChoiceQuestion(in QuestionInput) []string {
	var details []string
	if in.WordLimit != nil {
		details = append(details, "word limit is only allowed for text questions")
	}
	if len(in.Options) < 2 {
		details = append(details, "choice questions must have at least 2 options")
	}

	optionIDs := make(map[string]struct{}, len(in.Options))
	for _, opt := range in.Options {
		if _, dup := optionIDs[opt.ID]; dup {
			details = append(details, fmt.Sprintf("duplicate option id: %s", opt.ID))
			continue
		}
		optionIDs[opt.ID] = struct{}{}
	}

	if len(in.CorrectAnswers) == 0 {
		details = append(details, "questions must have at least one correct answer")
	}
	if in.Type == TypeSingleChoice && len(in.CorrectAnswers) > 1 {
		details = append(details, "single-choice questions can only have one correct answer")
	}

	var invalid []string
	for _, id := range in.CorrectAnswers {
		if _, ok := optionIDs[id]; !ok {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		details = append(details, fmt.Sprintf("invalid correct answer ids: %s", strings.Join(invalid, ", ")))
	}
	return details
}
