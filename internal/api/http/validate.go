package http

import (
	"fmt"
	"unicode/utf8"

	"github.com/quizforge/quizforge/internal/quiz"
)

// Pre-entry payload validation. These checks guard the HTTP boundary only;
// the entity constructors re-check everything they care about.

const maxOptionTextLen = 500

type createQuizRequest struct {
	Title string `json:"title"`
}

func (r createQuizRequest) validate() []string {
	var details []string
	if r.Title == "" {
		details = append(details, "quiz title is required")
	} else if utf8.RuneCountInString(r.Title) > 200 {
		details = append(details, "quiz title cannot exceed 200 characters")
	}
	return details
}

type addQuestionRequest struct {
	Text           string        `json:"text"`
	Type           string        `json:"type"`
	Options        []quiz.Option `json:"options"`
	CorrectAnswers []string      `json:"correctAnswers"`
	WordLimit      *int          `json:"wordLimit"`
}

func (r addQuestionRequest) validate() []string {
	var details []string
	if r.Text == "" {
		details = append(details, "question text is required")
	} else if utf8.RuneCountInString(r.Text) > 1000 {
		details = append(details, "question text cannot exceed 1000 characters")
	}

	switch quiz.QuestionType(r.Type) {
	case quiz.TypeSingleChoice, quiz.TypeMultipleChoice:
		if len(r.Options) < 2 {
			details = append(details, "options must contain at least 2 items")
		}
		for i, opt := range r.Options {
			if opt.ID == "" {
				details = append(details, fmt.Sprintf("options[%d].id is required", i))
			}
			if opt.Text == "" {
				details = append(details, fmt.Sprintf("options[%d].text is required", i))
			} else if utf8.RuneCountInString(opt.Text) > maxOptionTextLen {
				details = append(details, fmt.Sprintf("options[%d].text cannot exceed %d characters", i, maxOptionTextLen))
			}
		}
		if quiz.QuestionType(r.Type) == quiz.TypeSingleChoice {
			if len(r.CorrectAnswers) != 1 {
				details = append(details, "correctAnswers must contain exactly 1 item for single-choice questions")
			}
		} else if len(r.CorrectAnswers) < 1 {
			details = append(details, "correctAnswers must contain at least 1 item")
		}
		if r.WordLimit != nil {
			details = append(details, "wordLimit is not allowed for choice questions")
		}
	case quiz.TypeText:
		if len(r.Options) > 0 {
			details = append(details, "options are not allowed for text questions")
		}
		if len(r.CorrectAnswers) < 1 {
			details = append(details, "correctAnswers must contain at least 1 item")
		}
		for i, a := range r.CorrectAnswers {
			if utf8.RuneCountInString(a) > 300 {
				details = append(details, fmt.Sprintf("correctAnswers[%d] cannot exceed 300 characters", i))
			}
		}
		if r.WordLimit != nil && (*r.WordLimit < 1 || *r.WordLimit > 300) {
			details = append(details, "wordLimit must be between 1 and 300")
		}
	default:
		details = append(details, "type must be single-choice, multiple-choice, or text")
	}
	return details
}

type submitAnswersRequest struct {
	Answers []quiz.Submission `json:"answers"`
}

func (r submitAnswersRequest) validate() []string {
	var details []string
	if len(r.Answers) == 0 {
		details = append(details, "answers must contain at least 1 item")
	}
	for i, sub := range r.Answers {
		if sub.QuestionID <= 0 {
			details = append(details, fmt.Sprintf("answers[%d].questionId must be a positive integer", i))
		}
		if !validAnswerShape(sub.Answer) {
			details = append(details, fmt.Sprintf("answers[%d].answer must be a string or an array of strings", i))
		}
	}
	return details
}

func validAnswerShape(a any) bool {
	switch v := a.(type) {
	case string:
		return utf8.RuneCountInString(v) <= 300
	case []any:
		for _, e := range v {
			if _, ok := e.(string); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}
