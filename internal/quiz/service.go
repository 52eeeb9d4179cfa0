package quiz

import (
	"context"
	"math"

	"github.com/quizforge/quizforge/internal/grading"
)

// Submissions are graded against a fixed 60% passing threshold.
const passThreshold = 60

// Submission is one caller-provided answer. Answer is a string for
// single-choice and text questions and a slice of option-id strings for
// multiple-choice; JSON decoding yields exactly those shapes.
type Submission struct {
	QuestionID int64 `json:"questionId"`
	Answer     any   `json:"answer"`
}

// AnswerResult records the verdict for one submission, in submission order.
type AnswerResult struct {
	QuestionID    int64    `json:"questionId"`
	Correct       bool     `json:"correct"`
	Message       string   `json:"message,omitempty"`
	UserAnswer    any      `json:"userAnswer,omitempty"`
	CorrectAnswer []string `json:"correctAnswer,omitempty"`
}

// GradeReport aggregates a whole submission. Total counts the quiz's
// questions, not the submitted answers.
type GradeReport struct {
	Score      int            `json:"score"`
	Total      int            `json:"total"`
	Percentage int            `json:"percentage"`
	Passed     bool           `json:"passed"`
	Results    []AnswerResult `json:"results"`
}

// Service implements the four quiz use cases as thin transactions against the
// store. Entity constructors own validation; the grader owns correctness.
type Service struct {
	store  Store
	grader grading.Grader
}

func NewService(store Store) *Service {
	return &Service{store: store, grader: grading.NewGrader()}
}

func (s *Service) CreateQuiz(ctx context.Context, title string) (*Quiz, error) {
	id, err := s.store.NextQuizID(ctx)
	if err != nil {
		return nil, err
	}
	q, err := NewQuiz(id, title)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateQuiz(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Service) ListQuizzes(ctx context.Context) ([]QuizSummary, error) {
	return s.store.ListQuizzes(ctx)
}

func (s *Service) GetQuiz(ctx context.Context, quizID int64) (QuizSummary, error) {
	q, err := s.store.GetQuiz(ctx, quizID)
	if err != nil {
		return QuizSummary{}, err
	}
	return q.summary(), nil
}

func (s *Service) AddQuestion(ctx context.Context, quizID int64, in QuestionInput) (Question, error) {
	if _, err := s.store.GetQuiz(ctx, quizID); err != nil {
		return Question{}, err
	}
	id, err := s.store.NextQuestionID(ctx)
	if err != nil {
		return Question{}, err
	}
	question, err := NewQuestion(id, quizID, in)
	if err != nil {
		return Question{}, err
	}
	if err := s.store.AddQuestion(ctx, quizID, question); err != nil {
		return Question{}, err
	}
	return question, nil
}

func (s *Service) QuestionsForTaking(ctx context.Context, quizID int64) ([]TakingQuestion, error) {
	q, err := s.store.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return q.QuestionsForTaking(), nil
}

// SubmitAnswers grades a submission. Answers referencing unknown questions
// degrade to an incorrect result entry and count toward neither score nor
// total. An empty quiz grades to percentage 0 rather than dividing by zero.
func (s *Service) SubmitAnswers(ctx context.Context, quizID int64, answers []Submission) (*GradeReport, error) {
	q, err := s.store.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	total := len(q.Questions)
	score := 0
	results := make([]AnswerResult, 0, len(answers))

	for _, sub := range answers {
		question, ok := q.Question(sub.QuestionID)
		if !ok {
			results = append(results, AnswerResult{
				QuestionID: sub.QuestionID,
				Correct:    false,
				Message:    ErrQuestionNotFound.Error(),
			})
			continue
		}

		correct := s.grader.Correct(grading.Q{
			Type:      string(question.Type),
			AnswerKey: question.CorrectAnswers,
		}, sub.Answer)
		if correct {
			score++
		}
		results = append(results, AnswerResult{
			QuestionID:    sub.QuestionID,
			Correct:       correct,
			UserAnswer:    sub.Answer,
			CorrectAnswer: question.CorrectAnswers,
		})
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(score) / float64(total) * 100))
	}

	return &GradeReport{
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Passed:     percentage >= passThreshold,
		Results:    results,
	}, nil
}
