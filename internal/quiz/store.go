package quiz

import "context"

// Store is the single source of truth for quizzes. Implementations must keep
// id issuance strictly increasing and never reuse an id within a store
// lifetime; Reset is the only exception and exists for test isolation.
type Store interface {
	CreateQuiz(ctx context.Context, q *Quiz) error
	GetQuiz(ctx context.Context, id int64) (*Quiz, error)
	ListQuizzes(ctx context.Context) ([]QuizSummary, error)

	NextQuizID(ctx context.Context) (int64, error)
	NextQuestionID(ctx context.Context) (int64, error)

	AddQuestion(ctx context.Context, quizID int64, question Question) error

	Reset(ctx context.Context) error
}
