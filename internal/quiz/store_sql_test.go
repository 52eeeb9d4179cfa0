package quiz_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/quizforge/quizforge/internal/db"
	"github.com/quizforge/quizforge/internal/quiz"
)

func newSQLiteStore(t *testing.T) *quiz.SQLStore {
	t.Helper()
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "quiz.db")
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })
	return quiz.NewSQLStore(dbh, "sqlite")
}

func TestSQLStoreIDsStrictlyIncreasing(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	var prev int64
	for i := 0; i < 5; i++ {
		id, err := store.NextQuizID(ctx)
		if err != nil {
			t.Fatalf("next quiz id: %v", err)
		}
		if id != prev+1 {
			t.Fatalf("quiz id = %d, want %d", id, prev+1)
		}
		prev = id
	}

	qid, err := store.NextQuestionID(ctx)
	if err != nil {
		t.Fatalf("next question id: %v", err)
	}
	if qid != 1 {
		t.Fatalf("question counter must be independent, got %d", qid)
	}
}

func TestSQLStoreQuizRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	id, err := store.NextQuizID(ctx)
	if err != nil {
		t.Fatalf("next quiz id: %v", err)
	}
	q, err := quiz.NewQuiz(id, "Persisted")
	if err != nil {
		t.Fatalf("new quiz: %v", err)
	}
	if err := store.CreateQuiz(ctx, q); err != nil {
		t.Fatalf("create quiz: %v", err)
	}

	choice, err := quiz.NewQuestion(1, id, validChoiceInput(quiz.TypeMultipleChoice))
	if err != nil {
		t.Fatalf("new question: %v", err)
	}
	text, err := quiz.NewQuestion(2, id, quiz.QuestionInput{
		Text:           "Spell it out.",
		Type:           quiz.TypeText,
		CorrectAnswers: []string{"word"},
		WordLimit:      intPtr(25),
	})
	if err != nil {
		t.Fatalf("new question: %v", err)
	}
	if err := store.AddQuestion(ctx, id, choice); err != nil {
		t.Fatalf("add question: %v", err)
	}
	if err := store.AddQuestion(ctx, id, text); err != nil {
		t.Fatalf("add question: %v", err)
	}

	got, err := store.GetQuiz(ctx, id)
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if got.Title != "Persisted" || got.CreatedAt.Unix() != q.CreatedAt.Unix() {
		t.Fatalf("quiz metadata lost: %+v", got)
	}
	if len(got.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got.Questions))
	}
	first, second := got.Questions[0], got.Questions[1]
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("insertion order lost: %+v", got.Questions)
	}
	if first.Type != quiz.TypeMultipleChoice || len(first.Options) != 2 {
		t.Fatalf("choice question mangled: %+v", first)
	}
	if len(first.CorrectAnswers) != 2 || first.CorrectAnswers[0] != "a" {
		t.Fatalf("answer key mangled: %+v", first)
	}
	if second.WordLimit == nil || *second.WordLimit != 25 {
		t.Fatalf("word limit lost: %+v", second)
	}

	list, err := store.ListQuizzes(ctx)
	if err != nil {
		t.Fatalf("list quizzes: %v", err)
	}
	if len(list) != 1 || list[0].QuestionCount != 2 {
		t.Fatalf("summary = %+v", list)
	}
}

func TestSQLStoreSequentialAppendsBothPersist(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	q, err := quiz.NewQuiz(1, "Appends")
	if err != nil {
		t.Fatalf("new quiz: %v", err)
	}
	if err := store.CreateQuiz(ctx, q); err != nil {
		t.Fatalf("create quiz: %v", err)
	}

	for i := int64(1); i <= 4; i++ {
		question, err := quiz.NewQuestion(i, 1, validChoiceInput(quiz.TypeSingleChoice))
		if err != nil {
			t.Fatalf("new question: %v", err)
		}
		if err := store.AddQuestion(ctx, 1, question); err != nil {
			t.Fatalf("add question %d: %v", i, err)
		}
	}

	got, err := store.GetQuiz(ctx, 1)
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if len(got.Questions) != 4 {
		t.Fatalf("append lost a question: %d stored", len(got.Questions))
	}
	for i, question := range got.Questions {
		if question.ID != int64(i+1) {
			t.Fatalf("order broken at %d: %+v", i, question)
		}
	}
}

func TestSQLStoreNotFoundAndDuplicate(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	if _, err := store.GetQuiz(ctx, 42); !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}

	question, err := quiz.NewQuestion(1, 42, validChoiceInput(quiz.TypeSingleChoice))
	if err != nil {
		t.Fatalf("new question: %v", err)
	}
	if err := store.AddQuestion(ctx, 42, question); !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}

	q, err := quiz.NewQuiz(1, "Once")
	if err != nil {
		t.Fatalf("new quiz: %v", err)
	}
	if err := store.CreateQuiz(ctx, q); err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	if err := store.CreateQuiz(ctx, q); !errors.Is(err, quiz.ErrQuizExists) {
		t.Fatalf("expected ErrQuizExists on duplicate id, got %v", err)
	}
}

func TestSQLStoreReset(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	id, err := store.NextQuizID(ctx)
	if err != nil {
		t.Fatalf("next quiz id: %v", err)
	}
	q, err := quiz.NewQuiz(id, "Cleared")
	if err != nil {
		t.Fatalf("new quiz: %v", err)
	}
	if err := store.CreateQuiz(ctx, q); err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	if _, err := store.NextQuestionID(ctx); err != nil {
		t.Fatalf("next question id: %v", err)
	}

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, err := store.GetQuiz(ctx, id); !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Fatalf("expected store cleared, got %v", err)
	}
	if next, _ := store.NextQuizID(ctx); next != 1 {
		t.Fatalf("quiz counter after reset = %d, want 1", next)
	}
	if next, _ := store.NextQuestionID(ctx); next != 1 {
		t.Fatalf("question counter after reset = %d, want 1", next)
	}
}
