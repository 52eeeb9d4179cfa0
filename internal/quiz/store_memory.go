package quiz

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is the default Store: a mutex-guarded map with process-local id
// counters. Mutations are serialized by the write lock; reads hand out deep
// copies so callers can never alias stored state.
type MemoryStore struct {
	mu          sync.RWMutex
	quizzes     map[int64]*Quiz
	order       []int64
	quizSeq     int64
	questionSeq int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{quizzes: map[int64]*Quiz{}}
}

func (m *MemoryStore) CreateQuiz(_ context.Context, q *Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.quizzes[q.ID]; exists {
		return fmt.Errorf("quiz %d: %w", q.ID, ErrQuizExists)
	}
	m.quizzes[q.ID] = q.clone()
	m.order = append(m.order, q.ID)
	return nil
}

func (m *MemoryStore) GetQuiz(_ context.Context, id int64) (*Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quizzes[id]
	if !ok {
		return nil, ErrQuizNotFound
	}
	return q.clone(), nil
}

func (m *MemoryStore) ListQuizzes(_ context.Context) ([]QuizSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]QuizSummary, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.quizzes[id].summary())
	}
	return out, nil
}

func (m *MemoryStore) NextQuizID(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quizSeq++
	return m.quizSeq, nil
}

func (m *MemoryStore) NextQuestionID(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questionSeq++
	return m.questionSeq, nil
}

func (m *MemoryStore) AddQuestion(_ context.Context, quizID int64, question Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quizzes[quizID]
	if !ok {
		return ErrQuizNotFound
	}
	q.AddQuestion(question.clone())
	return nil
}

// Reset clears all quizzes and restarts both counters at 1. Test isolation
// only; not reachable through the API.
func (m *MemoryStore) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quizzes = map[int64]*Quiz{}
	m.order = nil
	m.quizSeq = 0
	m.questionSeq = 0
	return nil
}
