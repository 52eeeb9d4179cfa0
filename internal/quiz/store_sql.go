package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SQLStore implements Store on database/sql. Questions are kept as a JSON
// column on the quiz row; id issuance goes through the id_counters table so
// ids stay strictly increasing across restarts.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) CreateQuiz(ctx context.Context, q *Quiz) error {
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return err
	}
	var exists int
	err = s.db.QueryRowContext(ctx, `SELECT 1 FROM quizzes WHERE id=$1`, q.ID).Scan(&exists)
	if err == nil {
		return fmt.Errorf("quiz %d: %w", q.ID, ErrQuizExists)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quizzes (id,title,created_at,questions_json) VALUES ($1,$2,$3,$4)`,
		q.ID, q.Title, q.CreatedAt.Unix(), string(qj))
	return err
}

func (s *SQLStore) GetQuiz(ctx context.Context, id int64) (*Quiz, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,created_at,questions_json FROM quizzes WHERE id=$1`, id)
	return scanQuiz(row)
}

func (s *SQLStore) ListQuizzes(ctx context.Context) ([]QuizSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,title,created_at,questions_json FROM quizzes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []QuizSummary{}
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q.summary())
	}
	return out, rows.Err()
}

func (s *SQLStore) NextQuizID(ctx context.Context) (int64, error) {
	return s.nextID(ctx, "quiz")
}

func (s *SQLStore) NextQuestionID(ctx context.Context) (int64, error) {
	return s.nextID(ctx, "question")
}

func (s *SQLStore) nextID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`UPDATE id_counters SET value = value + 1 WHERE name=$1 RETURNING value`, name).Scan(&id)
	return id, err
}

func (s *SQLStore) AddQuestion(ctx context.Context, quizID int64, question Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Postgres needs the row lock so two concurrent appends cannot read the
	// same JSON snapshot and overwrite each other under READ COMMITTED.
	// SQLite has a single writer and rejects FOR UPDATE syntax.
	query := `SELECT questions_json FROM quizzes WHERE id=$1`
	if s.driver == "postgres" {
		query += ` FOR UPDATE`
	}
	var qjson string
	err = tx.QueryRowContext(ctx, query, quizID).Scan(&qjson)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrQuizNotFound
	}
	if err != nil {
		return err
	}

	var questions []Question
	if err := json.Unmarshal([]byte(qjson), &questions); err != nil {
		return err
	}
	questions = append(questions, question)
	buf, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE quizzes SET questions_json=$1 WHERE id=$2`, string(buf), quizID); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLStore) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM quizzes`); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `UPDATE id_counters SET value = 0`)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuiz(row rowScanner) (*Quiz, error) {
	var (
		q       Quiz
		created int64
		qjson   string
	)
	if err := row.Scan(&q.ID, &q.Title, &created, &qjson); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	q.CreatedAt = time.Unix(created, 0).UTC()
	if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
		return nil, err
	}
	if q.Questions == nil {
		q.Questions = []Question{}
	}
	return &q, nil
}
