package quiz

import "time"

// QuestionType discriminates the three supported question kinds. The value is
// the wire string accepted and emitted by the API.
type QuestionType string

const (
	TypeSingleChoice   QuestionType = "single-choice"
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeText           QuestionType = "text"
)

func (t QuestionType) valid() bool {
	switch t {
	case TypeSingleChoice, TypeMultipleChoice, TypeText:
		return true
	}
	return false
}

// Option is one labeled choice of a choice-type question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is a single gradable item. It is validated once in NewQuestion and
// never mutated afterwards.
type Question struct {
	ID             int64        `json:"id"`
	QuizID         int64        `json:"quizId"`
	Text           string       `json:"text"`
	Type           QuestionType `json:"type"`
	Options        []Option     `json:"options"`
	CorrectAnswers []string     `json:"correctAnswers"`
	WordLimit      *int         `json:"wordLimit,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// TakingQuestion is the answer-free projection served to quiz takers.
type TakingQuestion struct {
	ID        int64        `json:"id"`
	Text      string       `json:"text"`
	Type      QuestionType `json:"type"`
	Options   []Option     `json:"options"`
	WordLimit *int         `json:"wordLimit,omitempty"`
}

// Quiz is a titled, append-only list of questions. Insertion order is display
// and grading order.
type Quiz struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"createdAt"`
	Questions []Question `json:"questions"`
}

// QuizSummary is the listing shape: metadata plus question count.
type QuizSummary struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"createdAt"`
	QuestionCount int       `json:"questionCount"`
}

func (q Question) clone() Question {
	out := q
	if q.Options != nil {
		out.Options = append([]Option(nil), q.Options...)
	}
	if q.CorrectAnswers != nil {
		out.CorrectAnswers = append([]string(nil), q.CorrectAnswers...)
	}
	if q.WordLimit != nil {
		wl := *q.WordLimit
		out.WordLimit = &wl
	}
	return out
}

func (q *Quiz) clone() *Quiz {
	out := &Quiz{ID: q.ID, Title: q.Title, CreatedAt: q.CreatedAt}
	if q.Questions != nil {
		out.Questions = make([]Question, len(q.Questions))
		for i := range q.Questions {
			out.Questions[i] = q.Questions[i].clone()
		}
	}
	return out
}

func (q *Quiz) summary() QuizSummary {
	return QuizSummary{
		ID:            q.ID,
		Title:         q.Title,
		CreatedAt:     q.CreatedAt,
		QuestionCount: len(q.Questions),
	}
}
