package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/quizforge/quizforge/internal/quiz"
)

// questionResponse is the authoring echo of a stored question. Correct
// answers stay server-side even for the author's own response.
type questionResponse struct {
	ID        int64             `json:"id"`
	QuizID    int64             `json:"quizId"`
	Text      string            `json:"text"`
	Type      quiz.QuestionType `json:"type"`
	Options   []quiz.Option     `json:"options"`
	WordLimit *int              `json:"wordLimit,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

func AddQuestionHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := quizIDParam(r)
		if !ok {
			writeValidation(w, []string{"id must be a positive integer"})
			return
		}
		var req addQuestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadJSON(w)
			return
		}
		if details := req.validate(); len(details) > 0 {
			writeValidation(w, details)
			return
		}
		question, err := svc.AddQuestion(r.Context(), id, quiz.QuestionInput{
			Text:           req.Text,
			Type:           quiz.QuestionType(req.Type),
			Options:        req.Options,
			CorrectAnswers: req.CorrectAnswers,
			WordLimit:      req.WordLimit,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeSuccess(w, http.StatusCreated, "Question added successfully", questionResponse{
			ID:        question.ID,
			QuizID:    question.QuizID,
			Text:      question.Text,
			Type:      question.Type,
			Options:   question.Options,
			WordLimit: question.WordLimit,
			CreatedAt: question.CreatedAt,
		})
	}
}

func GetQuestionsForTakingHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := quizIDParam(r)
		if !ok {
			writeValidation(w, []string{"id must be a positive integer"})
			return
		}
		questions, err := svc.QuestionsForTaking(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Questions retrieved successfully", questions)
	}
}
