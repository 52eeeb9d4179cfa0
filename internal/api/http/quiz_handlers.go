package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/quizforge/quizforge/internal/quiz"
)

type quizCreatedResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

func CreateQuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createQuizRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadJSON(w)
			return
		}
		if details := req.validate(); len(details) > 0 {
			writeValidation(w, details)
			return
		}
		q, err := svc.CreateQuiz(r.Context(), req.Title)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeSuccess(w, http.StatusCreated, "Quiz created successfully", quizCreatedResponse{
			ID:        q.ID,
			Title:     q.Title,
			CreatedAt: q.CreatedAt,
		})
	}
}

func ListQuizzesHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizzes, err := svc.ListQuizzes(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Quizzes retrieved successfully", quizzes)
	}
}

func GetQuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := quizIDParam(r)
		if !ok {
			writeValidation(w, []string{"id must be a positive integer"})
			return
		}
		summary, err := svc.GetQuiz(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Quiz retrieved successfully", summary)
	}
}
