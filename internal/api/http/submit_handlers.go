package http

import (
	"encoding/json"
	"net/http"

	"github.com/quizforge/quizforge/internal/quiz"
)

func SubmitAnswersHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := quizIDParam(r)
		if !ok {
			writeValidation(w, []string{"id must be a positive integer"})
			return
		}
		var req submitAnswersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadJSON(w)
			return
		}
		if details := req.validate(); len(details) > 0 {
			writeValidation(w, details)
			return
		}
		report, err := svc.SubmitAnswers(r.Context(), id, req.Answers)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Quiz submitted successfully", report)
	}
}
