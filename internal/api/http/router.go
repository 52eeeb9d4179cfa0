package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/quiz"
)

// Routes mounts the quiz API. The caller owns middleware and the mount point.
func Routes(svc *quiz.Service) chi.Router {
	r := chi.NewRouter()

	// Authoring
	r.Post("/quizzes", CreateQuizHandler(svc))
	r.Get("/quizzes", ListQuizzesHandler(svc))
	r.Get("/quizzes/{quizID}", GetQuizHandler(svc))
	r.Post("/quizzes/{quizID}/questions", AddQuestionHandler(svc))

	// Taking
	r.Get("/quizzes/{quizID}/questions", GetQuestionsForTakingHandler(svc))
	r.Post("/quizzes/{quizID}/submit", SubmitAnswersHandler(svc))

	return r
}
