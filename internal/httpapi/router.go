package httpapi

import (
	"net/http"

	"quizhub/internal/gateway"
)

func NewRouter(service *gateway.Service) http.Handler {
	api := NewAPI(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/quizzes", api.HandleListQuizzes)
	mux.HandleFunc("/quizzes/{quiz_id}", api.HandleGetQuiz)
	mux.HandleFunc("/quizzes/{quiz_id}/questions", api.HandleQuizQuestions)
	mux.HandleFunc("/quizzes/{quiz_id}/attempts", api.HandleSubmitAttempt)
	mux.HandleFunc("/users/{user_id}/attempts", api.HandleUserAttempts)
	mux.HandleFunc("/auth/login", api.HandleLogin)
	mux.HandleFunc("/auth/register", api.HandleRegister)

	return mux
}
