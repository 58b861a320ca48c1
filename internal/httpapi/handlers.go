package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"quizhub/internal/gateway"
	"quizhub/internal/quiz"
)

func (a *API) HandleListQuizzes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	filter := quiz.QuizFilter{
		Search:   r.URL.Query().Get("search"),
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("difficulty")); raw != "" {
		difficulty, ok := quiz.ParseDifficulty(raw)
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown difficulty: " + raw})
			return
		}
		filter.Difficulty = difficulty
	}

	quizzes, err := a.service.ListQuizzes(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	quizzes = quiz.FilterQuizzes(quizzes, filter)
	if sortKey := strings.TrimSpace(r.URL.Query().Get("sort")); sortKey != "" {
		quizzes = quiz.SortQuizzes(quizzes, quiz.QuizSort(sortKey))
	}

	writeJSON(w, http.StatusOK, quizzesResponse{Quizzes: quizzes})
}

func (a *API) HandleGetQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	quizID := strings.TrimSpace(r.PathValue("quiz_id"))
	record, err := a.service.GetQuiz(r.Context(), quizID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (a *API) HandleQuizQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	quizID := strings.TrimSpace(r.PathValue("quiz_id"))
	questions, err := a.service.GetQuizQuestions(r.Context(), quizID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, questionsResponse{
		QuizID:        quizID,
		QuestionCount: len(questions),
		Questions:     toQuestionResponses(questions),
	})
}

func (a *API) HandleSubmitAttempt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	defer r.Body.Close()

	var request submitAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if request.Answers == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "answers is required"})
		return
	}

	submissions := make([]quiz.Submission, 0, len(request.Answers))
	for _, answer := range request.Answers {
		submissions = append(submissions, quiz.Submission{
			QuestionID: answer.QuestionID,
			Selected:   answer.Selected,
		})
	}

	attempt, err := a.service.SubmitAttempt(r.Context(), gateway.SubmitRequest{
		QuizID:    strings.TrimSpace(r.PathValue("quiz_id")),
		UserID:    strings.TrimSpace(request.UserID),
		TimeSpent: request.TimeSpent,
		Answers:   submissions,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, attempt)
}

func (a *API) HandleUserAttempts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	userID := strings.TrimSpace(r.PathValue("user_id"))
	attempts, err := a.service.GetUserAttempts(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	filter := quiz.AttemptFilter{
		Search:   r.URL.Query().Get("search"),
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
	}
	if filter.From, err = parseDateParam(r, "from"); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if filter.To, err = parseDateParam(r, "to"); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	attempts = quiz.FilterAttempts(attempts, filter)
	if sortKey := strings.TrimSpace(r.URL.Query().Get("sort")); sortKey != "" {
		attempts = quiz.SortAttempts(attempts, quiz.AttemptSort(sortKey))
	}

	writeJSON(w, http.StatusOK, userAttemptsResponse{
		Attempts: attempts,
		Stats:    quiz.ComputeHistoryStats(attempts),
	})
}

func (a *API) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	defer r.Body.Close()

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	user, token, err := a.service.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (a *API) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	defer r.Body.Close()

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	user, token, err := a.service.Register(r.Context(), gateway.RegisterRequest{
		Username:  request.Username,
		Email:     request.Email,
		Password:  request.Password,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}
