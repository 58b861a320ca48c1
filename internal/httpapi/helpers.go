package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"quizhub/internal/gateway"
	"quizhub/internal/quiz"
)

func writeServiceError(w http.ResponseWriter, err error) {
	var validation *gateway.ValidationError
	switch {
	case errors.Is(err, quiz.ErrQuizNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "quiz not found"})
	case errors.Is(err, quiz.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "user not found"})
	case errors.Is(err, quiz.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: validation.Fields})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "request failed"})
	}
}

func toQuestionResponses(questions []quiz.Question) []questionResponse {
	response := make([]questionResponse, 0, len(questions))
	for _, question := range questions {
		response = append(response, questionResponse{
			QuestionID: question.ID,
			QuizID:     question.QuizID,
			Prompt:     question.Prompt,
			Type:       string(question.Type),
			Options:    question.Options,
		})
	}
	return response
}

// parseDateParam reads a YYYY-MM-DD query parameter. A missing value is the
// zero time, which the attempt filter treats as unbounded.
func parseDateParam(r *http.Request, key string) (time.Time, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errors.New(key + " must be a YYYY-MM-DD date")
	}
	return parsed, nil
}

func writeMethodNotAllowed(w http.ResponseWriter, allowedMethod string) {
	w.Header().Set("Allow", allowedMethod)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
