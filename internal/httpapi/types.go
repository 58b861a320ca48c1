package httpapi

import "quizhub/internal/quiz"

type quizzesResponse struct {
	Quizzes []quiz.Quiz `json:"quizzes"`
}

// questionResponse deliberately omits the correct index and explanation:
// answers are graded on submission, and clients must not be able to read
// them off the wire mid-attempt.
type questionResponse struct {
	QuestionID string   `json:"question_id"`
	QuizID     string   `json:"quiz_id"`
	Prompt     string   `json:"prompt"`
	Type       string   `json:"type"`
	Options    []string `json:"options"`
}

type questionsResponse struct {
	QuizID        string             `json:"quiz_id"`
	QuestionCount int                `json:"question_count"`
	Questions     []questionResponse `json:"questions"`
}

type answerSubmission struct {
	QuestionID string `json:"question_id"`
	Selected   *int   `json:"selected"` // null means unanswered
}

type submitAttemptRequest struct {
	UserID    string             `json:"user_id"`
	TimeSpent int                `json:"time_spent"`
	Answers   []answerSubmission `json:"answers"`
}

type userAttemptsResponse struct {
	Attempts []quiz.AttemptWithQuiz `json:"attempts"`
	Stats    quiz.HistoryStats      `json:"stats"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type authResponse struct {
	Token string    `json:"token"`
	User  quiz.User `json:"user"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
