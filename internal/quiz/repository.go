package quiz

import (
	"context"
	"errors"
)

var (
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoQuestions        = errors.New("quiz has no questions")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type QuizRepository interface {
	ListQuizzes(ctx context.Context) ([]Quiz, error)
	GetQuiz(ctx context.Context, quizID string) (Quiz, error)
	// GetQuizQuestions returns the quiz's questions in their canonical order.
	// A quiz id with no matching questions yields an empty list, not an error.
	GetQuizQuestions(ctx context.Context, quizID string) ([]Question, error)
}

type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt Attempt) error
	GetUserAttempts(ctx context.Context, userID string) ([]Attempt, error)
}

type UserRepository interface {
	GetUser(ctx context.Context, userID string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}
