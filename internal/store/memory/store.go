// Package memory implements the repositories over process memory. Reads
// return fresh copies so callers can never observe or cause shared-state
// mutation.
package memory

import (
	"context"
	"strings"
	"sync"

	"quizhub/internal/quiz"
)

type Store struct {
	mu        sync.RWMutex
	quizzes   []quiz.Quiz
	questions map[string][]quiz.Question // quiz id -> ordered questions
	users     map[string]quiz.User       // user id -> user
	attempts  []quiz.Attempt
}

func NewStore() *Store {
	return &Store{
		questions: make(map[string][]quiz.Question),
		users:     make(map[string]quiz.User),
	}
}

// Seed replaces the store contents. Questions keep the order they arrive in.
func (s *Store) Seed(quizzes []quiz.Quiz, questions []quiz.Question, users []quiz.User, attempts []quiz.Attempt) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quizzes = append([]quiz.Quiz(nil), quizzes...)

	s.questions = make(map[string][]quiz.Question, len(quizzes))
	for _, question := range questions {
		s.questions[question.QuizID] = append(s.questions[question.QuizID], question)
	}

	s.users = make(map[string]quiz.User, len(users))
	for _, user := range users {
		s.users[user.ID] = user
	}

	s.attempts = make([]quiz.Attempt, 0, len(attempts))
	for _, attempt := range attempts {
		s.attempts = append(s.attempts, copyAttempt(attempt))
	}
}

func (s *Store) ListQuizzes(_ context.Context) ([]quiz.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]quiz.Quiz(nil), s.quizzes...), nil
}

func (s *Store) GetQuiz(_ context.Context, quizID string) (quiz.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.quizzes {
		if q.ID == quizID {
			return q, nil
		}
	}
	return quiz.Quiz{}, quiz.ErrQuizNotFound
}

func (s *Store) GetQuizQuestions(_ context.Context, quizID string) ([]quiz.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	questions := make([]quiz.Question, 0, len(s.questions[quizID]))
	for _, question := range s.questions[quizID] {
		question.Options = append([]string(nil), question.Options...)
		questions = append(questions, question)
	}
	return questions, nil
}

func (s *Store) CreateAttempt(_ context.Context, attempt quiz.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, copyAttempt(attempt))
	return nil
}

func (s *Store) GetUserAttempts(_ context.Context, userID string) ([]quiz.Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	attempts := make([]quiz.Attempt, 0)
	for _, attempt := range s.attempts {
		if attempt.UserID == userID {
			attempts = append(attempts, copyAttempt(attempt))
		}
	}
	return attempts, nil
}

func (s *Store) GetUser(_ context.Context, userID string) (quiz.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return quiz.User{}, quiz.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (quiz.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return quiz.User{}, quiz.ErrUserNotFound
}

func copyAttempt(attempt quiz.Attempt) quiz.Attempt {
	answers := make([]quiz.AnswerRecord, len(attempt.Answers))
	for i, record := range attempt.Answers {
		if record.Selected != nil {
			selected := *record.Selected
			record.Selected = &selected
		}
		answers[i] = record
	}
	attempt.Answers = answers
	return attempt
}
