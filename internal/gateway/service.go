// Package gateway stands in for a remote quiz service. Every operation is
// context-aware, completes after a configurable artificial delay, and reads
// immutable fixture-backed repositories, so callers get a fresh object graph
// per call.
package gateway

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"quizhub/internal/auth"
	"quizhub/internal/quiz"
)

type Service struct {
	quizzes  quiz.QuizRepository
	attempts quiz.AttemptRepository
	users    quiz.UserRepository
	tokens   *auth.TokenIssuer

	latency   time.Duration
	demoLogin bool
	now       func() time.Time
}

type Options struct {
	// Latency is the simulated network delay applied to every operation.
	Latency time.Duration
	// DemoLogin accepts any password for a known email. Never enable this
	// outside local demos; the real path verifies bcrypt hashes.
	DemoLogin bool
	// Now overrides the clock, for tests.
	Now func() time.Time
}

func NewService(quizzes quiz.QuizRepository, attempts quiz.AttemptRepository, users quiz.UserRepository, tokens *auth.TokenIssuer, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if opts.DemoLogin {
		log.Printf("gateway: demo login enabled, passwords are NOT verified")
	}
	return &Service{
		quizzes:   quizzes,
		attempts:  attempts,
		users:     users,
		tokens:    tokens,
		latency:   opts.Latency,
		demoLogin: opts.DemoLogin,
		now:       now,
	}
}

// wait simulates network latency while honoring cancellation.
func (s *Service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Service) ListQuizzes(ctx context.Context) ([]quiz.Quiz, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.quizzes.ListQuizzes(ctx)
}

func (s *Service) GetQuiz(ctx context.Context, quizID string) (quiz.Quiz, error) {
	if err := s.wait(ctx); err != nil {
		return quiz.Quiz{}, err
	}
	return s.quizzes.GetQuiz(ctx, quizID)
}

// GetQuizQuestions returns the quiz's questions in canonical order. A quiz
// with no questions yields an empty list, not an error.
func (s *Service) GetQuizQuestions(ctx context.Context, quizID string) ([]quiz.Question, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.quizzes.GetQuizQuestions(ctx, quizID)
}

// SubmitRequest carries one full ordered answer set for grading.
type SubmitRequest struct {
	QuizID    string
	UserID    string
	TimeSpent int // seconds, measured by the caller from session start
	Answers   []quiz.Submission
}

// SubmitAttempt grades the submission and persists the resulting attempt.
// A quiz that is missing or has no questions cannot be graded and reports
// not-found, mirroring the lookup errors of the other operations.
func (s *Service) SubmitAttempt(ctx context.Context, req SubmitRequest) (quiz.Attempt, error) {
	if err := s.wait(ctx); err != nil {
		return quiz.Attempt{}, err
	}

	if _, err := s.quizzes.GetQuiz(ctx, req.QuizID); err != nil {
		return quiz.Attempt{}, err
	}
	questions, err := s.quizzes.GetQuizQuestions(ctx, req.QuizID)
	if err != nil {
		return quiz.Attempt{}, err
	}

	graded, err := quiz.Grade(questions, req.Answers)
	if err != nil {
		if errors.Is(err, quiz.ErrNoQuestions) {
			return quiz.Attempt{}, quiz.ErrQuizNotFound
		}
		return quiz.Attempt{}, err
	}

	timeSpent := req.TimeSpent
	if timeSpent < 0 {
		timeSpent = 0
	}

	attempt := quiz.Attempt{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		QuizID:         req.QuizID,
		Score:          graded.Score,
		TotalQuestions: len(questions),
		CorrectAnswers: graded.CorrectAnswers,
		TimeSpent:      timeSpent,
		CompletedAt:    s.now().UTC(),
		Answers:        graded.Answers,
	}

	if err := s.attempts.CreateAttempt(ctx, attempt); err != nil {
		return quiz.Attempt{}, err
	}
	return attempt, nil
}

// GetUserAttempts returns the user's attempts, each enriched with its parent
// quiz for display. An attempt whose quiz has since vanished keeps a zero
// quiz rather than disappearing from history.
func (s *Service) GetUserAttempts(ctx context.Context, userID string) ([]quiz.AttemptWithQuiz, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	attempts, err := s.attempts.GetUserAttempts(ctx, userID)
	if err != nil {
		return nil, err
	}

	enriched := make([]quiz.AttemptWithQuiz, 0, len(attempts))
	for _, attempt := range attempts {
		item := quiz.AttemptWithQuiz{Attempt: attempt}
		if q, err := s.quizzes.GetQuiz(ctx, attempt.QuizID); err == nil {
			item.Quiz = q
		} else if !errors.Is(err, quiz.ErrQuizNotFound) {
			return nil, err
		}
		enriched = append(enriched, item)
	}
	return enriched, nil
}
