// Package session implements the quiz-taking engine: a state machine that
// drives a single attempt from load to submission. It owns the current
// question index, the sparse answer map, and the countdown, and posts the
// ordered answer list to the gateway when the attempt ends (explicit finish
// or timeout). A Session is single-use; retakes create a fresh one.
package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"quizhub/internal/gateway"
	"quizhub/internal/quiz"
)

// State is the lifecycle phase of a Session.
type State int

const (
	StateLoading State = iota
	StateInProgress
	StateSubmitting
	StateCompleted
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateInProgress:
		return "in-progress"
	case StateSubmitting:
		return "submitting"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

var (
	ErrAlreadyStarted   = errors.New("session: already started")
	ErrNotInProgress    = errors.New("session: not in progress")
	ErrOptionOutOfRange = errors.New("session: option index out of range")
	ErrIndexOutOfRange  = errors.New("session: question index out of range")
	ErrClosed           = errors.New("session: closed")
)

// Gateway is the slice of the mock API the engine needs. *gateway.Service
// satisfies it.
type Gateway interface {
	GetQuiz(ctx context.Context, quizID string) (quiz.Quiz, error)
	GetQuizQuestions(ctx context.Context, quizID string) ([]quiz.Question, error)
	SubmitAttempt(ctx context.Context, req gateway.SubmitRequest) (quiz.Attempt, error)
}

// Session holds the ephemeral state of one quiz attempt. All methods are
// safe for concurrent use; the countdown loop and the caller's event
// handling may run on different goroutines.
type Session struct {
	gw     Gateway
	clock  Clock
	userID string
	quizID string

	mu        sync.Mutex
	state     State
	started   bool
	quiz      quiz.Quiz
	questions []quiz.Question
	answers   map[int]int // question index -> selected option; unanswered absent
	current   int
	remaining int // seconds
	startedAt time.Time
	submitted bool // timeout auto-submit fired; never resets
	result    *quiz.Attempt
}

// NewSession creates a session in the Loading state. Call Start to fetch the
// quiz and begin the attempt.
func NewSession(gw Gateway, clock Clock, userID, quizID string) *Session {
	return &Session{
		gw:      gw,
		clock:   clock,
		userID:  userID,
		quizID:  quizID,
		state:   StateLoading,
		answers: make(map[int]int),
	}
}

// Start fetches the quiz metadata and question list concurrently and enters
// InProgress. A quiz with no questions aborts the session with
// quiz.ErrNoQuestions. A time limit of zero submits immediately.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started || s.state != StateLoading {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	var (
		meta      quiz.Quiz
		questions []quiz.Question
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		meta, err = s.gw.GetQuiz(gctx, s.quizID)
		return err
	})
	g.Go(func() error {
		var err error
		questions, err = s.gw.GetQuizQuestions(gctx, s.quizID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.abort()
		return err
	}
	if len(questions) == 0 {
		s.abort()
		return quiz.ErrNoQuestions
	}

	s.mu.Lock()
	if s.state != StateLoading {
		s.mu.Unlock()
		return ErrClosed
	}
	s.quiz = meta
	s.questions = questions
	s.current = 0
	s.remaining = meta.TimeLimit
	s.startedAt = s.clock.Now()
	s.state = StateInProgress

	if s.remaining <= 0 {
		s.submitted = true
		return s.submitLocked(ctx)
	}
	s.mu.Unlock()
	return nil
}

// Select records or overwrites the chosen option for the current question.
// It does not advance and does not check correctness.
func (s *Session) Select(option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if option < 0 || option >= len(s.questions[s.current].Options) {
		return ErrOptionOutOfRange
	}
	s.answers[s.current] = option
	return nil
}

// Next advances to the following question. At the last question it is a
// no-op.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if s.current < len(s.questions)-1 {
		s.current++
	}
	return nil
}

// Prev moves to the preceding question. At the first question it is a no-op.
func (s *Session) Prev() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if s.current > 0 {
		s.current--
	}
	return nil
}

// Jump moves directly to the question at index.
func (s *Session) Jump(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if index < 0 || index >= len(s.questions) {
		return ErrIndexOutOfRange
	}
	s.current = index
	return nil
}

// Tick consumes one second of the countdown. When the remaining time reaches
// zero it triggers submission exactly once; further ticks are no-ops, as are
// ticks arriving in any state other than InProgress.
func (s *Session) Tick(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return nil
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining > 0 || s.submitted {
		s.mu.Unlock()
		return nil
	}
	s.submitted = true
	return s.submitLocked(ctx)
}

// Finish submits the attempt on the user's explicit request. After a failed
// submission the session is back InProgress and Finish may be called again.
func (s *Session) Finish(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return ErrNotInProgress
	}
	return s.submitLocked(ctx)
}

// submitLocked is entered holding s.mu and releases it around the gateway
// call. When the call resolves after the session was closed, the graded
// result is discarded.
func (s *Session) submitLocked(ctx context.Context) error {
	s.state = StateSubmitting
	submissions := make([]quiz.Submission, len(s.questions))
	for i, q := range s.questions {
		sub := quiz.Submission{QuestionID: q.ID}
		if selected, ok := s.answers[i]; ok {
			v := selected
			sub.Selected = &v
		}
		submissions[i] = sub
	}
	req := gateway.SubmitRequest{
		QuizID:    s.quizID,
		UserID:    s.userID,
		TimeSpent: int(s.clock.Now().Sub(s.startedAt).Seconds()),
		Answers:   submissions,
	}
	s.mu.Unlock()

	attempt, err := s.gw.SubmitAttempt(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSubmitting {
		return ErrClosed
	}
	if err != nil {
		log.Printf("session: submit attempt for quiz %s failed: %v", s.quizID, err)
		s.state = StateInProgress
		return err
	}
	s.result = &attempt
	s.state = StateCompleted
	return nil
}

// Close ends the session, as when the user navigates away. Completed
// sessions keep their result; anything else becomes Aborted. A submission
// in flight when Close is called resolves as a no-op.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCompleted {
		s.state = StateAborted
	}
}

// Run drives the one-second countdown until the session leaves InProgress
// or ctx is cancelled. It returns the submission error if the timeout
// auto-submit fails.
func (s *Session) Run(ctx context.Context) error {
	ticker := s.clock.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			if err := s.Tick(ctx); err != nil {
				return err
			}
			if s.State() != StateInProgress {
				return nil
			}
		}
	}
}

func (s *Session) abort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCompleted {
		s.state = StateAborted
	}
}

// State reports the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Quiz returns the loaded quiz metadata.
func (s *Session) Quiz() quiz.Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz
}

// Questions returns a copy of the loaded question list in original order.
func (s *Session) Questions() []quiz.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]quiz.Question(nil), s.questions...)
}

// Current reports the index of the question being shown.
func (s *Session) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Remaining reports the seconds left on the countdown.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Selected returns the recorded option for the current question, if any.
func (s *Session) Selected() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	selected, ok := s.answers[s.current]
	return selected, ok
}

// AnsweredCount reports how many questions have a recorded selection.
func (s *Session) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// Result returns the graded attempt once the session is Completed.
func (s *Session) Result() (quiz.Attempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return quiz.Attempt{}, false
	}
	return *s.result, true
}
