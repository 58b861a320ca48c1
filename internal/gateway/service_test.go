package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"quizhub/internal/auth"
	"quizhub/internal/quiz"
)

type fakeQuizRepo struct {
	quizzes   map[string]quiz.Quiz
	questions map[string][]quiz.Question
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		quizzes:   make(map[string]quiz.Quiz),
		questions: make(map[string][]quiz.Question),
	}
}

func (f *fakeQuizRepo) ListQuizzes(_ context.Context) ([]quiz.Quiz, error) {
	out := make([]quiz.Quiz, 0, len(f.quizzes))
	for _, q := range f.quizzes {
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeQuizRepo) GetQuiz(_ context.Context, quizID string) (quiz.Quiz, error) {
	q, ok := f.quizzes[quizID]
	if !ok {
		return quiz.Quiz{}, quiz.ErrQuizNotFound
	}
	return q, nil
}

func (f *fakeQuizRepo) GetQuizQuestions(_ context.Context, quizID string) ([]quiz.Question, error) {
	return append([]quiz.Question(nil), f.questions[quizID]...), nil
}

type fakeAttemptRepo struct {
	created   []quiz.Attempt
	createErr error
}

func (f *fakeAttemptRepo) CreateAttempt(_ context.Context, attempt quiz.Attempt) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, attempt)
	return nil
}

func (f *fakeAttemptRepo) GetUserAttempts(_ context.Context, userID string) ([]quiz.Attempt, error) {
	out := make([]quiz.Attempt, 0)
	for _, attempt := range f.created {
		if attempt.UserID == userID {
			out = append(out, attempt)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]quiz.User
}

func newFakeUserRepo(users ...quiz.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]quiz.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) GetUser(_ context.Context, userID string) (quiz.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return quiz.User{}, quiz.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (quiz.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return quiz.User{}, quiz.ErrUserNotFound
}

func intPtr(v int) *int {
	return &v
}

func testService(quizzes *fakeQuizRepo, attempts *fakeAttemptRepo, users *fakeUserRepo, opts Options) *Service {
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	}
	return NewService(quizzes, attempts, users, auth.NewTokenIssuer("test-secret", time.Hour), opts)
}

func seedQuizOne(repo *fakeQuizRepo) {
	repo.quizzes["1"] = quiz.Quiz{ID: "1", Title: "JavaScript Fundamentals", TimeLimit: 1800}
	repo.questions["1"] = []quiz.Question{
		{ID: "q1", QuizID: "1", Options: []string{"a", "b"}, CorrectIndex: 0},
		{ID: "q2", QuizID: "1", Options: []string{"a", "b"}, CorrectIndex: 1},
	}
}

func TestSubmitAttemptGradesAndPersists(t *testing.T) {
	quizzes := newFakeQuizRepo()
	seedQuizOne(quizzes)
	attempts := &fakeAttemptRepo{}
	service := testService(quizzes, attempts, newFakeUserRepo(), Options{})

	attempt, err := service.SubmitAttempt(context.Background(), SubmitRequest{
		QuizID:    "1",
		UserID:    "u1",
		TimeSpent: 90,
		Answers: []quiz.Submission{
			{QuestionID: "q1", Selected: intPtr(0)},
			{QuestionID: "q2", Selected: intPtr(0)},
		},
	})
	if err != nil {
		t.Fatalf("SubmitAttempt failed: %v", err)
	}

	if attempt.ID == "" {
		t.Fatalf("attempt was not assigned an id")
	}
	if attempt.CorrectAnswers != 1 || attempt.Score != 50 {
		t.Fatalf("grade = (%d correct, score %d), want (1, 50)", attempt.CorrectAnswers, attempt.Score)
	}
	if attempt.TotalQuestions != 2 || attempt.TimeSpent != 90 {
		t.Fatalf("attempt bookkeeping wrong: %+v", attempt)
	}
	if !attempt.CompletedAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("CompletedAt not taken from injected clock: %v", attempt.CompletedAt)
	}
	if len(attempts.created) != 1 || attempts.created[0].ID != attempt.ID {
		t.Fatalf("attempt not persisted: %+v", attempts.created)
	}
}

func TestSubmitAttemptNotFoundCases(t *testing.T) {
	quizzes := newFakeQuizRepo()
	quizzes.quizzes["empty"] = quiz.Quiz{ID: "empty"}
	service := testService(quizzes, &fakeAttemptRepo{}, newFakeUserRepo(), Options{})

	if _, err := service.SubmitAttempt(context.Background(), SubmitRequest{QuizID: "missing"}); !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Fatalf("unknown quiz error = %v, want ErrQuizNotFound", err)
	}
	// A quiz with zero questions cannot be graded either.
	if _, err := service.SubmitAttempt(context.Background(), SubmitRequest{QuizID: "empty"}); !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Fatalf("empty quiz error = %v, want ErrQuizNotFound", err)
	}
}

func TestSubmitAttemptClampsNegativeTimeSpent(t *testing.T) {
	quizzes := newFakeQuizRepo()
	seedQuizOne(quizzes)
	service := testService(quizzes, &fakeAttemptRepo{}, newFakeUserRepo(), Options{})

	attempt, err := service.SubmitAttempt(context.Background(), SubmitRequest{QuizID: "1", UserID: "u1", TimeSpent: -5})
	if err != nil {
		t.Fatalf("SubmitAttempt failed: %v", err)
	}
	if attempt.TimeSpent != 0 {
		t.Fatalf("TimeSpent = %d, want 0", attempt.TimeSpent)
	}
}

func TestGetQuizQuestionsEmptyIsNotAnError(t *testing.T) {
	service := testService(newFakeQuizRepo(), &fakeAttemptRepo{}, newFakeUserRepo(), Options{})

	questions, err := service.GetQuizQuestions(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("GetQuizQuestions failed: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected empty list, got %d questions", len(questions))
	}
}

func TestGetUserAttemptsEnrichesWithQuiz(t *testing.T) {
	quizzes := newFakeQuizRepo()
	seedQuizOne(quizzes)
	attempts := &fakeAttemptRepo{created: []quiz.Attempt{
		{ID: "a1", UserID: "u1", QuizID: "1", Score: 50},
		{ID: "a2", UserID: "u1", QuizID: "vanished", Score: 10},
	}}
	users := newFakeUserRepo(quiz.User{ID: "u1", Email: "john@example.com"})
	service := testService(quizzes, attempts, users, Options{})

	history, err := service.GetUserAttempts(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetUserAttempts failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].Quiz.Title != "JavaScript Fundamentals" {
		t.Fatalf("attempt not enriched with quiz: %+v", history[0])
	}
	if history[1].Quiz.ID != "" {
		t.Fatalf("vanished quiz should leave a zero quiz, got %+v", history[1].Quiz)
	}
}

func TestGetUserAttemptsUnknownUser(t *testing.T) {
	service := testService(newFakeQuizRepo(), &fakeAttemptRepo{}, newFakeUserRepo(), Options{})
	if _, err := service.GetUserAttempts(context.Background(), "ghost"); !errors.Is(err, quiz.ErrUserNotFound) {
		t.Fatalf("unknown user error = %v, want ErrUserNotFound", err)
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	users := newFakeUserRepo(quiz.User{
		ID:           "u1",
		Email:        "john@example.com",
		PasswordHash: auth.MustHashPassword("password123"),
	})
	service := testService(newFakeQuizRepo(), &fakeAttemptRepo{}, users, Options{})

	user, token, err := service.Login(context.Background(), "john@example.com", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.ID != "u1" || token == "" {
		t.Fatalf("unexpected login result: user=%+v token=%q", user, token)
	}

	if _, _, err := service.Login(context.Background(), "john@example.com", "wrong-pass"); !errors.Is(err, quiz.ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := service.Login(context.Background(), "ghost@example.com", "password123"); !errors.Is(err, quiz.ErrInvalidCredentials) {
		t.Fatalf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginDemoModeSkipsPasswordCheckOnly(t *testing.T) {
	users := newFakeUserRepo(quiz.User{ID: "u1", Email: "john@example.com"})
	service := testService(newFakeQuizRepo(), &fakeAttemptRepo{}, users, Options{DemoLogin: true})

	if _, _, err := service.Login(context.Background(), "john@example.com", "anything"); err != nil {
		t.Fatalf("demo login failed: %v", err)
	}
	// Unknown emails must still be rejected even in demo mode.
	if _, _, err := service.Login(context.Background(), "ghost@example.com", "anything"); !errors.Is(err, quiz.ErrInvalidCredentials) {
		t.Fatalf("demo unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginValidatesFields(t *testing.T) {
	service := testService(newFakeQuizRepo(), &fakeAttemptRepo{}, newFakeUserRepo(), Options{})

	_, _, err := service.Login(context.Background(), "not-an-email", "")
	var v *ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if v.Fields["email"] == "" || v.Fields["password"] == "" {
		t.Fatalf("missing field messages: %+v", v.Fields)
	}
}

func TestRegisterSynthesizesUserWithoutPersisting(t *testing.T) {
	users := newFakeUserRepo()
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	service := NewService(newFakeQuizRepo(), &fakeAttemptRepo{}, users, tokens, Options{})

	user, token, err := service.Register(context.Background(), RegisterRequest{
		Username:  "new_user",
		Email:     "new@example.com",
		Password:  "secret99",
		FirstName: "New",
		LastName:  "User",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == "" || user.JoinedAt.IsZero() {
		t.Fatalf("incomplete synthesized user: %+v", user)
	}
	if !auth.CheckPassword(user.PasswordHash, "secret99") {
		t.Fatalf("password hash does not verify")
	}

	subject, err := tokens.Verify(token)
	if err != nil || subject != user.ID {
		t.Fatalf("token subject = (%q, %v), want new user id", subject, err)
	}

	// The mock contract keeps the record out of the repository.
	if len(users.users) != 0 {
		t.Fatalf("register must not persist: %+v", users.users)
	}
}

func TestRegisterValidation(t *testing.T) {
	service := testService(newFakeQuizRepo(), &fakeAttemptRepo{}, newFakeUserRepo(), Options{})

	_, _, err := service.Register(context.Background(), RegisterRequest{
		Username: "x",
		Email:    "bad-email",
		Password: "short",
	})
	var v *ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"email", "password", "first_name", "last_name"} {
		if v.Fields[field] == "" {
			t.Fatalf("expected message for field %q: %+v", field, v.Fields)
		}
	}
}

func TestLatencyHonorsCancellation(t *testing.T) {
	quizzes := newFakeQuizRepo()
	seedQuizOne(quizzes)
	service := testService(quizzes, &fakeAttemptRepo{}, newFakeUserRepo(), Options{Latency: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := service.GetQuiz(ctx, "1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("cancelled call still waited on the latency timer")
	}
}
