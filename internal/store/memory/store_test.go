package memory

import (
	"context"
	"errors"
	"testing"

	"quizhub/internal/fixtures"
	"quizhub/internal/quiz"
)

func seededStore() *Store {
	store := NewStore()
	store.Seed(fixtures.Quizzes(), fixtures.Questions(), fixtures.Users(), fixtures.Attempts())
	return store
}

func TestGetQuizNotFound(t *testing.T) {
	store := seededStore()
	if _, err := store.GetQuiz(context.Background(), "999"); !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Fatalf("GetQuiz(999) error = %v, want ErrQuizNotFound", err)
	}
}

func TestGetQuizQuestionsKeepsOrderAndAllowsEmpty(t *testing.T) {
	store := seededStore()

	questions, err := store.GetQuizQuestions(context.Background(), "1")
	if err != nil {
		t.Fatalf("GetQuizQuestions failed: %v", err)
	}
	if len(questions) != 5 {
		t.Fatalf("quiz 1 question count = %d, want 5", len(questions))
	}
	for i, question := range questions {
		if question.ID != fixtures.Questions()[i].ID {
			t.Fatalf("question order broken at %d: got %s", i, question.ID)
		}
	}

	empty, err := store.GetQuizQuestions(context.Background(), "4")
	if err != nil {
		t.Fatalf("empty quiz lookup must not error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("quiz 4 should have no questions, got %d", len(empty))
	}
}

func TestCreateAndListAttemptsIsolatesCopies(t *testing.T) {
	store := seededStore()
	ctx := context.Background()

	selected := 1
	attempt := quiz.Attempt{
		ID:     "a-new",
		UserID: "u2",
		QuizID: "3",
		Score:  50,
		Answers: []quiz.AnswerRecord{
			{QuestionID: "q9", Selected: &selected, CorrectIndex: 0},
		},
	}
	if err := store.CreateAttempt(ctx, attempt); err != nil {
		t.Fatalf("CreateAttempt failed: %v", err)
	}

	// Mutating the caller's record after the write must not reach the store.
	*attempt.Answers[0].Selected = 3

	got, err := store.GetUserAttempts(ctx, "u2")
	if err != nil {
		t.Fatalf("GetUserAttempts failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("u2 attempt count = %d, want 2", len(got))
	}
	var created *quiz.Attempt
	for i := range got {
		if got[i].ID == "a-new" {
			created = &got[i]
		}
	}
	if created == nil {
		t.Fatalf("created attempt missing from listing")
	}
	if *created.Answers[0].Selected != 1 {
		t.Fatalf("store shared answer memory with caller: selected = %d", *created.Answers[0].Selected)
	}

	// Mutating a read result must not reach the store either.
	*created.Answers[0].Selected = 2
	again, _ := store.GetUserAttempts(ctx, "u2")
	for _, a := range again {
		if a.ID == "a-new" && *a.Answers[0].Selected != 1 {
			t.Fatalf("read result shared memory with store")
		}
	}
}

func TestGetUserByEmailIsCaseInsensitive(t *testing.T) {
	store := seededStore()

	user, err := store.GetUserByEmail(context.Background(), "JOHN@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := store.GetUserByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, quiz.ErrUserNotFound) {
		t.Fatalf("unknown email error = %v, want ErrUserNotFound", err)
	}
}
