package fixtures

import (
	"testing"

	"quizhub/internal/auth"
)

func TestFixtureIntegrity(t *testing.T) {
	quizzes := Quizzes()
	if len(quizzes) != 5 {
		t.Fatalf("expected 5 quizzes, got %d", len(quizzes))
	}

	known := make(map[string]bool, len(quizzes))
	for _, q := range quizzes {
		known[q.ID] = true
	}

	perQuiz := make(map[string]int)
	for _, question := range Questions() {
		if !known[question.QuizID] {
			t.Fatalf("question %s references unknown quiz %s", question.ID, question.QuizID)
		}
		if question.CorrectIndex < 0 || question.CorrectIndex >= len(question.Options) {
			t.Fatalf("question %s correct index out of range", question.ID)
		}
		perQuiz[question.QuizID]++
	}

	if perQuiz["1"] != 5 || perQuiz["2"] != 3 || perQuiz["3"] != 2 {
		t.Fatalf("unexpected question distribution: %v", perQuiz)
	}
	if perQuiz["4"] != 0 || perQuiz["5"] != 0 {
		t.Fatalf("quizzes 4 and 5 must stay empty: %v", perQuiz)
	}
}

func TestFixtureUsersVerifyDemoPassword(t *testing.T) {
	for _, user := range Users() {
		if !auth.CheckPassword(user.PasswordHash, DemoPassword) {
			t.Fatalf("user %s does not accept the demo password", user.ID)
		}
	}
}

func TestFixtureAttemptsAreInternallyConsistent(t *testing.T) {
	for _, attempt := range Attempts() {
		correct := 0
		for _, record := range attempt.Answers {
			if record.Correct {
				correct++
			}
		}
		// Fixture answer lists are partial snapshots; they must never claim
		// more correct records than the attempt's correct-answer count.
		if correct > attempt.CorrectAnswers {
			t.Fatalf("attempt %s records %d correct answers, claims %d", attempt.ID, correct, attempt.CorrectAnswers)
		}
		if attempt.CorrectAnswers > attempt.TotalQuestions {
			t.Fatalf("attempt %s has more correct answers than questions", attempt.ID)
		}
	}
}

func TestFixturesReturnFreshCopies(t *testing.T) {
	first := Quizzes()
	first[0].Title = "mutated"
	if Quizzes()[0].Title == "mutated" {
		t.Fatalf("Quizzes returned shared state")
	}

	attempts := Attempts()
	attempts[0].Answers[0].Correct = false
	if !Attempts()[0].Answers[0].Correct {
		t.Fatalf("Attempts returned shared answer slices")
	}
}
