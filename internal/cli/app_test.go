package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"quizhub/internal/auth"
	"quizhub/internal/fixtures"
	"quizhub/internal/gateway"
	"quizhub/internal/store/memory"
)

func newTestService(t *testing.T) *gateway.Service {
	t.Helper()
	store := memory.NewStore()
	store.Seed(fixtures.Quizzes(), fixtures.Questions(), fixtures.Users(), fixtures.Attempts())
	return gateway.NewService(store, store, store, auth.NewTokenIssuer("test-secret", time.Hour), gateway.Options{})
}

func TestRunTakesQuizEndToEnd(t *testing.T) {
	service := newTestService(t)

	// Take quiz 1, answer every question with the first option, finish,
	// then leave. Option a is correct on q1 and q4 only.
	input := strings.NewReader("take 1\na\na\na\na\na\nf\nexit\n")
	var output strings.Builder

	if err := Run(context.Background(), service, "u1", input, &output); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := output.String()
	if !strings.Contains(got, "Starting JavaScript Fundamentals") {
		t.Fatalf("quiz was not started:\n%s", got)
	}
	if !strings.Contains(got, "Score: 40 (2/5 correct") {
		t.Fatalf("expected graded score in output:\n%s", got)
	}
}

func TestRunListsQuizzesSorted(t *testing.T) {
	service := newTestService(t)

	input := strings.NewReader("quizzes title\nexit\n")
	var output strings.Builder

	if err := Run(context.Background(), service, "u1", input, &output); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := output.String()
	first := strings.Index(got, "Database Design")
	second := strings.Index(got, "JavaScript Fundamentals")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("titles not listed in sorted order:\n%s", got)
	}
}

func TestRunShowsHistory(t *testing.T) {
	service := newTestService(t)

	input := strings.NewReader("history\nexit\n")
	var output strings.Builder

	if err := Run(context.Background(), service, "u1", input, &output); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(output.String(), "2 attempts") {
		t.Fatalf("expected fixture attempts in history:\n%s", output.String())
	}
}

func TestRunLoginSwitchesUser(t *testing.T) {
	service := newTestService(t)

	input := strings.NewReader("login jane@example.com " + fixtures.DemoPassword + "\nhistory\nexit\n")
	var output strings.Builder

	if err := Run(context.Background(), service, "u1", input, &output); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := output.String()
	if !strings.Contains(got, "logged in as jane_smith") {
		t.Fatalf("login did not succeed:\n%s", got)
	}
	// Jane has exactly one fixture attempt; history must reflect hers now.
	if !strings.Contains(got, "1 attempts") {
		t.Fatalf("history not switched to the logged-in user:\n%s", got)
	}
}

func TestRunUnknownQuizKeepsLooping(t *testing.T) {
	service := newTestService(t)

	input := strings.NewReader("take 999\nexit\n")
	var output strings.Builder

	if err := Run(context.Background(), service, "u1", input, &output); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(output.String(), "attempt ended") {
		t.Fatalf("expected a not-found message:\n%s", output.String())
	}
}
