package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quizhub/internal/quiz"
)

func TestParseDateParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users/u1/attempts", nil)
	if got, err := parseDateParam(req, "from"); err != nil || !got.IsZero() {
		t.Fatalf("default parseDateParam = (%v, %v), want zero time", got, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/users/u1/attempts?from=2024-02-15", nil)
	got, err := parseDateParam(req, "from")
	if err != nil {
		t.Fatalf("parseDateParam failed: %v", err)
	}
	want := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("parseDateParam = %v, want %v", got, want)
	}

	req = httptest.NewRequest(http.MethodGet, "/users/u1/attempts?from=15/02/2024", nil)
	if _, err := parseDateParam(req, "from"); err == nil {
		t.Fatalf("expected format validation error")
	}
}

func TestToQuestionResponsesHidesAnswers(t *testing.T) {
	questions := []quiz.Question{
		{
			ID:           "q1",
			QuizID:       "1",
			Prompt:       "What does JS stand for?",
			Type:         quiz.QuestionMultipleChoice,
			Options:      []string{"JavaScript", "JustScript"},
			CorrectIndex: 0,
			Explanation:  "It is JavaScript.",
		},
	}

	got := toQuestionResponses(questions)
	if len(got) != 1 {
		t.Fatalf("expected 1 question, got %d", len(got))
	}
	if got[0].QuestionID != "q1" || len(got[0].Options) != 2 {
		t.Fatalf("unexpected mapping: %+v", got[0])
	}

	// The wire payload must never leak the correct index or explanation.
	raw, err := json.Marshal(got[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, forbidden := range []string{"correct_index", "explanation", "It is JavaScript."} {
		if strings.Contains(string(raw), forbidden) {
			t.Fatalf("payload leaks %q: %s", forbidden, raw)
		}
	}
}

func TestWriteMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	writeMethodNotAllowed(rec, http.MethodPost)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if got := rec.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("allow header = %q, want %q", got, http.MethodPost)
	}

	var payload errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error != "method not allowed" {
		t.Fatalf("error payload = %q", payload.Error)
	}
}

func TestWriteServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"quiz not found", quiz.ErrQuizNotFound, http.StatusNotFound},
		{"user not found", quiz.ErrUserNotFound, http.StatusNotFound},
		{"bad credentials", quiz.ErrInvalidCredentials, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tc.err)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}
