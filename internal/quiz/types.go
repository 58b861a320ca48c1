package quiz

import (
	"strings"
	"time"
)

// Difficulty is one of the fixed difficulty levels a quiz can carry.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Rank orders difficulties Beginner < Intermediate < Advanced. Unknown
// values rank below Beginner so malformed data sorts first and is visible.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	default:
		return 0
	}
}

// ParseDifficulty matches a difficulty level case-insensitively.
func ParseDifficulty(value string) (Difficulty, bool) {
	for _, d := range []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced} {
		if strings.EqualFold(string(d), value) {
			return d, true
		}
	}
	return "", false
}

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionTrueFalse      QuestionType = "true-false"
)

// Quiz is the immutable metadata of one quiz.
type Quiz struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	TimeLimit     int        `json:"time_limit"` // seconds
	QuestionCount int        `json:"question_count"`
	Thumbnail     string     `json:"thumbnail,omitempty"`
}

// Question is one multiple-choice question owned by a quiz. Immutable.
type Question struct {
	ID           string       `json:"id"`
	QuizID       string       `json:"quiz_id"`
	Prompt       string       `json:"prompt"`
	Type         QuestionType `json:"type"`
	Options      []string     `json:"options"`
	CorrectIndex int          `json:"correct_index"`
	Explanation  string       `json:"explanation,omitempty"`
}

// AnswerRecord is the graded outcome for a single question within an
// attempt. Selected is nil when the question was left unanswered.
type AnswerRecord struct {
	QuestionID   string `json:"question_id"`
	Selected     *int   `json:"selected"`
	Correct      bool   `json:"correct"`
	CorrectIndex int    `json:"correct_index"`
	Explanation  string `json:"explanation,omitempty"`
}

// Attempt is a completed, graded record of one user taking one quiz once.
// Created at submission time and never mutated afterwards.
type Attempt struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	QuizID         string         `json:"quiz_id"`
	Score          int            `json:"score"` // 0-100
	TotalQuestions int            `json:"total_questions"`
	CorrectAnswers int            `json:"correct_answers"`
	TimeSpent      int            `json:"time_spent"` // seconds
	CompletedAt    time.Time      `json:"completed_at"`
	Answers        []AnswerRecord `json:"answers"`
}

// AttemptWithQuiz pairs an attempt with its parent quiz for display.
type AttemptWithQuiz struct {
	Attempt
	Quiz Quiz `json:"quiz"`
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Avatar       string    `json:"avatar,omitempty"`
	JoinedAt     time.Time `json:"joined_at"`
	TotalQuizzes int       `json:"total_quizzes"`
	AverageScore int       `json:"average_score"`
	PasswordHash string    `json:"-"`
}
