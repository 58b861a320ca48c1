package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"quizhub/internal/quiz"
)

func (s *Store) CreateAttempt(ctx context.Context, attempt quiz.Attempt) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertAttempt(ctx, tx, attempt); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) GetUserAttempts(ctx context.Context, userID string) ([]quiz.Attempt, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT attempt_id, user_id, quiz_id, score, total_questions, correct_answers, time_spent, completed_at_unix, answers_json
		 FROM attempts
		 WHERE user_id = ?
		 ORDER BY completed_at_unix ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts := make([]quiz.Attempt, 0)
	for rows.Next() {
		var (
			attempt         quiz.Attempt
			completedAtUnix int64
			answersJSON     string
		)
		err := rows.Scan(
			&attempt.ID,
			&attempt.UserID,
			&attempt.QuizID,
			&attempt.Score,
			&attempt.TotalQuestions,
			&attempt.CorrectAnswers,
			&attempt.TimeSpent,
			&completedAtUnix,
			&answersJSON,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(answersJSON), &attempt.Answers); err != nil {
			return nil, err
		}
		attempt.CompletedAt = time.Unix(0, completedAtUnix).UTC()
		attempts = append(attempts, attempt)
	}
	return attempts, rows.Err()
}

func insertAttempt(ctx context.Context, tx *sql.Tx, attempt quiz.Attempt) error {
	answersJSON, err := json.Marshal(attempt.Answers)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO attempts (attempt_id, user_id, quiz_id, score, total_questions, correct_answers, time_spent, completed_at_unix, answers_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		attempt.ID,
		attempt.UserID,
		attempt.QuizID,
		attempt.Score,
		attempt.TotalQuestions,
		attempt.CorrectAnswers,
		attempt.TimeSpent,
		attempt.CompletedAt.UnixNano(),
		string(answersJSON),
	)
	return err
}
