package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"quizhub/internal/quiz"
)

// Seed replaces all quiz, question, user, and attempt rows in a single
// transaction so a partially seeded database can never be observed.
func (s *Store) Seed(ctx context.Context, quizzes []quiz.Quiz, questions []quiz.Question, users []quiz.User, attempts []quiz.Attempt) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"attempts", "questions", "quizzes", "users"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return err
		}
	}

	for _, q := range quizzes {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO quizzes (quiz_id, title, description, category, difficulty, time_limit, question_count, thumbnail)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			q.ID, q.Title, q.Description, q.Category, string(q.Difficulty), q.TimeLimit, q.QuestionCount, q.Thumbnail,
		)
		if err != nil {
			return err
		}
	}

	positions := make(map[string]int)
	for _, question := range questions {
		optionsJSON, err := json.Marshal(question.Options)
		if err != nil {
			return err
		}
		position := positions[question.QuizID]
		positions[question.QuizID] = position + 1

		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO questions (question_id, quiz_id, position, prompt, qtype, options_json, correct_index, explanation)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			question.ID, question.QuizID, position, question.Prompt, string(question.Type), string(optionsJSON), question.CorrectIndex, question.Explanation,
		)
		if err != nil {
			return err
		}
	}

	for _, user := range users {
		if err := insertUser(ctx, tx, user); err != nil {
			return err
		}
	}

	for _, attempt := range attempts {
		if err := insertAttempt(ctx, tx, attempt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) ListQuizzes(ctx context.Context) ([]quiz.Quiz, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT quiz_id, title, description, category, difficulty, time_limit, question_count, thumbnail
		 FROM quizzes
		 ORDER BY quiz_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quizzes := make([]quiz.Quiz, 0)
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

func (s *Store) GetQuiz(ctx context.Context, quizID string) (quiz.Quiz, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT quiz_id, title, description, category, difficulty, time_limit, question_count, thumbnail
		 FROM quizzes WHERE quiz_id = ?`,
		quizID,
	)

	q, err := scanQuiz(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.Quiz{}, quiz.ErrQuizNotFound
		}
		return quiz.Quiz{}, err
	}
	return q, nil
}

func (s *Store) GetQuizQuestions(ctx context.Context, quizID string) ([]quiz.Question, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT question_id, quiz_id, prompt, qtype, options_json, correct_index, explanation
		 FROM questions
		 WHERE quiz_id = ?
		 ORDER BY position ASC`,
		quizID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]quiz.Question, 0)
	for rows.Next() {
		var (
			question    quiz.Question
			qtype       string
			optionsJSON string
		)
		if err := rows.Scan(&question.ID, &question.QuizID, &question.Prompt, &qtype, &optionsJSON, &question.CorrectIndex, &question.Explanation); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(optionsJSON), &question.Options); err != nil {
			return nil, err
		}
		question.Type = quiz.QuestionType(qtype)
		questions = append(questions, question)
	}
	return questions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuiz(row rowScanner) (quiz.Quiz, error) {
	var (
		q          quiz.Quiz
		difficulty string
	)
	err := row.Scan(&q.ID, &q.Title, &q.Description, &q.Category, &difficulty, &q.TimeLimit, &q.QuestionCount, &q.Thumbnail)
	if err != nil {
		return quiz.Quiz{}, err
	}
	q.Difficulty = quiz.Difficulty(difficulty)
	return q, nil
}
