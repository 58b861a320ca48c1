package sqlite

import "context"

func (s *Store) initSchema(ctx context.Context) error {
	// No FK constraints so reseeding stays simple and fully controlled by
	// application transactions.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS quizzes (
			quiz_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			category TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			time_limit INTEGER NOT NULL,
			question_count INTEGER NOT NULL,
			thumbnail TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS questions (
			question_id TEXT PRIMARY KEY,
			quiz_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			prompt TEXT NOT NULL,
			qtype TEXT NOT NULL,
			options_json TEXT NOT NULL,
			correct_index INTEGER NOT NULL,
			explanation TEXT NOT NULL DEFAULT '',
			UNIQUE (quiz_id, position)
		);`,
		`CREATE TABLE IF NOT EXISTS attempts (
			attempt_id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			quiz_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			total_questions INTEGER NOT NULL,
			correct_answers INTEGER NOT NULL,
			time_spent INTEGER NOT NULL,
			completed_at_unix INTEGER NOT NULL,
			answers_json TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE COLLATE NOCASE,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			avatar TEXT NOT NULL DEFAULT '',
			joined_at_unix INTEGER NOT NULL,
			total_quizzes INTEGER NOT NULL DEFAULT 0,
			average_score INTEGER NOT NULL DEFAULT 0,
			password_hash TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE INDEX IF NOT EXISTS idx_questions_quiz ON questions(quiz_id, position);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_user ON attempts(user_id, completed_at_unix DESC);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
