package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"quizhub/internal/quiz"
)

const userColumns = `user_id, username, email, first_name, last_name, avatar, joined_at_unix, total_quizzes, average_score, password_hash`

func (s *Store) GetUser(ctx context.Context, userID string) (quiz.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = ?`, userID)
	return scanUser(row)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (quiz.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ? COLLATE NOCASE`, email)
	return scanUser(row)
}

func scanUser(row *sql.Row) (quiz.User, error) {
	var (
		user         quiz.User
		joinedAtUnix int64
	)
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Avatar,
		&joinedAtUnix,
		&user.TotalQuizzes,
		&user.AverageScore,
		&user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.User{}, quiz.ErrUserNotFound
		}
		return quiz.User{}, err
	}
	user.JoinedAt = time.Unix(0, joinedAtUnix).UTC()
	return user, nil
}

func insertUser(ctx context.Context, tx *sql.Tx, user quiz.User) error {
	_, err := tx.ExecContext(
		ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Avatar,
		user.JoinedAt.UnixNano(),
		user.TotalQuizzes,
		user.AverageScore,
		user.PasswordHash,
	)
	return err
}
