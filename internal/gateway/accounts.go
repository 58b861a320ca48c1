package gateway

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"quizhub/internal/auth"
	"quizhub/internal/quiz"
)

// Login authenticates by email and returns the user plus a signed session
// token. Unknown emails and wrong passwords both report invalid credentials
// so the response does not reveal which emails exist.
func (s *Service) Login(ctx context.Context, email, password string) (quiz.User, string, error) {
	if err := s.wait(ctx); err != nil {
		return quiz.User{}, "", err
	}

	if v := validateLogin(email, password); v != nil {
		return quiz.User{}, "", v
	}

	user, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return quiz.User{}, "", quiz.ErrInvalidCredentials
	}

	if s.demoLogin {
		log.Printf("gateway: demo login for %s, password not verified", user.Email)
	} else if !auth.CheckPassword(user.PasswordHash, password) {
		return quiz.User{}, "", quiz.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, s.now())
	if err != nil {
		return quiz.User{}, "", err
	}
	return user, token, nil
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Register synthesizes a new user record and returns it with a session
// token. Per the mock contract the record is not written to the repository;
// it exists only in the response.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (quiz.User, string, error) {
	if err := s.wait(ctx); err != nil {
		return quiz.User{}, "", err
	}

	if v := validateRegistration(req); v != nil {
		return quiz.User{}, "", v
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return quiz.User{}, "", err
	}

	user := quiz.User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		JoinedAt:     s.now().UTC(),
		PasswordHash: hash,
	}

	token, err := s.tokens.Issue(user.ID, s.now())
	if err != nil {
		return quiz.User{}, "", err
	}
	return user, token, nil
}
