package gateway

import (
	"regexp"
	"strings"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError carries per-field messages so the caller can surface them
// inline next to the offending input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		parts = append(parts, field)
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

func validateLogin(email, password string) *ValidationError {
	fields := make(map[string]string)
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		fields["email"] = "a valid email is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateRegistration(req RegisterRequest) *ValidationError {
	fields := make(map[string]string)
	if strings.TrimSpace(req.Username) == "" {
		fields["username"] = "username is required"
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		fields["email"] = "a valid email is required"
	}
	if len(req.Password) < minPasswordLength {
		fields["password"] = "password must be at least 6 characters"
	}
	if strings.TrimSpace(req.FirstName) == "" {
		fields["first_name"] = "first name is required"
	}
	if strings.TrimSpace(req.LastName) == "" {
		fields["last_name"] = "last name is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
