package domain

import "strings"

// User field limits, enforced before any storage call.
const (
	UsernameMinLen = 3
	UsernameMaxLen = 80
	EmailMaxLen    = 120
)

// User is a registered account. Accounts are managed independently of
// activity searches; searches are anonymous.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ValidateUsername checks the username length constraints.
func ValidateUsername(username string) error {
	if username == "" {
		return &ValidationError{Field: "username"}
	}
	if len(username) < UsernameMinLen || len(username) > UsernameMaxLen {
		return &ValidationError{
			Field:   "username",
			Message: "username must be between 3 and 80 characters",
		}
	}
	return nil
}

// ValidateEmail checks the email shape and length constraints.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email"}
	}
	if !strings.Contains(email, "@") || len(email) > EmailMaxLen {
		return &ValidationError{
			Field:   "email",
			Message: "invalid email format or too long",
		}
	}
	return nil
}
