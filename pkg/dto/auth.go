package dto

import (
	"net/mail"
	"strings"
)

const (
	minPasswordLength = 6
	// bcrypt only hashes the first 72 bytes and rejects anything longer.
	maxPasswordLength = 72
)

type ConsentURLResponse struct {
	URL string `json:"url"`
}

type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, bodyError("name", "Name is required"))
	}
	if !validEmail(r.Email) {
		errs = append(errs, bodyError("email", "Please include a valid email"))
	}
	if len(r.Password) < minPasswordLength {
		errs = append(errs, bodyError("password", "Please enter a password with 6 or more characters"))
	}
	if len(r.Password) > maxPasswordLength {
		errs = append(errs, bodyError("password", "Please enter a password of at most 72 bytes"))
	}
	return errs
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() []FieldError {
	var errs []FieldError
	if !validEmail(r.Email) {
		errs = append(errs, bodyError("email", "Please include a valid email"))
	}
	if r.Password == "" {
		errs = append(errs, bodyError("password", "Password is required"))
	}
	return errs
}

// validEmail accepts a bare address only; display-name forms such as
// "Bob <bob@example.com>" are rejected.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == strings.TrimSpace(email)
}
