package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
)

var formValidator = validator.New()

// Credentials are only held for the duration of a login call.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the full field set accepted by the register endpoint.
type Registration struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	Phone     string `json:"phone,omitempty"`
}

// ValidateForm checks a registration before it is sent, the same checks
// the sign up form applies.
func (r Registration) ValidateForm(confirmPassword string) error {
	if r.Password != confirmPassword {
		return ErrPasswordMismatch
	}

	err := formValidator.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	first := fieldErrors[0]
	name := strings.ToLower(strings.Join(splitCamel(first.Field()), " "))

	switch first.Tag() {
	case "required":
		return fmt.Errorf("%s is required", name)
	case "email":
		return fmt.Errorf("please enter a valid email address")
	case "min":
		if first.Field() == "Password" {
			return ErrPasswordTooShort
		}
		return fmt.Errorf("%s is too short", name)
	default:
		return fmt.Errorf("%s is invalid", name)
	}
}

// splitCamel turns "FirstName" into ["First", "Name"].
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i := 1; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			words = append(words, s[start:i])
			start = i
		}
	}
	return append(words, s[start:])
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Message     string       `json:"message,omitempty"`
	AccessToken string       `json:"access_token,omitempty"`
	Token       string       `json:"token,omitempty"`
	User        *UserProfile `json:"user" validate:"required"`
}

// GetToken prefers access_token and falls back to token.
func (r *AuthResponse) GetToken() string {
	if len(r.AccessToken) > 0 {
		return r.AccessToken
	}
	return r.Token
}

func (r *AuthResponse) Validate() error {
	if len(r.GetToken()) == 0 {
		return fmt.Errorf("auth response is missing a token")
	}
	return nil
}

// ProfileUpdate is the body of a profile update. Empty fields are not sent.
type ProfileUpdate struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
}

func (p ProfileUpdate) IsEmpty() bool {
	return len(p.FirstName) == 0 &&
		len(p.LastName) == 0 &&
		len(p.Phone) == 0 &&
		len(p.Email) == 0
}

type ProfileUpdateResponse struct {
	Message string        `json:"message,omitempty"`
	User    *ProfilePatch `json:"user" validate:"required"`
}
