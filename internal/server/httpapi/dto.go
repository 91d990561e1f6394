package httpapi

import (
	"errors"
	"unicode/utf8"
)

// Credentials is the request body for both signup and signin.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate enforces basic credential bounds before they reach the services.
func (c Credentials) Validate() error {
	if n := utf8.RuneCountInString(c.Username); n < 4 || n > 20 {
		return errors.New("username must be 4-20 characters")
	}
	if n := len(c.Password); n < 8 || n > 72 {
		return errors.New("password must be 8-72 bytes")
	}
	return nil
}

// CreateTaskRequest is the request body for task creation.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r CreateTaskRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title must not be empty")
	}
	return nil
}

// UpdateTaskStatusRequest is the request body for the status patch.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// TokenResponse carries the access token issued on signin.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}
