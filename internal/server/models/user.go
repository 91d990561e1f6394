// Package models holds the server-side domain entities.
package models

import "time"

// User is a registered account. PasswordHash is a salted bcrypt hash and is
// never serialized outward.
type User struct {
	ID           string    `json:"id"`
	UserName     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
