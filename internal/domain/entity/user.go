// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as User, Article
// and Comment, along with their validation rules and domain-specific errors.
package entity

import "time"

// User represents a registered account. PasswordHash always holds a one-way
// bcrypt hash, never the plaintext password.
type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
