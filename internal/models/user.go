package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	// Email is the user's email address (unique, stored lowercased).
	// Used for login.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized in API responses.
	PasswordHash string `json:"-"`

	// DarkModeEnabled is the user's UI theme preference.
	DarkModeEnabled bool `json:"darkModeEnabled"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the Unix timestamp of the last account update.
	UpdatedAt int64 `json:"updatedAt"`
}

// NewUser creates a user with a generated ID and current timestamps.
// The email is lowercased so lookups are case-insensitive.
func NewUser(fullName, email, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		FullName:     fullName,
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
