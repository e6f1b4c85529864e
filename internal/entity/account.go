package entity

import (
	"strings"
	"time"
)

// Account is a tenant of the CRM. The username doubles as the contact
// address for password-reset and notification mail.
type Account struct {
	ID                  int64      `json:"id"`
	Username            string     `json:"username"`
	PasswordHash        string     `json:"-"`
	ResetToken          *string    `json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
}

// NormalizeUsername lowercases and trims a username. Usernames compare
// case-insensitively, so every lookup and insert goes through this first.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
