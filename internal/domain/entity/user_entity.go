package entity

import (
	"time"
)

// User is the aggregate root for the auth domain.
// PasswordHash holds bcrypt output from the password_hash column and must
// never be serialized to a client.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
