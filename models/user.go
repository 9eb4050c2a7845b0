package models

import "time"

// User represents a player account. It carries identity attributes, the
// stored credential hash, and the denormalized high-score aggregate that is
// maintained alongside score submissions.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on registration.
	UserID int64 `json:"id"`

	// Username is the unique login identifier, case-sensitive as stored.
	// It is immutable after registration.
	Username string `json:"username"`

	// Password carries the plaintext credential on inbound register/login
	// requests only. It is never persisted and never serialized back out.
	Password string `json:"password,omitempty"`

	// PasswordHash stores the one-way bcrypt digest of the user's password.
	// It MUST never leave the server process; excluded from JSON.
	PasswordHash string `json:"-"`

	// HighScore is the maximum score the user has ever submitted.
	// Starts at 0 and only ever increases.
	HighScore int64 `json:"high_score"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Public returns a copy of the user stripped down to the fields that are
// safe to embed in API responses (id and username only).
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:   u.UserID,
		Username: u.Username,
	}
}

// PublicUser is the outward-facing projection of a User used inside score
// and leaderboard responses.
type PublicUser struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
