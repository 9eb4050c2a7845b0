package models

import "time"

// Score is one append-only record of a finished play session. Creating a
// Score is the only event that may raise the owning user's HighScore.
type Score struct {
	// ScoreID is the internal unique identifier of the record.
	ScoreID int64 `json:"id"`

	// UserID references the owning user. Every score must reference a user
	// that exists at insertion time; users are never deleted.
	UserID int64 `json:"user_id"`

	// Score is the value attained in the session. No range is enforced:
	// zero and negative values are accepted as submitted.
	Score int64 `json:"score"`

	// Weapon is the free-form identifier of the weapon used. It is not
	// validated against the codex service.
	Weapon string `json:"weapon"`

	// Items is a free-form serialized list of item codes collected during
	// the session.
	Items string `json:"items"`

	// Timestamp is the server-side creation time of the record.
	Timestamp time.Time `json:"timestamp"`

	// User carries the owner's public fields when the score was loaded
	// through a join (leaderboard, submission response).
	User *PublicUser `json:"user,omitempty"`
}

// TableName returns the name of the database table
// associated with the Score model.
func (s Score) TableName() string {
	return "scores"
}
