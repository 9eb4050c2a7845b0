package models

import "time"

// PickupLog is an audit record of a single item acquisition, appended by the
// codex service as a best-effort side notification. UserID is a bare numeric
// reference with no foreign-key enforcement: a late or duplicate notification
// only adds a harmless extra row.
type PickupLog struct {
	PickupID int64 `json:"id"`

	// ItemCode identifies the picked-up item in the codex.
	ItemCode string `json:"item_code"`

	// UserID is the numeric id of the player at pickup time.
	// Deliberately not validated against the users table.
	UserID int64 `json:"user_id"`

	// ScoreAtPickup is the player's running score when the item was taken.
	ScoreAtPickup int64 `json:"score_at_pickup"`

	Timestamp time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the PickupLog model.
func (p PickupLog) TableName() string {
	return "pickup_logs"
}
