package models

// HighScoreResponse is the payload returned by the high-score lookup
// endpoint. It repeats the user id so the response is self-describing.
type HighScoreResponse struct {
	UserID    int64 `json:"user_id"`
	HighScore int64 `json:"high_score"`
}

// SubmitScoreRequest is the inbound body of a score submission. The owning
// user is identified by the user_id query parameter, not the body.
type SubmitScoreRequest struct {
	Score  int64  `json:"score"`
	Weapon string `json:"weapon"`
	Items  string `json:"items"`
}

// LogPickupRequest is the inbound body of a pickup-log notification sent by
// the codex service after it records an item addition.
type LogPickupRequest struct {
	ItemCode      string `json:"item_code"`
	UserID        int64  `json:"user_id"`
	ScoreAtPickup int64  `json:"score_at_pickup"`
}
