package models

// Item is one codex entry: a weapon or pickup definition keyed by its code.
// The codex is a plain keyed record store with no derived state.
type Item struct {
	// Code is the unique identifier of the item (primary key).
	Code string `json:"code"`

	// Name is the display name shown in-game.
	Name string `json:"name"`

	// Description is the codex flavor text.
	Description string `json:"description"`

	// Effect describes the gameplay effect of the item.
	Effect string `json:"effect"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}
