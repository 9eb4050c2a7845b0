package store

import (
	"context"

	"github.com/seong-ho-y/bitrogue-project/models"
)

// UserRepository owns user identity: account creation, credential lookup, and
// the high-score aggregate read. The high-score bump itself happens inside
// [ScoreRepository.Submit], in the same transaction as the score insert.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ScoreRepository owns the append-only score ledger and the read-only
// leaderboard projection over it.
type ScoreRepository interface {
	// Submit inserts a score and conditionally raises the owner's high_score
	// within one transaction. Returns [ErrUserNotFound] without persisting
	// anything when the user does not exist.
	Submit(ctx context.Context, score models.Score) (models.Score, error)

	// TopScores returns at most limit scores joined with their owners'
	// public fields, ordered by score descending. Ties are broken by
	// insertion order (ascending score id).
	TopScores(ctx context.Context, limit uint64) ([]models.Score, error)
}

// PickupLogRepository owns the append-only item-pickup audit log. Inserts
// never validate the referenced user id.
type PickupLogRepository interface {
	Insert(ctx context.Context, pickup models.PickupLog) (models.PickupLog, error)
}

// ItemRepository owns the codex item records: a keyed list/get/put store.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItem(ctx context.Context, code string) (models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
}
