package service

import (
	"context"

	"github.com/seong-ho-y/bitrogue-project/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	HighScore(ctx context.Context, userID int64) (int64, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ScoreService interface {
	SubmitScore(ctx context.Context, userID int64, req models.SubmitScoreRequest) (models.Score, error)
	TopScores(ctx context.Context, limit uint64) ([]models.Score, error)
}

type PickupService interface {
	LogPickup(ctx context.Context, req models.LogPickupRequest) (models.PickupLog, error)
}

type CodexService interface {
	// AddItem records a new codex entry. When notice is non-nil the score
	// server is notified of the pickup best-effort: a notification failure
	// never fails or rolls back the item insert.
	AddItem(ctx context.Context, item models.Item, notice *models.LogPickupRequest) (models.Item, error)
	GetItem(ctx context.Context, code string) (models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	Seed(ctx context.Context) error
}

// PasswordHasher is the injectable one-way hash-and-verify capability used
// for user credentials. The salt is embedded in the digest produced by Hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// PickupNotifier is the outbound side of the codex → score-server contract.
// Implemented by the resty client in the adapter package.
type PickupNotifier interface {
	NotifyPickup(ctx context.Context, req models.LogPickupRequest) error
}
