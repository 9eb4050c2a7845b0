package service

import (
	"github.com/seong-ho-y/bitrogue-project/internal/config"
	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/internal/store"
)

// Services aggregates the service layer of one binary. The score server and
// the codex populate different subsets of the fields.
type Services struct {
	AuthService   AuthService
	ScoreService  ScoreService
	PickupService PickupService
	CodexService  CodexService
}

// NewServerServices wires the score-server services: auth, score ledger with
// leaderboard, and the pickup log.
func NewServerServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, NewBcryptHasher(cfg.BcryptCost), cfg, logger),
		ScoreService:  NewScoreService(storages.ScoreRepository, logger),
		PickupService: NewPickupService(storages.PickupLogRepository, logger),
	}
}

// NewCodexServices wires the codex service with its outbound notifier.
func NewCodexServices(storages *store.Storages, notifier PickupNotifier, logger *logger.Logger) *Services {
	return &Services{
		CodexService: NewCodexService(storages.ItemRepository, notifier, logger),
	}
}
