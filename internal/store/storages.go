package store

import (
	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/migrations"
)

// Storages aggregates the repositories of one service. The score server and
// the codex populate different subsets of the fields.
type Storages struct {
	UserRepository      UserRepository
	ScoreRepository     ScoreRepository
	PickupLogRepository PickupLogRepository
	ItemRepository      ItemRepository
}

// NewServerStorages runs the score-server migrations and wires the user,
// score, and pickup-log repositories.
func NewServerStorages(db *DB, log *logger.Logger) (*Storages, error) {
	if err := migrations.MigrateServer(db.DB, db.Driver()); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		ScoreRepository:     NewScoreRepository(db, log),
		PickupLogRepository: NewPickupLogRepository(db, log),
	}, nil
}

// NewCodexStorages runs the codex migrations and wires the item repository.
func NewCodexStorages(db *DB, log *logger.Logger) (*Storages, error) {
	if err := migrations.MigrateCodex(db.DB, db.Driver()); err != nil {
		return nil, err
	}

	return &Storages{
		ItemRepository: NewItemRepository(db, log),
	}, nil
}
