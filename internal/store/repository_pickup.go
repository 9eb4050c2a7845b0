package store

import (
	"context"
	"fmt"

	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/models"
)

// pickupLogRepository is the SQL-backed implementation of
// [PickupLogRepository]. The user_id column carries no foreign key, so an
// insert succeeds even for ids unknown to the users table.
type pickupLogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPickupLogRepository constructs a [PickupLogRepository] backed by the
// provided database connection and logger.
func NewPickupLogRepository(db *DB, logger *logger.Logger) PickupLogRepository {
	logger.Debug().Msg("creating pickup log repository")
	return &pickupLogRepository{
		db:     db,
		logger: logger,
	}
}

// Insert appends one pickup record and returns it with server-assigned
// fields (PickupID, Timestamp).
func (r *pickupLogRepository) Insert(ctx context.Context, pickup models.PickupLog) (models.PickupLog, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, insertPickupLog, pickup.ItemCode, pickup.UserID, pickup.ScoreAtPickup)

	var saved models.PickupLog
	if err := row.Scan(&saved.PickupID, &saved.ItemCode, &saved.UserID, &saved.ScoreAtPickup, &saved.Timestamp); err != nil {
		log.Err(err).Str("func", "*pickupLogRepository.Insert").Msg("error inserting pickup log")
		return models.PickupLog{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}
