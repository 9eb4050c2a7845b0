package service

import (
	"context"
	"fmt"

	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/internal/store"
	"github.com/seong-ho-y/bitrogue-project/models"
)

// pickupService is the concrete implementation of PickupService. It accepts
// codex notifications as-is: the user id is recorded without checking the
// users table, so a duplicate or late notification only adds an extra row.
type pickupService struct {
	pickupRepository store.PickupLogRepository
	logger           *logger.Logger
}

// NewPickupService constructs a PickupService wired to the given repository.
func NewPickupService(pickupRepository store.PickupLogRepository, logger *logger.Logger) PickupService {
	return &pickupService{
		pickupRepository: pickupRepository,
		logger:           logger,
	}
}

// LogPickup appends one pickup-log record. Only the item code is required;
// the user id is deliberately not validated.
func (s *pickupService) LogPickup(ctx context.Context, req models.LogPickupRequest) (models.PickupLog, error) {
	log := logger.FromContext(ctx)

	if req.ItemCode == "" {
		log.Error().Msg("pickup log without item code")
		return models.PickupLog{}, ErrInvalidDataProvided
	}

	saved, err := s.pickupRepository.Insert(ctx, models.PickupLog{
		ItemCode:      req.ItemCode,
		UserID:        req.UserID,
		ScoreAtPickup: req.ScoreAtPickup,
	})
	if err != nil {
		log.Err(err).Str("item_code", req.ItemCode).Msg("pickup log insert ended with error")
		return models.PickupLog{}, fmt.Errorf("pickup log insert ended with error: %w", err)
	}

	return saved, nil
}
