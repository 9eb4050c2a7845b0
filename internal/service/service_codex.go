package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/internal/store"
	"github.com/seong-ho-y/bitrogue-project/models"
)

// codexService is the concrete implementation of CodexService: a keyed
// record store of item definitions, plus the best-effort pickup notification
// sent to the score server after an item is recorded.
type codexService struct {
	itemRepository store.ItemRepository
	notifier       PickupNotifier
	logger         *logger.Logger
}

// NewCodexService constructs a CodexService wired to the given repository and
// pickup notifier.
func NewCodexService(itemRepository store.ItemRepository, notifier PickupNotifier, logger *logger.Logger) CodexService {
	return &codexService{
		itemRepository: itemRepository,
		notifier:       notifier,
		logger:         logger,
	}
}

// AddItem records a new codex entry. When notice is non-nil the score server
// is notified after the insert succeeds; a notification failure is logged
// and swallowed, it never fails or rolls back the item insert.
func (s *codexService) AddItem(ctx context.Context, item models.Item, notice *models.LogPickupRequest) (models.Item, error) {
	log := logger.FromContext(ctx)

	if item.Code == "" || item.Name == "" {
		log.Error().Str("code", item.Code).Msg("invalid item data provided")
		return models.Item{}, ErrInvalidDataProvided
	}

	created, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Str("code", item.Code).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	if notice != nil {
		notice.ItemCode = created.Code
		if err := s.notifier.NotifyPickup(ctx, *notice); err != nil {
			// best-effort: the item is already recorded and stays recorded
			log.Err(err).Str("code", created.Code).Msg("pickup notification failed")
		}
	}

	return created, nil
}

// GetItem returns the codex entry for the given code.
func (s *codexService) GetItem(ctx context.Context, code string) (models.Item, error) {
	log := logger.FromContext(ctx)

	if code == "" {
		return models.Item{}, ErrInvalidDataProvided
	}

	found, err := s.itemRepository.GetItem(ctx, code)
	if err != nil {
		log.Err(err).Str("code", code).Msg("item lookup ended with error")
		return models.Item{}, fmt.Errorf("item lookup ended with error: %w", err)
	}

	return found, nil
}

// ListItems returns every codex entry.
func (s *codexService) ListItems(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	items, err := s.itemRepository.ListItems(ctx)
	if err != nil {
		log.Err(err).Msg("item list ended with error")
		return nil, fmt.Errorf("item list ended with error: %w", err)
	}

	return items, nil
}

// starterItems is the development sample set inserted by Seed.
var starterItems = []models.Item{
	{Code: "W001", Name: "Rusty Blade", Description: "A blade that has seen better days.", Effect: "atk+1"},
	{Code: "W002", Name: "Bit Cannon", Description: "Fires compressed data packets.", Effect: "atk+5"},
	{Code: "I001", Name: "Health Chip", Description: "Restores a sliver of integrity.", Effect: "hp+10"},
	{Code: "I002", Name: "Overclock Core", Description: "Pushes the system past its limits.", Effect: "spd+2"},
}

// Seed inserts the starter item set. Entries whose code already exists are
// skipped, so seeding an existing database is safe to repeat.
func (s *codexService) Seed(ctx context.Context) error {
	log := logger.FromContext(ctx)

	for _, item := range starterItems {
		if _, err := s.itemRepository.CreateItem(ctx, item); err != nil {
			if errors.Is(err, store.ErrItemAlreadyExists) {
				continue
			}
			return fmt.Errorf("seeding item %q: %w", item.Code, err)
		}
		log.Debug().Str("code", item.Code).Msg("seeded item")
	}

	return nil
}
