package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/models"
)

// itemRepository is the SQL-backed implementation of [ItemRepository] used by
// the codex service. Items are keyed by their code; there is no derived state.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem persists a new codex entry.
//
// Error handling:
//   - primary-key violation on code → [ErrItemAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createItem, item.Code, item.Name, item.Description, item.Effect)

	var created models.Item
	if err := row.Scan(&created.Code, &created.Name, &created.Description, &created.Effect); err != nil {
		if isUniqueViolation(err) {
			return models.Item{}, ErrItemAlreadyExists
		}

		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error inserting item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetItem retrieves the codex entry for the given code.
func (r *itemRepository) GetItem(ctx context.Context, code string) (models.Item, error) {
	log := logger.FromContext(ctx)

	var found models.Item
	row := r.db.QueryRowContext(ctx, getItem, code)

	if err := row.Scan(&found.Code, &found.Name, &found.Description, &found.Effect); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.GetItem").Msg("error: scanning error")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListItems returns every codex entry ordered by code.
func (r *itemRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listItems)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.Code, &item.Name, &item.Description, &item.Effect); err != nil {
			log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error scanning item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
