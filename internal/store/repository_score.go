package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/models"
)

// scoreRepository is the SQL-backed implementation of [ScoreRepository].
// The score INSERT and the owner's high-score bump share one transaction so
// no reader ever observes a score above the recorded high_score for longer
// than the submit operation itself.
type scoreRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewScoreRepository constructs a [ScoreRepository] backed by the provided
// database connection and logger.
func NewScoreRepository(db *DB, logger *logger.Logger) ScoreRepository {
	logger.Debug().Msg("creating score repository")
	return &scoreRepository{
		db:     db,
		logger: logger,
	}
}

// Submit inserts a score row for score.UserID and conditionally raises the
// owner's high_score, all within a single transaction.
//
// Sequence inside the transaction:
//  1. Re-read the owner row ([getUserForSubmit]); absence aborts with
//     [ErrUserNotFound] and nothing is persisted.
//  2. INSERT the score ([insertScore], RETURNING server-assigned fields).
//  3. Conditional UPDATE of users.high_score ([bumpHighScore]): a
//     compare-and-set against the persisted value, so concurrent submissions
//     for the same user cannot lose an update.
//
// The returned score embeds the owner's public fields.
func (r *scoreRepository) Submit(ctx context.Context, score models.Score) (models.Score, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.Submit").Msg("error beginning transaction")
		return models.Score{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var owner models.PublicUser
	var currentHigh int64
	row := tx.QueryRowContext(ctx, getUserForSubmit, score.UserID)
	if err := row.Scan(&owner.UserID, &owner.Username, &currentHigh); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Score{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*scoreRepository.Submit").Msg("error reading score owner")
		return models.Score{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var saved models.Score
	row = tx.QueryRowContext(ctx, insertScore, score.UserID, score.Score, score.Weapon, score.Items)
	if err := row.Scan(&saved.ScoreID, &saved.UserID, &saved.Score, &saved.Weapon, &saved.Items, &saved.Timestamp); err != nil {
		log.Err(err).Str("func", "*scoreRepository.Submit").Msg("error inserting score")
		return models.Score{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if score.Score > currentHigh {
		if _, err := tx.ExecContext(ctx, bumpHighScore, score.Score, score.UserID); err != nil {
			log.Err(err).Str("func", "*scoreRepository.Submit").Msg("error bumping high score")
			return models.Score{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*scoreRepository.Submit").Msg("error committing transaction")
		return models.Score{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	saved.User = &owner
	return saved, nil
}

// TopScores returns at most limit scores joined with the owning users' public
// fields, ordered by score descending with insertion order (ascending
// score_id) as the tiebreak.
//
// The query is built with squirrel because the limit varies per call.
func (r *scoreRepository) TopScores(ctx context.Context, limit uint64) ([]models.Score, error) {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.StatementBuilder.
		PlaceholderFormat(squirrel.Dollar).
		Select("s.score_id", "s.user_id", "s.score", "s.weapon", "s.items", "s.timestamp", "u.username").
		From("scores s").
		Join("users u ON u.user_id = s.user_id").
		OrderBy("s.score DESC", "s.score_id ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.TopScores").Msg("error building leaderboard query")
		return nil, fmt.Errorf("error building leaderboard query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.TopScores").Msg("error executing leaderboard query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	scores := make([]models.Score, 0, limit)
	for rows.Next() {
		var s models.Score
		var username string
		if err := rows.Scan(&s.ScoreID, &s.UserID, &s.Score, &s.Weapon, &s.Items, &s.Timestamp, &username); err != nil {
			log.Err(err).Str("func", "*scoreRepository.TopScores").Msg("error scanning leaderboard row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		s.User = &models.PublicUser{UserID: s.UserID, Username: username}
		scores = append(scores, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return scores, nil
}
