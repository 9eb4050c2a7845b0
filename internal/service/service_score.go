package service

import (
	"context"
	"fmt"

	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/internal/store"
	"github.com/seong-ho-y/bitrogue-project/models"
)

// LeaderboardLimit is the fixed maximum number of leaderboard entries.
const LeaderboardLimit = 10

// scoreService is the concrete implementation of ScoreService: the
// append-only score ledger plus the read-only leaderboard projection.
type scoreService struct {
	scoreRepository store.ScoreRepository
	logger          *logger.Logger
}

// NewScoreService constructs a ScoreService wired to the given repository.
func NewScoreService(scoreRepository store.ScoreRepository, logger *logger.Logger) ScoreService {
	return &scoreService{
		scoreRepository: scoreRepository,
		logger:          logger,
	}
}

// SubmitScore appends a score for the given user. The value is stored as
// submitted: zero and negative scores are accepted, no range is enforced.
// The owner's high score is raised in the same transaction when exceeded.
//
// Returns store.ErrUserNotFound (wrapped) when the user id is unknown; in
// that case nothing is persisted.
func (s *scoreService) SubmitScore(ctx context.Context, userID int64, req models.SubmitScoreRequest) (models.Score, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("user_id", userID).Msg("invalid user id provided")
		return models.Score{}, ErrInvalidDataProvided
	}

	score := models.Score{
		UserID: userID,
		Score:  req.Score,
		Weapon: req.Weapon,
		Items:  req.Items,
	}

	saved, err := s.scoreRepository.Submit(ctx, score)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("score submission ended with error")
		return models.Score{}, fmt.Errorf("score submission ended with error: %w", err)
	}

	log.Debug().
		Int64("user_id", userID).
		Int64("score", saved.Score).
		Int64("score_id", saved.ScoreID).
		Msg("score submitted")

	return saved, nil
}

// TopScores returns the leaderboard: at most limit entries (clamped to
// [LeaderboardLimit]), each carrying the owning user's public fields,
// ordered by score descending with insertion order breaking ties.
func (s *scoreService) TopScores(ctx context.Context, limit uint64) ([]models.Score, error) {
	log := logger.FromContext(ctx)

	if limit == 0 || limit > LeaderboardLimit {
		limit = LeaderboardLimit
	}

	scores, err := s.scoreRepository.TopScores(ctx, limit)
	if err != nil {
		log.Err(err).Msg("leaderboard query ended with error")
		return nil, fmt.Errorf("leaderboard query ended with error: %w", err)
	}

	return scores, nil
}
