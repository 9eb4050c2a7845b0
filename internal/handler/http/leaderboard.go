package http

import (
	"net/http"

	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/internal/service"
	"github.com/seong-ho-y/bitrogue-project/internal/utils"
)

// leaderboard handles GET /api/leaderboard: the top scores across all users
// joined with owner identity, capped at the fixed limit.
func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	scores, err := h.services.ScoreService.TopScores(ctx, service.LeaderboardLimit)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during leaderboard query")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, scores, http.StatusOK)
}
