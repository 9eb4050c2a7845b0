package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/internal/service"
	"github.com/seong-ho-y/bitrogue-project/internal/store"
	"github.com/seong-ho-y/bitrogue-project/internal/utils"
	"github.com/seong-ho-y/bitrogue-project/models"
)

// submitScore handles POST /api/scores?user_id=N. The owning user comes from
// the query string; the score payload from the body. A Bearer token may be
// supplied instead of the query parameter.
func (h *Handler) submitScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := h.submittingUserID(r)
	if err != nil {
		log.Err(err).Msg("could not resolve submitting user")
		http.Error(w, "missing or invalid user_id", http.StatusBadRequest)
		return
	}

	var req models.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.ScoreService.SubmitScore(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("user_id", userID).Msg("score for unknown user")
			http.Error(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during score submission")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

// submittingUserID resolves the score owner from the user_id query parameter
// or, failing that, from a Bearer token issued at login.
func (h *Handler) submittingUserID(r *http.Request) (int64, error) {
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		return strconv.ParseInt(raw, 10, 64)
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return 0, ErrEmptyAuthorizationHeader
	}

	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		return 0, err
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		return 0, err
	}

	return token.UserID, nil
}
