package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/internal/service"
	"github.com/seong-ho-y/bitrogue-project/internal/store"
	"github.com/seong-ho-y/bitrogue-project/internal/utils"
	"github.com/seong-ho-y/bitrogue-project/models"
)

// addItem handles POST /api/items on the codex service. When user_id and
// score query parameters accompany the request (the in-game pickup flow),
// the score server is notified best-effort after the insert.
func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	notice := pickupNoticeFromQuery(r)

	created, err := h.services.CodexService.AddItem(ctx, item, notice)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrItemAlreadyExists):
			log.Err(err).Str("code", item.Code).Msg("item code already exists")
			http.Error(w, "item code already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during item creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	code := chi.URLParam(r, "code")

	found, err := h.services.CodexService.GetItem(ctx, code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrItemNotFound):
			log.Err(err).Str("code", code).Msg("item not found")
			http.Error(w, "item not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during item lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	items, err := h.services.CodexService.ListItems(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during item list")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []models.Item{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// pickupNoticeFromQuery extracts the optional pickup notification parameters
// (user_id, score). Returns nil when user_id is absent or malformed.
func pickupNoticeFromQuery(r *http.Request) *models.LogPickupRequest {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		return nil
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}

	score, _ := strconv.ParseInt(r.URL.Query().Get("score"), 10, 64)

	return &models.LogPickupRequest{
		UserID:        userID,
		ScoreAtPickup: score,
	}
}
