package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/models"
)

func TestNotifyPickup_Success(t *testing.T) {
	var received models.LogPickupRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/log_item_pickup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewScoreServerClient(ScoreServerClientConfig{BaseURL: srv.URL}, logger.Nop())

	err := client.NotifyPickup(context.Background(), models.LogPickupRequest{
		ItemCode:      "W001",
		UserID:        9,
		ScoreAtPickup: 150,
	})
	require.NoError(t, err)

	assert.Equal(t, "W001", received.ItemCode)
	assert.Equal(t, int64(9), received.UserID)
	assert.Equal(t, int64(150), received.ScoreAtPickup)
}

func TestNotifyPickup_RejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid data provided", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewScoreServerClient(ScoreServerClientConfig{BaseURL: srv.URL}, logger.Nop())

	err := client.NotifyPickup(context.Background(), models.LogPickupRequest{ItemCode: "W001"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestNotifyPickup_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewScoreServerClient(ScoreServerClientConfig{BaseURL: srv.URL}, logger.Nop())

	err := client.NotifyPickup(context.Background(), models.LogPickupRequest{ItemCode: "W001"})
	assert.Error(t, err)
}
