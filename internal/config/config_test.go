package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyServerDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyServerDefaults()

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "bitrogue.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.NoError(t, cfg.validate())
}

func TestApplyCodexDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyCodexDefaults()

	assert.Equal(t, ":8090", cfg.Server.HTTPAddress)
	assert.Equal(t, "codex.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://localhost:8080", cfg.Codex.ScoreServerURL)
	assert.Equal(t, 5*time.Second, cfg.Codex.NotifyTimeout)
	assert.NoError(t, cfg.validate())
}

func TestDefaultsDoNotOverrideExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Server.HTTPAddress = ":9000"
	cfg.Storage.DB.Driver = "pgx"
	cfg.Storage.DB.DSN = "postgres://localhost/bitrogue"
	cfg.applyServerDefaults()

	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/bitrogue", cfg.Storage.DB.DSN)
}

func TestValidate_UnsupportedDriver(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Storage.DB.Driver = "mysql"
	cfg.Storage.DB.DSN = "whatever"

	assert.ErrorIs(t, cfg.validate(), ErrUnsupportedDriver)
}

func TestValidate_EmptyDSN(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Storage.DB.Driver = "sqlite3"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"token_sign_key": "file-key", "token_duration": "2h", "bcrypt_cost": 4},
		"storage": {"db": {"driver": "pgx", "dsn": "postgres://localhost/bitrogue"}},
		"server": {"http_address": ":9000", "request_timeout": "15s"},
		"codex": {"score_server_url": "http://scores:8080", "notify_timeout": "3s", "seed": true}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 4, cfg.App.BcryptCost)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://scores:8080", cfg.Codex.ScoreServerURL)
	assert.Equal(t, 3*time.Second, cfg.Codex.NotifyTimeout)
	assert.True(t, cfg.Codex.Seed)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestDurationUnmarshal(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "string form", input: `"90s"`, want: 90 * time.Second},
		{name: "hour form", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tc.input), &d))
			assert.Equal(t, tc.want, time.Duration(d))
		})
	}
}

func TestDurationUnmarshal_Invalid(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}
