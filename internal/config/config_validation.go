// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Default values applied when a setting is absent from every source. The two
// services listen on different ports and keep separate database files so they
// can run side by side on one machine.
const (
	defaultServerAddress = ":8080"
	defaultCodexAddress  = ":8090"

	defaultServerDSN = "bitrogue.db"
	defaultCodexDSN  = "codex.db"

	defaultDriver         = "sqlite3"
	defaultRequestTimeout = 30 * time.Second
	defaultNotifyTimeout  = 5 * time.Second
	defaultTokenIssuer    = "bitrogue-server"
	defaultTokenDuration  = 24 * time.Hour
)

func (cfg *StructuredConfig) applyServerDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultServerAddress
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultServerDSN
	}

	cfg.applyCommonDefaults()
}

func (cfg *StructuredConfig) applyCodexDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultCodexAddress
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultCodexDSN
	}
	if cfg.Codex.ScoreServerURL == "" {
		cfg.Codex.ScoreServerURL = "http://localhost:8080"
	}
	if cfg.Codex.NotifyTimeout == 0 {
		cfg.Codex.NotifyTimeout = defaultNotifyTimeout
	}

	cfg.applyCommonDefaults()
}

func (cfg *StructuredConfig) applyCommonDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDriver
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Driver != "sqlite3" && cfg.Storage.DB.Driver != "pgx" {
		return ErrUnsupportedDriver
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
