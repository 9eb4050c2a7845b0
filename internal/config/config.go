// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// bitrogue binaries. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and the
	// password hashing cost.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Codex holds settings that only the codex binary uses: the score-server
	// endpoint for pickup notifications and the sample-data seeding switch.
	Codex Codex `envPrefix:"CODEX_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control session
// tokens and credential hashing.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT session
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor used when hashing passwords.
	// Zero means the library default.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`
}

// Storage groups the configuration of the relational store.
type Storage struct {
	// DB holds the database driver and connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// Driver selects the database/sql driver: "sqlite3" (default) or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the driver-specific connection string. For sqlite3 this is the
	// database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the read/write lifetime of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Codex holds configuration used only by the codex binary.
type Codex struct {
	// ScoreServerURL is the base URL of the score server that receives
	// fire-and-forget pickup notifications (e.g. "http://localhost:8080").
	// Env: CODEX_SCORE_SERVER_URL
	ScoreServerURL string `env:"SCORE_SERVER_URL"`

	// NotifyTimeout bounds a single outbound pickup notification.
	// Env: CODEX_NOTIFY_TIMEOUT
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT"`

	// Seed enables insertion of the starter item set at startup.
	// Duplicate codes are skipped, so seeding an existing database is safe.
	// Env: CODEX_SEED
	Seed bool `env:"SEED"`
}

// GetServerConfig assembles the configuration for the score/leaderboard
// service from environment variables, flags, and the optional JSON file,
// then applies score-server defaults.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyServerDefaults()
	return cfg, cfg.validate()
}

// GetCodexConfig assembles the configuration for the codex service and
// applies codex defaults (separate port and database file).
func GetCodexConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyCodexDefaults()
	return cfg, cfg.validate()
}
