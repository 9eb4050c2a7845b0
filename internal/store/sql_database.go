package store

import (
	"database/sql"

	"github.com/seong-ho-y/bitrogue-project/internal/logger"
)

// DB wraps the raw database/sql handle together with the driver name so that
// migrations can pick the right dialect at startup.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Driver returns the database/sql driver name the connection was opened with
// ("sqlite3" or "pgx").
func (db *DB) Driver() string {
	return db.driver
}
