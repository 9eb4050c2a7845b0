// SPDX-License-Identifier: Apache-2.0

package store

// Queries use $N placeholders, which both supported drivers accept (sqlite
// binds them positionally in order of first occurrence, postgres natively).
const (
	createUser = `INSERT INTO users (username, password_hash, high_score)
    VALUES ($1, $2, 0)
    RETURNING user_id, username, password_hash, high_score, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, high_score, created_at
    FROM users
    WHERE username = $1;`

	getUserByID = `SELECT user_id, username, password_hash, high_score, created_at
    FROM users
    WHERE user_id = $1;`

	// getUserForSubmit re-reads the owner row inside the submit transaction,
	// so the high-score comparison never relies on a stale value.
	getUserForSubmit = `SELECT user_id, username, high_score
    FROM users
    WHERE user_id = $1;`

	insertScore = `INSERT INTO scores (user_id, score, weapon, items)
    VALUES ($1, $2, $3, $4)
    RETURNING score_id, user_id, score, weapon, items, timestamp;`

	// bumpHighScore is a compare-and-set against the persisted value: the
	// WHERE clause guarantees high_score never regresses, even when two
	// submissions for the same user race.
	bumpHighScore = `UPDATE users
    SET high_score = $1
    WHERE user_id = $2 AND high_score < $1;`

	insertPickupLog = `INSERT INTO pickup_logs (item_code, user_id, score_at_pickup)
    VALUES ($1, $2, $3)
    RETURNING pickup_id, item_code, user_id, score_at_pickup, timestamp;`

	createItem = `INSERT INTO items (code, name, description, effect)
    VALUES ($1, $2, $3, $4)
    RETURNING code, name, description, effect;`

	getItem = `SELECT code, name, description, effect
    FROM items
    WHERE code = $1;`

	listItems = `SELECT code, name, description, effect
    FROM items
    ORDER BY code;`
)
