// Package kvstore is the persistence adapter: one JSON document per key,
// kept in the app_state table. The store writes a complete collection
// snapshot through on every mutation; there is no partial write.
package kvstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// KV reads and writes JSON snapshots under string keys.
type KV struct {
	db *sqlx.DB
}

// New wraps an open database handle.
func New(db *sqlx.DB) *KV {
	return &KV{db: db}
}

// Get unmarshals the value stored under key into dest. It returns false with
// a nil error when the key is absent.
func (kv *KV) Get(key string, dest any) (bool, error) {
	var raw string
	err := kv.db.Get(&raw, `SELECT value FROM app_state WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Set marshals v and stores it under key, replacing any previous value.
func (kv *KV) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = kv.db.Exec(`INSERT INTO app_state (key, value, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`, key, string(raw))
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
