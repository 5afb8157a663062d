// ABOUTME: Key/value operations for the SQLite backend.
// ABOUTME: Implements Backend Get, Set, Delete and Keys over the records table.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Get returns the value stored under key.
func (d *DB) Get(key string) ([]byte, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(value), nil
}

// Set stores value under key, replacing any previous value.
func (d *DB) Set(key string, value []byte) error {
	query := `
		INSERT INTO records (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	_, err := d.db.Exec(query, key, string(value), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes key if present.
func (d *DB) Delete(key string) error {
	if _, err := d.db.Exec(`DELETE FROM records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Keys lists every stored key in ascending order.
func (d *DB) Keys() ([]string, error) {
	rows, err := d.db.Query(`SELECT key FROM records ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
