// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: One records table holds every collection as a serialized value.
package storage

import (
	"fmt"
)

const schemaVersion = 1

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	var version int
	if err := d.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}

	schema := `
	CREATE TABLE IF NOT EXISTS records (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	if _, err := d.db.Exec(schema); err != nil {
		return err
	}

	_, err := d.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	return err
}
