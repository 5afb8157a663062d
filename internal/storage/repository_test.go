// ABOUTME: Tests for Backend implementations.
// ABOUTME: Runs the same conformance checks against SQLite, badger and memory backends.
package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "daylog-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "daylog.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func backends(t *testing.T) map[string]Backend {
	t.Helper()

	mem, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mem.Close() })

	bdg, err := OpenBadger(filepath.Join(t.TempDir(), "badger"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = bdg.Close() })

	return map[string]Backend{
		"sqlite":        setupTestDB(t),
		"sqlite-memory": mem,
		"badger":        bdg,
		"memory":        NewMemoryStore(),
	}
}

func TestBackendGetMissing(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := b.Get("nope")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestBackendSetGetOverwrite(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.Set(KeyHabits, []byte(`[1]`)))
			require.NoError(t, b.Set(KeyHabits, []byte(`[1,2]`)))

			got, err := b.Get(KeyHabits)
			require.NoError(t, err)
			assert.Equal(t, `[1,2]`, string(got))
		})
	}
}

func TestBackendDelete(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.Set(KeyNotes, []byte(`[]`)))
			require.NoError(t, b.Delete(KeyNotes))

			_, err := b.Get(KeyNotes)
			assert.ErrorIs(t, err, ErrNotFound)

			// Deleting again is a no-op.
			assert.NoError(t, b.Delete(KeyNotes))
		})
	}
}

func TestBackendKeysSorted(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range CollectionKeys {
				require.NoError(t, b.Set(k, []byte(`[]`)))
			}

			keys, err := b.Keys()
			require.NoError(t, err)
			assert.Equal(t, []string{KeyHabits, KeyNotes, KeyWellbeing, KeyWorkouts}, keys)
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "daylog.db")

	db, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Set(KeyWorkouts, []byte(`["x"]`)))
	require.NoError(t, db.Close())

	db, err = Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	got, err := db.Get(KeyWorkouts)
	require.NoError(t, err)
	assert.Equal(t, `["x"]`, string(got))
	assert.Equal(t, dbPath, db.Path())
}

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	assert.Equal(t, "/tmp/xdg-data/daylog", DataDir())
}
