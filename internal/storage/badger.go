// ABOUTME: Badger backend for embedded key/value storage.
// ABOUTME: Routes badger's internal logging through zap.
package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"
)

// BadgerStore is a Backend on top of an embedded badger database.
type BadgerStore struct {
	db *badger.DB
}

var _ Backend = (*BadgerStore)(nil)

// OpenBadger opens or creates a badger database in dir.
func OpenBadger(dir string, logger *zap.Logger) (*BadgerStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	opts := badger.DefaultOptions(dir).WithLogger(newBadgerLogger(logger))
	return openBadger(opts)
}

// OpenBadgerMemory opens a badger database that lives only in memory.
func OpenBadgerMemory(logger *zap.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(newBadgerLogger(logger))
	return openBadger(opts)
}

func openBadger(opts badger.Options) (*BadgerStore, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Get returns the value stored under key.
func (b *BadgerStore) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key.
func (b *BadgerStore) Set(key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes key if present.
func (b *BadgerStore) Delete(key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Keys lists every stored key. Badger iterates in byte order.
func (b *BadgerStore) Keys() ([]string, error) {
	var keys []string
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}

// Close flushes and closes the database.
func (b *BadgerStore) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// badgerLogger adapts zap to badger.Logger.
type badgerLogger struct {
	s *zap.SugaredLogger
}

func newBadgerLogger(logger *zap.Logger) badger.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &badgerLogger{s: logger.Named("badger").Sugar()}
}

func (l *badgerLogger) Errorf(format string, args ...interface{})   { l.s.Errorf(format, args...) }
func (l *badgerLogger) Warningf(format string, args ...interface{}) { l.s.Warnf(format, args...) }
func (l *badgerLogger) Infof(format string, args ...interface{})    { l.s.Debugf(format, args...) }
func (l *badgerLogger) Debugf(format string, args ...interface{})   { l.s.Debugf(format, args...) }
