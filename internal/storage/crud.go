package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/manav03panchal/fastpilot/internal/logging"
)

var (
	// ErrKeyNotFound is returned when a key is not found in the database.
	ErrKeyNotFound = errors.New("key not found")
	// ErrCorrupt is returned when a stored value cannot be decoded.
	ErrCorrupt = errors.New("stored value is corrupt")
)

// IsErrKeyNotFound returns true if the error is a key not found error.
func IsErrKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound) || errors.Is(err, badger.ErrKeyNotFound)
}

// IsErrCorrupt returns true if the error reports an undecodable value.
func IsErrCorrupt(err error) bool {
	return errors.Is(err, ErrCorrupt)
}

// Tx is a transaction over namespaced keys.
type Tx struct {
	d   *DB
	txn *badger.Txn
}

// Get reads the value stored under name and unmarshals it into v.
func (t *Tx) Get(name string, v any) error {
	item, err := t.txn.Get([]byte(t.d.Key(name)))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrKeyNotFound
		}
		return err
	}

	return item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCorrupt, name, err)
		}
		return nil
	})
}

// Set marshals v and stores it under name.
func (t *Tx) Set(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return t.txn.Set([]byte(t.d.Key(name)), data)
}

// SetBytes stores raw bytes under name.
func (t *Tx) SetBytes(name string, data []byte) error {
	return t.txn.Set([]byte(t.d.Key(name)), data)
}

// Delete removes name. Missing keys are not an error.
func (t *Tx) Delete(name string) error {
	return t.txn.Delete([]byte(t.d.Key(name)))
}

// View runs fn in a read-only transaction.
func (d *DB) View(fn func(tx *Tx) error) error {
	return d.db.View(func(txn *badger.Txn) error {
		return fn(&Tx{d: d, txn: txn})
	})
}

// Update runs fn in a read-write transaction. Nothing is written if fn fails.
func (d *DB) Update(fn func(tx *Tx) error) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return fn(&Tx{d: d, txn: txn})
	})
}

// Get retrieves a value by key name and unmarshals it into v.
func (d *DB) Get(name string, v any) error {
	return d.View(func(tx *Tx) error {
		return tx.Get(name, v)
	})
}

// GetBytes retrieves raw bytes by key name.
func (d *DB) GetBytes(name string) ([]byte, error) {
	var result []byte
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(d.Key(name)))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrKeyNotFound
			}
			return err
		}
		result, err = item.ValueCopy(nil)
		return err
	})
	return result, err
}

// Set stores v under the key name.
func (d *DB) Set(name string, v any) error {
	return d.Update(func(tx *Tx) error {
		return tx.Set(name, v)
	})
}

// SetBytes stores raw bytes under the key name.
func (d *DB) SetBytes(name string, data []byte) error {
	return d.Update(func(tx *Tx) error {
		return tx.SetBytes(name, data)
	})
}

// Delete removes a key from the database.
func (d *DB) Delete(name string) error {
	return d.Update(func(tx *Tx) error {
		return tx.Delete(name)
	})
}

// Exists checks if a key exists in the database.
func (d *DB) Exists(name string) (bool, error) {
	_, err := d.GetBytes(name)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// readOrDefault decodes name into a copy of def. Missing or undecodable
// values yield def; only storage failures are returned.
func readOrDefault[T any](get func(name string, v any) error, name string, def func() T) (T, error) {
	v := def()
	err := get(name, &v)
	switch {
	case err == nil:
		return v, nil
	case IsErrKeyNotFound(err):
		return def(), nil
	case IsErrCorrupt(err):
		logging.Warn("ignoring corrupt stored value", logging.KeyOperation, "read", "key", name, logging.KeyError, err)
		return def(), nil
	default:
		return def(), err
	}
}
