package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/manav03panchal/fastpilot/internal/errors"
	"github.com/manav03panchal/fastpilot/internal/logging"
	"github.com/manav03panchal/fastpilot/internal/model"
)

// KeyStatus is the health of one stored key.
type KeyStatus struct {
	Key     string `json:"key"`
	Present bool   `json:"present"`
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
}

// RecoveryStatus represents the result of a database health check.
type RecoveryStatus struct {
	Healthy    bool        `json:"healthy"`
	Corrupted  bool        `json:"corrupted"`
	LastCheck  time.Time   `json:"last_check"`
	ErrorCount int         `json:"error_count"`
	Keys       []KeyStatus `json:"keys"`
	BackupPath string      `json:"backup_path,omitempty"`
}

// decoders returns a fresh target for each application key.
var decoders = map[string]func() any{
	model.KeySettings:   func() any { return &model.Settings{} },
	model.KeyFasts:      func() any { return &[]model.FastRecord{} },
	model.KeyActiveFast: func() any { return &model.ActiveFast{} },
	model.KeyOnboarded:  func() any { return new(bool) },
}

// CheckDatabaseIntegrity verifies that every application key decodes.
func CheckDatabaseIntegrity(db *DB) *RecoveryStatus {
	status := &RecoveryStatus{
		LastCheck: time.Now(),
		Healthy:   true,
	}

	if db == nil || db.db == nil {
		status.Healthy = false
		status.Corrupted = true
		status.ErrorCount++
		return status
	}

	for _, key := range model.AllKeys {
		ks := KeyStatus{Key: db.Key(key)}
		raw, err := db.GetBytes(key)
		switch {
		case IsErrKeyNotFound(err):
			ks.Valid = true
		case err != nil:
			ks.Error = err.Error()
		default:
			ks.Present = true
			if err := json.Unmarshal(raw, decoders[key]()); err != nil {
				ks.Error = err.Error()
			} else {
				ks.Valid = true
			}
		}
		if !ks.Valid {
			status.ErrorCount++
		}
		status.Keys = append(status.Keys, ks)
	}

	if status.ErrorCount > 0 {
		status.Healthy = false
		status.Corrupted = true
	}

	return status
}

// RepairCorruptKeys deletes keys that fail to decode so reads fall back to
// defaults. It returns the keys removed.
func RepairCorruptKeys(db *DB) ([]string, error) {
	status := CheckDatabaseIntegrity(db)
	if status.Healthy {
		return nil, nil
	}

	var removed []string
	for i, key := range model.AllKeys {
		if status.Keys[i].Valid {
			continue
		}
		if err := db.Delete(key); err != nil {
			return removed, errors.NewSystemError("failed to remove corrupt key", err)
		}
		removed = append(removed, status.Keys[i].Key)
	}

	logging.Info("corrupt keys removed", logging.KeyOperation, "repair", logging.KeyCount, len(removed))
	return removed, nil
}

// CreateBackup writes a full Badger backup of db into dir and returns the
// file path. An empty dir uses a backups directory next to the database.
func CreateBackup(db *DB, dir string) (string, error) {
	if dir == "" {
		if db.Path() == "" {
			return "", fmt.Errorf("in-memory database has no backup location")
		}
		dir = filepath.Join(filepath.Dir(db.Path()), "backups")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	backupPath := filepath.Join(dir, fmt.Sprintf("db-backup-%s.bak", timestamp))

	f, err := os.OpenFile(backupPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}

	if _, err := db.db.Backup(f, 0); err != nil {
		f.Close()
		os.Remove(backupPath)
		return "", fmt.Errorf("failed to back up database: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	logging.Info("database backup created", logging.KeyOperation, "backup", "path", backupPath)
	return backupPath, nil
}

// RestoreBackup loads a backup written by CreateBackup into db.
func RestoreBackup(db *DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open backup: %w", err)
	}
	defer f.Close()

	if err := db.db.Load(f, 256); err != nil {
		return errors.NewSystemError("failed to restore backup", err)
	}

	logging.Info("database restored", logging.KeyOperation, "restore", "path", path)
	return nil
}
