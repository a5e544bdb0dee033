package storage

import (
	"github.com/manav03panchal/fastpilot/internal/model"
)

// ActiveFastRepo provides operations for the active fast pointer.
type ActiveFastRepo struct {
	db *DB
}

// NewActiveFastRepo creates a new active fast repository.
func NewActiveFastRepo(db *DB) *ActiveFastRepo {
	return &ActiveFastRepo{db: db}
}

func noActive() *model.ActiveFast { return nil }

func loadActive(get func(string, any) error) (*model.ActiveFast, error) {
	active, err := readOrDefault(get, model.KeyActiveFast, noActive)
	if err != nil || active == nil {
		return nil, err
	}
	// A pointer without a start or target cannot be timed.
	if active.StartTime.IsZero() || active.TargetHours <= 0 {
		return nil, nil
	}
	return active, nil
}

// Get returns the active fast, or nil if none is running.
func (r *ActiveFastRepo) Get() (*model.ActiveFast, error) {
	return loadActive(r.db.Get)
}

// Set stores the active fast. A nil value clears it.
func (r *ActiveFastRepo) Set(active *model.ActiveFast) error {
	if active == nil {
		return r.Clear()
	}
	return r.db.Set(model.KeyActiveFast, active)
}

// Clear removes the active fast.
func (r *ActiveFastRepo) Clear() error {
	return r.db.Delete(model.KeyActiveFast)
}

// IsActive reports whether a fast is running.
func (r *ActiveFastRepo) IsActive() (bool, error) {
	active, err := r.Get()
	return active != nil, err
}
