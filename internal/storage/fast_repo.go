package storage

import (
	"time"

	"github.com/manav03panchal/fastpilot/internal/model"
)

// FastRepo provides operations on the fast history.
// The whole history is stored as one list under a single key.
type FastRepo struct {
	db *DB
}

// NewFastRepo creates a new fast repository.
func NewFastRepo(db *DB) *FastRepo {
	return &FastRepo{db: db}
}

func emptyFasts() []model.FastRecord {
	return []model.FastRecord{}
}

func loadFasts(tx *Tx) ([]model.FastRecord, error) {
	return readOrDefault(tx.Get, model.KeyFasts, emptyFasts)
}

// All returns the full history in stored order.
func (r *FastRepo) All() ([]model.FastRecord, error) {
	return readOrDefault(r.db.Get, model.KeyFasts, emptyFasts)
}

// SaveAll overwrites the history.
func (r *FastRepo) SaveAll(fasts []model.FastRecord) error {
	if fasts == nil {
		fasts = emptyFasts()
	}
	return r.db.Set(model.KeyFasts, fasts)
}

// Add appends a record with a freshly generated id and returns it.
func (r *FastRepo) Add(rec model.FastRecord) (model.FastRecord, error) {
	rec.ID = NewFastID()
	err := r.db.Update(func(tx *Tx) error {
		return appendFast(tx, rec)
	})
	if err != nil {
		return model.FastRecord{}, err
	}
	return rec, nil
}

func appendFast(tx *Tx, rec model.FastRecord) error {
	fasts, err := loadFasts(tx)
	if err != nil {
		return err
	}
	return tx.Set(model.KeyFasts, append(fasts, rec))
}

// Get returns the record with id, or nil if absent.
func (r *FastRepo) Get(id string) (*model.FastRecord, error) {
	fasts, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range fasts {
		if fasts[i].ID == id {
			return &fasts[i], nil
		}
	}
	return nil, nil
}

// Update merges patch into the first record with id and returns the result,
// or nil if no record matches.
func (r *FastRepo) Update(id string, patch model.FastPatch) (*model.FastRecord, error) {
	var updated *model.FastRecord
	err := r.db.Update(func(tx *Tx) error {
		fasts, err := loadFasts(tx)
		if err != nil {
			return err
		}
		for i := range fasts {
			if fasts[i].ID != id {
				continue
			}
			patch.Apply(&fasts[i])
			rec := fasts[i]
			updated = &rec
			return tx.Set(model.KeyFasts, fasts)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the first record with id. Unknown ids are a no-op.
func (r *FastRepo) Delete(id string) (bool, error) {
	var removed bool
	err := r.db.Update(func(tx *Tx) error {
		fasts, err := loadFasts(tx)
		if err != nil {
			return err
		}
		for i := range fasts {
			if fasts[i].ID == id {
				removed = true
				return tx.Set(model.KeyFasts, append(fasts[:i], fasts[i+1:]...))
			}
		}
		return nil
	})
	return removed, err
}

// InRange returns records whose start time lies in [start, end].
func (r *FastRepo) InRange(start, end time.Time) ([]model.FastRecord, error) {
	fasts, err := r.All()
	if err != nil {
		return nil, err
	}
	return model.FilterByStart(fasts, start, end), nil
}

// ForDate returns records that start or end on day's calendar date,
// interpreted in day's location.
func (r *FastRepo) ForDate(day time.Time) ([]model.FastRecord, error) {
	fasts, err := r.All()
	if err != nil {
		return nil, err
	}
	loc := day.Location()
	y, m, d := day.Date()
	sameDay := func(t time.Time) bool {
		ty, tm, td := t.In(loc).Date()
		return ty == y && tm == m && td == d
	}

	var result []model.FastRecord
	for _, f := range fasts {
		if sameDay(f.StartTime) || (f.EndTime != nil && sameDay(*f.EndTime)) {
			result = append(result, f)
		}
	}
	return result, nil
}

// Completed returns the records that reached their target.
func (r *FastRepo) Completed() ([]model.FastRecord, error) {
	fasts, err := r.All()
	if err != nil {
		return nil, err
	}
	return model.FilterByStatus(fasts, model.StatusCompleted), nil
}
