package storage

import (
	"github.com/manav03panchal/fastpilot/internal/catalog"
	"github.com/manav03panchal/fastpilot/internal/model"
)

// SettingsRepo provides operations for the Settings singleton.
type SettingsRepo struct {
	db  *DB
	cat *catalog.Catalog
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(db *DB, cat *catalog.Catalog) *SettingsRepo {
	return &SettingsRepo{db: db, cat: cat}
}

// Get retrieves the settings. Missing fields are filled from defaults and
// out-of-range values are normalized.
func (r *SettingsRepo) Get() (model.Settings, error) {
	s, err := readOrDefault(r.db.Get, model.KeySettings, model.DefaultSettings)
	if err != nil {
		return s, err
	}
	return r.normalize(s), nil
}

// Save overwrites the stored settings.
func (r *SettingsRepo) Save(s model.Settings) error {
	return r.db.Set(model.KeySettings, s)
}

func (r *SettingsRepo) normalize(s model.Settings) model.Settings {
	def := model.DefaultSettings()
	if r.cat != nil && !r.cat.Has(s.MethodID) {
		s.MethodID = r.cat.Fallback().ID
	}
	if s.WeeklyGoal < 0 {
		s.WeeklyGoal = 0
	}
	if s.WeeklyGoal > model.MaxWeeklyGoal {
		s.WeeklyGoal = model.MaxWeeklyGoal
	}
	if s.StartTime == "" {
		s.StartTime = def.StartTime
	}
	if s.CustomFastHours <= 0 {
		s.CustomFastHours = def.CustomFastHours
	}
	if s.CustomEatHours < 0 {
		s.CustomEatHours = def.CustomEatHours
	}
	return s
}
