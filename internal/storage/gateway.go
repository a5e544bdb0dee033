package storage

import (
	"encoding/json"
	"time"

	"github.com/manav03panchal/fastpilot/internal/catalog"
	"github.com/manav03panchal/fastpilot/internal/logging"
	"github.com/manav03panchal/fastpilot/internal/model"
)

// Gateway is the single access point to persisted application state.
type Gateway struct {
	db         *DB
	Settings   *SettingsRepo
	Fasts      *FastRepo
	Active     *ActiveFastRepo
	Onboarding *OnboardingRepo
}

// NewGateway wires the repositories over db.
func NewGateway(db *DB, cat *catalog.Catalog) *Gateway {
	return &Gateway{
		db:         db,
		Settings:   NewSettingsRepo(db, cat),
		Fasts:      NewFastRepo(db),
		Active:     NewActiveFastRepo(db),
		Onboarding: NewOnboardingRepo(db),
	}
}

// DB returns the underlying database.
func (g *Gateway) DB() *DB {
	return g.db
}

// FinishActive appends rec to the history and clears the active fast in
// one transaction, so the pointer is cleared exactly when the record lands.
func (g *Gateway) FinishActive(rec model.FastRecord) (model.FastRecord, error) {
	rec.ID = NewFastID()
	err := g.db.Update(func(tx *Tx) error {
		if err := appendFast(tx, rec); err != nil {
			return err
		}
		return tx.Delete(model.KeyActiveFast)
	})
	if err != nil {
		return model.FastRecord{}, err
	}
	return rec, nil
}

// ExportAll returns a portable document with the settings and full history.
func (g *Gateway) ExportAll(now time.Time) (*model.ExportDocument, error) {
	settings, err := g.Settings.Get()
	if err != nil {
		return nil, err
	}
	fasts, err := g.Fasts.All()
	if err != nil {
		return nil, err
	}

	return &model.ExportDocument{
		Version:    model.ExportVersion,
		ExportDate: now.UTC().Format(time.RFC3339Nano),
		Settings:   &settings,
		Fasts:      fasts,
	}, nil
}

// ImportAll replaces the history, and the settings when present, with the
// document's contents. It returns false without touching the store when
// the document is not acceptable. The active fast is left alone.
func (g *Gateway) ImportAll(doc *model.ExportDocument) (bool, error) {
	if !doc.Acceptable() {
		logging.Warn("rejecting import document", logging.KeyOperation, "import")
		return false, nil
	}

	fasts := make([]model.FastRecord, len(doc.Fasts))
	copy(fasts, doc.Fasts)
	for i := range fasts {
		if fasts[i].ID == "" {
			fasts[i].ID = NewFastID()
		}
	}

	err := g.db.Update(func(tx *Tx) error {
		if doc.Settings != nil {
			if err := tx.Set(model.KeySettings, doc.Settings); err != nil {
				return err
			}
		}
		return tx.Set(model.KeyFasts, fasts)
	})
	if err != nil {
		return false, err
	}

	logging.DebugLog("import complete", logging.KeyOperation, "import", logging.KeyCount, len(fasts))
	return true, nil
}

// ImportJSON decodes data and imports it. Undecodable input returns false.
func (g *Gateway) ImportJSON(data []byte) (bool, error) {
	var doc model.ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Warn("import document is not valid JSON", logging.KeyOperation, "import", logging.KeyError, err)
		return false, nil
	}
	return g.ImportAll(&doc)
}

// ClearAll removes every key owned by the application.
func (g *Gateway) ClearAll() error {
	err := g.db.Update(func(tx *Tx) error {
		for _, key := range model.AllKeys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		logging.DebugLog("store cleared", logging.KeyOperation, "clear")
	}
	return err
}
