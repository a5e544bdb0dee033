// Package tracker implements the fast lifecycle: starting, ending and
// cancelling the active fast, and recording or correcting past fasts.
//
// States run Idle -> Active -> {Completed, Partial, Cancelled}. A failed
// operation leaves both the active fast and the history unchanged.
package tracker

import (
	"strings"
	"time"

	"github.com/manav03panchal/fastpilot/internal/catalog"
	"github.com/manav03panchal/fastpilot/internal/errors"
	"github.com/manav03panchal/fastpilot/internal/logging"
	"github.com/manav03panchal/fastpilot/internal/model"
	"github.com/manav03panchal/fastpilot/internal/storage"
)

// State is the lifecycle state of the tracker.
type State string

const (
	StateIdle   State = "idle"
	StateActive State = "active"
)

// Tracker drives the fast lifecycle over a storage gateway.
type Tracker struct {
	gw  *storage.Gateway
	cat *catalog.Catalog
}

// New creates a tracker.
func New(gw *storage.Gateway, cat *catalog.Catalog) *Tracker {
	return &Tracker{gw: gw, cat: cat}
}

// Active returns the running fast, or nil when idle.
func (t *Tracker) Active() (*model.ActiveFast, error) {
	return t.gw.Active.Get()
}

// State reports whether a fast is running.
func (t *Tracker) State() (State, error) {
	active, err := t.Active()
	if err != nil {
		return StateIdle, err
	}
	if active != nil {
		return StateActive, nil
	}
	return StateIdle, nil
}

// ResolveMethod returns the method for id with custom hours applied.
// An empty id selects the method from settings; unknown ids fall back.
func (t *Tracker) ResolveMethod(methodID string) (catalog.Method, error) {
	settings, err := t.gw.Settings.Get()
	if err != nil {
		return catalog.Method{}, err
	}
	if methodID == "" {
		methodID = settings.MethodID
	}
	return t.cat.Get(methodID).Resolve(settings.CustomFastHours, settings.CustomEatHours), nil
}

// Start begins a fast now.
func (t *Tracker) Start(methodID string, now time.Time) (*model.ActiveFast, error) {
	return t.start(methodID, now)
}

// StartRetroactive begins a fast that started at start. start may not be after now.
func (t *Tracker) StartRetroactive(methodID string, start, now time.Time) (*model.ActiveFast, error) {
	if start.After(now) {
		return nil, errors.ErrFutureStart
	}
	return t.start(methodID, start)
}

func (t *Tracker) start(methodID string, start time.Time) (*model.ActiveFast, error) {
	current, err := t.Active()
	if err != nil {
		return nil, err
	}
	if current != nil {
		return nil, errors.ErrAlreadyActive
	}

	method, err := t.ResolveMethod(methodID)
	if err != nil {
		return nil, err
	}

	active := model.NewActiveFast(method.ID, method.Name, method.FastHours, start)
	if err := t.gw.Active.Set(active); err != nil {
		return nil, errors.NewSystemErrorWithOp("start", "failed to save active fast", err)
	}

	logging.DebugLog("fast started",
		logging.KeyOperation, "start",
		logging.KeyMethod, active.MethodID,
		logging.KeyHours, active.TargetHours)
	return active, nil
}

// End finishes the active fast at now and appends it to the history.
func (t *Tracker) End(now time.Time) (model.FastRecord, error) {
	return t.EndWithNotes(now, "")
}

// EndWithNotes is End with notes attached to the record in the same write.
func (t *Tracker) EndWithNotes(now time.Time, notes string) (model.FastRecord, error) {
	active, err := t.Active()
	if err != nil {
		return model.FastRecord{}, err
	}
	if active == nil {
		return model.FastRecord{}, errors.ErrNoActiveFast
	}
	if now.Before(active.StartTime) {
		return model.FastRecord{}, errors.ErrEndBeforeStart
	}

	rec := active.ToRecord(now)
	rec.Notes = notes
	rec, err = t.gw.FinishActive(rec)
	if err != nil {
		return model.FastRecord{}, errors.NewSystemErrorWithOp("end", "failed to save fast", err)
	}

	logging.DebugLog("fast ended",
		logging.KeyOperation, "end",
		logging.KeyFastID, rec.ID,
		logging.KeyStatus, rec.Status,
		logging.KeyHours, rec.ActualHours)
	return rec, nil
}

// Cancel discards the active fast without recording it. It returns the
// discarded fast.
func (t *Tracker) Cancel() (*model.ActiveFast, error) {
	active, err := t.Active()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, errors.ErrNoActiveFast
	}

	if err := t.gw.Active.Clear(); err != nil {
		return nil, errors.NewSystemErrorWithOp("cancel", "failed to clear active fast", err)
	}

	logging.DebugLog("fast cancelled", logging.KeyOperation, "cancel", logging.KeyMethod, active.MethodID)
	return active, nil
}

// RecordManual appends a past fast that ran from start to end.
func (t *Tracker) RecordManual(methodID string, start, end time.Time, notes string) (model.FastRecord, error) {
	if !end.After(start) {
		return model.FastRecord{}, errors.ErrEndBeforeStart
	}

	method, err := t.ResolveMethod(methodID)
	if err != nil {
		return model.FastRecord{}, err
	}

	rec := model.FastRecord{
		MethodID:    method.ID,
		MethodName:  method.Name,
		TargetHours: method.FastHours,
		StartTime:   start.UTC(),
		Notes:       notes,
		Manual:      true,
	}
	rec.Finish(end)

	rec, err = t.gw.Fasts.Add(rec)
	if err != nil {
		return model.FastRecord{}, errors.NewSystemErrorWithOp("log", "failed to save fast", err)
	}

	logging.DebugLog("manual fast recorded",
		logging.KeyOperation, "log",
		logging.KeyFastID, rec.ID,
		logging.KeyStatus, rec.Status)
	return rec, nil
}

// AdjustEndTime moves the end of a recorded fast and recomputes its hours and status
// against the snapshotted target.
func (t *Tracker) AdjustEndTime(id string, newEnd time.Time) (model.FastRecord, error) {
	rec, err := t.gw.Fasts.Get(id)
	if err != nil {
		return model.FastRecord{}, err
	}
	if rec == nil {
		return model.FastRecord{}, errors.ErrFastNotFound
	}
	if !newEnd.After(rec.StartTime) {
		return model.FastRecord{}, errors.ErrEndBeforeStart
	}

	end := newEnd.UTC()
	hours, status := model.Outcome(rec.StartTime, end, rec.TargetHours)
	updated, err := t.gw.Fasts.Update(id, model.FastPatch{
		EndTime:     &end,
		ActualHours: &hours,
		Status:      &status,
	})
	if err != nil {
		return model.FastRecord{}, errors.NewSystemErrorWithOp("edit", "failed to update fast", err)
	}
	if updated == nil {
		return model.FastRecord{}, errors.ErrFastNotFound
	}

	logging.DebugLog("fast end adjusted",
		logging.KeyOperation, "edit",
		logging.KeyFastID, id,
		logging.KeyStatus, updated.Status)
	return *updated, nil
}

// UpdateNotes replaces the notes of a recorded fast.
func (t *Tracker) UpdateNotes(id, notes string) (model.FastRecord, error) {
	updated, err := t.gw.Fasts.Update(id, model.FastPatch{Notes: &notes})
	if err != nil {
		return model.FastRecord{}, err
	}
	if updated == nil {
		return model.FastRecord{}, errors.ErrFastNotFound
	}
	return *updated, nil
}

// Delete removes a recorded fast. Unknown ids are a no-op and return false.
func (t *Tracker) Delete(id string) (bool, error) {
	removed, err := t.gw.Fasts.Delete(id)
	if err != nil {
		return false, err
	}
	if removed {
		logging.DebugLog("fast deleted", logging.KeyOperation, "delete", logging.KeyFastID, id)
	}
	return removed, nil
}

// SwitchMethod changes the default method in settings. It is refused while
// a fast is running, since the running fast has already snapshotted its target.
func (t *Tracker) SwitchMethod(methodID string) (model.Settings, error) {
	if !t.cat.Has(methodID) {
		return model.Settings{}, &errors.UserError{
			Message: "unknown fasting method",
			Field:   "method",
			Value:   methodID,
			Err:     errors.ErrInvalidMethod,
		}
	}

	state, err := t.State()
	if err != nil {
		return model.Settings{}, err
	}
	if state == StateActive {
		return model.Settings{}, errors.ErrMethodLocked
	}

	settings, err := t.gw.Settings.Get()
	if err != nil {
		return model.Settings{}, err
	}
	settings.MethodID = methodID
	if err := t.gw.Settings.Save(settings); err != nil {
		return model.Settings{}, errors.NewSystemErrorWithOp("settings", "failed to save settings", err)
	}
	return settings, nil
}

// ResolveID expands a full id, or a unique leading or trailing fragment of
// one, into the full record id.
func (t *Tracker) ResolveID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.ErrFastNotFound
	}

	fasts, err := t.gw.Fasts.All()
	if err != nil {
		return "", err
	}

	var match string
	for _, f := range fasts {
		if f.ID == ref {
			return f.ID, nil
		}
		if strings.HasPrefix(f.ID, ref) || strings.HasSuffix(f.ID, ref) {
			if match != "" && match != f.ID {
				return "", errors.ErrAmbiguousID
			}
			match = f.ID
		}
	}
	if match == "" {
		return "", errors.ErrFastNotFound
	}
	return match, nil
}
