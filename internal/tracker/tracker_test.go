package tracker

import (
	"testing"
	"time"

	"github.com/manav03panchal/fastpilot/internal/catalog"
	"github.com/manav03panchal/fastpilot/internal/errors"
	"github.com/manav03panchal/fastpilot/internal/model"
	"github.com/manav03panchal/fastpilot/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackerTest struct {
	tr *Tracker
	gw *storage.Gateway
}

func setupTracker(t *testing.T) *trackerTest {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cat := catalog.New()
	gw := storage.NewGateway(db, cat)
	return &trackerTest{tr: New(gw, cat), gw: gw}
}

func (tt *trackerTest) history(t *testing.T) []model.FastRecord {
	fasts, err := tt.gw.Fasts.All()
	require.NoError(t, err)
	return fasts
}

var t0 = time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)

// =============================================================================
// Start Tests
// =============================================================================

func TestStart(t *testing.T) {
	tt := setupTracker(t)

	state, err := tt.tr.State()
	require.NoError(t, err)
	assert.Equal(t, StateIdle, state)

	active, err := tt.tr.Start("18-6", t0)
	require.NoError(t, err)
	assert.Equal(t, "18-6", active.MethodID)
	assert.Equal(t, "18:6", active.MethodName)
	assert.Equal(t, 18.0, active.TargetHours)
	assert.Equal(t, model.StatusActive, active.Status)

	state, err = tt.tr.State()
	require.NoError(t, err)
	assert.Equal(t, StateActive, state)
	assert.Empty(t, tt.history(t))
}

func TestStartUsesSettingsMethod(t *testing.T) {
	tt := setupTracker(t)
	s := model.DefaultSettings()
	s.MethodID = "20-4"
	require.NoError(t, tt.gw.Settings.Save(s))

	active, err := tt.tr.Start("", t0)
	require.NoError(t, err)
	assert.Equal(t, "20-4", active.MethodID)
	assert.Equal(t, 20.0, active.TargetHours)
}

func TestStartUnknownMethodFallsBack(t *testing.T) {
	tt := setupTracker(t)

	active, err := tt.tr.Start("no-such-method", t0)
	require.NoError(t, err)
	assert.Equal(t, "16-8", active.MethodID)
	assert.Equal(t, 16.0, active.TargetHours)
}

func TestStartCustomUsesSettingsHours(t *testing.T) {
	tt := setupTracker(t)
	s := model.DefaultSettings()
	s.CustomFastHours = 19.5
	require.NoError(t, tt.gw.Settings.Save(s))

	active, err := tt.tr.Start(catalog.CustomID, t0)
	require.NoError(t, err)
	assert.Equal(t, 19.5, active.TargetHours)
}

func TestStartWhileActive(t *testing.T) {
	tt := setupTracker(t)
	first, err := tt.tr.Start("16-8", t0)
	require.NoError(t, err)

	_, err = tt.tr.Start("18-6", t0.Add(time.Hour))
	assert.ErrorIs(t, err, errors.ErrAlreadyActive)

	// Unchanged
	active, err := tt.tr.Active()
	require.NoError(t, err)
	assert.Equal(t, first.MethodID, active.MethodID)
	assert.True(t, active.StartTime.Equal(t0))
}

func TestStartRetroactive(t *testing.T) {
	tt := setupTracker(t)
	now := t0.Add(3 * time.Hour)

	_, err := tt.tr.StartRetroactive("16-8", now.Add(time.Minute), now)
	assert.ErrorIs(t, err, errors.ErrFutureStart)

	active, err := tt.tr.StartRetroactive("16-8", t0, now)
	require.NoError(t, err)
	assert.True(t, active.StartTime.Equal(t0))

	_, err = tt.tr.StartRetroactive("16-8", t0, now)
	assert.ErrorIs(t, err, errors.ErrAlreadyActive)
}

// =============================================================================
// End Tests
// =============================================================================

func TestEnd(t *testing.T) {
	tests := []struct {
		name       string
		elapsed    time.Duration
		wantHours  float64
		wantStatus model.Status
	}{
		{"exactly on target", 16 * time.Hour, 16, model.StatusCompleted},
		{"just short", 16*time.Hour - time.Second, 16, model.StatusPartial},
		{"overtime", 18*time.Hour + 15*time.Minute, 18.25, model.StatusCompleted},
		{"zero length", 0, 0, model.StatusPartial},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tt := setupTracker(t)
			_, err := tt.tr.Start("16-8", t0)
			require.NoError(t, err)

			rec, err := tt.tr.End(t0.Add(tc.elapsed))
			require.NoError(t, err)
			assert.NotEmpty(t, rec.ID)
			assert.Equal(t, tc.wantHours, rec.ActualHours)
			assert.Equal(t, tc.wantStatus, rec.Status)
			assert.Equal(t, "16:8", rec.MethodName)
			assert.False(t, rec.Manual)

			active, err := tt.tr.Active()
			require.NoError(t, err)
			assert.Nil(t, active)
			assert.Len(t, tt.history(t), 1)
		})
	}
}

func TestEndWhileIdle(t *testing.T) {
	tt := setupTracker(t)

	_, err := tt.tr.End(t0)
	assert.ErrorIs(t, err, errors.ErrNoActiveFast)
	assert.Empty(t, tt.history(t))
}

func TestEndBeforeStart(t *testing.T) {
	tt := setupTracker(t)
	_, err := tt.tr.Start("16-8", t0)
	require.NoError(t, err)

	_, err = tt.tr.End(t0.Add(-time.Minute))
	assert.ErrorIs(t, err, errors.ErrEndBeforeStart)

	active, err := tt.tr.Active()
	require.NoError(t, err)
	assert.NotNil(t, active)
	assert.Empty(t, tt.history(t))
}

func TestEndKeepsSnapshotAfterSettingsChange(t *testing.T) {
	tt := setupTracker(t)
	s := model.DefaultSettings()
	s.CustomFastHours = 10
	require.NoError(t, tt.gw.Settings.Save(s))

	_, err := tt.tr.Start(catalog.CustomID, t0)
	require.NoError(t, err)

	s.CustomFastHours = 30
	require.NoError(t, tt.gw.Settings.Save(s))

	rec, err := tt.tr.End(t0.Add(12 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 10.0, rec.TargetHours)
	assert.Equal(t, model.StatusCompleted, rec.Status)
}

func TestEndWithNotes(t *testing.T) {
	tt := setupTracker(t)
	_, err := tt.tr.Start("16-8", t0)
	require.NoError(t, err)

	_, err = tt.tr.EndWithNotes(t0.Add(-time.Minute), "too early")
	assert.ErrorIs(t, err, errors.ErrEndBeforeStart)
	active, err := tt.tr.Active()
	require.NoError(t, err)
	assert.NotNil(t, active)

	rec, err := tt.tr.EndWithNotes(t0.Add(16*time.Hour), "broke fast with eggs")
	require.NoError(t, err)
	assert.Equal(t, "broke fast with eggs", rec.Notes)

	stored, err := tt.gw.Fasts.Get(rec.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "broke fast with eggs", stored.Notes)
	assert.Equal(t, model.StatusCompleted, stored.Status)

	active, err = tt.tr.Active()
	require.NoError(t, err)
	assert.Nil(t, active)
}

// =============================================================================
// Cancel Tests
// =============================================================================

func TestCancel(t *testing.T) {
	tt := setupTracker(t)
	_, err := tt.tr.Start("16-8", t0)
	require.NoError(t, err)

	discarded, err := tt.tr.Cancel()
	require.NoError(t, err)
	assert.Equal(t, "16-8", discarded.MethodID)

	active, err := tt.tr.Active()
	require.NoError(t, err)
	assert.Nil(t, active)
	assert.Empty(t, tt.history(t))

	_, err = tt.tr.Cancel()
	assert.ErrorIs(t, err, errors.ErrNoActiveFast)
}

func TestCancelLeavesHistoryUntouched(t *testing.T) {
	tt := setupTracker(t)
	_, err := tt.tr.RecordManual("16-8", t0, t0.Add(16*time.Hour), "")
	require.NoError(t, err)
	before := tt.history(t)

	_, err = tt.tr.Start("16-8", t0.Add(48*time.Hour))
	require.NoError(t, err)
	_, err = tt.tr.Cancel()
	require.NoError(t, err)

	assert.Equal(t, before, tt.history(t))
}

// =============================================================================
// Manual Record Tests
// =============================================================================

func TestRecordManual(t *testing.T) {
	tt := setupTracker(t)
	start := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	rec, err := tt.tr.RecordManual("16-8", start, end, "weekend")
	require.NoError(t, err)
	assert.Equal(t, 16.0, rec.ActualHours)
	assert.Equal(t, model.StatusCompleted, rec.Status)
	assert.True(t, rec.Manual)
	assert.Equal(t, "weekend", rec.Notes)
	assert.Len(t, tt.history(t), 1)
}

func TestRecordManualDoesNotTouchActive(t *testing.T) {
	tt := setupTracker(t)
	_, err := tt.tr.Start("16-8", t0.Add(72*time.Hour))
	require.NoError(t, err)

	_, err = tt.tr.RecordManual("18-6", t0, t0.Add(10*time.Hour), "")
	require.NoError(t, err)

	active, err := tt.tr.Active()
	require.NoError(t, err)
	assert.NotNil(t, active)
}

func TestRecordManualInvalidRange(t *testing.T) {
	tt := setupTracker(t)

	_, err := tt.tr.RecordManual("16-8", t0, t0, "")
	assert.ErrorIs(t, err, errors.ErrEndBeforeStart)

	_, err = tt.tr.RecordManual("16-8", t0, t0.Add(-time.Hour), "")
	assert.ErrorIs(t, err, errors.ErrEndBeforeStart)

	assert.Empty(t, tt.history(t))
}

// =============================================================================
// Adjust / Delete Tests
// =============================================================================

func TestAdjustEndTime(t *testing.T) {
	tt := setupTracker(t)
	rec, err := tt.tr.RecordManual("16-8", t0, t0.Add(12*time.Hour), "")
	require.NoError(t, err)
	require.Equal(t, model.StatusPartial, rec.Status)

	updated, err := tt.tr.AdjustEndTime(rec.ID, t0.Add(17*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 17.0, updated.ActualHours)
	assert.Equal(t, model.StatusCompleted, updated.Status)
	assert.Equal(t, rec.ID, updated.ID)

	stored := tt.history(t)
	require.Len(t, stored, 1)
	assert.Equal(t, 17.0, stored[0].ActualHours)
}

func TestAdjustEndTimeErrors(t *testing.T) {
	tt := setupTracker(t)
	rec, err := tt.tr.RecordManual("16-8", t0, t0.Add(12*time.Hour), "")
	require.NoError(t, err)

	_, err = tt.tr.AdjustEndTime("missing", t0.Add(20*time.Hour))
	assert.ErrorIs(t, err, errors.ErrFastNotFound)

	_, err = tt.tr.AdjustEndTime(rec.ID, t0)
	assert.ErrorIs(t, err, errors.ErrEndBeforeStart)

	stored := tt.history(t)
	assert.Equal(t, 12.0, stored[0].ActualHours)
}

func TestUpdateNotes(t *testing.T) {
	tt := setupTracker(t)
	rec, err := tt.tr.RecordManual("16-8", t0, t0.Add(16*time.Hour), "")
	require.NoError(t, err)

	updated, err := tt.tr.UpdateNotes(rec.ID, "easy one")
	require.NoError(t, err)
	assert.Equal(t, "easy one", updated.Notes)

	_, err = tt.tr.UpdateNotes("missing", "x")
	assert.ErrorIs(t, err, errors.ErrFastNotFound)
}

func TestDelete(t *testing.T) {
	tt := setupTracker(t)
	rec, err := tt.tr.RecordManual("16-8", t0, t0.Add(16*time.Hour), "")
	require.NoError(t, err)

	removed, err := tt.tr.Delete("missing")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, tt.history(t), 1)

	removed, err = tt.tr.Delete(rec.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, tt.history(t))
}

// =============================================================================
// Method Switching Tests
// =============================================================================

func TestSwitchMethod(t *testing.T) {
	tt := setupTracker(t)

	settings, err := tt.tr.SwitchMethod("23-1")
	require.NoError(t, err)
	assert.Equal(t, "23-1", settings.MethodID)

	_, err = tt.tr.SwitchMethod("bogus")
	assert.ErrorIs(t, err, errors.ErrInvalidMethod)

	_, err = tt.tr.Start("", t0)
	require.NoError(t, err)
	_, err = tt.tr.SwitchMethod("16-8")
	assert.ErrorIs(t, err, errors.ErrMethodLocked)

	stored, err := tt.gw.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "23-1", stored.MethodID)
}

func TestResolveID(t *testing.T) {
	tt := setupTracker(t)
	require.NoError(t, tt.gw.Fasts.SaveAll([]model.FastRecord{
		{ID: "018f3a2b-7c4d-7e5f-8a9b-0a1b9c1d2e3f", MethodID: "16-8", StartTime: t0},
		{ID: "018f3a2b-7c4d-7e5f-8a9b-0a1b11112222", MethodID: "16-8", StartTime: t0},
	}))

	id, err := tt.tr.ResolveID("018f3a2b-7c4d-7e5f-8a9b-0a1b9c1d2e3f")
	require.NoError(t, err)
	assert.Equal(t, "018f3a2b-7c4d-7e5f-8a9b-0a1b9c1d2e3f", id)

	id, err = tt.tr.ResolveID("9c1d2e3f")
	require.NoError(t, err)
	assert.Equal(t, "018f3a2b-7c4d-7e5f-8a9b-0a1b9c1d2e3f", id)

	_, err = tt.tr.ResolveID("018f3a2b")
	assert.ErrorIs(t, err, errors.ErrAmbiguousID)

	_, err = tt.tr.ResolveID("deadbeef")
	assert.ErrorIs(t, err, errors.ErrFastNotFound)

	_, err = tt.tr.ResolveID("  ")
	assert.ErrorIs(t, err, errors.ErrFastNotFound)
}
