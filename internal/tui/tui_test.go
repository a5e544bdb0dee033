package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/fastpilot/internal/catalog"
	"github.com/manav03panchal/fastpilot/internal/errors"
	"github.com/manav03panchal/fastpilot/internal/metrics"
	"github.com/manav03panchal/fastpilot/internal/model"
	"github.com/manav03panchal/fastpilot/internal/storage"
	"github.com/manav03panchal/fastpilot/internal/timer"
	"github.com/manav03panchal/fastpilot/internal/tracker"
)

var t0 = time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)

type dashTest struct {
	m   *DashboardModel
	gw  *storage.Gateway
	now time.Time
}

func setupDashboard(t *testing.T) *dashTest {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cat := catalog.New()
	gw := storage.NewGateway(db, cat)
	dt := &dashTest{gw: gw, now: t0}
	dt.m = NewDashboardModel(DashboardConfig{
		Tracker: tracker.New(gw, cat),
		Gateway: gw,
		Now:     func() time.Time { return dt.now },
	})
	dt.m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	dt.m.Update(refreshMsg{})
	return dt
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// =============================================================================
// ProgressBar Tests
// =============================================================================

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		filled     int
	}{
		{"zero", 0, 0},
		{"half", 50, 5},
		{"full", 100, 10},
		{"over", 150, 10},
		{"negative", -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := ProgressBar(tt.percentage, 10)
			assert.Equal(t, tt.filled, strings.Count(bar, "█"))
			assert.Equal(t, 10-tt.filled, strings.Count(bar, "░"))
		})
	}
}

// =============================================================================
// Component Tests
// =============================================================================

func TestStatusComponent(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		sc := &StatusComponent{Now: t0, Bar: progress.New(), Width: 80}
		view := sc.View()
		assert.Contains(t, view, "Not fasting")
		assert.Contains(t, view, "Press 's'")
	})

	t.Run("active", func(t *testing.T) {
		sc := &StatusComponent{
			Active: model.NewActiveFast("16-8", "16:8", 16, t0),
			Now:    t0.Add(13 * time.Hour),
			Bar:    progress.New(),
			Width:  80,
		}
		view := sc.View()
		assert.Contains(t, view, "FASTING")
		assert.Contains(t, view, "16:8")
		assert.Contains(t, view, "13:00:00")
		assert.Contains(t, view, "03:00:00 remaining")
		assert.Contains(t, view, "Ketosis")
		assert.Contains(t, view, "Autophagy in 05:00:00")
	})

	t.Run("goal reached", func(t *testing.T) {
		sc := &StatusComponent{
			Active: model.NewActiveFast("16-8", "16:8", 16, t0),
			Now:    t0.Add(16*time.Hour + 30*time.Minute),
			Bar:    progress.New(),
			Width:  80,
		}
		assert.Contains(t, sc.View(), "Goal reached! +00:30:00 beyond goal")
	})
}

func TestSummaryComponent(t *testing.T) {
	s := &SummaryComponent{Quick: metrics.QuickStats{Streak: 4, WeeklyGoal: 5, CompletedThisWeek: 2}, Width: 80}
	view := s.View()
	assert.Contains(t, view, "4d")
	assert.Contains(t, view, "2/5")

	s.Quick.WeeklyGoal = 0
	assert.NotContains(t, s.View(), "This week")
}

func TestRecentComponent(t *testing.T) {
	rc := &RecentComponent{Width: 80}
	assert.Contains(t, rc.View(), "No fasts yet")

	rec := model.FastRecord{MethodName: "18:6", TargetHours: 18, StartTime: t0}
	rec.Finish(t0.Add(18 * time.Hour))
	rc.Fasts = []model.FastRecord{rec}
	view := rc.View()
	assert.Contains(t, view, "18:6")
	assert.Contains(t, view, "Completed")
}

// =============================================================================
// Dashboard Tests
// =============================================================================

func TestDashboardLoadingView(t *testing.T) {
	m := NewDashboardModel(DashboardConfig{})
	assert.Equal(t, "Loading...", m.View())
	assert.Equal(t, time.Second, m.refreshInterval)
	assert.Equal(t, 5, m.maxRecent)
}

func TestDashboardStartAndEnd(t *testing.T) {
	dt := setupDashboard(t)
	assert.Contains(t, dt.m.View(), "Not fasting")

	dt.m.Update(keyPress('s'))
	require.NotNil(t, dt.m.active)
	assert.Equal(t, "16-8", dt.m.active.MethodID)
	assert.Contains(t, dt.m.message, "Started")

	dt.now = t0.Add(16 * time.Hour)
	dt.m.Update(keyPress('e'))
	assert.Nil(t, dt.m.active)
	require.Len(t, dt.m.recent, 1)
	assert.Equal(t, model.StatusCompleted, dt.m.recent[0].Status)
	assert.Equal(t, 1, dt.m.quick.CompletedFasts)
}

func TestDashboardCancelNeedsConfirmation(t *testing.T) {
	dt := setupDashboard(t)
	dt.m.Update(keyPress('s'))
	require.NotNil(t, dt.m.active)

	dt.m.Update(keyPress('c'))
	assert.NotNil(t, dt.m.active, "first press only asks for confirmation")
	assert.True(t, dt.m.confirmCancel)

	dt.m.Update(keyPress('c'))
	assert.Nil(t, dt.m.active)
	assert.False(t, dt.m.confirmCancel)

	fasts, err := dt.gw.Fasts.All()
	require.NoError(t, err)
	assert.Empty(t, fasts)
}

func TestDashboardOtherKeyResetsConfirmation(t *testing.T) {
	dt := setupDashboard(t)
	dt.m.Update(keyPress('s'))
	dt.m.Update(keyPress('c'))
	require.True(t, dt.m.confirmCancel)

	dt.m.Update(keyPress('r'))
	assert.False(t, dt.m.confirmCancel)

	dt.m.Update(keyPress('c'))
	assert.NotNil(t, dt.m.active)
}

func TestDashboardEndDisabledWhenIdle(t *testing.T) {
	dt := setupDashboard(t)
	dt.m.Update(keyPress('e'))
	assert.NoError(t, dt.m.err)
	assert.Empty(t, dt.m.message)
}

func TestDashboardStartWhileActiveIsIgnored(t *testing.T) {
	dt := setupDashboard(t)
	dt.m.Update(keyPress('s'))
	dt.m.Update(keyPress('s'))
	assert.NoError(t, dt.m.err)

	_, err := dt.m.tracker.Start("", t0)
	assert.ErrorIs(t, err, errors.ErrAlreadyActive)
}

func TestDashboardMessageExpires(t *testing.T) {
	dt := setupDashboard(t)
	dt.m.Update(keyPress('r'))
	assert.Equal(t, "Refreshed", dt.m.message)

	dt.now = t0.Add(2 * time.Second)
	dt.m.Update(tickMsg(dt.now))
	assert.Empty(t, dt.m.message)
}

func TestDashboardQuit(t *testing.T) {
	dt := setupDashboard(t)
	_, cmd := dt.m.Update(keyPress('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDashboardHelpToggle(t *testing.T) {
	dt := setupDashboard(t)
	assert.False(t, dt.m.help.ShowAll)
	dt.m.Update(keyPress('?'))
	assert.True(t, dt.m.help.ShowAll)
}

func TestDashboardExternalTicker(t *testing.T) {
	m := NewDashboardModel(DashboardConfig{Ticker: timer.NewTicker(time.Second)})
	assert.Nil(t, m.tickCmd())

	m = NewDashboardModel(DashboardConfig{})
	assert.NotNil(t, m.tickCmd())
}
