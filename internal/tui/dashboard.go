package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/fastpilot/internal/logging"
	"github.com/manav03panchal/fastpilot/internal/metrics"
	"github.com/manav03panchal/fastpilot/internal/model"
	"github.com/manav03panchal/fastpilot/internal/storage"
	"github.com/manav03panchal/fastpilot/internal/timer"
	"github.com/manav03panchal/fastpilot/internal/tracker"
)

// tickMsg is sent when the display should redraw.
type tickMsg time.Time

// refreshMsg is sent when data needs to be reloaded from storage.
type refreshMsg struct{}

// DashboardModel is the bubbletea model for the live fast dashboard.
type DashboardModel struct {
	// Data
	active *model.ActiveFast
	recent []model.FastRecord
	quick  metrics.QuickStats

	tracker *tracker.Tracker
	gateway *storage.Gateway
	now     func() time.Time

	// UI state
	keys          keyMap
	help          help.Model
	bar           progress.Model
	width         int
	height        int
	err           error
	message       string
	messageExp    time.Time
	confirmCancel bool

	refreshInterval time.Duration
	maxRecent       int
	externalTicks   bool
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Tracker         *tracker.Tracker
	Gateway         *storage.Gateway
	Now             func() time.Time
	RefreshInterval time.Duration
	MaxRecent       int
	// Ticker, when set, drives redraws instead of bubbletea's own tick.
	Ticker *timer.Ticker
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(cfg DashboardConfig) *DashboardModel {
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = time.Second
	}
	if cfg.MaxRecent == 0 {
		cfg.MaxRecent = 5
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &DashboardModel{
		tracker:         cfg.Tracker,
		gateway:         cfg.Gateway,
		now:             cfg.Now,
		keys:            defaultKeyMap(),
		help:            help.New(),
		bar:             progress.New(progress.WithDefaultGradient()),
		refreshInterval: cfg.RefreshInterval,
		maxRecent:       cfg.MaxRecent,
		externalTicks:   cfg.Ticker != nil,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = boxWidth(msg.Width) - 6
		return m, nil

	case tickMsg:
		if !m.messageExp.IsZero() && m.now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
			m.confirmCancel = false
		}
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil
	}

	return m, nil
}

func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Cancel) {
		m.confirmCancel = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Start):
		active, err := m.tracker.Start("", m.now())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.setMessage(fmt.Sprintf("Started %s fast", active.MethodName), 2*time.Second)
		m.loadData()

	case key.Matches(msg, m.keys.End):
		rec, err := m.tracker.End(m.now())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.setMessage(fmt.Sprintf("Fast %s: %s", rec.Status, timer.FormatHours(rec.ActualHours)), 3*time.Second)
		m.loadData()

	case key.Matches(msg, m.keys.Cancel):
		if !m.confirmCancel {
			m.confirmCancel = true
			m.setMessage("Press 'c' again to discard this fast", 3*time.Second)
			return m, nil
		}
		m.confirmCancel = false
		if _, err := m.tracker.Cancel(); err != nil {
			m.err = err
			return m, nil
		}
		m.setMessage("Fast cancelled, nothing recorded", 2*time.Second)
		m.loadData()

	case key.Matches(msg, m.keys.Refresh):
		m.loadData()
		m.setMessage("Refreshed", time.Second)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	now := m.now()
	var sections []string

	title := StyleTitle.Render("FastPilot")
	clock := StyleSubtitle.Render(now.Format("Mon Jan 2, 15:04:05"))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", clock))

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	status := &StatusComponent{Active: m.active, Now: now, Bar: m.bar, Width: m.width}
	sections = append(sections, status.View())

	summary := &SummaryComponent{Quick: m.quick, Width: m.width}
	sections = append(sections, summary.View())

	recent := &RecentComponent{Fasts: m.recent, Width: m.width}
	sections = append(sections, recent.View())

	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// loadData reloads the active fast and history from storage.
func (m *DashboardModel) loadData() {
	active, err := m.tracker.Active()
	if err != nil {
		m.err = err
		return
	}
	m.active = active
	m.keys.setActive(active != nil)

	fasts, err := m.gateway.Fasts.All()
	if err != nil {
		m.err = err
		return
	}
	settings, err := m.gateway.Settings.Get()
	if err != nil {
		m.err = err
		return
	}
	m.quick = metrics.Quick(fasts, m.now(), settings.WeeklyGoal)

	model.SortNewestFirst(fasts)
	if len(fasts) > m.maxRecent {
		fasts = fasts[:m.maxRecent]
	}
	m.recent = fasts

	m.err = nil
}

func (m *DashboardModel) setMessage(msg string, d time.Duration) {
	m.message = msg
	m.messageExp = m.now().Add(d)
}

// tickCmd schedules the next redraw unless an external ticker drives it.
func (m *DashboardModel) tickCmd() tea.Cmd {
	if m.externalTicks {
		return nil
	}
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// Run starts the dashboard and blocks until the user quits.
func Run(ctx context.Context, cfg DashboardConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewDashboardModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.Ticker != nil {
		go cfg.Ticker.Start(ctx, func(t time.Time) {
			p.Send(tickMsg(t))
		})
		defer func() {
			cancel()
			cfg.Ticker.Stop()
		}()
	}

	logging.DebugContext(ctx, "dashboard started", logging.KeyOperation, "watch")
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
