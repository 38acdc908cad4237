// Package ui provides the live watch-mode terminal interface using Bubble Tea.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/planettime/internal/state"
	"github.com/litescript/planettime/internal/version"
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers the once-per-second readout refresh.
	TickMsg time.Time

	// recomputedMsg signals that a day-report rebuild finished.
	recomputedMsg struct{}
)

// Model is the root Bubble Tea model for watch mode.
type Model struct {
	state *state.Manager

	width  int
	height int
	ready  bool

	now time.Time
}

// New creates the watch-mode model. The manager should already hold a
// report; the model recomputes only on civil-day rollover.
func New(stateMgr *state.Manager) Model {
	return Model{
		state: stateMgr,
		now:   time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case TickMsg:
		m.now = time.Time(msg)
		if m.state.NeedsRecompute(m.now) {
			mgr := m.state
			now := m.now
			return m, tea.Batch(tickCmd(), func() tea.Msg {
				mgr.Recompute(now)
				return recomputedMsg{}
			})
		}
		return m, tickCmd()

	case recomputedMsg:
		return m, nil
	}

	return m, nil
}

// View renders the watch screen.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	snap := m.state.GetSnapshot()

	header := renderHeader(snap, m.now)
	sun := renderSunPanel(snap, m.now)
	planets := renderPlanetTable(snap, m.now)
	footer := footerStyle.Render("q quit · planettime " + version.Version)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", sun, "", planets, "", footer)
}
