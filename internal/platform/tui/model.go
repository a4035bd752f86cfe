package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/duel"
	"github.com/vovakirdan/tui-duel/internal/pattern"
)

// Model is the Bubble Tea model for a hot-seat duel: both players share one
// keyboard and the machine decides whose pattern each key belongs to.
type Model struct {
	machine  *duel.Machine
	clock    core.Clock
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     DuelKeyMap
	help     help.Model
	notes    [2]Note
	quitting bool
}

// NewModel creates a duel model. A nil clock uses the system clock.
func NewModel(machine *duel.Machine, clock core.Clock, cfg core.RuntimeConfig) Model {
	if clock == nil {
		clock = core.NewSystemClock()
	}
	cfg = cfg.Normalized()
	return Model{
		machine: machine,
		clock:   clock,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(0, cfg.ScreenH-1)),
		config:  cfg,
		keys:    DefaultDuelKeyMap(),
		help:    help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// Last row belongs to the help bar.
		m.screen.Resize(msg.Width, core.Max(0, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.apply(m.machine.Tick(m.clock.Now()))
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.clock.Now()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot(now)
		return m, nil

	case key.Matches(msg, m.keys.Restart) && m.machine.Phase() == pattern.PhaseFinished:
		m.apply(m.machine.Reset(now))
		return m, nil
	}

	if sym := SymbolFromKey(msg); sym != "" {
		m.apply(m.machine.HandleKey(sym, now))
	}
	return m, nil
}

// apply turns duel events into player feedback.
func (m *Model) apply(events []pattern.Event) {
	for _, evt := range events {
		switch e := evt.(type) {
		case duel.PhaseChangedEvent:
			if e.To == pattern.PhaseWaiting || e.To == pattern.PhaseCountdown {
				m.notes = [2]Note{}
			}
		case pattern.WrongInputEvent:
			m.setNote(e.Player, Note{
				Text:  fmt.Sprintf("wrong key %s, wanted %s", e.Actual.Upper(), e.Expected.Upper()),
				Color: core.ColorRed,
			})
		case duel.PenaltyClearedEvent:
			m.setNote(e.Player, Note{})
		case pattern.ProgressEvent:
			m.setNote(e.Player, Note{})
		case pattern.DisqualifiedEvent:
			m.setNote(e.Player, Note{Text: "jumped the gun on " + e.Symbol.Upper(), Color: core.ColorRed})
		case pattern.CompleteEvent:
			m.setNote(e.Player, Note{Text: "shot fired", Color: core.ColorBrightGreen})
		}
	}
}

func (m *Model) setNote(p core.PlayerID, n Note) {
	if idx := p.Index(); idx >= 0 {
		m.notes[idx] = n
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot(now core.Millis) {
	DrawDuel(m.screen, m.machine.Snapshot(now), m.notes)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".duel", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("duel_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, duel continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawDuel(m.screen, m.machine.Snapshot(m.clock.Now()), m.notes)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Notes returns the current feedback lines.
func (m Model) Notes() [2]Note {
	return m.notes
}

// Run starts the Bubble Tea program with the given machine.
func Run(machine *duel.Machine, cfg core.RuntimeConfig) error {
	model := NewModel(machine, core.NewSystemClock(), cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
