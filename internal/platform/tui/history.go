package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-duel/internal/storage"
)

// History layout constants
const (
	maxHistory = 100 // Max duels to load
)

// HistoryView selects what the history screen lists.
type HistoryView int

const (
	ViewDuels HistoryView = iota
	ViewCoins
)

// String returns the tab title.
func (v HistoryView) String() string {
	if v == ViewCoins {
		return "Coins"
	}
	return "Duels"
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextTab, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "duels/coins"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing past duels and balances.
type HistoryModel struct {
	store    *storage.Store
	view     HistoryView
	duels    []storage.DuelRecord
	balances []storage.Balance
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	err      error
	quitting bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *HistoryModel) load() {
	if m.store == nil {
		return
	}
	duels, err := m.store.RecentDuels(maxHistory)
	if err != nil {
		m.err = err
		return
	}
	balances, err := m.store.Balances()
	if err != nil {
		m.err = err
		return
	}
	m.duels, m.balances = duels, balances
}

// createTable creates a new table with columns for the current view.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	if m.view == ViewCoins {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 20},
			{Title: "Coins", Width: 10},
		}
	} else {
		reasonW := m.width - 4 - 14 - 2*16 - 8 - 12
		columns = []table.Column{
			{Title: "Date", Width: 14},
			{Title: "Player 1", Width: 16},
			{Title: "Player 2", Width: 16},
			{Title: "Time", Width: 8},
			{Title: "Result", Width: max(12, reasonW)},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the current view.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	if m.view == ViewCoins {
		for i, b := range m.balances {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				b.Player,
				fmt.Sprintf("%d", b.Balance),
			})
		}
	} else {
		for _, d := range m.duels {
			rows = append(rows, DuelRow(d))
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// DuelRow formats one duel for the history table.
func DuelRow(d storage.DuelRecord) table.Row {
	p1 := fmt.Sprintf("%s (%s)", d.Players[0], d.Weapons[0])
	p2 := fmt.Sprintf("%s (%s)", d.Players[1], d.Weapons[1])

	result := d.Reason
	switch {
	case d.Draw:
		result = "draw"
	case d.WinnerName() != "":
		result = d.WinnerName() + " won: " + d.Reason
	}

	return table.Row{
		d.CreatedAt.Format("Jan 02 15:04"),
		p1,
		p2,
		fmt.Sprintf("%.2fs", float64(d.DurationMs)/1000),
		result,
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.view = (m.view + 1) % 2
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("DUEL HISTORY - "+m.view.String(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not load history:\n" + m.err.Error())
	case m.view == ViewDuels && len(m.duels) == 0:
		return emptyStyle.Render("No duels recorded yet.\nDraw first!")
	case m.view == ViewCoins && len(m.balances) == 0:
		return emptyStyle.Render("Nobody has earned coins yet.")
	}
	return m.table.View()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunHistory runs the history screen.
func RunHistory(store *storage.Store, width, height int) error {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
