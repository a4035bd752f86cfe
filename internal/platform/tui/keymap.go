package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// DuelKeyMap defines the control keys of the duel screen. Every other
// printable key is passed to the duel as a weapon symbol.
type DuelKeyMap struct {
	Restart    key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k DuelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k DuelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Restart, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultDuelKeyMap returns default key bindings. None of them are letters
// a weapon could use, except r, which only restarts once the duel is over.
func DefaultDuelKeyMap() DuelKeyMap {
	return DuelKeyMap{
		Restart: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "play again"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// SymbolFromKey translates a key message into a duel symbol.
// Only single printable runes become symbols; pastes, named keys and
// modifiers yield "".
func SymbolFromKey(msg tea.KeyMsg) core.Symbol {
	if msg.Type != tea.KeyRunes || msg.Paste || msg.Alt || len(msg.Runes) != 1 {
		return ""
	}
	return core.NormalizeKey(string(msg.Runes))
}
