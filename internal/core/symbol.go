package core

import (
	"strings"
	"unicode/utf8"
)

// Symbol is a single input key as seen by the duel engine, e.g. "a" or "k".
// Symbols are always lower case so that Shift or Caps Lock never changes
// which key a player pressed.
type Symbol string

// NormalizeKey converts a raw key name from the terminal into a Symbol.
// Only single printable characters are symbols; named keys such as "enter"
// or "ctrl+c" yield an empty Symbol and are dropped by the engine.
func NormalizeKey(raw string) Symbol {
	if utf8.RuneCountInString(raw) != 1 {
		return ""
	}
	if raw == " " {
		return ""
	}
	return Symbol(strings.ToLower(raw))
}

// Upper returns the symbol in the form shown to players.
func (s Symbol) Upper() string {
	return strings.ToUpper(string(s))
}
