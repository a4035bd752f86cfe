package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/duel"
	"github.com/vovakirdan/tui-duel/internal/pattern"
)

// Note is a short feedback line shown under a player's panel.
type Note struct {
	Text  string
	Color core.Color
}

// Layout constants
const (
	titleRow  = 1
	bannerRow = 3
	detailRow = 4
	panelTop  = 6
	minPanelH = 11
)

// DrawDuel renders the duel snapshot into the screen buffer.
func DrawDuel(s *core.Screen, snap duel.Snapshot, notes [2]Note) {
	s.Clear()
	bounds := s.Bounds()

	s.DrawTextCentered(bounds, titleRow, "P A T T E R N   D U E L", core.ColorBrightYellow)

	banner, color := bannerText(snap)
	s.DrawTextCentered(bounds, bannerRow, banner, color)
	if detail := detailText(snap); detail != "" {
		s.DrawTextCentered(bounds, detailRow, detail, core.ColorGray)
	}

	area := core.NewRect(0, panelTop, bounds.W, core.Max(minPanelH, bounds.H-panelTop))
	left, right := area.SplitVertical()
	drawPanel(s, left, snap, snap.Players[0], notes[0])
	drawPanel(s, right, snap, snap.Players[1], notes[1])
}

func bannerText(snap duel.Snapshot) (string, core.Color) {
	switch snap.Phase {
	case pattern.PhaseWaiting:
		return "Press any weapon key to start", core.ColorWhite
	case pattern.PhaseCountdown:
		return fmt.Sprintf("%d", snap.Countdown), core.ColorBrightYellow
	case pattern.PhaseReveal:
		return "MEMORIZE!", core.ColorYellow
	case pattern.PhaseListening:
		return "FIRE!", core.ColorBrightRed
	case pattern.PhaseFinished:
		if snap.Outcome == nil {
			return "", core.ColorDefault
		}
		return outcomeText(*snap.Outcome, snap.Players), core.ColorBrightGreen
	}
	return "", core.ColorDefault
}

func detailText(snap duel.Snapshot) string {
	switch snap.Phase {
	case pattern.PhaseListening:
		return fmt.Sprintf("%.1fs", snap.Remaining().Duration().Seconds())
	case pattern.PhaseFinished:
		return "enter/r: play again"
	}
	return ""
}

// outcomeText phrases the verdict with the players' names.
func outcomeText(o pattern.Outcome, players [2]duel.PlayerView) string {
	switch {
	case o.Draw:
		return "Draw!"
	case o.Winner == core.NoPlayer && o.Reason == pattern.ReasonTooSlow:
		return "Too slow!"
	case o.Winner == core.NoPlayer:
		return fmt.Sprintf("No winner: %s", o.Reason)
	}
	idx := o.Winner.Index()
	return fmt.Sprintf("%s wins! (%s)", players[idx].Name, o.Reason)
}

func drawPanel(s *core.Screen, r core.Rect, snap duel.Snapshot, p duel.PlayerView, note Note) {
	accent := core.PlayerColor(p.ID)
	s.DrawBox(r, accent)
	inner := r.Inset(2)

	y := inner.Y
	s.DrawTextCentered(inner, y, p.Name, accent)
	y++
	s.DrawTextCentered(inner, y, p.Weapon, core.ColorGray)
	y += 2

	drawPattern(s, inner, y, snap.Phase, p)
	y += 2

	status, color := statusText(snap, p)
	s.DrawTextCentered(inner, y, status, color)
	y++

	if note.Text != "" {
		s.DrawTextCentered(inner, y, note.Text, note.Color)
	}
}

// drawPattern shows the pattern in full during the reveal, masked while
// listening except for what was typed, and in full again once finished.
func drawPattern(s *core.Screen, r core.Rect, y int, phase pattern.Phase, p duel.PlayerView) {
	if len(p.Pattern) == 0 {
		s.DrawTextCentered(r, y, "? ? ?", core.ColorGray)
		return
	}

	width := len(p.Pattern)*2 - 1
	x := r.X + (r.W-width)/2
	for i, sym := range p.Pattern {
		text, color := sym.Upper(), core.ColorWhite
		switch {
		case phase == pattern.PhaseReveal:
			color = core.ColorBrightYellow
		case i < p.Progress:
			color = core.ColorBrightGreen
		case phase == pattern.PhaseListening:
			text = "_"
			if i == p.Progress && !p.Penalized {
				color = core.ColorYellow
			}
		default:
			color = core.ColorGray
		}
		s.DrawTextColored(x+i*2, y, text, color)
	}
}

func statusText(snap duel.Snapshot, p duel.PlayerView) (string, core.Color) {
	switch {
	case p.Disqualified:
		reason := p.Reason
		if reason == pattern.ReasonEarly {
			reason = "too early"
		}
		return "DISQUALIFIED (" + reason + ")", core.ColorRed
	case p.Completed:
		return "BANG!", core.ColorBrightGreen
	case p.Penalized:
		left := p.PenaltyUntil - snap.Now
		return fmt.Sprintf("jammed %.1fs", left.Duration().Seconds()), core.ColorOrange
	case snap.Phase == pattern.PhaseListening:
		done := core.Clamp(p.Progress, 0, len(p.Pattern))
		return strings.Repeat("*", done) + strings.Repeat(".", len(p.Pattern)-done), core.ColorWhite
	}
	return "", core.ColorDefault
}
