package tui

import (
	"testing"

	"github.com/vovakirdan/tui-duel/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "BANG", core.ColorBrightGreen)
	s.DrawTextColored(5, 0, "x", core.ColorRed)
	s.DrawText(0, 1, "wide 日本")

	// Tests run without a color profile, so styles add no escapes.
	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}
