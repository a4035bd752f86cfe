package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/platform/tui"
)

var (
	flagWeapon1 string
	flagWeapon2 string
	flagPlayer1 string
	flagPlayer2 string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a hot-seat duel",
	Long: `Start a duel on this terminal. Both players share the keyboard:
every key belongs to exactly one weapon, so each keypress is routed to
the player carrying it.

Flow:
  1. Press any weapon key to start the countdown
  2. Memorize your pattern while it is revealed
  3. On FIRE! type it back from memory, first to finish wins

Pressing a weapon key before FIRE! disqualifies its owner. A wrong key
jams your weapon for a moment and resets your progress.

Controls:
  Weapon keys   - Start / type your pattern
  Enter/R       - Play again (after a duel)
  ?             - Toggle help
  Ctrl+S        - Save screenshot
  Esc/Ctrl+C    - Quit

Examples:
  duel play
  duel play --player1 alice --player2 bob
  duel play --weapon1 shotgun --weapon2 revolver
  duel play --seed 42 --config ./my-duel.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagWeapon1, "weapon1", "", "Weapon id for player 1 (see 'duel weapons')")
	playCmd.Flags().StringVar(&flagWeapon2, "weapon2", "", "Weapon id for player 2")
	playCmd.Flags().StringVar(&flagPlayer1, "player1", "", "Name of player 1")
	playCmd.Flags().StringVar(&flagPlayer2, "player2", "", "Name of player 2")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The TUI owns stdout, so logs only go to --log-file.
	sess, err := openSession(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	machine, err := sess.newMachine(
		[2]string{flagPlayer1, flagPlayer2},
		[2]string{flagWeapon1, flagWeapon2},
		nil,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'duel weapons' to see available weapons.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(machine, cfg); err != nil {
		sess.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
