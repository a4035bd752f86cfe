// duel is a two-player pattern duel for the terminal.
//
// Usage:
//
//	duel play               - Start a hot-seat duel on this terminal
//	duel serve              - Start SSH server for remote duels
//	duel weapons            - List configured weapons
//	duel history            - Show past duels and coin balances
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible patterns
//	--db <path>         - Set database path (default: ~/.duel/duel.db)
//	--config <path>     - Use a custom YAML or TOML config
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duel",
	Short: "Pattern Duel - a quick-draw typing showdown in your terminal",
	Long: `Pattern Duel pits two players against each other on one keyboard.
Each duelist carries a weapon with its own keys. After the countdown both
patterns are revealed for a moment, then hidden: the first to type their
pattern back from memory wins. Pressing keys before the signal disqualifies.

Available commands:
  play     - Start a duel on this terminal
  serve    - Start SSH server for remote duels
  weapons  - List configured weapons
  history  - Past duels and coin balances

Examples:
  duel play
  duel play --weapon1 shotgun --weapon2 rifle
  duel serve --ssh :2222
  duel history --tui`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.duel/duel.db", "Path to duel database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom duel config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(weaponsCmd)
	rootCmd.AddCommand(historyCmd)
}
