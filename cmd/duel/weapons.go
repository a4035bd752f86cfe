package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/weapon"
)

var weaponsCmd = &cobra.Command{
	Use:   "weapons",
	Short: "List configured weapons",
	Long: `Shows the weapons from the active config and the default loadout.

Examples:
  duel weapons
  duel weapons --config ./my-duel.yaml`,
	Args: cobra.NoArgs,
	Run:  runWeapons,
}

func runWeapons(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	set, err := cfg.WeaponSet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	weapons := set.List()
	fmt.Printf("Available weapons (config: %s):\n", cfg.Source)
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, w := range weapons {
		maxIDLen = max(maxIDLen, len(w.ID))
		maxNameLen = max(maxNameLen, len(w.Name()))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-6s  %-7s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Length", "Window", "Keys")
	fmt.Printf("  %-*s  %-*s  %-6s  %-7s  %s\n", maxIDLen, "--", maxNameLen, "----", "------", "------", "----")

	for _, w := range weapons {
		fmt.Printf("  %-*s  %-*s  %-6d  %-7s  %s\n",
			maxIDLen, w.ID,
			maxNameLen, w.Name(),
			w.Length,
			fmt.Sprintf("%.1fs", w.InputWindowMs.Duration().Seconds()),
			keyList(w),
		)
	}

	fmt.Println()
	if loadout, loadErr := cfg.Loadout(set); loadErr == nil {
		names := cfg.PlayerNames()
		fmt.Printf("Loadout: %s with %s, %s with %s\n", names[0], loadout[0].ID, names[1], loadout[1].ID)
	}
	fmt.Println("Run 'duel play --weapon1 <id> --weapon2 <id>' to pick weapons.")
}

func keyList(w *weapon.Profile) string {
	keys := make([]string, len(w.AvailableKeys))
	for i, k := range w.AvailableKeys {
		keys[i] = string(k)
	}
	return strings.Join(keys, " ")
}
