package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-duel/internal/platform/tui"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

var (
	flagHistoryTUI    bool
	flagHistoryPlayer string
	flagHistoryLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past duels and coin balances",
	Long: `Display recent duels, newest first, followed by the coin ledger.
With --player only that player's duels and record are shown.

Examples:
  duel history
  duel history --limit 5
  duel history --player alice
  duel history --tui`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse history interactively")
	historyCmd.Flags().StringVar(&flagHistoryPlayer, "player", "", "Only show duels of this player")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of duels to show")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening duel database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var duels []storage.DuelRecord
	if flagHistoryPlayer != "" {
		duels, err = store.PlayerDuels(flagHistoryPlayer, flagHistoryLimit)
	} else {
		duels, err = store.RecentDuels(flagHistoryLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving duels: %v\n", err)
		os.Exit(1)
	}

	printDuels(duels)
	if flagHistoryPlayer != "" {
		printRecord(store, flagHistoryPlayer)
		return
	}
	printBalances(store)
}

func printDuels(duels []storage.DuelRecord) {
	fmt.Println("Recent duels")
	fmt.Println()

	if len(duels) == 0 {
		fmt.Println("No duels recorded yet.")
		fmt.Println()
		fmt.Println("Play 'duel play' to fight the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-12s  %-28s  %-28s  %-7s  %s\n", "Date", "Player 1", "Player 2", "Time", "Result")
	fmt.Printf("  %-12s  %-28s  %-28s  %-7s  %s\n", "----", "--------", "--------", "----", "------")

	for _, d := range duels {
		row := tui.DuelRow(d)
		fmt.Printf("  %-12s  %-28s  %-28s  %-7s  %s\n", row[0], row[1], row[2], row[3], row[4])
	}
}

func printBalances(store *storage.Store) {
	balances, err := store.Balances()
	if err != nil || len(balances) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Coins")
	fmt.Println()
	fmt.Printf("  %-4s  %-20s  %s\n", "Rank", "Player", "Coins")
	fmt.Printf("  %-4s  %-20s  %s\n", "----", "------", "-----")
	for i, b := range balances {
		fmt.Printf("  %-4d  %-20s  %d\n", i+1, b.Player, b.Balance)
	}
}

func printRecord(store *storage.Store, player string) {
	rec, err := store.Record(player)
	if err != nil {
		return
	}
	balance, err := store.Balance(player)
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("%s: %d won, %d lost, %d drawn, %d coins\n", player, rec.Wins, rec.Losses, rec.Draws, balance)
}
