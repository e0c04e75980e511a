// Command dipjudge adjudicates Diplomacy games from the command line,
// driving the same position/order archives a GameState keeps internally.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrowgate/dipjudge/internal/config"
	"github.com/harrowgate/dipjudge/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "dipjudge",
	Short: "Batch adjudicator for Diplomacy orders",
	Long: `dipjudge resolves one phase of orders at a time against the standard
Diplomacy map, archiving the resulting position and order set so a game can
be replayed or rolled back phase by phase.`,
}

func main() {
	cfg := config.Load()
	logger.Init()

	rootCmd.AddCommand(
		adjudicateCmd(cfg),
		rollbackCmd(cfg),
		replayCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dipjudge: %v\n", err)
		os.Exit(1)
	}
}
