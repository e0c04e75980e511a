package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrowgate/dipjudge/internal/config"
	"github.com/harrowgate/dipjudge/pkg/diplomacy"
)

func replayCmd(cfg *config.Config) *cobra.Command {
	var gameFile string

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Print every archived phase's resolved orders and resulting position",
		Long: `replay walks a game file's order-log and position archives in order,
printing each phase's archived orders (kind, owner, and whether each
succeeded, not their DSON text) alongside the supply-center tally that
phase produced — a plain-text record of how the game reached its current
state.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := variantByName(cfg.Variant)
			if err != nil {
				return err
			}
			gs, err := diplomacy.LoadGameFile(gameFile, v)
			if err != nil {
				return fmt.Errorf("loading game: %w", err)
			}

			positions := gs.Positions.All()
			for i, phase := range gs.OrderLog.All() {
				fmt.Printf("%s %d %s\n", phase.Name, phase.Year, phase.Phase)
				for _, o := range phase.Orders {
					fmt.Printf("  %s\n", formatOrderRecord(o))
				}
				if i < len(positions) {
					fmt.Printf("  -> %s\n", tallyLine(positions[i]))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&gameFile, "game", "", "path to the game file (required)")
	cmd.MarkFlagRequired("game")

	return cmd
}

func formatOrderRecord(o diplomacy.OrderRecord) string {
	status := "failed"
	if o.Succeeded {
		status = "succeeded"
	}
	return fmt.Sprintf("%s (%s): %s", o.Kind, o.Owner, status)
}

func tallyLine(p diplomacy.PositionRecord) string {
	counts := map[string]int{}
	for _, power := range p.SupplyCenters {
		counts[power]++
	}
	s := ""
	for power, n := range counts {
		if s != "" {
			s += ", "
		}
		s += fmt.Sprintf("%s=%d", power, n)
	}
	if p.Winner != "" {
		s += fmt.Sprintf(" (winner: %s)", p.Winner)
	}
	return s
}
