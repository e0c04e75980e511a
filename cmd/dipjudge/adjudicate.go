package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrowgate/dipjudge/internal/config"
	"github.com/harrowgate/dipjudge/internal/logger"
	"github.com/harrowgate/dipjudge/pkg/diplomacy"
)

func adjudicateCmd(cfg *config.Config) *cobra.Command {
	var gameFile, ordersFile string
	var hold bool

	cmd := &cobra.Command{
		Use:   "adjudicate",
		Short: "Resolve the current phase's orders and advance the season",
		Long: `adjudicate loads a game file, reads one DSON order per line from the
orders file (or stdin if --orders is omitted), submits each to the current
phase's order collection, resolves it, and writes the game back out with the
new position and resolved orders appended to the archives.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithGameID(cmd.Context(), filepath.Base(gameFile))
			log := logger.ForGame(ctx)

			gs, err := loadOrNewGame(gameFile, cfg.Variant)
			if err != nil {
				return fmt.Errorf("loading game: %w", err)
			}

			if err := submitOrders(gs, ordersFile); err != nil {
				return fmt.Errorf("submitting orders: %w", err)
			}

			if err := gs.Adjudicate(hold); err != nil {
				return fmt.Errorf("adjudicating: %w", err)
			}

			if err := diplomacy.SaveGameFile(gameFile, gs); err != nil {
				return fmt.Errorf("saving game: %w", err)
			}

			log.Info().
				Str("season", string(gs.Season.Name())).
				Int("year", gs.Season.Year()).
				Str("phase", string(gs.Season.Phase())).
				Msg("phase adjudicated")
			return nil
		},
	}

	cmd.Flags().StringVar(&gameFile, "game", "", "path to the game file (required)")
	cmd.Flags().StringVar(&ordersFile, "orders", "", "path to a file of DSON orders, one per line (default: stdin)")
	cmd.Flags().BoolVar(&hold, "hold", false, "stop at the next phase even if it has nothing to decide")
	cmd.MarkFlagRequired("game")

	return cmd
}

func loadOrNewGame(path, variantName string) (*diplomacy.GameState, error) {
	v, err := variantByName(variantName)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return diplomacy.NewGame(v)
	}
	return diplomacy.LoadGameFile(path, v)
}

func variantByName(name string) (*diplomacy.Variant, error) {
	switch name {
	case "", "standard":
		return diplomacy.StandardVariant()
	default:
		return nil, fmt.Errorf("unknown variant %q", name)
	}
}

func submitOrders(gs *diplomacy.GameState, path string) error {
	var f *os.File
	if path == "" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		ot, err := diplomacy.ParseOrder(line)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", line, err)
		}
		power, ok := resolveOwner(gs, ot)
		if !ok {
			return fmt.Errorf("%q: cannot determine owning power", line)
		}
		if err := diplomacy.SubmitOrder(gs, power, ot); err != nil {
			return fmt.Errorf("submitting %q: %w", line, err)
		}
	}
	return scanner.Err()
}

// resolveOwner determines which power is issuing an order line. DSON
// doesn't carry the owner explicitly, so it's inferred from whatever unit
// already stands in the ordered province — except for a Build, where no
// unit exists yet and the owner is instead whoever holds that home center.
func resolveOwner(gs *diplomacy.GameState, ot diplomacy.OrderText) (*diplomacy.Power, bool) {
	if !ot.Waive {
		if u, err := diplomacy.UnitIn(gs, ot.Province); err == nil {
			return u.Owner, true
		}
	}
	if ot.Kind == diplomacy.KindBuild || ot.Waive {
		prov, ok := gs.Map.ProvinceByAbbreviation(ot.Province)
		if !ok {
			return nil, false
		}
		if power, ok := gs.SupplyCenters[prov.ID]; ok && power != nil {
			return power, true
		}
	}
	return nil, false
}
