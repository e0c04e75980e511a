package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrowgate/dipjudge/internal/config"
	"github.com/harrowgate/dipjudge/internal/logger"
	"github.com/harrowgate/dipjudge/pkg/diplomacy"
)

func rollbackCmd(cfg *config.Config) *cobra.Command {
	var gameFile string

	cmd := &cobra.Command{
		Use:   "rollback",
		Short: "Undo the most recently adjudicated phase",
		Long: `rollback discards the last entry in both the position and order-log
archives and restores the board to the position archived just before it, so
a misadjudicated phase can be corrected and re-entered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithGameID(cmd.Context(), filepath.Base(gameFile))
			log := logger.ForGame(ctx)

			v, err := variantByName(cfg.Variant)
			if err != nil {
				return err
			}
			gs, err := diplomacy.LoadGameFile(gameFile, v)
			if err != nil {
				return fmt.Errorf("loading game: %w", err)
			}

			if err := gs.Rollback(); err != nil {
				return fmt.Errorf("rolling back: %w", err)
			}

			if err := diplomacy.SaveGameFile(gameFile, gs); err != nil {
				return fmt.Errorf("saving game: %w", err)
			}

			log.Info().
				Str("season", string(gs.Season.Name())).
				Int("year", gs.Season.Year()).
				Str("phase", string(gs.Season.Phase())).
				Msg("rolled back one phase")
			return nil
		},
	}

	cmd.Flags().StringVar(&gameFile, "game", "", "path to the game file (required)")
	cmd.MarkFlagRequired("game")

	return cmd
}
