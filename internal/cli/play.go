package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/services/config"
)

func newPlayCmd() *cobra.Command {
	var puzzle string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game from a configuration file or saved puzzle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())

			var gameCfg *model.GameConfig
			var err error
			if puzzle != "" {
				gameCfg, err = app.Storage.GetPuzzle(ctx, puzzle)
				if err != nil {
					return fmt.Errorf("loading puzzle %q: %w", puzzle, err)
				}
			} else {
				gameCfg, err = config.Load(cfg.ConfigPath)
				if err != nil {
					return err
				}
			}

			game, err := app.GameController.CreateGame(ctx, *gameCfg)
			if err != nil {
				return err
			}
			warnEphemeral("the result of this game")

			// Interactive output moves to stderr so stdout holds only JSON
			screen := cmd.OutOrStdout()
			if out.IsJSON() {
				screen = cmd.ErrOrStderr()
			}

			prompter := NewLinePrompter(cmd.InOrStdin(), screen)
			display := NewTerminalDisplay(screen, cfg.NoColor)

			result, err := app.GameController.Play(ctx, game, prompter, display)
			if err != nil {
				return err
			}

			logger.Debug("game finished",
				slog.String("game_id", string(game.ID)),
				slog.Int("found_cells", app.GameController.RenderSnapshot(game).FoundCount()),
			)
			if out.IsJSON() {
				out.Print(result)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&puzzle, "puzzle", "p", "", "Play a saved puzzle instead of the configuration file")

	return cmd
}
