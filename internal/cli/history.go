package cli

import (
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List finished games, newest first",
		Long: `List finished games, newest first.

History is only kept across runs with --storage redis; the default
memory storage starts empty every time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			warnEphemeral("game history")

			summaries, err := app.Storage.ListGameSummaries(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(summaries)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of games to show (0 for all)")

	return cmd
}
