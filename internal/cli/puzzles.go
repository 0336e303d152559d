package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPuzzlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzles",
		Short: "Saved puzzle commands",
	}

	cmd.AddCommand(newPuzzlesListCmd())
	cmd.AddCommand(newPuzzlesDeleteCmd())

	return cmd
}

func newPuzzlesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := app.Storage.ListPuzzles(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(PuzzleList{Puzzles: names})
			return nil
		},
	}
}

func newPuzzlesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := app.Storage.DeletePuzzle(cmd.Context(), name); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.PrintMessage(fmt.Sprintf("Deleted puzzle %q", name))
			return nil
		},
	}
}
