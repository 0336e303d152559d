package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordsearch-go/internal/dependencies/random"
	"github.com/mcoot/wordsearch-go/internal/services/config"
	"github.com/mcoot/wordsearch-go/internal/services/generator"
)

// errNotOverwritten is returned when the user declines to replace a file
var errNotOverwritten = errors.New("configuration file not overwritten")

func newMakeCmd() *cobra.Command {
	var (
		playerCount int
		players     []string
		gsize       string
		wordCount   int
		seed        uint64
		force       bool
		save        string
		noFile      bool
	)

	cmd := &cobra.Command{
		Use:   "make",
		Short: "Generate a new puzzle configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())

			length, breadth, err := config.ParseSize(gsize)
			if err != nil {
				return err
			}

			if len(players) == 0 {
				for i := 1; i <= playerCount; i++ {
					players = append(players, fmt.Sprintf("P%d", i))
				}
			} else if cmd.Flags().Changed("np") && len(players) != playerCount {
				return fmt.Errorf("--np is %d but %d players were named", playerCount, len(players))
			}

			if cfg.DictionaryPath != "" {
				err = app.DictionaryService.LoadFromFile(ctx, cfg.DictionaryPath)
			} else {
				err = app.DictionaryService.Load(ctx)
			}
			if err != nil {
				return fmt.Errorf("loading dictionary: %w", err)
			}

			gen := app.GeneratorService
			if seed != 0 {
				gen = generator.New(app.DictionaryService, random.NewSeeded(seed), logger)
			}

			puzzle, err := gen.Generate(ctx, generator.Request{
				Players:   players,
				Length:    length,
				Breadth:   breadth,
				WordCount: wordCount,
			})
			if err != nil {
				return err
			}

			made := MadePuzzle{
				Rows:    length,
				Cols:    breadth,
				Players: players,
				Words:   len(puzzle.Locations),
			}

			if !noFile {
				if config.Exists(cfg.ConfigPath) && !force {
					prompter := NewLinePrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
					ok, err := prompter.Confirm(ctx, fmt.Sprintf("%s already exists. Overwrite?", cfg.ConfigPath))
					if err != nil {
						return err
					}
					if !ok {
						return errNotOverwritten
					}
				}
				if err := config.Save(cfg.ConfigPath, puzzle); err != nil {
					return err
				}
				made.Path = cfg.ConfigPath
			}

			if save != "" {
				warnEphemeral("saved puzzle " + save)
				if err := app.Storage.SavePuzzle(ctx, save, puzzle); err != nil {
					return fmt.Errorf("saving puzzle %q: %w", save, err)
				}
				made.SavedAs = save
			}

			out.Print(made)
			return nil
		},
	}

	cmd.Flags().IntVar(&playerCount, "np", 2, "Number of players")
	cmd.Flags().StringSliceVar(&players, "players", nil, "Player names (default P1..Pn)")
	cmd.Flags().StringVar(&gsize, "gsize", "15x15", "Grid size as ROWSxCOLS")
	cmd.Flags().IntVar(&wordCount, "words", 8, "Number of hidden words")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for a reproducible puzzle")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file without asking")
	cmd.Flags().StringVar(&save, "save", "", "Also save the puzzle to storage under this name")
	cmd.Flags().BoolVar(&noFile, "no-file", false, "Do not write the configuration file")

	return cmd
}
