package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordsearch-go/internal/factory"
	redisstorage "github.com/mcoot/wordsearch-go/internal/storage/redis"
)

var (
	cfg    *Config
	app    *factory.App
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wsgame",
		Short: "Turn-based multiplayer word-search game",
		Long: `wsgame is a hot-seat word-search game for the terminal.

Players take turns naming words hidden in a letter grid. Each word found
scores a point. The game ends when every word is found or every player
passes twice in a row.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if cfg.Output != "text" && cfg.Output != "json" {
				return fmt.Errorf("unknown output format %q: must be text or json", cfg.Output)
			}

			return initApp()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.ConfigPath, "config", "c", cfg.ConfigPath, "Game configuration file (env: WSGAME_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: memory, redis (env: WSGAME_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: WSGAME_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.DictionaryPath, "dictionary", cfg.DictionaryPath, "Word list file for generated puzzles (env: WSGAME_DICTIONARY)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored board output (env: NO_COLOR)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newMakeCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newPuzzlesCmd())

	return rootCmd
}

// initApp wires the application for the configured storage backend
func initApp() error {
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
	}
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	a, err := factory.New(factoryCfg)
	if err != nil {
		app = nil
		return fmt.Errorf("initializing %s storage: %w", cfg.StorageType, err)
	}
	app = a
	return nil
}

// warnEphemeral notes that memory storage is discarded when the process exits
func warnEphemeral(what string) {
	if cfg.StorageType == factory.StorageTypeMemory {
		logger.Warn(what+" is not kept between runs with memory storage; use --storage redis",
			slog.String("storage", cfg.StorageType))
	}
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		NewOutput(cfg.Output, rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).PrintError(err)
		os.Exit(1)
	}
}
