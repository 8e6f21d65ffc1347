// Package main is the entry point for the console-quest CLI
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hunlreev/console-quest-rpg/internal/config"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
)

var (
	playerID string
	backend  string
	logLevel string

	game *app
)

var rootCmd = &cobra.Command{
	Use:   "console-quest",
	Short: "A turn-based console RPG",
	Long: `Console Quest is a small turn-based role-playing game.
Create a character, explore the wilds, fight what you find, and trade the loot in town.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if game != nil {
			_ = game.close()
		}
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&playerID, "player", "", "ID of the character to play")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Save backend: file, redis, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(restCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(levelUpCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(playCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	// a missing .env is normal; anything else is worth reporting
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	game, err = newApp(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	return err
}

// applyFlags lets explicitly set flags override the environment
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("backend") {
		cfg.Backend = config.Backend(backend)
	}
	if cmd.Flags().Changed("log-level") {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return errors.InvalidArgumentf("invalid --log-level %q", logLevel)
		}
	}
	return cfg.Validate()
}

func teardown(_ *cobra.Command, _ []string) error {
	if game == nil {
		return nil
	}
	err := game.close()
	game = nil
	return err
}
