package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"octofit/database"
	"octofit/internal/config"
	"octofit/internal/repository"
	"octofit/internal/utils"

	"github.com/spf13/cobra"
)

var (
	conn      *database.Connection
	repos     *repository.Repositories
	cfg       *config.Config
	randSeed  int64
	cmdCancel context.CancelFunc
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Manage OctoFit sample data",
	Long: `Seed fills the configured store with the OctoFit sample data set:
two teams, ten users, their activities, a ranked leaderboard and five
workout suggestions.

  $ seed populate            # clear everything and insert the sample data
  $ seed populate --seed 42  # same, with reproducible activities
  $ seed recompute --mode full
  $ seed stats
  $ seed clear

The store is selected with STORE_DRIVER (mongo, postgres or memory) and the
usual connection settings, read from the environment or a .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		cmdCancel = cancel
		cmd.SetContext(ctx)

		conn, err = database.Open(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to %s store: %w", cfg.Store.Driver, err)
		}
		if err := conn.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		repos = conn.Repositories()
		return nil
	},
}

// closeStore releases what PersistentPreRunE acquired. main calls it after
// Execute returns because cobra skips post-run hooks when a command fails.
func closeStore() error {
	if cmdCancel != nil {
		defer func() {
			cmdCancel()
			cmdCancel = nil
		}()
	}
	if conn == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := conn.Close(ctx)
	conn, repos = nil, nil
	return err
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&randSeed, "seed", 0, "random seed for generated activities (0 uses the clock)")
}

func newSeeder() *utils.Seeder {
	seed := randSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return utils.NewSeeder(repos, rand.New(rand.NewSource(seed)), os.Stdout)
}
