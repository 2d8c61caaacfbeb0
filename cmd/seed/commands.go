package main

import (
	"fmt"

	"octofit/internal/services"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Replace all records with the sample data set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := newSeeder().Populate(cmd.Context())
		return err
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every record of every type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newSeeder().Clear(cmd.Context())
	},
}

var recomputeMode string

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Recount team members and re-rank the leaderboard",
	Long: `Recompute rebuilds the denormalized fields.

  --mode rank  re-rank entries by their stored total points (default)
  --mode full  first copy name, team and points from each user, recount
               activities and create missing entries`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := services.ParseRecomputeMode(recomputeMode)
		if err != nil {
			return err
		}

		maintenance := services.NewMaintenanceService(repos, cfg.Store.DenormalizationMode)
		teams, err := maintenance.RecomputeMemberCounts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to recount members: %w", err)
		}
		for _, team := range teams {
			fmt.Printf("  %-20s %d members\n", team.Name, team.MemberCount)
		}

		entries, err := maintenance.RecomputeLeaderboard(cmd.Context(), mode)
		if err != nil {
			return fmt.Errorf("failed to recompute leaderboard: %w", err)
		}
		for _, entry := range entries {
			fmt.Printf("  %3d  %-20s %6d points\n", entry.Rank, entry.UserName, entry.TotalPoints)
		}
		color.Green("✓ Recomputed %d teams and %d leaderboard entries (%s)", len(teams), len(entries), mode)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print record counts per type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seeder := newSeeder()
		summary, err := seeder.Stats(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Teams: %d\n", summary.Teams)
		fmt.Printf("Users: %d\n", summary.Users)
		fmt.Printf("Activities: %d\n", summary.Activities)
		fmt.Printf("Leaderboard entries: %d\n", summary.Leaderboard)
		fmt.Printf("Workout suggestions: %d\n", summary.Workouts)
		return nil
	},
}

func init() {
	recomputeCmd.Flags().StringVar(&recomputeMode, "mode", string(services.RecomputeRanks), "rank or full")
	rootCmd.AddCommand(populateCmd, clearCmd, recomputeCmd, statsCmd)
}
