// ABOUTME: CLI command showing the current check-in streak
// ABOUTME: Consecutive days ending today with at least one check-in
package commands

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/murmur/internal/core"
)

// NewStreakCmd creates the streak command
func NewStreakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the current check-in streak",
		RunE:  runStreak,
	}
}

func runStreak(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	reporter := core.NewReporter(store, time.Local)
	streak, err := reporter.Streak(time.Now())
	if err != nil {
		return fmt.Errorf("computing streak: %w", err)
	}

	switch streak {
	case 0:
		fmt.Fprintln(cmd.OutOrStdout(), "No streak yet - check in today to start one.")
	case 1:
		fmt.Fprintln(cmd.OutOrStdout(), "Streak: 1 day")
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "Streak: %d days\n", streak)
	}
	return nil
}
