// ABOUTME: CLI command showing today's standing per intention
// ABOUTME: Totals, percents, overall completion, and mood samples
package commands

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/murmur/internal/core"
	"github.com/harper/murmur/internal/models"
)

var statusDate string

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's progress",
		Long: `Show the day summary: per-intention totals and completion.

Examples:
  murmur status
  murmur status --date 2026-03-10`,
		RunE: runStatus,
	}
	cmd.Flags().StringVar(&statusDate, "date", "", "Day to show as YYYY-MM-DD (default: today)")
	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	if _, err := seedAndGetSet(store); err != nil {
		return err
	}

	day := time.Now()
	if statusDate != "" {
		day, err = time.ParseInLocation(models.DateKeyFormat, statusDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", statusDate)
		}
	}

	reporter := core.NewReporter(store, time.Local)
	summary, err := reporter.Day(day)
	if err != nil {
		return fmt.Errorf("building summary: %w", err)
	}

	rows := make([][]string, 0, len(summary.Intentions))
	for _, p := range summary.Intentions {
		rows = append(rows, []string{
			p.Intention.Title,
			formatAmount(p.Total),
			formatAmount(p.Intention.Target),
			p.Intention.Unit,
			formatPercent(p.Percent),
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Status for %s\n", summary.DateKey)
	fmt.Fprintln(out, renderTable(
		[]string{"Intention", "Total", "Target", "Unit", "Done"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignRight},
	))
	fmt.Fprintf(out, "Overall: %s\n", formatPercent(summary.Overall))

	for _, mood := range summary.Moods {
		label := mood.Label
		if label == "" {
			label = "(unlabeled)"
		}
		fmt.Fprintf(out, "Mood: %s (%.1f)\n", label, mood.Valence)
	}
	return nil
}
