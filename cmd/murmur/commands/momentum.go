// ABOUTME: CLI command showing week momentum tiers
// ABOUTME: One row per day; future days show as no-data
package commands

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/murmur/internal/core"
	"github.com/harper/murmur/internal/models"
)

var momentumDate string

// NewMomentumCmd creates the momentum command
func NewMomentumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "momentum",
		Short: "Show the week's momentum",
		Long: `Show the 7-day momentum rollup for a week (Monday start).

Examples:
  murmur momentum
  murmur momentum --date 2026-03-10`,
		RunE: runMomentum,
	}
	cmd.Flags().StringVar(&momentumDate, "date", "", "Any day in the target week as YYYY-MM-DD (default: today)")
	return cmd
}

func runMomentum(cmd *cobra.Command, args []string) error {
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
	if momentumDate != "" {
		day, err = time.ParseInLocation(models.DateKeyFormat, momentumDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", momentumDate)
		}
	}

	reporter := core.NewReporter(store, time.Local)
	week, err := reporter.Week(day)
	if err != nil {
		return fmt.Errorf("building week momentum: %w", err)
	}

	rows := make([][]string, 0, len(week.Days))
	for _, d := range week.Days {
		ratio := ""
		if d.Tier != models.TierNoData {
			ratio = formatPercent(d.Ratio)
		}
		rows = append(rows, []string{d.DateKey, string(d.Tier), ratio})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Day", "Tier", "Ratio"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	))
	return nil
}
