// ABOUTME: CLI commands to list and add intentions
// ABOUTME: Intention ids stay stable; edits only change field values
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/murmur/internal/models"
)

var (
	intentionTarget    float64
	intentionUnit      string
	intentionTimeframe string
)

// NewIntentionsCmd creates the intentions command group
func NewIntentionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intentions",
		Short: "Manage trackable intentions",
		Long: `List or add the intentions check-ins report against.

Examples:
  murmur intentions list
  murmur intentions add "Meditate" --target 10 --unit minutes
  murmur intentions add "Run" --target 20 --unit km --timeframe weekly`,
	}

	cmd.AddCommand(newIntentionsListCmd())
	cmd.AddCommand(newIntentionsAddCmd())
	return cmd
}

func newIntentionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List intentions",
		RunE:  runIntentionsList,
	}
}

func newIntentionsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an intention",
		Args:  cobra.ExactArgs(1),
		RunE:  runIntentionsAdd,
	}
	cmd.Flags().Float64Var(&intentionTarget, "target", 0, "Target amount per timeframe")
	cmd.Flags().StringVar(&intentionUnit, "unit", "", "Unit of the target (minutes, pages, ...)")
	cmd.Flags().StringVar(&intentionTimeframe, "timeframe", "daily", "daily or weekly")
	return cmd
}

func runIntentionsList(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	set, err := seedAndGetSet(store)
	if err != nil {
		return err
	}

	intentions, err := store.Intentions().ListBySet(set.SetID)
	if err != nil {
		return fmt.Errorf("listing intentions: %w", err)
	}

	rows := make([][]string, 0, len(intentions))
	for _, intent := range intentions {
		state := "active"
		if !intent.Active {
			state = "inactive"
		}
		rows = append(rows, []string{
			intent.IntentionID,
			intent.Title,
			formatAmount(intent.Target),
			intent.Unit,
			string(intent.Timeframe),
			state,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "Title", "Target", "Unit", "Timeframe", "State"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
	))
	return nil
}

func runIntentionsAdd(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	set, err := seedAndGetSet(store)
	if err != nil {
		return err
	}

	intent, err := models.NewIntention(set.SetID, args[0], intentionTarget, intentionUnit, models.ParseTimeframe(intentionTimeframe))
	if err != nil {
		return err
	}
	if err := store.Intentions().Save(intent); err != nil {
		return fmt.Errorf("saving intention: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s): %s %s %s\n",
		intent.Title, intent.IntentionID, formatAmount(intent.Target), intent.Unit, intent.Timeframe)
	return nil
}
