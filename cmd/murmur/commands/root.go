// ABOUTME: Root CLI command and global flags for murmur
// ABOUTME: Wires all subcommands and executes the Cobra tree
package commands

import (
	"github.com/spf13/cobra"
)

var (
	quiet  bool
	dbPath string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "murmur",
		Short: "Voice check-in intention and mood tracking",
		Long: `murmur - voice check-in intention and mood tracking

Speak (or type) a quick check-in; murmur extracts progress toward your
intentions, semantic items worth remembering, and an optional mood
sample, then tracks streaks and momentum over the append-only ledger.

Examples:
  murmur checkin "did twenty minutes on the bike, feeling good"
  murmur checkin --audio note.m4a
  murmur status
  murmur streak`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: XDG data dir)")

	cmd.AddCommand(NewCheckinCmd())
	cmd.AddCommand(NewIntentionsCmd())
	cmd.AddCommand(NewStatusCmd())
	cmd.AddCommand(NewStreakCmd())
	cmd.AddCommand(NewMomentumCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}
