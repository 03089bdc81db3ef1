// ABOUTME: CLI command to record a check-in from text or audio
// ABOUTME: Prompts interactively for ambiguous updates; declining means skip
package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/murmur/internal/llm"
	"github.com/harper/murmur/internal/models"
)

var (
	checkinAudio     string
	checkinMood      float64
	checkinMoodLabel string
	checkinYes       bool
)

// NewCheckinCmd creates the checkin command
func NewCheckinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin [transcript]",
		Short: "Record a voice check-in",
		Long: `Record a check-in from a transcript or an audio file.

Clear progress updates are applied immediately. Ambiguous ones are
confirmed interactively; answering anything but y skips them.

Examples:
  murmur checkin "did twenty minutes on the bike"
  murmur checkin --audio note.m4a
  murmur checkin --mood 0.7 --mood-label good "read 15 pages"
  echo "walked 30 minutes" | murmur checkin`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheckin,
	}

	cmd.Flags().StringVar(&checkinAudio, "audio", "", "Transcribe this audio file instead of reading text")
	cmd.Flags().Float64Var(&checkinMood, "mood", 0, "Mood valence from -1 to 1")
	cmd.Flags().StringVar(&checkinMoodLabel, "mood-label", "", "One-word mood label")
	cmd.Flags().BoolVarP(&checkinYes, "yes", "y", false, "Accept all ambiguous updates without prompting")

	return cmd
}

func runCheckin(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	recorder, client, err := buildRecorder(store)
	if err != nil {
		return err
	}

	set, err := seedAndGetSet(store)
	if err != nil {
		return err
	}

	transcript, err := resolveTranscript(cmd, args, client)
	if err != nil {
		return err
	}

	result, err := recorder.RecordCheckIn(cmd.Context(), set.SetID, transcript, checkinAudio)
	if err != nil {
		return fmt.Errorf("recording check-in: %w", err)
	}

	if checkinMood != 0 || checkinMoodLabel != "" {
		recorder.RecordMood(result.CheckIn, checkinMood, checkinMoodLabel)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Check-in %s saved.\n", result.CheckIn.CheckInID)
	for _, entry := range result.Applied {
		fmt.Fprintf(out, "  + %s %s %s (%s)\n", entry.Type, formatAmount(entry.Amount), entry.Unit, entry.IntentionID)
	}
	for _, item := range result.Items {
		fmt.Fprintf(out, "  * noted %s: %q\n", item.Type, item.Title)
	}

	if len(result.Ambiguous) > 0 {
		accepted := confirmAmbiguous(cmd, result.Ambiguous)
		applied := recorder.ResolveAmbiguous(result.CheckIn, accepted)
		for _, entry := range applied {
			fmt.Fprintf(out, "  + %s %s %s (%s, confirmed)\n", entry.Type, formatAmount(entry.Amount), entry.Unit, entry.IntentionID)
		}
		if skipped := len(result.Ambiguous) - len(accepted); skipped > 0 {
			fmt.Fprintf(out, "  skipped %d ambiguous update(s)\n", skipped)
		}
	}

	return nil
}

// resolveTranscript picks the transcript source: audio, argument, or stdin
func resolveTranscript(cmd *cobra.Command, args []string, client *llm.Client) (string, error) {
	if checkinAudio != "" {
		if client == nil {
			return "", fmt.Errorf("--audio requires OPENAI_API_KEY for transcription")
		}
		if !fileExists(checkinAudio) {
			return "", fmt.Errorf("audio file not found: %s", checkinAudio)
		}
		text, err := client.Transcribe(cmd.Context(), checkinAudio)
		if err != nil {
			return "", fmt.Errorf("transcribing %s: %w", checkinAudio, err)
		}
		return text, nil
	}

	if len(args) > 0 {
		return args[0], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	transcript := strings.TrimSpace(string(data))
	if transcript == "" {
		return "", fmt.Errorf("no transcript provided")
	}
	return transcript, nil
}

// confirmAmbiguous asks the user about each held update. EOF or any
// answer other than y counts as skip.
func confirmAmbiguous(cmd *cobra.Command, updates []models.RawUpdate) []models.RawUpdate {
	if checkinYes {
		return updates
	}

	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	var accepted []models.RawUpdate
	for _, u := range updates {
		fmt.Fprintf(out, "Apply %s %s %s to intention %s? [y/N] ", u.Type, formatAmount(u.Amount), u.Unit, u.IntentionID)
		line, err := reader.ReadString('\n')
		if err != nil {
			// Canceled decision: skip everything remaining
			break
		}
		if strings.EqualFold(strings.TrimSpace(line), "y") {
			accepted = append(accepted, u)
		}
	}
	return accepted
}
