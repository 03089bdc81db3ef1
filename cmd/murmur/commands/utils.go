// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Storage/collaborator wiring, table rendering, and display formatting
package commands

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/harper/murmur/internal/config"
	"github.com/harper/murmur/internal/core"
	"github.com/harper/murmur/internal/extraction"
	"github.com/harper/murmur/internal/llm"
	"github.com/harper/murmur/internal/models"
	"github.com/harper/murmur/internal/storage/sqlite"
)

// openStorage opens the database honoring the global --db flag
func openStorage() (*sqlite.Storage, error) {
	if dbPath != "" {
		return sqlite.NewStorageWithPath(dbPath)
	}
	return sqlite.NewStorage()
}

// disabledExtractor is the no-API-key stand-in: every extraction returns
// nothing, so the deterministic fallback parser carries the check-in.
type disabledExtractor struct{}

func (disabledExtractor) ExtractItems(context.Context, string, string) ([]models.RawCandidateItem, error) {
	return nil, nil
}

func (disabledExtractor) ExtractProgress(context.Context, string, []models.Intention, map[string]float64) ([]models.RawUpdate, error) {
	return nil, nil
}

// buildRecorder wires a Recorder with LLM collaborators when an API key
// is configured, else with the disabled stand-ins
func buildRecorder(store *sqlite.Storage) (*core.Recorder, *llm.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if cfg.OpenAIKey == "" {
		if !quiet {
			log.Println("Warning: OPENAI_API_KEY not set - only the deterministic fallback parser will run")
		}
		return core.NewRecorder(store, disabledExtractor{}, disabledExtractor{}), nil, nil
	}

	client, err := llm.NewClientWithConfig(&llm.ClientConfig{
		APIKey:             cfg.OpenAIKey,
		ChatModel:          cfg.ChatModel,
		TranscriptionModel: cfg.TranscriptionModel,
		MaxRetries:         cfg.MaxRetries,
		RetryDelay:         cfg.RetryDelay,
		Timeout:            cfg.Timeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initializing LLM client: %w", err)
	}

	var progressX extraction.CheckInExtractor = client
	var itemX extraction.Extractor = client
	return core.NewRecorder(store, progressX, itemX), client, nil
}

// seedAndGetSet ensures the default set and intentions exist
func seedAndGetSet(store *sqlite.Storage) (*models.IntentionSet, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	set, err := core.SeedDefaultIntentions(store, cfg.DefaultSetName)
	if err != nil {
		return nil, fmt.Errorf("seeding default intentions: %w", err)
	}
	return set, nil
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// renderTable renders a rounded-style table to a string
func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// formatPercent renders a 0-1 ratio as a whole percent
func formatPercent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

// formatAmount drops trailing zeros from a float for display
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// fileExists reports whether path names an existing file
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
