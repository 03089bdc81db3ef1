// ABOUTME: MCP tool definitions and registration for the check-in server
// ABOUTME: Defines JSON schemas for all 7 tools
package mcp

import (
	"sync"
	"time"

	"github.com/harper/murmur/internal/core"
	"github.com/harper/murmur/internal/models"
	"github.com/harper/murmur/internal/storage/sqlite"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, store *sqlite.Storage, recorder *core.Recorder, reporter *core.Reporter) *Handlers {
	handlers := &Handlers{
		storage:  store,
		recorder: recorder,
		reporter: reporter,
		pending:  make(map[string]*pendingResolution),
		now:      time.Now,
		mu:       &sync.Mutex{},
	}

	// 1. record_check_in - run a transcript through the understanding pipeline
	server.AddTool(mcp.Tool{
		Name:        "record_check_in",
		Description: "Record a voice check-in transcript. Clear progress updates are applied immediately; ambiguous ones are returned for confirmation via resolve_ambiguous.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"transcript": map[string]interface{}{
					"type":        "string",
					"description": "The check-in transcript text",
				},
				"mood_valence": map[string]interface{}{
					"type":        "number",
					"description": "Optional mood sample from -1 (low) to 1 (high)",
				},
				"mood_label": map[string]interface{}{
					"type":        "string",
					"description": "Optional one-word mood label",
				},
			},
			Required: []string{"transcript"},
		},
	}, handlers.RecordCheckIn)

	// 2. resolve_ambiguous - confirm or skip held updates
	server.AddTool(mcp.Tool{
		Name:        "resolve_ambiguous",
		Description: "Resolve the ambiguous updates held from a previous record_check_in. Pass the indexes to accept; omitted indexes are skipped. An empty list skips everything.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"check_in_id": map[string]interface{}{
					"type":        "string",
					"description": "The check-in whose ambiguous updates to resolve",
				},
				"accept": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "number"},
					"description": "Indexes (from the record_check_in response) of updates to accept",
				},
			},
			Required: []string{"check_in_id"},
		},
	}, handlers.ResolveAmbiguous)

	// 3. log_progress - manual ledger entry, no extraction involved
	server.AddTool(mcp.Tool{
		Name:        "log_progress",
		Description: "Append a progress entry directly, bypassing extraction. Type is TOTAL (absolute value for the day) or INCREMENT (additive delta).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"intention_id": map[string]interface{}{
					"type":        "string",
					"description": "The intention to log progress against",
				},
				"type": map[string]interface{}{
					"type":        "string",
					"description": "TOTAL or INCREMENT",
				},
				"amount": map[string]interface{}{
					"type":        "number",
					"description": "The amount in the intention's unit",
				},
			},
			Required: []string{"intention_id", "type", "amount"},
		},
	}, handlers.LogProgress)

	// 4. list_intentions - active intentions with today's standing
	server.AddTool(mcp.Tool{
		Name:        "list_intentions",
		Description: "List the active intentions with their targets and today's totals.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListIntentions)

	// 5. get_day_summary
	server.AddTool(mcp.Tool{
		Name:        "get_day_summary",
		Description: "Get the day summary: per-intention totals and percents, overall completion, and mood samples.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"date": map[string]interface{}{
					"type":        "string",
					"description": "Day to summarize as YYYY-MM-DD (default: today)",
				},
			},
		},
	}, handlers.GetDaySummary)

	// 6. get_week_momentum
	server.AddTool(mcp.Tool{
		Name:        "get_week_momentum",
		Description: "Get the 7-day momentum rollup for the week containing the given date. Future days are no-data.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"date": map[string]interface{}{
					"type":        "string",
					"description": "Any day in the target week as YYYY-MM-DD (default: today)",
				},
			},
		},
	}, handlers.GetWeekMomentum)

	// 7. get_streak
	server.AddTool(mcp.Tool{
		Name:        "get_streak",
		Description: "Get the current check-in streak: consecutive days ending today with at least one check-in.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.GetStreak)

	return handlers
}

// pendingResolution holds the ambiguous updates of one check-in awaiting
// a user decision
type pendingResolution struct {
	checkIn *models.CheckIn
	updates []models.RawUpdate
}
