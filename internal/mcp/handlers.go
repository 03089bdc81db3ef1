// ABOUTME: MCP tool handler implementations for the check-in server
// ABOUTME: Handlers return JSON payloads; pipeline failures degrade, never crash the server
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/harper/murmur/internal/core"
	"github.com/harper/murmur/internal/models"
	"github.com/harper/murmur/internal/storage/sqlite"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	storage  *sqlite.Storage
	recorder *core.Recorder
	reporter *core.Reporter
	now      func() time.Time

	// pending holds ambiguous updates between record_check_in and
	// resolve_ambiguous, keyed by check-in id
	pending map[string]*pendingResolution
	mu      *sync.Mutex
}

// ambiguousUpdate is the wire shape for one held update
type ambiguousUpdate struct {
	Index       int     `json:"index"`
	IntentionID string  `json:"intention_id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Unit        string  `json:"unit,omitempty"`
	Confidence  float64 `json:"confidence"`
	Evidence    string  `json:"evidence,omitempty"`
}

// RecordCheckIn handles the record_check_in tool
func (h *Handlers) RecordCheckIn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	transcript, err := request.RequireString("transcript")
	if err != nil {
		return mcp.NewToolResultError("transcript argument is required and must be a string"), nil
	}

	set, err := h.storage.EnsureDefaultSet("daily")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to resolve intention set: %v", err)), nil
	}

	result, err := h.recorder.RecordCheckIn(ctx, set.SetID, transcript, "")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to record check-in: %v", err)), nil
	}

	if valence := request.GetFloat("mood_valence", 0); request.GetString("mood_label", "") != "" || valence != 0 {
		h.recorder.RecordMood(result.CheckIn, valence, request.GetString("mood_label", ""))
	}

	ambiguous := make([]ambiguousUpdate, 0, len(result.Ambiguous))
	for i, u := range result.Ambiguous {
		ambiguous = append(ambiguous, ambiguousUpdate{
			Index:       i,
			IntentionID: u.IntentionID,
			Type:        string(u.Type),
			Amount:      u.Amount,
			Unit:        u.Unit,
			Confidence:  u.Confidence,
			Evidence:    u.Evidence,
		})
	}
	if len(result.Ambiguous) > 0 {
		h.mu.Lock()
		h.pending[result.CheckIn.CheckInID] = &pendingResolution{
			checkIn: result.CheckIn,
			updates: result.Ambiguous,
		}
		h.mu.Unlock()
	}

	response := map[string]interface{}{
		"check_in_id":     result.CheckIn.CheckInID,
		"applied_entries": result.Applied,
		"ambiguous":       ambiguous,
		"items":           result.Items,
		"topics":          result.Topics,
	}
	return jsonResult(response)
}

// ResolveAmbiguous handles the resolve_ambiguous tool
func (h *Handlers) ResolveAmbiguous(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	checkInID, err := request.RequireString("check_in_id")
	if err != nil {
		return mcp.NewToolResultError("check_in_id argument is required and must be a string"), nil
	}

	h.mu.Lock()
	held, ok := h.pending[checkInID]
	delete(h.pending, checkInID)
	h.mu.Unlock()
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no ambiguous updates held for check-in %s", checkInID)), nil
	}

	var accepted []models.RawUpdate
	if args, ok := request.GetArguments()["accept"].([]interface{}); ok {
		for _, raw := range args {
			idx, ok := raw.(float64)
			if !ok || int(idx) < 0 || int(idx) >= len(held.updates) {
				continue
			}
			accepted = append(accepted, held.updates[int(idx)])
		}
	}

	applied := h.recorder.ResolveAmbiguous(held.checkIn, accepted)

	response := map[string]interface{}{
		"check_in_id":     checkInID,
		"applied_entries": applied,
		"skipped":         len(held.updates) - len(accepted),
	}
	return jsonResult(response)
}

// LogProgress handles the log_progress tool
func (h *Handlers) LogProgress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	intentionID, err := request.RequireString("intention_id")
	if err != nil {
		return mcp.NewToolResultError("intention_id argument is required and must be a string"), nil
	}
	typeStr, err := request.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError("type argument is required and must be TOTAL or INCREMENT"), nil
	}
	amount, err := request.RequireFloat("amount")
	if err != nil {
		return mcp.NewToolResultError("amount argument is required and must be a number"), nil
	}

	updateType := models.ParseUpdateType(typeStr)
	if updateType == models.UpdateUnknown {
		return mcp.NewToolResultError(fmt.Sprintf("unknown update type %q, want TOTAL or INCREMENT", typeStr)), nil
	}

	intent, err := h.storage.Intentions().GetByID(intentionID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load intention: %v", err)), nil
	}
	if intent == nil {
		return mcp.NewToolResultError(fmt.Sprintf("intention not found: %s", intentionID)), nil
	}

	entry, err := models.NewProgressEntry(models.RawUpdate{
		IntentionID: intentionID,
		Type:        updateType,
		Amount:      amount,
		Unit:        intent.Unit,
		Confidence:  1.0,
	}, intent.SetID, "", h.now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid progress entry: %v", err)), nil
	}
	if err := h.storage.Entries().Append(entry); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to append entry %s: %v", entry.EntryID, err)), nil
	}

	return jsonResult(map[string]interface{}{"entry": entry})
}

// ListIntentions handles the list_intentions tool
func (h *Handlers) ListIntentions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary, err := h.reporter.Day(h.now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build summary: %v", err)), nil
	}
	return jsonResult(map[string]interface{}{"intentions": summary.Intentions})
}

// GetDaySummary handles the get_day_summary tool
func (h *Handlers) GetDaySummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := h.parseDate(request.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	summary, err := h.reporter.Day(day)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build summary: %v", err)), nil
	}
	return jsonResult(summary)
}

// GetWeekMomentum handles the get_week_momentum tool
func (h *Handlers) GetWeekMomentum(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := h.parseDate(request.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	week, err := h.reporter.Week(day)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build week momentum: %v", err)), nil
	}
	return jsonResult(week)
}

// GetStreak handles the get_streak tool
func (h *Handlers) GetStreak(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	streak, err := h.reporter.Streak(h.now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute streak: %v", err)), nil
	}
	return jsonResult(map[string]interface{}{"streak": streak})
}

// parseDate interprets an optional YYYY-MM-DD argument, defaulting to now
func (h *Handlers) parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return h.now(), nil
	}
	day, err := time.ParseInLocation(models.DateKeyFormat, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)
	}
	return day, nil
}

func jsonResult(payload interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
