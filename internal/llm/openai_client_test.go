// ABOUTME: Tests for LLM client helpers that don't need the network
// ABOUTME: Covers config validation, payload conversion, and fence stripping

package llm

import (
	"testing"

	"github.com/harper/murmur/internal/models"
)

func TestNewClient_RequiresKey(t *testing.T) {
	if _, err := NewClient(""); err == nil {
		t.Error("NewClient(\"\") should fail without an API key")
	}

	client, err := NewClient("sk-test")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.chatModel != DefaultChatModel {
		t.Errorf("chatModel = %q, want default %q", client.chatModel, DefaultChatModel)
	}
	if client.transcriptionModel != DefaultTranscriptionModel {
		t.Errorf("transcriptionModel = %q, want default %q", client.transcriptionModel, DefaultTranscriptionModel)
	}
}

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `[{"a":1}]`, `[{"a":1}]`},
		{"fenced", "```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"bare fence", "```\n[]\n```", `[]`},
		{"whitespace", "  []  ", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSON(tt.in); got != tt.want {
				t.Errorf("cleanJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRawUpdatePayload_ToModel(t *testing.T) {
	p := rawUpdatePayload{
		IntentionID: "int_1",
		Type:        "total",
		Amount:      12,
		Unit:        "pages",
		Confidence:  0.8,
	}

	got := p.toModel()
	if got.Type != models.UpdateTotal {
		t.Errorf("Type = %v, want TOTAL (case-insensitive parse)", got.Type)
	}

	p.Type = "replace"
	if got := p.toModel(); got.Type != models.UpdateUnknown {
		t.Errorf("Type = %v, want unknown for unrecognized value", got.Type)
	}
}
