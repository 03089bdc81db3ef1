// ABOUTME: OpenAI client implementing extraction and transcription collaborators
// ABOUTME: Uses gpt-4o-mini for structured extraction and whisper-1 for speech-to-text
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harper/murmur/internal/models"
	"github.com/harper/murmur/internal/util"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = "gpt-4o-mini"
	// DefaultTranscriptionModel is the default speech-to-text model
	DefaultTranscriptionModel = "whisper-1"
)

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey             string
	ChatModel          string
	TranscriptionModel string
	MaxRetries         int
	RetryDelay         time.Duration
	Timeout            time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:             apiKey,
		ChatModel:          DefaultChatModel,
		TranscriptionModel: DefaultTranscriptionModel,
		MaxRetries:         3,
		RetryDelay:         time.Second * 2,
		Timeout:            30 * time.Second,
	}
}

// Client wraps the OpenAI API with retry logic. It implements the
// extraction.Extractor, extraction.CheckInExtractor, and
// extraction.Transcriber interfaces.
type Client struct {
	client             *openai.Client
	chatModel          string
	transcriptionModel string
	maxRetries         int
	retryDelay         time.Duration
	timeout            time.Duration
}

// NewClient creates a Client with default configuration
func NewClient(apiKey string) (*Client, error) {
	return NewClientWithConfig(DefaultConfig(apiKey))
}

// NewClientWithConfig creates a Client with custom configuration
func NewClientWithConfig(config *ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return &Client{
		client:             openai.NewClient(config.APIKey),
		chatModel:          config.ChatModel,
		transcriptionModel: config.TranscriptionModel,
		maxRetries:         config.MaxRetries,
		retryDelay:         config.RetryDelay,
		timeout:            config.Timeout,
	}, nil
}

const extractItemsPrompt = `You are an extraction assistant for a voice journaling app. Given a check-in transcript, extract the distinct semantic items the speaker mentions.

For each item provide:
- type: one of "event", "intention", "commitment", "state"
- title: short noun-phrase title
- summary: one sentence
- categories: array of lowercase category words (health, fitness, mindfulness, sleep, work, career, finance, learning, relationships, family, home, creative)
- confidence: 0.0 to 1.0
- strength: 0.2 to 0.65 importance estimate
- quote: the exact words from the transcript this item came from
- context_before / context_after: surrounding words when useful
- calendar: optional {"title", "start", "end", "all_day", "notes"} when the item implies a concrete calendar event

Return ONLY a JSON array of item objects. If nothing is worth extracting, return [].`

const extractItemsStrictPrompt = extractItemsPrompt + `

IMPORTANT: Respond with RAW JSON only. No markdown fences, no commentary, no text before or after the array.`

// ExtractItems extracts raw candidate items from a transcript. An empty
// list is a valid result. Decode failures are retried exactly once with a
// stricter system instruction; if the retry also fails to decode, an empty
// list is returned rather than an error: extraction degrades to "nothing
// extracted", never a crash.
func (c *Client) ExtractItems(ctx context.Context, transcript, priorContext string) ([]models.RawCandidateItem, error) {
	userPrompt := fmt.Sprintf("Transcript:\n\n%s", transcript)
	if priorContext != "" {
		userPrompt = fmt.Sprintf("Prior context:\n%s\n\nTranscript:\n\n%s", priorContext, transcript)
	}

	content, err := c.complete(ctx, extractItemsPrompt, userPrompt, 0.2)
	if err != nil {
		return nil, err
	}

	var items []models.RawCandidateItem
	if jsonErr := json.Unmarshal([]byte(cleanJSON(content)), &items); jsonErr != nil {
		content, err = c.complete(ctx, extractItemsStrictPrompt, userPrompt, 0.0)
		if err != nil {
			return nil, err
		}
		if jsonErr = json.Unmarshal([]byte(cleanJSON(content)), &items); jsonErr != nil {
			return []models.RawCandidateItem{}, nil
		}
	}
	return items, nil
}

const extractProgressPrompt = `You are a progress extraction assistant for a voice check-in app. Given a transcript, the user's intentions, and today's running totals, extract the progress updates the speaker reports.

For each update provide:
- intention_id: the id of the matching intention (skip anything that matches none)
- type: "TOTAL" when the speaker states an absolute amount for the day, "INCREMENT" when they report an addition
- amount: the numeric amount
- unit: the intention's unit
- confidence: 0.0 to 1.0
- evidence: the words the update came from
- stated_time: RFC3339 local time ONLY when the speaker says when it happened
- time_inferred: true when stated_time was interpreted rather than explicit

Return ONLY a JSON array of update objects. If no progress is mentioned, return [].`

const extractProgressStrictPrompt = extractProgressPrompt + `

IMPORTANT: Respond with RAW JSON only. No markdown fences, no commentary, no text before or after the array.`

// ExtractProgress extracts raw progress updates from a check-in
// transcript. Decode failures follow the same retry-once-stricter rule as
// ExtractItems.
func (c *Client) ExtractProgress(ctx context.Context, transcript string, intentions []models.Intention, todaysTotals map[string]float64) ([]models.RawUpdate, error) {
	intentionsJSON, err := json.Marshal(intentions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode intentions: %w", err)
	}
	totalsJSON, err := json.Marshal(todaysTotals)
	if err != nil {
		return nil, fmt.Errorf("failed to encode totals: %w", err)
	}

	userPrompt := fmt.Sprintf("Intentions:\n%s\n\nToday's totals:\n%s\n\nTranscript:\n\n%s",
		intentionsJSON, totalsJSON, transcript)

	content, err := c.complete(ctx, extractProgressPrompt, userPrompt, 0.1)
	if err != nil {
		return nil, err
	}

	var updates []rawUpdatePayload
	if jsonErr := json.Unmarshal([]byte(cleanJSON(content)), &updates); jsonErr != nil {
		content, err = c.complete(ctx, extractProgressStrictPrompt, userPrompt, 0.0)
		if err != nil {
			return nil, err
		}
		if jsonErr = json.Unmarshal([]byte(cleanJSON(content)), &updates); jsonErr != nil {
			return []models.RawUpdate{}, nil
		}
	}

	result := make([]models.RawUpdate, 0, len(updates))
	for _, u := range updates {
		result = append(result, u.toModel())
	}
	return result, nil
}

// rawUpdatePayload tolerates the string-typed fields the LLM produces
type rawUpdatePayload struct {
	IntentionID  string     `json:"intention_id"`
	Type         string     `json:"type"`
	Amount       float64    `json:"amount"`
	Unit         string     `json:"unit"`
	Confidence   float64    `json:"confidence"`
	Evidence     string     `json:"evidence"`
	StatedTime   *time.Time `json:"stated_time"`
	TimeInferred bool       `json:"time_inferred"`
}

func (u rawUpdatePayload) toModel() models.RawUpdate {
	return models.RawUpdate{
		IntentionID:  u.IntentionID,
		Type:         models.ParseUpdateType(u.Type),
		Amount:       u.Amount,
		Unit:         u.Unit,
		Confidence:   u.Confidence,
		Evidence:     u.Evidence,
		StatedTime:   u.StatedTime,
		TimeInferred: u.TimeInferred,
	}
}

// Transcribe converts an audio file to text with whisper-1. Failures are
// surfaced to the caller; transcription is not retried internally.
func (c *Client) Transcribe(ctx context.Context, audioRef string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*c.timeout)
	defer cancel()

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.transcriptionModel,
		FilePath: audioRef,
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed for %s: %w", audioRef, err)
	}
	return resp.Text, nil
}

// complete runs one chat completion with transport-level retries
func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.CalculateBackoff(c.retryDelay, attempt))
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)

		resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			Temperature: temperature,
		})

		if err != nil {
			cancel()
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Choices) == 0 {
			cancel()
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		cancel()
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("completion failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// cleanJSON strips markdown code fences models sometimes wrap around JSON
func cleanJSON(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
