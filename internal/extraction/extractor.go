// ABOUTME: Collaborator interfaces for LLM extraction and speech-to-text
// ABOUTME: The pipeline consumes outputs only; transport lives behind these
package extraction

import (
	"context"

	"github.com/harper/murmur/internal/models"
)

// Extractor produces raw candidate items from a transcript. An empty list
// is a valid, expected, non-error result: transcripts are sparse by default.
type Extractor interface {
	ExtractItems(ctx context.Context, transcript, priorContext string) ([]models.RawCandidateItem, error)
}

// CheckInExtractor proposes progress updates from a transcript given the
// current intentions and today's totals
type CheckInExtractor interface {
	ExtractProgress(ctx context.Context, transcript string, intentions []models.Intention, todaysTotals map[string]float64) ([]models.RawUpdate, error)
}

// Transcriber is the speech-to-text collaborator. Failures are surfaced to
// the caller and retried at the caller's discretion, never internally.
type Transcriber interface {
	Transcribe(ctx context.Context, audioRef string) (string, error)
}
