// ABOUTME: Standalone MCP server entry point with stdio transport
// ABOUTME: Initializes storage, recorder, reporter, and all MCP tools
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/murmur/internal/config"
	"github.com/harper/murmur/internal/core"
	"github.com/harper/murmur/internal/extraction"
	"github.com/harper/murmur/internal/llm"
	"github.com/harper/murmur/internal/mcp"
	"github.com/harper/murmur/internal/models"
	"github.com/harper/murmur/internal/storage/sqlite"
)

// noExtraction returns empty results so the deterministic fallback
// parser carries check-ins when no API key is configured
type noExtraction struct{}

func (noExtraction) ExtractItems(_ context.Context, _, _ string) ([]models.RawCandidateItem, error) {
	return nil, nil
}

func (noExtraction) ExtractProgress(_ context.Context, _ string, _ []models.Intention, _ map[string]float64) ([]models.RawUpdate, error) {
	return nil, nil
}

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := sqlite.NewStorage()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer func() { _ = store.Close() }()

	if _, err := core.SeedDefaultIntentions(store, cfg.DefaultSetName); err != nil {
		log.Fatalf("Failed to seed default intentions: %v", err)
	}

	var progressX extraction.CheckInExtractor
	var itemX extraction.Extractor
	if os.Getenv("OPENAI_API_KEY") != "" {
		client, err := llm.NewClient(os.Getenv("OPENAI_API_KEY"))
		if err != nil {
			log.Fatalf("Failed to initialize LLM client: %v", err)
		}
		progressX = client
		itemX = client
	} else {
		log.Println("Warning: OPENAI_API_KEY not set - extraction degrades to the fallback parser")
		progressX = noExtraction{}
		itemX = noExtraction{}
	}

	recorder := core.NewRecorder(store, progressX, itemX)
	reporter := core.NewReporter(store, time.Local)

	server := mcpserver.NewMCPServer("murmur", "0.1.0")
	mcp.RegisterTools(server, store, recorder, reporter)

	log.Println("murmur MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
