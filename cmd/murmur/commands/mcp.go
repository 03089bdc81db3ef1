// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to record and query check-ins via stdio
package commands

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/murmur/internal/core"
	"github.com/harper/murmur/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs murmur as an MCP (Model Context Protocol) server over stdio,
exposing check-in recording, progress logging, and momentum queries.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by the agent host)
  murmur mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "murmur": {
  #       "command": "murmur",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - extraction degrades to the fallback parser")
	}

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	if _, err := seedAndGetSet(store); err != nil {
		return err
	}

	recorder, _, err := buildRecorder(store)
	if err != nil {
		return err
	}
	reporter := core.NewReporter(store, time.Local)

	server := mcpserver.NewMCPServer("murmur", versionInfo.Version)
	mcp.RegisterTools(server, store, recorder, reporter)

	log.Println("murmur MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
