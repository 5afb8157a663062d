// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/harperreed/daylog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to read and update your daylog through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "daylog": {
        "command": "daylog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_habit, toggle_habit, remove_habit, list_habits
  add_workout, remove_workout, list_workouts
  log_wellbeing, latest_wellbeing
  add_note, list_notes
  get_summary

  Clearing a collection is only available from the CLI.

AVAILABLE RESOURCES:

  daylog://summary    Rolling averages and today's progress
  daylog://today      Everything recorded today`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(trk, logger)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
