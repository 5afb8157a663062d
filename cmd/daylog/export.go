// ABOUTME: CLI commands for exporting and importing daylog data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats; JSON import.
package main

import (
	"fmt"
	"os"

	"github.com/harperreed/daylog/internal/daykey"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export daylog data",
	Long: `Export every collection in one of several formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include records dated on or after YYYY-MM-DD (markdown only)

EXAMPLES:

  daylog export json                        # Export all data as JSON
  daylog export json -o backup.json         # Save to file
  daylog export yaml                        # Export as YAML
  daylog export markdown --since 2025-01-01 # Export data from 2025 onward`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		exportData := store.GetAllData()
		exportData.DeviceID = cfg.DeviceID

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = exportData.JSON()
		case "yaml":
			data, err = exportData.YAML()
		case "markdown", "md":
			if exportSince != "" && !daykey.IsDateKey(exportSince) {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
			}
			data = []byte(exportData.Markdown(exportSince))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			success(cmd.OutOrStdout(), "Exported to %s", exportOutput)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import daylog data from JSON",
	Long: `Import data from a JSON file written by 'daylog export json'.

Each collection present in the file replaces the stored collection of the
same name. Collections missing from the file are left alone. Records are
checked like hand-entered ones: invalid records are skipped, water and sleep
are clamped, unknown moods are dropped, and the wellbeing log is trimmed to
wellbeing_retention entries.

EXAMPLES:

  daylog import backup.json               # Import from file`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		summary, err := store.ImportJSON(data, cfg.GetWellbeingRetention())
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		success(cmd.OutOrStdout(), "Imported from %s", filename)
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", faint.Sprintf(
			"%d habits, %d workouts, %d wellbeing entries, %d notes",
			summary.Habits, summary.Workouts, summary.Wellbeing, summary.Notes))
		if summary.Skipped > 0 {
			warn(cmd.OutOrStdout(), "Skipped %d invalid records", summary.Skipped)
		}
		showSummary(cmd)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include data since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
