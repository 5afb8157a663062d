// ABOUTME: CLI commands for the note journal.
// ABOUTME: Notes are added one at a time and only cleared in bulk after confirmation.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	noteLimit int
	noteYes   bool
)

var noteCmd = &cobra.Command{
	Use:     "note",
	Aliases: []string{"n"},
	Short:   "Keep free-text notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a note",
	Long: `Add a note stamped with the current time.

Examples:
  daylog note add "Slept badly, skipped the run"
  daylog note add Tried the new stretching routine`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := trk.Notes.Add(strings.Join(args, " "))
		if err != nil {
			return finish(cmd, fmt.Errorf("add note: %w", err))
		}

		success(cmd.OutOrStdout(), "Saved note")
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", faint.Sprint(n.Stamp()), truncate(n.Text, 60))
		showSummary(cmd)
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List notes, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		notes := trk.Notes.ListNewestFirst()
		if len(notes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No notes found.")
			return nil
		}

		for i, n := range notes {
			if noteLimit > 0 && i >= noteLimit {
				break
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", faint.Sprint(n.Stamp()), n.Text)
		}
		return nil
	},
}

var noteClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !noteYes && !confirm(cmd, "Delete all notes? This cannot be undone.") {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		if err := trk.Notes.ClearAll(); err != nil {
			return fmt.Errorf("clear notes: %w", err)
		}
		success(cmd.OutOrStdout(), "Cleared notes")
		showSummary(cmd)
		return nil
	},
}

func init() {
	noteListCmd.Flags().IntVarP(&noteLimit, "limit", "n", 0, "max number of results (0 for all)")
	noteClearCmd.Flags().BoolVarP(&noteYes, "yes", "y", false, "skip confirmation")

	noteCmd.AddCommand(noteAddCmd, noteListCmd, noteClearCmd)
	rootCmd.AddCommand(noteCmd)
}
