// ABOUTME: CLI commands for the wellbeing journal.
// ABOUTME: Logs water, sleep and mood against a weekday name or date.
package main

import (
	"fmt"
	"io"

	"github.com/harperreed/daylog/internal/models"
	"github.com/spf13/cobra"
)

var (
	wbWater int
	wbSleep float64
	wbMood  int
	wbLimit int
	wbYes   bool
)

var wellbeingCmd = &cobra.Command{
	Use:     "wellbeing",
	Aliases: []string{"wb"},
	Short:   "Log water, sleep and mood",
	Long: `Record how a day went.

Entries are keyed by a weekday name (Monday..Sunday) or a date (YYYY-MM-DD);
'today' means today's date. Logging the same day again appends a new entry,
and the newest entry for a day is the one 'latest' shows.

RANGES:

  --water   glasses of water, clamped to 0..50
  --sleep   hours slept, clamped to 0..24 (omit if unknown)
  --mood    1 very low, 2 low, 3 good, 4 great (other values are dropped)

COMMANDS:

  log      Append an entry
  latest   Show the newest entry for a day
  list     List entries, newest first
  clear    Remove every entry`,
}

var wellbeingLogCmd = &cobra.Command{
	Use:   "log <day>",
	Short: "Log water, sleep and mood",
	Long: `Append a wellbeing entry.

Examples:
  daylog wellbeing log today --water 8 --sleep 7.5 --mood 3
  daylog wellbeing log Monday --water 6
  daylog wb log 2025-03-10 --mood 4`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day := ""
		if len(args) == 1 {
			day = args[0]
		}

		var sleep *float64
		if cmd.Flags().Changed("sleep") {
			sleep = &wbSleep
		}
		var mood *int
		if cmd.Flags().Changed("mood") {
			mood = &wbMood
		}

		e, err := trk.Wellbeing.LogEntry(day, wbWater, sleep, mood)
		if err != nil {
			return finish(cmd, fmt.Errorf("log wellbeing: %w", err))
		}

		success(cmd.OutOrStdout(), "Logged %s", e.Day)
		printEntry(cmd.OutOrStdout(), e)
		showSummary(cmd)
		return nil
	},
}

var wellbeingLatestCmd = &cobra.Command{
	Use:   "latest <day>",
	Short: "Show the newest entry for a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, ok := trk.Wellbeing.LatestFor(args[0])
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "No entry for %s.\n", args[0])
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), e.Day)
		printEntry(cmd.OutOrStdout(), e)
		return nil
	},
}

var wellbeingListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := trk.Wellbeing.Entries()
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No wellbeing entries found.")
			return nil
		}

		shown := 0
		for i := len(entries) - 1; i >= 0; i-- {
			if wbLimit > 0 && shown >= wbLimit {
				break
			}
			e := entries[i]
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s water %-2d sleep %-5s mood %s\n",
				faint.Sprint(e.LoggedAt.Format(models.NoteTimeFormat)),
				padRight(e.Day, 10),
				e.Water, sleepText(&e), moodText(&e))
			shown++
		}
		return nil
	},
}

var wellbeingClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every wellbeing entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !wbYes && !confirm(cmd, "Remove all wellbeing entries?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		if err := trk.Wellbeing.ClearAll(); err != nil {
			return fmt.Errorf("clear wellbeing: %w", err)
		}
		success(cmd.OutOrStdout(), "Cleared wellbeing log")
		showSummary(cmd)
		return nil
	},
}

func printEntry(w io.Writer, e *models.WellbeingEntry) {
	fmt.Fprintf(w, "  water %d, sleep %s, mood %s %s\n",
		e.Water, sleepText(e), moodText(e),
		faint.Sprint(e.LoggedAt.Format(models.NoteTimeFormat)))
}

func sleepText(e *models.WellbeingEntry) string {
	if e.Sleep == nil {
		return "-"
	}
	return fmt.Sprintf("%.1fh", *e.Sleep)
}

func moodText(e *models.WellbeingEntry) string {
	if e.Mood == nil {
		return "-"
	}
	return e.Mood.Label()
}

func init() {
	wellbeingLogCmd.Flags().IntVar(&wbWater, "water", 0, "glasses of water (0-50)")
	wellbeingLogCmd.Flags().Float64Var(&wbSleep, "sleep", 0, "hours slept (0-24)")
	wellbeingLogCmd.Flags().IntVar(&wbMood, "mood", 0, "mood 1-4 (very low, low, good, great)")
	wellbeingListCmd.Flags().IntVarP(&wbLimit, "limit", "n", 0, "max number of results (0 for all)")
	wellbeingClearCmd.Flags().BoolVarP(&wbYes, "yes", "y", false, "skip confirmation")

	wellbeingCmd.AddCommand(wellbeingLogCmd, wellbeingLatestCmd, wellbeingListCmd, wellbeingClearCmd)
	rootCmd.AddCommand(wellbeingCmd)
}
