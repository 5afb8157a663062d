// ABOUTME: CLI command for the daily summary.
// ABOUTME: Shows trailing wellbeing averages, workouts, and habit completion.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryDay string

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"s"},
	Short:   "Show the daily summary",
	Long: `Show averages over the most recent wellbeing entries together with the
workout count and habit completion for a day (today by default).

The window size comes from summary_window in the config file (default 7).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := trk.Summary.Summarize()
		if summaryDay != "" {
			var err error
			if view, err = trk.Summary.SummarizeFor(summaryDay); err != nil {
				return fmt.Errorf("invalid --day: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Summary for %s\n\n", view.DayKey)
		fmt.Fprintf(out, "  Habits     %d/%d done\n", view.HabitsDone, view.HabitsTotal)
		fmt.Fprintf(out, "  Workouts   %d\n", view.WorkoutsToday)
		if view.NoData() {
			fmt.Fprintf(out, "  Wellbeing  %s\n", faint.Sprint("no data yet"))
			return nil
		}
		fmt.Fprintf(out, "  Wellbeing  %d entries (window %d)\n", view.Wellbeing.Count, view.Window)
		fmt.Fprintf(out, "    water    %s\n", view.Wellbeing.Water)
		fmt.Fprintf(out, "    sleep    %s\n", view.Wellbeing.Sleep)
		fmt.Fprintf(out, "    mood     %s\n", view.Wellbeing.Mood)
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryDay, "day", "", "date to summarize (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(summaryCmd)
}
